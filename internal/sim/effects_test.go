package sim

import "testing"

func TestEffectActivateAndExpiry(t *testing.T) {
	r := NewEffectRegistry()

	r.Activate(EffectShield, 1, 10, 0)
	if !r.IsActive(EffectShield, 5) {
		t.Error("shield should be active at t=5")
	}
	if r.IsActive(EffectShield, 10) {
		t.Error("shield should be expired at t=10")
	}
}

func TestEffectReplaceNotStack(t *testing.T) {
	r := NewEffectRegistry()

	// A 10s shield at t=0 expires at t=10. Picking up another shield at
	// t=9 must replace it entirely: new expiry t=19, not t=20.
	r.Activate(EffectShield, 1, 10, 0)
	r.Activate(EffectShield, 1, 10, 9)

	if got := r.Remaining(EffectShield, 9); got != 10 {
		t.Errorf("Remaining after replace = %v, want 10", got)
	}
	if !r.IsActive(EffectShield, 18.5) {
		t.Error("replaced shield should still be active at t=18.5")
	}
	if r.IsActive(EffectShield, 19) {
		t.Error("replaced shield should expire at t=19, not later")
	}
}

func TestEffectReplaceOverwritesMagnitude(t *testing.T) {
	r := NewEffectRegistry()

	r.Activate(EffectSlowMo, 0.5, 6, 0)
	r.Activate(EffectSlowMo, 0.8, 6, 1)

	if got := r.Magnitude(EffectSlowMo, 2); got != 0.8 {
		t.Errorf("Magnitude = %v, want 0.8 (latest activation wins)", got)
	}
}

func TestEffectQueryUnknownTypeInactive(t *testing.T) {
	r := NewEffectRegistry()

	if r.IsActive(EffectMagnet, 0) {
		t.Error("never-activated effect reported active")
	}
	if r.Magnitude(EffectMagnet, 0) != 0 {
		t.Error("inactive effect should have zero magnitude")
	}
	if r.IsActive(EffectType(99), 0) {
		t.Error("out-of-range type reported active")
	}
}

func TestEffectNormalizedStrength(t *testing.T) {
	r := NewEffectRegistry()
	r.Activate(EffectMagnet, 2.5, 10, 0)

	tests := []struct {
		name string
		now  float64
		want float64
	}{
		{"fresh", 0, 1.0},
		{"halfway", 5, 0.5},
		{"nearly spent", 9, 0.1},
		{"expired", 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.NormalizedStrength(EffectMagnet, tt.now)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("NormalizedStrength(t=%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestEffectExpireReturnsExpiredTypes(t *testing.T) {
	r := NewEffectRegistry()
	r.Activate(EffectShield, 1, 5, 0)
	r.Activate(EffectSlowMo, 0.5, 20, 0)

	expired := r.Expire(10)
	if len(expired) != 1 || expired[0] != EffectShield {
		t.Errorf("Expire = %v, want [Shield]", expired)
	}
	if !r.IsActive(EffectSlowMo, 10) {
		t.Error("slow-mo should survive the purge")
	}
}

func TestEffectDeactivate(t *testing.T) {
	r := NewEffectRegistry()
	r.Activate(EffectShield, 1, 10, 0)
	r.Deactivate(EffectShield)

	if r.IsActive(EffectShield, 1) {
		t.Error("deactivated effect still active")
	}
	r.Deactivate(EffectShield) // No-op on inactive.
}
