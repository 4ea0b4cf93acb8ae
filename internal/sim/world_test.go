package sim

import (
	"testing"

	"github.com/vovakirdan/orbit-rush/internal/config"
)

func testWorldConfig() config.OrbitConfig {
	cfg := config.DefaultOrbitConfig()
	cfg.Replay.Enabled = false
	cfg.Difficulty.Enabled = false
	return cfg
}

type stubWallet struct {
	coins int
}

func (w *stubWallet) Balance() int { return w.coins }

func (w *stubWallet) Spend(amount int) bool {
	if amount > w.coins {
		return false
	}
	w.coins -= amount
	return true
}

func (w *stubWallet) Grant(amount int) { w.coins += amount }

const tickDT = 1.0 / 60.0

func advanceTicks(w *World, n int, in Input) {
	for i := 0; i < n; i++ {
		w.Advance(w.Now()+tickDT, in)
	}
}

func TestWorldDeterminism(t *testing.T) {
	cfg := testWorldConfig()

	run := func() uint64 {
		w := NewWorld(&cfg, 42, nil, nil)
		for i := 0; i < 1200; i++ {
			var in Input
			if i%7 == 0 {
				in.Turn = 1
			}
			if i%90 == 0 {
				in.RingShift = 1
			}
			w.Advance(w.Now()+tickDT, in)
			if w.State() == RunOver {
				break
			}
		}
		snap := w.Snapshot()
		return snap.Hash()
	}

	h1, h2 := run(), run()
	if h1 != h2 {
		t.Errorf("same seed and inputs produced different state hashes: %d != %d", h1, h2)
	}
}

func TestWorldSeedChangesSpawns(t *testing.T) {
	cfg := testWorldConfig()

	spawns := func(seed int64) []float64 {
		w := NewWorld(&cfg, seed, nil, nil)
		var angles []float64
		for i := 0; i < 600; i++ {
			w.Advance(w.Now()+tickDT, Input{})
			for _, ev := range w.DrainEvents() {
				if ev.Kind == EventSpawn {
					w.pool.ForEachActive(func(e *Entity) {
						if e.Slot() == ev.Value {
							angles = append(angles, e.Angle)
						}
					})
				}
			}
			if w.State() == RunOver {
				break
			}
		}
		return angles
	}

	a, b := spawns(1), spawns(2)
	if len(a) == 0 || len(b) == 0 {
		t.Fatal("no spawns recorded")
	}
	same := len(a) == len(b)
	if same {
		for i := range a {
			if a[i] != b[i] {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("different seeds produced identical spawn angle sequences")
	}
}

func TestWorldShieldAbsorbsThenGraceThenLethal(t *testing.T) {
	cfg := testWorldConfig()
	w := NewWorld(&cfg, 1, nil, nil)
	now := 1.0
	w.now = now

	w.effects.Activate(EffectShield, 1, cfg.Powerups.ShieldDuration, now)

	// First contact: absorbed, shield consumed, grace window opens.
	h1 := w.pool.Spawn(KindHazard, now)
	h1.Ring = w.player.Ring
	h1.Angle = w.player.Angle
	w.resolveContacts(now)

	if w.State() != RunRunning {
		t.Fatal("run ended despite an active shield")
	}
	if w.effects.IsActive(EffectShield, now) {
		t.Error("shield should be consumed by the absorb")
	}
	if h1.Active {
		t.Error("absorbed hazard should be recycled")
	}
	if !w.InGrace(now + 0.1) {
		t.Error("grace window should follow a shield absorb")
	}

	// Second contact inside the grace window: ignored.
	h2 := w.pool.Spawn(KindHazard, now)
	h2.Ring = w.player.Ring
	h2.Angle = w.player.Angle
	w.resolveContacts(now + cfg.Powerups.GraceWindow/2)
	if w.State() != RunRunning {
		t.Fatal("contact inside the grace window ended the run")
	}

	// Third contact after the grace window: lethal.
	after := now + cfg.Powerups.GraceWindow + 0.1
	w.resolveContacts(after)
	if w.State() != RunOver {
		t.Fatal("contact after the grace window should end the run")
	}
	if w.Result() == nil {
		t.Fatal("terminal run has no result")
	}
	if w.pool.ActiveCount() != 0 {
		t.Error("entities not recycled on run end")
	}
	if w.Result().Seed != 1 {
		t.Errorf("result seed = %d, want 1", w.Result().Seed)
	}
}

func TestWorldPickupActivatesEffect(t *testing.T) {
	cfg := testWorldConfig()
	w := NewWorld(&cfg, 1, nil, nil)
	now := 1.0

	p := w.pool.Spawn(KindSlowMoPickup, now)
	p.Ring = w.player.Ring
	p.Angle = w.player.Angle
	w.resolveContacts(now)

	if p.Active {
		t.Error("collected pickup should be recycled")
	}
	if !w.effects.IsActive(EffectSlowMo, now+0.1) {
		t.Fatal("slow-mo not activated by pickup")
	}
	if got := w.effects.Magnitude(EffectSlowMo, now+0.1); got != cfg.Powerups.SlowMoFactor {
		t.Errorf("slow-mo magnitude = %v, want %v", got, cfg.Powerups.SlowMoFactor)
	}
}

func TestWorldMagnetNeutralizesAndDeflects(t *testing.T) {
	cfg := testWorldConfig()
	w := NewWorld(&cfg, 1, nil, nil)
	now := 1.0
	w.now = now

	w.effects.Activate(EffectMagnet, cfg.Powerups.MagnetStrength, cfg.Powerups.MagnetDuration, now)

	h := w.pool.Spawn(KindHazard, now)
	h.Ring = w.player.Ring
	h.Angle = w.player.Angle + 0.2 // Well inside the safe-zone radius on ring 0

	before := h.Angle
	w.applyMagnet(now, tickDT)

	if h.Angle == before {
		t.Error("magnet did not deflect a hazard inside its radius")
	}
	if !h.Neutralized(now + 0.1) {
		t.Error("deflected hazard should be neutralized")
	}
	if h.Neutralized(now + cfg.Powerups.NeutralizeCooldown + 0.1) {
		t.Error("neutralization should lapse after the cooldown")
	}

	// A neutralized hazard contact must not end the run.
	h.Angle = w.player.Angle
	w.resolveContacts(now + 0.1)
	if w.State() != RunRunning {
		t.Error("neutralized hazard contact ended the run")
	}
}

func TestWorldMagnetIgnoresDistantHazards(t *testing.T) {
	cfg := testWorldConfig()
	w := NewWorld(&cfg, 1, nil, nil)
	now := 1.0
	w.now = now

	w.effects.Activate(EffectMagnet, cfg.Powerups.MagnetStrength, cfg.Powerups.MagnetDuration, now)

	h := w.pool.Spawn(KindHazard, now)
	h.Ring = w.player.Ring
	h.Angle = w.player.Angle + 3.0 // Opposite side of ring 0: ~12 units away

	before := h.Angle
	w.applyMagnet(now, tickDT)
	if h.Angle != before || h.Neutralized(now+0.1) {
		t.Error("magnet affected a hazard outside its radius")
	}
}

func TestWorldBuyShield(t *testing.T) {
	cfg := testWorldConfig()
	wallet := &stubWallet{coins: 60}
	w := NewWorld(&cfg, 1, nil, wallet)

	if !w.BuyShield(1.0) {
		t.Fatal("purchase with sufficient balance failed")
	}
	if wallet.coins != 60-cfg.Powerups.ShieldCost {
		t.Errorf("balance = %d, want %d", wallet.coins, 60-cfg.Powerups.ShieldCost)
	}
	if !w.effects.IsActive(EffectShield, 1.1) {
		t.Error("purchased shield not active")
	}

	// Second purchase: 10 coins left, cost 50.
	if w.BuyShield(2.0) {
		t.Error("purchase succeeded with insufficient balance")
	}
	if wallet.coins != 10 {
		t.Errorf("failed purchase changed the balance: %d", wallet.coins)
	}
}

func TestWorldBuyShieldWithoutWallet(t *testing.T) {
	cfg := testWorldConfig()
	w := NewWorld(&cfg, 1, nil, nil)
	if w.BuyShield(1.0) {
		t.Error("purchase succeeded without a wallet")
	}
}

func TestWorldReviveKeepsScore(t *testing.T) {
	cfg := testWorldConfig()
	w := NewWorld(&cfg, 1, nil, nil)
	w.scoring.score = 250
	w.now = 5.0
	w.endRun(5.0)

	if w.State() != RunOver {
		t.Fatal("endRun did not enter the terminal state")
	}

	if !w.Revive(6.0, true) {
		t.Fatal("revive of a terminal run failed")
	}
	if w.State() != RunRunning {
		t.Error("revive did not resume the run")
	}
	if got := w.scoring.Score(); got != 250 {
		t.Errorf("score after revive = %d, want 250", got)
	}
	if w.Result() != nil {
		t.Error("stale result survived the revive")
	}
	if !w.effects.IsActive(EffectShield, 6.1) {
		t.Error("revive shield not granted")
	}
	if !w.InGrace(6.1) {
		t.Error("revive should open a grace window")
	}

	// Reviving a running world is rejected.
	if w.Revive(7.0, false) {
		t.Error("revive succeeded on a running world")
	}
}

func TestWorldRingHopClampedToActive(t *testing.T) {
	cfg := testWorldConfig()
	w := NewWorld(&cfg, 1, nil, nil)

	// Level 1 with initial_active=1: only ring 0 is available.
	w.Advance(tickDT, Input{RingShift: 1})
	if got := w.Player().Ring; got != 0 {
		t.Errorf("player hopped to locked ring %d", got)
	}
	w.Advance(2*tickDT, Input{RingShift: -1})
	if got := w.Player().Ring; got != 0 {
		t.Errorf("player ring = %d after inward hop from ring 0, want 0", got)
	}
}

func TestWorldRingUnlockOnLevelUp(t *testing.T) {
	cfg := testWorldConfig()
	cfg.Scoring.ActionsPerLevel = 1
	w := NewWorld(&cfg, 1, nil, nil)
	now := 1.0
	w.now = now

	// One aged-out hazard levels us to 2, unlocking ring 1.
	h := w.pool.Spawn(KindHazard, now-cfg.Spawn.Lifetime-1)
	h.Ring = 0
	h.Angle = 3.0
	w.scoreEntities(now)

	if got := w.scoring.Level(); got != 2 {
		t.Fatalf("level = %d, want 2", got)
	}
	if got := w.rings.ActiveCount(); got != 2 {
		t.Errorf("active rings = %d after reaching level 2, want 2", got)
	}
}

func TestWorldSnapshotRoundTrip(t *testing.T) {
	cfg := testWorldConfig()
	w := NewWorld(&cfg, 7, nil, nil)
	advanceTicks(w, 300, Input{Turn: 1})

	snap := w.Snapshot()

	w2 := NewWorld(&cfg, 0, nil, nil)
	w2.ApplySnapshot(snap)
	snap2 := w2.Snapshot()

	if snap.Hash() != snap2.Hash() {
		t.Fatalf("snapshot round trip changed the state hash: %d != %d", snap.Hash(), snap2.Hash())
	}
	if w2.Seed() != 7 {
		t.Errorf("seed after restore = %d, want 7", w2.Seed())
	}
	if w2.scoring.Score() != w.scoring.Score() {
		t.Errorf("score after restore = %d, want %d", w2.scoring.Score(), w.scoring.Score())
	}

	// The restored world must keep ticking without violating state.
	advanceTicks(w2, 60, Input{})
}
