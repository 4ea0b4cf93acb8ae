package sim

import "github.com/vovakirdan/orbit-rush/internal/core"

// EffectType is the closed set of timed power-up effects.
type EffectType int

const (
	EffectShield EffectType = iota // Absorbs one lethal contact
	EffectSlowMo                   // Scales entity angular speed down
	EffectMagnet                   // Deflects nearby hazards away
	EffectCount                    // Sentinel for counting types
)

// String returns the name of the effect type.
func (t EffectType) String() string {
	switch t {
	case EffectShield:
		return "Shield"
	case EffectSlowMo:
		return "SlowMo"
	case EffectMagnet:
		return "Magnet"
	default:
		return "?"
	}
}

// Effect is one active timed power-up. Magnitude is effect-dependent:
// the slow factor for SlowMo, the deflection strength for Magnet, and
// unused for Shield.
type Effect struct {
	Type      EffectType
	Magnitude float64
	StartedAt float64 // Run clock seconds
	ExpiresAt float64 // Run clock seconds
}

// EffectRegistry tracks at most one active effect per type. A new
// activation of an already-active type fully replaces the old one: no
// additive stacking, and no duration extension beyond the new value.
//
// Single-writer-per-tick is a precondition, matching the loop.
type EffectRegistry struct {
	effects [EffectCount]*Effect
}

// NewEffectRegistry creates an empty registry.
func NewEffectRegistry() *EffectRegistry {
	return &EffectRegistry{}
}

// Activate inserts an effect, dropping any existing effect of the same
// type first.
func (r *EffectRegistry) Activate(t EffectType, magnitude, duration, now float64) {
	if t < 0 || t >= EffectCount {
		debugAssert(false, "activate of unknown effect type")
		return
	}
	r.effects[t] = &Effect{
		Type:      t,
		Magnitude: magnitude,
		StartedAt: now,
		ExpiresAt: now + duration,
	}
}

// IsActive lazily purges an expired entry of the given type, then
// reports membership. Querying a never-activated type simply reports
// inactive.
func (r *EffectRegistry) IsActive(t EffectType, now float64) bool {
	e := r.get(t)
	if e == nil {
		return false
	}
	if e.ExpiresAt <= now {
		r.effects[t] = nil
		return false
	}
	return true
}

// Magnitude returns the active effect's magnitude, or 0 when inactive.
func (r *EffectRegistry) Magnitude(t EffectType, now float64) float64 {
	if !r.IsActive(t, now) {
		return 0
	}
	return r.effects[t].Magnitude
}

// NormalizedStrength returns the remaining lifetime fraction of an
// active effect in [0, 1], used to decay magnet pull and visual
// intensity smoothly toward zero. Inactive types report 0.
func (r *EffectRegistry) NormalizedStrength(t EffectType, now float64) float64 {
	if !r.IsActive(t, now) {
		return 0
	}
	e := r.effects[t]
	span := e.ExpiresAt - e.StartedAt
	if span <= 0 {
		return 0
	}
	return core.ClampF((e.ExpiresAt-now)/span, 0, 1)
}

// Remaining returns seconds until expiry for an active effect, else 0.
func (r *EffectRegistry) Remaining(t EffectType, now float64) float64 {
	if !r.IsActive(t, now) {
		return 0
	}
	return r.effects[t].ExpiresAt - now
}

// Deactivate removes an effect explicitly (e.g., a shield consumed by a
// hit). Removing an inactive type is a no-op.
func (r *EffectRegistry) Deactivate(t EffectType) {
	if t < 0 || t >= EffectCount {
		return
	}
	r.effects[t] = nil
}

// Expire purges every effect whose expiry has passed and returns the
// expired types, in type order.
func (r *EffectRegistry) Expire(now float64) []EffectType {
	var expired []EffectType
	for t := EffectType(0); t < EffectCount; t++ {
		if e := r.effects[t]; e != nil && e.ExpiresAt <= now {
			r.effects[t] = nil
			expired = append(expired, t)
		}
	}
	return expired
}

// Active returns the currently active effects, in type order.
func (r *EffectRegistry) Active(now float64) []*Effect {
	var out []*Effect
	for t := EffectType(0); t < EffectCount; t++ {
		if r.IsActive(t, now) {
			out = append(out, r.effects[t])
		}
	}
	return out
}

// Reset clears all state (run start).
func (r *EffectRegistry) Reset() {
	for t := range r.effects {
		r.effects[t] = nil
	}
}

func (r *EffectRegistry) get(t EffectType) *Effect {
	if t < 0 || t >= EffectCount {
		return nil
	}
	return r.effects[t]
}
