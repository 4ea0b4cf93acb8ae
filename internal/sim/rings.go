package sim

import "github.com/vovakirdan/orbit-rush/internal/config"

// RingSet holds the fixed orbit lanes. Radii never change during a run;
// only the active count grows with level, capped at the configured ring
// count.
type RingSet struct {
	radii         []float64
	active        int
	initialActive int
	unlockEvery   int
}

// NewRingSet creates a ring set from config.
func NewRingSet(cfg config.RingsConfig) *RingSet {
	radii := cfg.Radii
	if len(radii) == 0 {
		radii = []float64{10}
	}
	initial := cfg.InitialActive
	if initial < 1 {
		initial = 1
	}
	if initial > len(radii) {
		initial = len(radii)
	}
	unlockEvery := cfg.UnlockEveryLevel
	if unlockEvery < 1 {
		unlockEvery = 1
	}
	return &RingSet{
		radii:         radii,
		active:        initial,
		initialActive: initial,
		unlockEvery:   unlockEvery,
	}
}

// Count returns the total number of rings, active or not.
func (r *RingSet) Count() int {
	return len(r.radii)
}

// ActiveCount returns the number of currently unlocked rings.
func (r *RingSet) ActiveCount() int {
	return r.active
}

// Radius returns the radius of the given ring. An invalid index is an
// invariant violation; release builds clamp to the nearest valid ring.
func (r *RingSet) Radius(index int) float64 {
	if index < 0 || index >= len(r.radii) {
		debugAssert(false, "invalid ring index")
		if index < 0 {
			index = 0
		} else {
			index = len(r.radii) - 1
		}
	}
	return r.radii[index]
}

// ClampIndex restricts a ring index to the active range.
func (r *RingSet) ClampIndex(index int) int {
	if index < 0 {
		return 0
	}
	if index >= r.active {
		return r.active - 1
	}
	return index
}

// UnlockForLevel re-evaluates the active ring count for a level.
// One extra ring unlocks every unlockEvery levels, capped at the total.
func (r *RingSet) UnlockForLevel(level int) {
	if level < 1 {
		level = 1
	}
	active := r.initialActive + (level-1)/r.unlockEvery
	if active > len(r.radii) {
		active = len(r.radii)
	}
	r.active = active
}

// Reset restores the initial active count (run start).
func (r *RingSet) Reset() {
	r.active = r.initialActive
}
