// Package sim implements the orbit-rush gameplay simulation core: a
// fixed-tick loop advancing pooled entities on concentric rings, with
// timed power-up effects, a per-entity threat state machine for scoring,
// and a trailing replay capture.
//
// The package is single-threaded by contract: all mutation happens on
// the simulation tick, and timing comes from a monotonic timestamp
// passed into each advance call.
package sim

// RNG is a deterministic pseudo-random number generator.
// Uses a simple LCG (Linear Congruential Generator) so that a spawn
// seed fully determines the entity sequence of a run.
type RNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed int64) *RNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &RNG{state: s}
}

// Next generates the next random uint64.
func (r *RNG) Next() uint64 {
	// LCG parameters (same as MINSTD)
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n)) //#nosec G115 -- n is always positive
}

// Float64 returns a random float64 in [0, 1).
func (r *RNG) Float64() float64 {
	return float64(r.Next()) / float64(1<<64)
}

// State returns the internal generator state for snapshotting.
func (r *RNG) State() uint64 {
	return r.state
}

// SetState restores the internal generator state from a snapshot.
func (r *RNG) SetState(s uint64) {
	if s == 0 {
		s = 1
	}
	r.state = s
}
