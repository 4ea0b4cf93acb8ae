package sim

// RunResult is the outward-facing snapshot computed when a run reaches
// its terminal state.
type RunResult struct {
	Score        int
	DurationSecs float64
	Level        int
	NearMisses   int
	Specials     []SpecialType // Fired special events, in type order
	Seed         int64         // Spawn seed used; enables replaying a challenge
	ReplayGIF    []byte        // Encoded trailing replay, nil when unavailable
}
