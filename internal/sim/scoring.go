package sim

import (
	"math"
	"sort"

	"github.com/vovakirdan/orbit-rush/internal/config"
	"github.com/vovakirdan/orbit-rush/internal/core"
)

// SpecialType is the closed set of one-shot score-threshold events.
// Each fires exactly once per run at a fixed absolute score and applies
// a time-boxed global modifier.
type SpecialType int

const (
	SpecialFrenzy    SpecialType = iota // Spawn interval halved
	SpecialOverdrive                    // Entity speed raised
	SpecialEclipse                      // Rings dimmed (visual only)
	SpecialCount                        // Sentinel for counting types
)

// String returns the name of the special event.
func (t SpecialType) String() string {
	switch t {
	case SpecialFrenzy:
		return "frenzy"
	case SpecialOverdrive:
		return "overdrive"
	case SpecialEclipse:
		return "eclipse"
	default:
		return "?"
	}
}

// Scoring tracks score, multiplier, level, milestones, special events,
// and drives the per-entity threat state machine. Score is monotonic
// non-decreasing within a run and the multiplier never falls below 1.0.
type Scoring struct {
	cfg config.ScoringConfig

	score      int
	multiplier float64
	level      int
	actions    int
	nearMisses int

	// Pending milestone checkpoints, ascending. Hitting one removes it
	// and inserts checkpoint+step, so a checkpoint can never re-fire.
	checkpoints []int

	fired         [SpecialCount]bool
	activeSpecial SpecialType
	specialUntil  float64
	hasSpecial    bool
}

// NewScoring creates scoring state for a fresh run.
func NewScoring(cfg config.ScoringConfig) *Scoring {
	s := &Scoring{cfg: cfg}
	s.Reset()
	return s
}

// Reset restores run-start state.
func (s *Scoring) Reset() {
	s.score = 0
	s.multiplier = 1.0
	s.level = 1
	s.actions = 0
	s.nearMisses = 0
	s.checkpoints = s.checkpoints[:0]
	if s.cfg.MilestoneStep > 0 {
		s.checkpoints = append(s.checkpoints, s.cfg.MilestoneStep)
	}
	for i := range s.fired {
		s.fired[i] = false
	}
	s.hasSpecial = false
}

// Score returns the current score.
func (s *Scoring) Score() int { return s.score }

// Multiplier returns the current multiplier (always >= 1.0).
func (s *Scoring) Multiplier() float64 { return s.multiplier }

// Level returns the current level (1-based).
func (s *Scoring) Level() int { return s.level }

// NearMisses returns the near-miss counter.
func (s *Scoring) NearMisses() int { return s.nearMisses }

// Actions returns the safe-pass action counter.
func (s *Scoring) Actions() int { return s.actions }

// FiredSpecials returns the specials fired so far this run, in type order.
func (s *Scoring) FiredSpecials() []SpecialType {
	var out []SpecialType
	for t := SpecialType(0); t < SpecialCount; t++ {
		if s.fired[t] {
			out = append(out, t)
		}
	}
	return out
}

// ActiveSpecial returns the currently active special modifier, if any.
func (s *Scoring) ActiveSpecial(now float64) (SpecialType, bool) {
	if !s.hasSpecial || now >= s.specialUntil {
		return 0, false
	}
	return s.activeSpecial, true
}

// SpawnFactor returns the global spawn-interval multiplier from the
// active special modifier.
func (s *Scoring) SpawnFactor(now float64) float64 {
	if t, ok := s.ActiveSpecial(now); ok && t == SpecialFrenzy {
		return 0.5
	}
	return 1.0
}

// SpeedFactor returns the global entity-speed multiplier from the
// active special modifier.
func (s *Scoring) SpeedFactor(now float64) float64 {
	if t, ok := s.ActiveSpecial(now); ok && t == SpecialOverdrive {
		return 1.25
	}
	return 1.0
}

// EvaluateEntity runs one hazard through the threat state machine
// against the player's position. It returns the events produced this
// tick and whether the entity's pass is finalized (safe pass awarded)
// so the caller can recycle it.
//
// States: Approaching -> Threatened -> NearMissAwarded and/or
// PassAwarded, each award at most once per entity instance.
func (s *Scoring) EvaluateEntity(e *Entity, playerRing int, playerAngle, radius, now float64) (events []Event, finalize bool) {
	if e.Kind != KindHazard {
		return nil, false
	}

	sameRing := e.Ring == playerRing
	delta := core.AngularDelta(e.Angle, playerAngle)
	arcDist := radius * delta

	// Approaching -> Threatened
	if sameRing && !e.Threatened && delta < s.cfg.ThreatArc && arcDist < s.cfg.ThreatDistance {
		e.Threatened = true
	}

	// Near miss: a narrow band outside the collision padding, once.
	if sameRing && !e.AwardedNearMiss &&
		delta < s.cfg.NearMissArc &&
		arcDist > s.cfg.CollisionPadding && arcDist < s.cfg.NearMissDistance {
		e.AwardedNearMiss = true
		s.nearMisses++
		s.multiplier += s.cfg.NearMissBonus
		events = append(events, Event{Kind: EventNearMiss, At: now, Value: s.nearMisses})
	}

	// Safe pass: the player has cleared the threat zone.
	if e.Threatened && !e.AwardedPass && delta > s.cfg.ReleaseArc {
		e.AwardedPass = true
		events = append(events, s.awardPass(now)...)
		finalize = true
	}

	return events, finalize
}

// FinalizeLifetime awards a safe pass to an aged-out entity that was
// never finalized, so hazards cannot silently disappear without scoring.
func (s *Scoring) FinalizeLifetime(e *Entity, now float64) []Event {
	if e.Kind != KindHazard || e.AwardedPass {
		return nil
	}
	e.AwardedPass = true
	return s.awardPass(now)
}

// awardPass applies safe-pass scoring: points scale with the current
// multiplier, then the multiplier decays toward its floor of 1.0, the
// action counter advances level progression, and milestone/special
// thresholds are re-checked.
func (s *Scoring) awardPass(now float64) []Event {
	points := int(math.Floor(float64(s.cfg.BasePoints) * s.multiplier))
	s.score += points

	s.multiplier *= s.cfg.PassDecay
	if s.multiplier < 1.0 {
		s.multiplier = 1.0
	}

	events := []Event{{Kind: EventSafePass, At: now, Value: points}}

	s.actions++
	if s.cfg.ActionsPerLevel > 0 && s.actions%s.cfg.ActionsPerLevel == 0 {
		s.level++
		events = append(events, Event{Kind: EventLevelUp, At: now, Value: s.level})
	}

	events = append(events, s.checkProgress(now)...)
	return events
}

// checkProgress fires milestone and special events newly crossed by the
// current score. Two simultaneous passes crossing one checkpoint in a
// single tick still fire it exactly once, because the hit checkpoint is
// removed before the next check.
func (s *Scoring) checkProgress(now float64) []Event {
	var events []Event

	for len(s.checkpoints) > 0 && s.score >= s.checkpoints[0] {
		hit := s.checkpoints[0]
		s.checkpoints = s.checkpoints[1:]
		next := hit + s.cfg.MilestoneStep
		s.insertCheckpoint(next)
		events = append(events, Event{Kind: EventMilestone, At: now, Value: hit})
	}

	for i, threshold := range s.cfg.SpecialThresholds {
		if i >= int(SpecialCount) {
			break
		}
		t := SpecialType(i)
		if !s.fired[t] && s.score >= threshold {
			s.fired[t] = true
			s.activeSpecial = t
			s.specialUntil = now + s.cfg.SpecialDuration
			s.hasSpecial = true
			events = append(events, Event{Kind: EventSpecial, At: now, Value: threshold, Special: t})
		}
	}

	return events
}

// insertCheckpoint adds a checkpoint keeping the set sorted and unique.
func (s *Scoring) insertCheckpoint(c int) {
	i := sort.SearchInts(s.checkpoints, c)
	if i < len(s.checkpoints) && s.checkpoints[i] == c {
		return
	}
	s.checkpoints = append(s.checkpoints, 0)
	copy(s.checkpoints[i+1:], s.checkpoints[i:])
	s.checkpoints[i] = c
}

// NextCheckpoint returns the lowest pending milestone checkpoint, or 0
// if milestones are disabled.
func (s *Scoring) NextCheckpoint() int {
	if len(s.checkpoints) == 0 {
		return 0
	}
	return s.checkpoints[0]
}
