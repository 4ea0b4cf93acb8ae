package sim

// EventKind identifies a gameplay event produced during a tick.
// Producers (collision, scoring) append to the world's event list and
// the loop drains it once per tick toward the notifier and analytics
// collaborators, so producers and consumers share no lifetimes.
type EventKind int

const (
	EventSpawn EventKind = iota
	EventNearMiss
	EventSafePass
	EventMilestone
	EventLevelUp
	EventSpecial
	EventPickup
	EventShieldAbsorb
	EventNeutralized
	EventGameOver
	EventRevive
	EventPurchase
)

// String returns the analytics name of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventSpawn:
		return "spawn"
	case EventNearMiss:
		return "near_miss"
	case EventSafePass:
		return "safe_pass"
	case EventMilestone:
		return "milestone"
	case EventLevelUp:
		return "level_up"
	case EventSpecial:
		return "special"
	case EventPickup:
		return "pickup"
	case EventShieldAbsorb:
		return "shield_absorb"
	case EventNeutralized:
		return "neutralized"
	case EventGameOver:
		return "game_over"
	case EventRevive:
		return "revive"
	case EventPurchase:
		return "purchase"
	default:
		return "unknown"
	}
}

// Event is one gameplay occurrence. Value carries the event's primary
// number (points, milestone score, new level); Effect and Special are
// set only for the kinds that concern them.
type Event struct {
	Kind    EventKind
	At      float64 // Run clock seconds
	Value   int
	Effect  EffectType
	Special SpecialType
}
