package sim

// EntityKind identifies what a pooled entity is.
type EntityKind int

const (
	KindHazard       EntityKind = iota // Lethal on contact
	KindShieldPickup                   // Grants the Shield effect
	KindSlowMoPickup                   // Grants the SlowMo effect
	KindMagnetPickup                   // Grants the Magnet effect
	KindCount                          // Sentinel for counting kinds
)

// String returns the name of the entity kind.
func (k EntityKind) String() string {
	switch k {
	case KindHazard:
		return "hazard"
	case KindShieldPickup:
		return "shield"
	case KindSlowMoPickup:
		return "slowmo"
	case KindMagnetPickup:
		return "magnet"
	default:
		return "?"
	}
}

// IsPickup returns true for collectible kinds.
func (k EntityKind) IsPickup() bool {
	return k == KindShieldPickup || k == KindSlowMoPickup || k == KindMagnetPickup
}

// Entity is one pooled hazard or collectible. Entities live in a
// fixed-size arena inside the Pool and are addressed by slot index; the
// flag record is meaningful only while Active is true and is cleared on
// recycle before the slot is reused.
type Entity struct {
	slot   int
	Active bool

	Kind       EntityKind
	Ring       int     // Ring index the entity orbits on
	Angle      float64 // Radians, normalized to [0, 2π)
	AngularVel float64 // Radians per second
	SpawnedAt  float64 // Run clock seconds

	// Detection/scoring flag record
	Threatened       bool
	AwardedPass      bool
	AwardedNearMiss  bool
	NeutralizedUntil float64 // Run clock seconds; non-lethal while in the future

	// Opaque render binding from the visual provider, released on recycle
	Visual VisualHandle
}

// Slot returns the entity's arena index.
func (e *Entity) Slot() int {
	return e.slot
}

// Age returns seconds since spawn.
func (e *Entity) Age(now float64) float64 {
	return now - e.SpawnedAt
}

// Neutralized reports whether the entity is temporarily non-lethal.
func (e *Entity) Neutralized(now float64) bool {
	return e.NeutralizedUntil > now
}

// clearFlags resets the flag record for slot reuse.
func (e *Entity) clearFlags() {
	e.Threatened = false
	e.AwardedPass = false
	e.AwardedNearMiss = false
	e.NeutralizedUntil = 0
}
