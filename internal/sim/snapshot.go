package sim

import "math"

// Snapshot contains the complete world state for replay/save/challenge
// verification. Uses primitive types only for stable serialization;
// float fields are carried as IEEE 754 bit patterns.
type Snapshot struct {
	Ticks      uint64
	Now        uint64 // Float bits
	Seed       int64
	State      int
	LastSpawn  uint64 // Float bits
	GraceUntil uint64 // Float bits

	PlayerRing  int
	PlayerAngle uint64 // Float bits

	Score       int
	Multiplier  uint64 // Float bits
	Level       int
	Actions     int
	NearMisses  int
	Checkpoints []int
	Fired       []int // One flag per special type

	HasSpecial    int
	ActiveSpecial int
	SpecialUntil  uint64 // Float bits

	ActiveRings int

	// Entity state (each active entity is 9 values: Kind, Ring,
	// AngleBits, VelBits, SpawnedAtBits, Threatened, AwardedPass,
	// AwardedNearMiss, NeutralizedUntilBits)
	EntityCount int
	EntityData  []uint64

	// Effect state (each effect is 4 values: Type, MagnitudeBits,
	// StartedAtBits, ExpiresAtBits)
	EffectCount int
	EffectData  []uint64

	RNGState uint64
}

// Snapshot returns the current world state as a Snapshot.
func (w *World) Snapshot() Snapshot {
	var entityData []uint64
	entityCount := 0
	w.pool.ForEachActive(func(e *Entity) {
		entityCount++
		entityData = append(entityData,
			uint64(e.Kind), //#nosec G115 -- enum is non-negative
			uint64(e.Ring), //#nosec G115 -- ring index is non-negative
			math.Float64bits(e.Angle),
			math.Float64bits(e.AngularVel),
			math.Float64bits(e.SpawnedAt),
			boolBit(e.Threatened),
			boolBit(e.AwardedPass),
			boolBit(e.AwardedNearMiss),
			math.Float64bits(e.NeutralizedUntil),
		)
	})

	active := w.effects.Active(w.now)
	effectData := make([]uint64, 0, len(active)*4)
	for _, eff := range active {
		effectData = append(effectData,
			uint64(eff.Type), //#nosec G115 -- enum is non-negative
			math.Float64bits(eff.Magnitude),
			math.Float64bits(eff.StartedAt),
			math.Float64bits(eff.ExpiresAt),
		)
	}

	fired := make([]int, SpecialCount)
	for _, t := range w.scoring.FiredSpecials() {
		fired[t] = 1
	}

	return Snapshot{
		Ticks:      uint64(w.ticks), //#nosec G115 -- tick count is always positive
		Now:        math.Float64bits(w.now),
		Seed:       w.seed,
		State:      int(w.state),
		LastSpawn:  math.Float64bits(w.lastSpawn),
		GraceUntil: math.Float64bits(w.graceUntil),

		PlayerRing:  w.player.Ring,
		PlayerAngle: math.Float64bits(w.player.Angle),

		Score:       w.scoring.Score(),
		Multiplier:  math.Float64bits(w.scoring.Multiplier()),
		Level:       w.scoring.Level(),
		Actions:     w.scoring.Actions(),
		NearMisses:  w.scoring.NearMisses(),
		Checkpoints: append([]int(nil), w.scoring.checkpoints...),
		Fired:       fired,

		HasSpecial:    int(boolBit(w.scoring.hasSpecial)),
		ActiveSpecial: int(w.scoring.activeSpecial),
		SpecialUntil:  math.Float64bits(w.scoring.specialUntil),

		ActiveRings: w.rings.ActiveCount(),

		EntityCount: entityCount,
		EntityData:  entityData,
		EffectCount: len(active),
		EffectData:  effectData,

		RNGState: w.rng.State(),
	}
}

// ApplySnapshot restores world state from a snapshot. The world must be
// built from the same config the snapshot was taken under.
func (w *World) ApplySnapshot(snap Snapshot) {
	w.ticks = int(snap.Ticks) //#nosec G115 -- tick count fits in int
	w.now = math.Float64frombits(snap.Now)
	w.seed = snap.Seed
	w.state = RunState(snap.State)
	w.lastSpawn = math.Float64frombits(snap.LastSpawn)
	w.graceUntil = math.Float64frombits(snap.GraceUntil)

	w.player.Ring = snap.PlayerRing
	w.player.Angle = math.Float64frombits(snap.PlayerAngle)

	w.scoring.score = snap.Score
	w.scoring.multiplier = math.Float64frombits(snap.Multiplier)
	w.scoring.level = snap.Level
	w.scoring.actions = snap.Actions
	w.scoring.nearMisses = snap.NearMisses
	w.scoring.checkpoints = append(w.scoring.checkpoints[:0], snap.Checkpoints...)
	for t := range w.scoring.fired {
		w.scoring.fired[t] = t < len(snap.Fired) && snap.Fired[t] == 1
	}
	w.scoring.hasSpecial = snap.HasSpecial == 1
	w.scoring.activeSpecial = SpecialType(snap.ActiveSpecial)
	w.scoring.specialUntil = math.Float64frombits(snap.SpecialUntil)

	w.rings.active = snap.ActiveRings

	// Restore entity states
	w.pool.RecycleAll()
	for i := range snap.EntityCount {
		idx := i * 9
		if idx+8 >= len(snap.EntityData) {
			break
		}
		d := snap.EntityData[idx : idx+9]
		e := w.pool.Spawn(EntityKind(d[0]), math.Float64frombits(d[4])) //#nosec G115 -- enum fits in int
		if e == nil {
			break
		}
		e.Ring = int(d[1]) //#nosec G115 -- ring index fits in int
		e.Angle = math.Float64frombits(d[2])
		e.AngularVel = math.Float64frombits(d[3])
		e.Threatened = d[5] == 1
		e.AwardedPass = d[6] == 1
		e.AwardedNearMiss = d[7] == 1
		e.NeutralizedUntil = math.Float64frombits(d[8])
	}

	// Restore effect states
	w.effects.Reset()
	for i := range snap.EffectCount {
		idx := i * 4
		if idx+3 >= len(snap.EffectData) {
			break
		}
		d := snap.EffectData[idx : idx+4]
		t := EffectType(d[0]) //#nosec G115 -- enum fits in int
		if t < 0 || t >= EffectCount {
			continue
		}
		w.effects.effects[t] = &Effect{
			Type:      t,
			Magnitude: math.Float64frombits(d[1]),
			StartedAt: math.Float64frombits(d[2]),
			ExpiresAt: math.Float64frombits(d[3]),
		}
	}

	w.rng.SetState(snap.RNGState)
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Ticks
	h = h*31 + snap.Now
	h = h*31 + uint64(snap.Seed)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.State) //#nosec G115 -- hash computation
	h = h*31 + snap.LastSpawn
	h = h*31 + snap.GraceUntil
	h = h*31 + uint64(snap.PlayerRing) //#nosec G115 -- hash computation
	h = h*31 + snap.PlayerAngle
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + snap.Multiplier
	h = h*31 + uint64(snap.Level)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Actions)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.NearMisses)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HasSpecial)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ActiveSpecial) //#nosec G115 -- hash computation
	h = h*31 + snap.SpecialUntil
	h = h*31 + uint64(snap.ActiveRings) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EntityCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EffectCount) //#nosec G115 -- hash computation

	for _, v := range snap.Checkpoints {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.Fired {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.EntityData {
		h = h*31 + v
	}
	for _, v := range snap.EffectData {
		h = h*31 + v
	}

	h = h*31 + snap.RNGState
	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
