package sim

import (
	"github.com/vovakirdan/orbit-rush/internal/config"
	"github.com/vovakirdan/orbit-rush/internal/core"
)

// VisualHandle is an opaque render binding owned by a VisualProvider.
type VisualHandle any

// VisualProvider lets a presentation layer attach per-entity render
// state to pooled entities. The simulation never inspects handles; it
// only acquires them on spawn, pushes position updates, and releases
// them on recycle.
type VisualProvider interface {
	Acquire(kind EntityKind) VisualHandle
	Update(h VisualHandle, x, y, rotation float64, visible bool)
	Release(h VisualHandle)
}

// Notifier receives gameplay event kinds for presentation feedback
// (sounds, flashes). Called synchronously from the tick.
type Notifier interface {
	Notify(kind EventKind)
}

// AnalyticsSink receives named gameplay events with parameters.
type AnalyticsSink interface {
	Record(event string, params map[string]any)
}

// Wallet is the player's persistent coin balance, used for mid-run
// shield purchases. Spend reports whether the balance covered the cost.
type Wallet interface {
	Balance() int
	Spend(amount int) bool
	Grant(amount int)
}

// RunState is the world's lifecycle state.
type RunState int

const (
	RunRunning RunState = iota
	RunOver
)

// PlayerState is the player's position on the ring lattice.
type PlayerState struct {
	Ring  int
	Angle float64 // Radians, normalized to [0, 2π)
}

// World owns one run of the simulation: the entity pool, ring set,
// effect registry, scoring state machine, and the spawn schedule. It is
// advanced by a single caller with a monotonic timestamp; all
// collaborators are optional and may be nil.
type World struct {
	cfg        *config.OrbitConfig
	difficulty *config.DifficultyManager

	rng     *RNG
	seed    int64
	pool    *Pool
	rings   *RingSet
	effects *EffectRegistry
	scoring *Scoring
	motion  Motion
	wallet  Wallet

	player     PlayerState
	state      RunState
	now        float64
	startedAt  float64
	ticks      int
	lastSpawn  float64
	graceUntil float64

	events []Event
	result *RunResult
}

// NewWorld creates a run with the given seed. visual and wallet may be
// nil; a nil wallet disables shield purchases.
func NewWorld(cfg *config.OrbitConfig, seed int64, visual VisualProvider, wallet Wallet) *World {
	w := &World{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        NewRNG(seed),
		seed:       seed,
		pool:       NewPool(cfg.Spawn.MaxEntities, visual),
		rings:      NewRingSet(cfg.Rings),
		effects:    NewEffectRegistry(),
		scoring:    NewScoring(cfg.Scoring),
		motion:     NewMotion(cfg.Physics),
		wallet:     wallet,
	}
	w.resetPlayer()
	return w
}

// Reset restores run-start state with a new seed.
func (w *World) Reset(seed int64) {
	w.rng = NewRNG(seed)
	w.seed = seed
	w.pool.RecycleAll()
	w.rings.Reset()
	w.effects.Reset()
	w.scoring.Reset()
	w.resetPlayer()
	w.state = RunRunning
	w.now = 0
	w.startedAt = 0
	w.ticks = 0
	w.lastSpawn = 0
	w.graceUntil = 0
	w.events = w.events[:0]
	w.result = nil
}

func (w *World) resetPlayer() {
	w.player = PlayerState{Ring: 0, Angle: 0}
}

// Advance runs one simulation tick at the given monotonic timestamp.
// The pipeline order is fixed: expire effects, apply input, move
// entities, deflect with the magnet, resolve contacts, score threats,
// finalize aged-out entities, then spawn.
func (w *World) Advance(now float64, in Input) {
	if w.state != RunRunning {
		return
	}
	dt := now - w.now
	if dt < 0 {
		debugAssert(false, "clock moved backwards")
		dt = 0
	}
	w.now = now
	w.ticks++

	w.expireEffects(now)
	w.applyInput(in, dt, now)

	speed := w.speedFactor(now)
	w.pool.ForEachActive(func(e *Entity) {
		w.motion.Advance(e, dt, speed)
		w.pushVisual(e)
	})

	w.applyMagnet(now, dt)
	w.resolveContacts(now)
	if w.state != RunRunning {
		return
	}

	w.scoreEntities(now)
	w.spawnDue(now)
}

// Input is the per-tick player intent.
type Input struct {
	Turn      float64 // -1 clockwise, +1 counter-clockwise, 0 none
	RingShift int     // -1 inward, +1 outward, 0 none
	Buy       bool    // Attempt a shield purchase
}

func (w *World) applyInput(in Input, dt, now float64) {
	if in.Turn != 0 {
		w.player.Angle = core.NormalizeAngle(w.player.Angle + in.Turn*w.motion.TurnSpeed()*dt)
	}
	if in.RingShift != 0 {
		w.player.Ring = w.rings.ClampIndex(w.player.Ring + in.RingShift)
	}
	if in.Buy {
		w.BuyShield(now)
	}
}

// Effect expiry is silent; only activations emit events.
func (w *World) expireEffects(now float64) {
	w.effects.Expire(now)
}

// speedFactor combines the slow-mo magnitude with the active special's
// speed modifier. With neither active it is 1.0.
func (w *World) speedFactor(now float64) float64 {
	f := 1.0
	if m := w.effects.Magnitude(EffectSlowMo, now); m > 0 {
		f *= m
	}
	return f * w.scoring.SpeedFactor(now)
}

func (w *World) pushVisual(e *Entity) {
	if w.pool.visual == nil || e.Visual == nil {
		return
	}
	x, y := w.motion.Position(w.rings, e.Ring, e.Angle)
	w.pool.visual.Update(e.Visual, x, y, e.Angle, true)
}

// scoreEntities runs the threat state machine over active hazards and
// finalizes entities past their lifetime.
func (w *World) scoreEntities(now float64) {
	lifetime := w.cfg.Spawn.Lifetime
	prevLevel := w.scoring.Level()

	w.pool.ForEachActive(func(e *Entity) {
		radius := w.rings.Radius(e.Ring)
		events, finalize := w.scoring.EvaluateEntity(e, w.player.Ring, w.player.Angle, radius, now)
		w.emitAll(events)
		if finalize {
			w.pool.Recycle(e)
			return
		}
		if lifetime > 0 && e.Age(now) > lifetime {
			w.emitAll(w.scoring.FinalizeLifetime(e, now))
			w.pool.Recycle(e)
		}
	})

	if w.scoring.Level() != prevLevel {
		w.rings.UnlockForLevel(w.scoring.Level())
	}
}

// spawnDue spawns one entity when the schedule allows. The interval is
// the configured base modulated by the difficulty curve, the frenzy
// special, and slow-mo (spawns slow down with the world).
func (w *World) spawnDue(now float64) {
	interval := w.difficulty.SpawnInterval(w.cfg.Spawn.Interval, w.scoring.Score(), w.ticks)
	interval *= w.scoring.SpawnFactor(now)
	if m := w.effects.Magnitude(EffectSlowMo, now); m > 0 {
		interval /= m
	}
	if now-w.lastSpawn < interval {
		return
	}
	w.lastSpawn = now

	// RNG consumption order is fixed (kind, ring, angle) so that a seed
	// fully determines the spawn sequence regardless of play.
	kind := w.rollKind()
	ring := w.rng.Intn(w.rings.ActiveCount())
	angle := w.rng.Float64() * core.TwoPi

	e := w.pool.Spawn(kind, now)
	if e == nil {
		return // Pool exhausted: skip, never evict.
	}
	e.Ring = ring
	e.Angle = angle
	e.AngularVel = w.difficulty.Speed(w.motion.SpawnVelocity(w.scoring.Level()), w.scoring.Score(), w.ticks)
	w.pushVisual(e)
	w.emit(Event{Kind: EventSpawn, At: now, Value: e.Slot()})
}

// rollKind picks a spawn kind by configured weights. Zero total weight
// degrades to always-hazard.
func (w *World) rollKind() EntityKind {
	s := w.cfg.Spawn
	weights := [KindCount]int{
		KindHazard:       s.HazardWeight,
		KindShieldPickup: s.ShieldWeight,
		KindSlowMoPickup: s.SlowMoWeight,
		KindMagnetPickup: s.MagnetWeight,
	}
	total := 0
	for _, v := range weights {
		total += v
	}
	if total <= 0 {
		return KindHazard
	}
	roll := w.rng.Intn(total)
	for k, v := range weights {
		if roll < v {
			return EntityKind(k)
		}
		roll -= v
	}
	return KindHazard
}

// BuyShield spends wallet coins to activate a shield mid-run. Returns
// false when there is no wallet, the run is over, or the balance is
// short; the balance is untouched on failure.
func (w *World) BuyShield(now float64) bool {
	if w.wallet == nil || w.state != RunRunning {
		return false
	}
	cost := w.cfg.Powerups.ShieldCost
	if !w.wallet.Spend(cost) {
		return false
	}
	w.effects.Activate(EffectShield, 1, w.cfg.Powerups.ShieldDuration, now)
	w.emit(Event{Kind: EventPurchase, At: now, Value: cost, Effect: EffectShield})
	return true
}

// Revive resumes a terminal run in place: entities are already cleared,
// the score survives, and a grace window (plus an optional shield)
// protects the player while the field repopulates.
func (w *World) Revive(now float64, withShield bool) bool {
	if w.state != RunOver {
		return false
	}
	w.state = RunRunning
	w.now = now
	w.lastSpawn = now
	w.graceUntil = now + w.cfg.Powerups.GraceWindow
	w.result = nil
	if withShield {
		w.effects.Activate(EffectShield, 1, w.cfg.Powerups.ShieldDuration, now)
	}
	w.emit(Event{Kind: EventRevive, At: now, Value: w.scoring.Score()})
	return true
}

// endRun moves the world to its terminal state, snapshots the result,
// and clears the field.
func (w *World) endRun(now float64) {
	w.state = RunOver
	w.result = &RunResult{
		Score:        w.scoring.Score(),
		DurationSecs: now - w.startedAt,
		Level:        w.scoring.Level(),
		NearMisses:   w.scoring.NearMisses(),
		Specials:     w.scoring.FiredSpecials(),
		Seed:         w.seed,
	}
	w.pool.RecycleAll()
	w.emit(Event{Kind: EventGameOver, At: now, Value: w.result.Score})
}

func (w *World) emit(e Event) {
	w.events = append(w.events, e)
}

func (w *World) emitAll(events []Event) {
	w.events = append(w.events, events...)
}

// DrainEvents returns the events accumulated since the last drain and
// clears the queue. The returned slice is valid until the next call.
func (w *World) DrainEvents() []Event {
	out := w.events
	w.events = w.events[:0]
	return out
}

// State returns the run lifecycle state.
func (w *World) State() RunState { return w.state }

// Result returns the terminal run result, or nil while running.
func (w *World) Result() *RunResult { return w.result }

// Player returns the player's current position.
func (w *World) Player() PlayerState { return w.player }

// Rings exposes the ring set for rendering.
func (w *World) Rings() *RingSet { return w.rings }

// Effects exposes the effect registry for rendering.
func (w *World) Effects() *EffectRegistry { return w.effects }

// Scoring exposes scoring state for rendering.
func (w *World) Scoring() *Scoring { return w.scoring }

// Pool exposes the entity pool for rendering.
func (w *World) Pool() *Pool { return w.pool }

// Now returns the run clock of the last advance.
func (w *World) Now() float64 { return w.now }

// Seed returns the spawn seed of the current run.
func (w *World) Seed() int64 { return w.seed }

// Wallet returns the attached wallet, or nil.
func (w *World) Wallet() Wallet { return w.wallet }

// InGrace reports whether the post-hit grace window is active.
func (w *World) InGrace(now float64) bool { return now < w.graceUntil }
