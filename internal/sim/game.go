package sim

import (
	"fmt"

	"github.com/vovakirdan/orbit-rush/internal/config"
	"github.com/vovakirdan/orbit-rush/internal/core"
	"github.com/vovakirdan/orbit-rush/internal/registry"
	"github.com/vovakirdan/orbit-rush/internal/replay"
)

// Coin rewards granted through the wallet during play.
const (
	MilestoneCoins = 10 // Per milestone checkpoint
	ScorePerCoin   = 25 // Run-end payout rate
	ReviveCostMult = 2  // Revive price in shield costs
)

// Game adapts the simulation world to the platform loop: it owns the
// tick clock, maps input frames to world intent, drains gameplay events
// toward the notifier and analytics collaborators, and feeds the replay
// recorder. Time is derived from the tick counter so a run is fully
// deterministic for a given seed and input sequence.
type Game struct {
	cfg     *config.OrbitConfig
	runtime core.RuntimeConfig

	world    *World
	recorder *replay.Recorder
	raster   *rasterizer

	notifier  Notifier
	analytics AnalyticsSink
	wallet    Wallet

	tick     int
	paused   bool
	gameOver bool
	result   *RunResult

	// Challenge mode replays a fixed seed with the difficulty curve
	// frozen, so two players face the identical entity sequence.
	challenge bool
}

// New creates an orbit game with the configured YAML config and
// difficulty preset.
func New() *Game {
	return NewWithConfig(loadConfig())
}

// NewChallenge creates a challenge-mode game: same seed on every
// restart, difficulty progression disabled.
func NewChallenge() *Game {
	cfg := loadConfig()
	cfg.Difficulty.Enabled = false
	g := NewWithConfig(cfg)
	g.challenge = true
	return g
}

// NewWithConfig creates an orbit game with explicit config. The config
// is copied, so later mutation by the caller has no effect.
func NewWithConfig(cfg config.OrbitConfig) *Game {
	return &Game{cfg: &cfg}
}

// SetNotifier attaches a presentation notifier. May be nil.
func (g *Game) SetNotifier(n Notifier) { g.notifier = n }

// SetAnalytics attaches an analytics sink. May be nil.
func (g *Game) SetAnalytics(a AnalyticsSink) { g.analytics = a }

// SetWallet attaches the coin wallet used for purchases and rewards.
func (g *Game) SetWallet(w Wallet) { g.wallet = w }

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	if g.challenge {
		return "orbit_challenge"
	}
	return "orbit"
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	if g.challenge {
		return "Orbit Rush: Challenge"
	}
	return "Orbit Rush"
}

// Reset initializes or restarts the run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = 60
	}

	seed := cfg.Seed
	if g.world == nil {
		g.world = NewWorld(g.cfg, seed, nil, g.wallet)
	} else {
		if g.challenge {
			seed = g.world.Seed() // Same gauntlet every attempt
		}
		g.world.Reset(seed)
	}

	g.recorder = replay.NewRecorder(g.cfg.Replay, replay.DetectProfile())
	g.raster = newRasterizer(g.cfg)

	g.tick = 0
	g.paused = false
	g.gameOver = false
	g.result = nil
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		g.stepGameOver(in)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	now := g.now()

	g.world.Advance(now, worldInput(in))
	g.drainEvents(now)
	g.captureFrame(now)

	if g.world.State() == RunOver {
		g.finishRun()
	}

	return core.StepResult{State: g.State()}
}

// now converts the tick counter to run-clock seconds.
func (g *Game) now() float64 {
	return float64(g.tick) / float64(g.runtime.TickRate)
}

// worldInput maps platform actions to simulation intent. Left rotates
// counter-clockwise, Up hops outward (higher ring index).
func worldInput(in core.InputFrame) Input {
	var wi Input
	if in.Has(core.ActionLeft) {
		wi.Turn += 1
	}
	if in.Has(core.ActionRight) {
		wi.Turn -= 1
	}
	if in.Has(core.ActionUp) {
		wi.RingShift++
	}
	if in.Has(core.ActionDown) {
		wi.RingShift--
	}
	if in.Has(core.ActionBuy) {
		wi.Buy = true
	}
	return wi
}

// stepGameOver handles the terminal screen: restart and revive.
func (g *Game) stepGameOver(in core.InputFrame) {
	switch {
	case in.Has(core.ActionRestart):
		cfg := g.runtime
		if !g.challenge {
			// Derive a fresh seed from the old one so restarts differ
			// without a wall-clock dependency.
			cfg.Seed = int64(NewRNG(g.world.Seed()).Next()) //#nosec G115 -- seed derivation
		}
		g.Reset(cfg)
	case in.Has(core.ActionRevive):
		g.tryRevive()
	}
}

// tryRevive spends coins to resume the ended run in place.
func (g *Game) tryRevive() {
	if g.wallet == nil {
		return
	}
	cost := g.cfg.Powerups.ShieldCost * ReviveCostMult
	if !g.wallet.Spend(cost) {
		return
	}
	now := g.now()
	if !g.world.Revive(now, true) {
		g.wallet.Grant(cost) // Refund: the world refused the revive.
		return
	}
	g.gameOver = false
	g.result = nil
	g.drainEvents(now)
}

// finishRun snapshots the result, attaches the encoded replay, and
// pays out milestone-independent rewards.
func (g *Game) finishRun() {
	g.gameOver = true
	g.result = g.world.Result()
	if g.result == nil {
		return
	}
	if g.recorder != nil {
		g.result.ReplayGIF = g.recorder.Finalize()
	}
	if g.wallet != nil {
		g.wallet.Grant(g.result.Score / ScorePerCoin)
	}
}

// drainEvents forwards accumulated gameplay events to the notifier and
// analytics sink, and applies wallet rewards.
func (g *Game) drainEvents(now float64) {
	for _, ev := range g.world.DrainEvents() {
		if ev.Kind == EventMilestone && g.wallet != nil {
			g.wallet.Grant(MilestoneCoins)
		}
		if g.notifier != nil {
			g.notifier.Notify(ev.Kind)
		}
		if g.analytics != nil {
			g.analytics.Record(ev.Kind.String(), map[string]any{
				"at":      now,
				"value":   ev.Value,
				"effect":  ev.Effect.String(),
				"special": ev.Special.String(),
				"score":   g.world.Scoring().Score(),
			})
		}
	}
}

// captureFrame rasterizes the world into a small paletted frame for the
// trailing replay buffer. The recorder drops frames inside the capture
// interval, so rasterization is skipped when a capture would be dropped.
func (g *Game) captureFrame(now float64) {
	if g.recorder == nil || !g.recorder.Enabled() || g.raster == nil {
		return
	}
	if !g.recorder.Due(now) {
		return
	}
	g.recorder.Capture(g.raster.Draw(g.world, now), now)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := core.GameState{
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
	if g.world != nil {
		s.Score = g.world.Scoring().Score()
		s.Level = g.world.Scoring().Level()
		s.Multiplier = g.world.Scoring().Multiplier()
	} else {
		s.Level = 1
		s.Multiplier = 1.0
	}
	return s
}

// Result returns the completed run's result, or nil while running.
func (g *Game) Result() *RunResult {
	return g.result
}

// World exposes the simulation world. Used by tests and the renderer.
func (g *Game) World() *World {
	return g.world
}

// coinsLabel formats the wallet balance for the HUD.
func (g *Game) coinsLabel() string {
	if g.wallet == nil {
		return ""
	}
	return fmt.Sprintf("Coins: %d", g.wallet.Balance())
}

func init() {
	registry.Register("orbit", func() registry.Game { return New() })
	registry.Register("orbit_challenge", func() registry.Game { return NewChallenge() })
}
