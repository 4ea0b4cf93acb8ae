package sim

import (
	"bytes"
	"testing"

	"github.com/vovakirdan/orbit-rush/internal/config"
	"github.com/vovakirdan/orbit-rush/internal/core"
	"github.com/vovakirdan/orbit-rush/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func TestGameDeterminism(t *testing.T) {
	cfg := testWorldConfig()

	run := func() (core.GameState, uint64) {
		g := NewWithConfig(cfg)
		g.Reset(testRuntime(12345))

		var state core.GameState
		for i := 0; i < 1200; i++ {
			in := core.NewInputFrame()
			if i%10 == 0 {
				in.Set(core.ActionLeft)
			}
			if i%200 == 0 {
				in.Set(core.ActionUp)
			}
			state = g.Step(in).State
			if state.GameOver {
				break
			}
		}
		snap := g.World().Snapshot()
		return state, snap.Hash()
	}

	s1, h1 := run()
	s2, h2 := run()
	if s1.Score != s2.Score {
		t.Errorf("scores differ across identical runs: %d != %d", s1.Score, s2.Score)
	}
	if h1 != h2 {
		t.Errorf("state hashes differ across identical runs: %d != %d", h1, h2)
	}
}

func TestGamePauseFreezesSimulation(t *testing.T) {
	g := NewWithConfig(testWorldConfig())
	g.Reset(testRuntime(1))

	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}
	tickBefore := g.tick

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	if state := g.Step(pause).State; !state.Paused {
		t.Fatal("pause action did not pause")
	}
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.tick != tickBefore {
		t.Error("simulation advanced while paused")
	}

	if state := g.Step(pause).State; state.Paused {
		t.Fatal("pause action did not resume")
	}
	g.Step(core.NewInputFrame())
	if g.tick != tickBefore+1 {
		t.Error("simulation did not resume after unpause")
	}
}

// lethalConfig guarantees a quick game over: only hazards spawn, and the
// contact distance covers the whole ring.
func lethalConfig() config.OrbitConfig {
	cfg := testWorldConfig()
	cfg.Spawn.HazardWeight = 1
	cfg.Spawn.ShieldWeight = 0
	cfg.Spawn.SlowMoWeight = 0
	cfg.Spawn.MagnetWeight = 0
	cfg.Scoring.CollisionPadding = 100
	cfg.Powerups.GraceWindow = 0
	return cfg
}

func TestGameOverAndRestart(t *testing.T) {
	g := NewWithConfig(lethalConfig())
	g.Reset(testRuntime(7))

	var state core.GameState
	for i := 0; i < 600; i++ {
		state = g.Step(core.NewInputFrame()).State
		if state.GameOver {
			break
		}
	}
	if !state.GameOver {
		t.Fatal("run did not end with guaranteed-lethal spawns")
	}
	if g.Result() == nil {
		t.Fatal("no run result after game over")
	}
	seedBefore := g.World().Seed()

	// Further steps without restart input keep the terminal state.
	if state := g.Step(core.NewInputFrame()).State; !state.GameOver {
		t.Fatal("terminal state cleared without a restart")
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	state = g.Step(restart).State
	if state.GameOver {
		t.Fatal("restart did not resume play")
	}
	if state.Score != 0 {
		t.Errorf("score after restart = %d, want 0", state.Score)
	}
	if g.World().Seed() == seedBefore {
		t.Error("restart reused the previous seed outside challenge mode")
	}
}

func TestChallengeRestartKeepsSeed(t *testing.T) {
	cfg := lethalConfig()
	g := NewWithConfig(cfg)
	g.challenge = true
	g.Reset(testRuntime(99))

	for i := 0; i < 600; i++ {
		if g.Step(core.NewInputFrame()).State.GameOver {
			break
		}
	}
	if !g.State().GameOver {
		t.Fatal("run did not end")
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)
	if got := g.World().Seed(); got != 99 {
		t.Errorf("challenge restart seed = %d, want 99", got)
	}
}

func TestGameReviveSpendsCoins(t *testing.T) {
	cfg := lethalConfig()
	g := NewWithConfig(cfg)
	wallet := &stubWallet{coins: 500}
	g.SetWallet(wallet)
	g.Reset(testRuntime(7))

	for i := 0; i < 600; i++ {
		if g.Step(core.NewInputFrame()).State.GameOver {
			break
		}
	}
	if !g.State().GameOver {
		t.Fatal("run did not end")
	}
	scoreAtDeath := g.State().Score
	balance := wallet.coins

	revive := core.NewInputFrame()
	revive.Set(core.ActionRevive)
	state := g.Step(revive).State
	if state.GameOver {
		t.Fatal("revive did not resume play")
	}
	if state.Score != scoreAtDeath {
		t.Errorf("score after revive = %d, want %d", state.Score, scoreAtDeath)
	}
	cost := cfg.Powerups.ShieldCost * ReviveCostMult
	if wallet.coins != balance-cost {
		t.Errorf("balance = %d, want %d", wallet.coins, balance-cost)
	}
}

func TestGameReplayAttachedToResult(t *testing.T) {
	cfg := lethalConfig()
	cfg.Replay.Enabled = true
	cfg.Replay.Capacity = 16
	cfg.Replay.Interval = 0.1
	cfg.Replay.Window = 5
	cfg.Replay.Size = 32

	g := NewWithConfig(cfg)
	g.Reset(testRuntime(7))

	for i := 0; i < 600; i++ {
		if g.Step(core.NewInputFrame()).State.GameOver {
			break
		}
	}
	res := g.Result()
	if res == nil {
		t.Fatal("no result")
	}
	if len(res.ReplayGIF) == 0 {
		t.Fatal("no replay attached to the result")
	}
	if !bytes.HasPrefix(res.ReplayGIF, []byte("GIF8")) {
		t.Error("replay bytes are not an encoded GIF")
	}
}

type recordingNotifier struct {
	kinds []EventKind
}

func (n *recordingNotifier) Notify(kind EventKind) {
	n.kinds = append(n.kinds, kind)
}

type recordingAnalytics struct {
	events []string
}

func (a *recordingAnalytics) Record(event string, params map[string]any) {
	a.events = append(a.events, event)
}

func TestGameForwardsEvents(t *testing.T) {
	g := NewWithConfig(lethalConfig())
	notifier := &recordingNotifier{}
	analytics := &recordingAnalytics{}
	g.SetNotifier(notifier)
	g.SetAnalytics(analytics)
	g.Reset(testRuntime(7))

	for i := 0; i < 600; i++ {
		if g.Step(core.NewInputFrame()).State.GameOver {
			break
		}
	}

	if len(notifier.kinds) == 0 {
		t.Fatal("notifier received no events")
	}
	last := notifier.kinds[len(notifier.kinds)-1]
	if last != EventGameOver {
		t.Errorf("last notified event = %v, want game_over", last)
	}
	found := false
	for _, name := range analytics.events {
		if name == "game_over" {
			found = true
		}
	}
	if !found {
		t.Error("analytics sink missed the game_over event")
	}
}

func TestGameRenderProducesOutput(t *testing.T) {
	g := NewWithConfig(testWorldConfig())
	g.Reset(testRuntime(1))
	for i := 0; i < 120; i++ {
		g.Step(core.NewInputFrame())
	}

	screen := core.NewScreen(80, 24)
	screen.Clear()
	g.Render(screen)

	nonBlank := 0
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if screen.Get(x, y) != ' ' {
				nonBlank++
			}
		}
	}
	if nonBlank == 0 {
		t.Error("render produced an empty screen")
	}
}

func TestRegistryHasOrbitModes(t *testing.T) {
	for _, id := range []string{"orbit", "orbit_challenge"} {
		if !registry.Exists(id) {
			t.Errorf("mode %q not registered", id)
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("created game ID = %q, want %q", g.ID(), id)
		}
	}
}
