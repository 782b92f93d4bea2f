package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// GameID is the registry identifier of the runner.
const GameID = "runner"

// Game adapts an Engine to the registry.Game interface: it maps input
// frames onto engine operations and draws snapshots.
type Game struct {
	engine   *Engine
	snap     Snapshot
	legFrame int
	seed     int64
	seeded   bool // Whether seed came from Reset
}

// NewGame creates a game around a fresh engine.
func NewGame(cfg config.RunnerConfig, opts ...Option) (*Game, error) {
	engine, err := New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Game{
		engine: engine,
		snap:   engine.Snapshot(),
	}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Obstacle Runner"
}

// Engine exposes the underlying engine.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Snapshot returns the most recent frame.
func (g *Game) Snapshot() Snapshot {
	return g.snap
}

// Reset reseeds the spawner and returns to idle. The session high score
// survives.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.seed = runtime.Seed
	g.seeded = true
	g.restart()
}

// restart returns to idle. Once seeded, every restart replays the same
// obstacle stream, so a seed always identifies one run.
func (g *Game) restart() {
	if g.seeded {
		g.engine.Reseed(g.seed)
	}
	g.engine.Reset()
	g.legFrame = 0
	g.snap = g.engine.Snapshot()
}

// Step applies the frame's actions and advances one tick.
// Jump also starts a run from idle.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.restart()
	}
	if in.Has(core.ActionPause) {
		if g.engine.Phase() == PhaseOver {
			g.restart()
		}
		g.engine.StartOrPause()
	}
	if in.Has(core.ActionJump) {
		if g.engine.Phase() == PhaseIdle {
			g.engine.StartOrPause()
		}
		g.engine.RequestJump()
	}

	g.snap = g.engine.Advance()
	if g.snap.Phase == PhaseRunning {
		g.legFrame = (g.legFrame + 1) % 10
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.snap.Score,
		HighScore: g.snap.HighScore,
		Ticks:     g.snap.Score,
		Started:   g.snap.Phase != PhaseIdle,
		GameOver:  g.snap.Phase == PhaseOver,
		Paused:    g.snap.Phase == PhasePaused,
		Night:     g.snap.NightMode,
	}
}

// newFromOptions builds a game the way front-ends request it.
func newFromOptions(opts registry.Options) (registry.Game, error) {
	cfg, err := config.LoadRunner(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if preset := config.ParsePreset(opts.Difficulty); preset != "" {
		config.ApplyRunnerPreset(&cfg, preset)
	}

	engineOpts := []Option{WithHighScore(opts.HighScore)}
	if opts.Logger != nil {
		engineOpts = append(engineOpts, WithLogger(opts.Logger.With("game", GameID)))
	}
	return NewGame(cfg, engineOpts...)
}

func init() {
	registry.Register(GameID, "Obstacle Runner", newFromOptions)
}

var _ registry.Game = (*Game)(nil)
