// Package runner implements a side-scrolling obstacle runner: a fixed-step
// jump physics, procedural obstacle spawning, AABB collision and
// score-driven difficulty. The Engine is renderer-agnostic and driven by an
// external tick loop; it owns no goroutines or timers.
package runner

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// Phase is the lifecycle state of a run.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Engine is one runner session. All state lives in the value; independent
// sessions use independent engines. An Engine is not safe for concurrent use.
type Engine struct {
	cfg     config.RunnerConfig
	physics Physics
	scaler  *config.DifficultyScaler
	spawner *Spawner
	rng     Source
	clock   Clock
	logger  *log.Logger

	player    Player
	obstacles []Obstacle
	score     int
	highScore int
	speed     float64
	night     bool
	phase     Phase
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithSource injects the random source used for spawning.
func WithSource(src Source) Option {
	return func(e *Engine) {
		e.rng = src
	}
}

// WithSeed uses a deterministic source seeded with seed.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = NewSeededSource(seed)
	}
}

// WithClock injects the clock that measures the jump cooldown.
func WithClock(c Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// WithLogger sets a logger for lifecycle debug records.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithHighScore starts the session with a previously achieved best score.
func WithHighScore(score int) Option {
	return func(e *Engine) {
		if score > 0 {
			e.highScore = score
		}
	}
}

// New creates an engine in the idle phase. It fails if cfg violates a
// construction invariant.
func New(cfg config.RunnerConfig, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}

	e := &Engine{
		cfg: cfg,
		physics: Physics{
			Gravity:       cfg.Physics.Gravity,
			JumpImpulse:   cfg.Physics.JumpImpulse,
			MaxJumpHeight: float64(cfg.Physics.MaxJumpHeight),
		},
		scaler: config.NewDifficultyScaler(cfg.Difficulty),
		clock:  SystemClock{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = NewSeededSource(time.Now().UnixNano())
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}

	e.spawner = NewSpawner(e.rng, cfg.Spawn.Rate, cfg.Field.Width)
	e.obstacles = make([]Obstacle, 0, 8)
	e.Reset()
	return e, nil
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() config.RunnerConfig {
	return e.cfg
}

// Phase returns the current lifecycle phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// StartOrPause starts a run from idle, pauses or resumes a running one, and
// starts over after a game over.
func (e *Engine) StartOrPause() {
	switch e.phase {
	case PhaseOver:
		e.Reset()
		e.phase = PhaseRunning
		e.logger.Debug("run restarted")
	case PhaseIdle:
		e.phase = PhaseRunning
		e.logger.Debug("run started")
	case PhaseRunning:
		e.phase = PhasePaused
		e.logger.Debug("run paused", "score", e.score)
	case PhasePaused:
		e.phase = PhaseRunning
		e.logger.Debug("run resumed", "score", e.score)
	}
}

// Reset returns to idle with all per-run state cleared. The session high
// score is kept.
func (e *Engine) Reset() {
	e.score = 0
	e.obstacles = e.obstacles[:0]
	e.player = Player{}
	e.speed = 1.0
	e.night = false
	e.phase = PhaseIdle
}

// RequestJump launches the player if it is grounded and the cooldown has
// elapsed since the last accepted jump. Otherwise it does nothing.
func (e *Engine) RequestJump() {
	if !e.player.Grounded() || e.player.Velocity != 0 {
		return
	}

	now := e.clock.Now()
	if !e.player.LastJump.IsZero() && now.Sub(e.player.LastJump) < e.cfg.Physics.JumpCooldown() {
		return
	}

	e.player.Velocity = e.physics.JumpImpulse
	e.player.LastJump = now
}

// Advance simulates one tick and returns the resulting snapshot. Outside
// the running phase it only returns the current snapshot.
//
// Callers must invoke Advance at most once per logical tick.
func (e *Engine) Advance() Snapshot {
	if e.phase != PhaseRunning {
		return e.Snapshot()
	}

	e.score++
	e.speed = e.scaler.SpeedMultiplier(e.score)
	if e.scaler.IsNightToggle(e.score) {
		e.night = !e.night
	}

	e.player = Step(e.player, e.physics)

	// Obstacles spawned this tick start moving on the next one.
	e.obstacles = advanceObstacles(e.obstacles, ScrollStep(e.cfg.Spawn.ObstacleSpeed, e.speed))
	if o, ok := e.spawner.Next(e.speed); ok {
		e.obstacles = append(e.obstacles, o)
	}

	if Collides(PlayerRect(e.player, e.cfg.Player), e.obstacles) {
		e.phase = PhaseOver
		if e.score > e.highScore {
			e.highScore = e.score
		}
		e.logger.Debug("run over", "score", e.score, "high_score", e.highScore)
	}

	return e.Snapshot()
}

// Reseed replaces the spawn source with a deterministic one for seed.
// The current run is left untouched; pair it with Reset to start fresh.
func (e *Engine) Reseed(seed int64) {
	e.rng = NewSeededSource(seed)
	e.spawner = NewSpawner(e.rng, e.cfg.Spawn.Rate, e.cfg.Field.Width)
}
