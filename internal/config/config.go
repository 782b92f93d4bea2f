// Package config provides YAML-based runner configuration loading,
// difficulty presets and the difficulty scaler.
package config

import "time"

// RunnerConfig contains all configuration for the obstacle runner.
// Values are fixed at engine construction.
type RunnerConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the visible play field in character-grid units.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PhysicsConfig defines the jump arc.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`          // Velocity lost per tick while airborne
	JumpImpulse    float64 `yaml:"jump_impulse"`     // Initial upward velocity
	MaxJumpHeight  int     `yaml:"max_jump_height"`  // Hard ceiling for the height offset
	JumpCooldownMs int     `yaml:"jump_cooldown_ms"` // Minimum wall-clock gap between jumps
}

// JumpCooldown returns the cooldown as a duration.
func (p PhysicsConfig) JumpCooldown() time.Duration {
	return time.Duration(p.JumpCooldownMs) * time.Millisecond
}

// PlayerConfig defines the player's fixed bounding box.
type PlayerConfig struct {
	X      int `yaml:"x"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpawnConfig defines obstacle cadence and scroll speed.
type SpawnConfig struct {
	Rate          int `yaml:"rate"`           // Base spawn rate; one spawn per Rate ticks on average at 1.0x
	ObstacleSpeed int `yaml:"obstacle_speed"` // Cells per tick at 1.0x
}

// DifficultyConfig defines speed steps and the day/night cycle.
type DifficultyConfig struct {
	Enabled        bool    `yaml:"enabled"`         // false pins the speed multiplier at 1.0
	SpeedStep      int     `yaml:"speed_step"`      // Score ticks per speed step
	SpeedIncrement float64 `yaml:"speed_increment"` // Multiplier added per step
	NightInterval  int     `yaml:"night_interval"`  // Score ticks between day/night toggles
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown or empty input yields
// the empty preset, which leaves the loaded config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Spawn.Rate = 60
		cfg.Difficulty.SpeedIncrement = 0.1
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Spawn.Rate = 25
		cfg.Difficulty.SpeedIncrement = 0.3
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	}
}
