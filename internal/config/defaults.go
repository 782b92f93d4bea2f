package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Field: FieldConfig{
			Width:  40,
			Height: 8,
		},
		Physics: PhysicsConfig{
			Gravity:        1.2,
			JumpImpulse:    12,
			MaxJumpHeight:  6,
			JumpCooldownMs: 100,
		},
		Player: PlayerConfig{
			X:      5,
			Width:  2,
			Height: 2,
		},
		Spawn: SpawnConfig{
			Rate:          40,
			ObstacleSpeed: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:        true,
			SpeedStep:      300,
			SpeedIncrement: 0.2,
			NightInterval:  1000,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
