package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds settings read from the process environment. They seed the CLI
// flag defaults; explicit flags still win.
type Env struct {
	ConfigPath string `env:"RUNNER_CONFIG"`
	Difficulty string `env:"RUNNER_DIFFICULTY"`
	Seed       int64  `env:"RUNNER_SEED" envDefault:"0"`
	FPS        int    `env:"RUNNER_FPS" envDefault:"20"`
	DBPath     string `env:"RUNNER_DB" envDefault:"~/.arcade/runner.db"`
}

// LoadEnv parses Env from environment variables.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return e, fmt.Errorf("config: parse env: %w", err)
	}
	return e, nil
}
