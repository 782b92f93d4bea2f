// runner is an endless obstacle runner for the terminal.
//
// Usage:
//
//	runner list              - List available games
//	runner play              - Play in this terminal
//	runner simulate          - Run a headless, seeded simulation
//	runner scores            - Show the run book
//	runner serve             - Start SSH server for remote play
//
// Global flags (defaults may come from RUNNER_* environment variables):
//
//	--fps <rate>            - Set tick rate (default: 20)
//	--seed <value>          - Set RNG seed for reproducible runs
//	--db <path>             - Set database path (default: ~/.arcade/runner.db)
//	--config <path>         - Custom runner YAML
//	--difficulty <preset>   - easy, normal, hard, fixed
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Obstacle Runner - jump the cacti, duck the birds",
	Long: `Obstacle Runner is a terminal side-scroller. Jump over cacti, stay
under the birds and survive as the world speeds up.

Available commands:
  list      - Show all available games
  play      - Play in this terminal
  simulate  - Headless seeded run with an autopilot
  scores    - View the run book
  serve     - Start SSH server for remote play

Examples:
  runner play
  runner play --difficulty hard
  runner simulate --seed 42
  runner scores --plain
  runner serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	env, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", env.FPS, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", env.Seed, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", env.DBPath, "Path to the run book database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", env.ConfigPath, "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", env.Difficulty, "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger returns the CLI logger. Debug records appear with --verbose.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// logFileName is where play writes its log; stderr belongs to the alt-screen.
const logFileName = "runner.log"

// newPlayLogger returns the logger for interactive play. With --verbose it
// appends debug records to ~/.arcade/runner.log, otherwise it discards them.
func newPlayLogger() (*log.Logger, io.Closer, error) {
	if !flagVerbose {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".arcade")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	f, err := os.OpenFile(filepath.Join(dir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
		Level:           log.DebugLevel,
	})
	return logger, f, nil
}

// loadRunnerConfig resolves the runner config from the global flags and
// rejects configs the engine would refuse.
func loadRunnerConfig() (config.RunnerConfig, error) {
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := checkDifficulty(); err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		config.ApplyRunnerPreset(&cfg, config.ParsePreset(flagDifficulty))
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// checkDifficulty rejects unknown preset names before any game is created.
func checkDifficulty() error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	return nil
}
