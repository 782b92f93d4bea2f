package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a run in the current terminal.

Controls:
  Space/Up   - Jump (also starts a run)
  P/Esc      - Start / pause / play again
  R          - Restart
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Sparse obstacles, gentle speed-up
  normal - Default config
  hard   - Dense obstacles, steep speed-up
  fixed  - No speed-up

Examples:
  runner play
  runner play --difficulty easy
  runner play --seed 42
  runner play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	if err := checkDifficulty(); err != nil {
		return err
	}
	logger, closer, err := newPlayLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run book, scores will not be kept", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	highScore := 0
	if store != nil {
		if hs, err := store.HighScore(runner.GameID); err == nil {
			highScore = hs
		}
	}

	game, err := registry.Create(runner.GameID, registry.Options{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		HighScore:  highScore,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	return tui.Run(game, store, cfg, currentUser(), logger)
}

func currentUser() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}
