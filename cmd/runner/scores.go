package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run book",
	Long: `Display the best recorded runs with their seeds, plus aggregate stats.
Any seed can be replayed with 'runner simulate --seed <seed>' or
'runner play --seed <seed>'.

Examples:
  runner scores
  runner scores --plain --limit 5
  runner scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the table instead of opening the interactive view")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print with --plain")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(runner.GameID); err != nil {
			return err
		}
		fmt.Println("Run book cleared.")
		return nil
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			width, height = 80, 24
		}
		return tui.RunScoreboard(store, runner.GameID, "Obstacle Runner", width, height)
	}

	return printScores(store)
}

func printScores(store *storage.Store) error {
	stats, err := store.Stats(runner.GameID)
	if err != nil {
		return err
	}
	runs, err := store.TopRuns(runner.GameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Obstacle Runner")
	fmt.Println(tui.FormatStats(stats))
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("Play 'runner play' to set the first high score!")
		return nil
	}

	fmt.Println(tui.NewScoreTable(runs, len(runs)+1).View())
	return nil
}
