package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/poi5en/termfolio/internal/platform/tui"
	"github.com/poi5en/termfolio/internal/storage"
	"github.com/poi5en/termfolio/internal/terminal"
)

var (
	flagScoresLimit       int
	flagScoresInteractive bool
	flagScoresReset       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show Snake high scores",
	Long: `Display the top Snake scores and a summary of all runs.

Examples:
  termfolio scores
  termfolio scores --limit 3
  termfolio scores -i          # Scrollable table
  termfolio scores --reset     # Delete every recorded run`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresReset, "reset", false, "Delete all Snake scores")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse scores in a full-screen table")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fatal("opening scores database: %v", err)
	}
	defer store.Close()

	gameID := terminal.SnakeGameID
	if flagScoresReset {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: clearing scores: %v\n", err)
			return
		}
		fmt.Println("Snake scores cleared.")
		return
	}
	if flagScoresInteractive {
		w, h := screenSize()
		if err := tui.RunScoreboard(store, gameID, "Snake", w, h); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: retrieving scores: %v\n", err)
		return
	}

	fmt.Println("High Scores - Snake")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'termfolio snake' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-12s  %s\n", "Rank", "Score", "Player", "Date")
	fmt.Printf("  %-4s  %-10s  %-12s  %s\n", "----", "-----", "------", "----")
	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "anonymous"
		}
		fmt.Printf("  %-4d  %-10d  %-12s  %s\n", i+1, entry.Score, player, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
}
