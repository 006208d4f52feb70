package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/poi5en/termfolio/internal/platform/tui"
	"github.com/poi5en/termfolio/internal/terminal"
)

var snakeCmd = &cobra.Command{
	Use:   "snake",
	Short: "Play Snake",
	Long: `Play Snake without the terminal around it.

Controls:
  Arrows/WASD  - Turn
  P/Space      - Pause
  R            - Restart (after game over)
  Esc/Q        - Quit`,
	Run: runSnake,
}

func runSnake(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()
	logger, closeLog := fileLogger(flagDebug)
	defer closeLog()

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	score, err := tui.RunGame(terminal.SnakeGameID, sessionOptions(cfg, store, logger))
	if err != nil {
		fatal("%v", err)
	}
	fmt.Printf("Final score: %d\n", score)
}
