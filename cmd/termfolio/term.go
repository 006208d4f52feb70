package main

import (
	"github.com/spf13/cobra"

	"github.com/poi5en/termfolio/internal/platform/tui"
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Start the full-screen terminal",
	Long: `Start the interactive terminal.

Controls:
  Enter       - Run the command line
  Up/Down     - Browse history
  Tab         - Complete the command name
  Esc         - Clear the line
  PgUp/PgDn   - Scroll the output
  Ctrl+C      - Quit`,
	Run: runTerm,
}

func init() {
	termCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Use the alternate screen")
}

func runTerm(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()
	logger, closeLog := fileLogger(flagDebug)
	defer closeLog()

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	opts := sessionOptions(cfg, store, logger)
	opts.Fullscreen = flagFullscreen

	if err := tui.Run(opts); err != nil {
		logger.Error("terminal exited", "error", err)
		fatal("%v", err)
	}
}
