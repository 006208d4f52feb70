package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/poi5en/termfolio/internal/platform/shell"
	"github.com/poi5en/termfolio/internal/platform/tui"
	"github.com/poi5en/termfolio/internal/terminal"
)

var flagPlain bool

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the line-mode shell",
	Long: `Run the terminal as a plain read-eval-print loop. Output stays in
your scrollback; 'snake' opens the game full-screen and returns here.

Output is colored when stdout is a terminal; use --plain to disable.`,
	Run: runShell,
}

func init() {
	shellCmd.Flags().BoolVar(&flagPlain, "plain", false, "Disable colors")
}

func runShell(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()
	logger, closeLog := fileLogger(flagDebug)
	defer closeLog()

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	opts := sessionOptions(cfg, store, logger)
	interp := tui.NewInterpreter(opts)
	prompt := cfg.Terminal.Prompt

	var render shell.Renderer
	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		render = func(l terminal.Line) string {
			return tui.RenderLine(l, prompt, interp.Color(), 0)
		}
	}

	sh, err := shell.New(shell.Options{
		Interpreter: interp,
		Prompt:      prompt,
		Render:      render,
		Open:        opts.Opener.Open,
		Play: func(id string) (int, error) {
			gameOpts := opts
			gameOpts.ScreenW, gameOpts.ScreenH = screenSize()
			return tui.RunGame(id, gameOpts)
		},
		Logger: logger,
	})
	if err != nil {
		fatal("%v", err)
	}
	defer sh.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := sh.Run(ctx); err != nil {
		fatal("%v", err)
	}
}
