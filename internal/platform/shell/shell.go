// Package shell runs the terminal interpreter as a line-mode REPL on top
// of readline, for hosts where a full-screen TUI is unwanted.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/chzyer/readline"

	"github.com/poi5en/termfolio/internal/terminal"
)

// Renderer turns a log line into printable text.
type Renderer func(l terminal.Line) string

// Options configures a Shell.
type Options struct {
	Interpreter *terminal.Interpreter
	Prompt      string

	// Stdin and Stdout default to the process streams.
	Stdin  io.ReadCloser
	Stdout io.Writer

	// Render formats lines; nil prints plain text.
	Render Renderer
	// Open handles link commands; nil prints the URL.
	Open func(url string) error
	// Play runs a game to completion and returns the final score; nil
	// disables games.
	Play func(gameID string) (int, error)

	Logger *log.Logger
}

// Shell is a readline front end for one interpreter.
type Shell struct {
	interp *terminal.Interpreter
	prompt string
	out    io.Writer
	render Renderer
	styled bool
	open   func(string) error
	play   func(string) (int, error)
	logger *log.Logger

	rl *readline.Instance
}

func newShell(opts Options) *Shell {
	s := &Shell{
		interp: opts.Interpreter,
		prompt: opts.Prompt,
		out:    opts.Stdout,
		render: opts.Render,
		styled: opts.Render != nil,
		open:   opts.Open,
		play:   opts.Play,
		logger: opts.Logger,
	}
	if s.prompt == "" {
		s.prompt = "$"
	}
	if s.render == nil {
		s.render = PlainRenderer(s.prompt)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	return s
}

// New creates a shell bound to a readline instance.
func New(opts Options) (*Shell, error) {
	if opts.Interpreter == nil {
		return nil, errors.New("shell: interpreter is required")
	}
	s := newShell(opts)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 s.prompt + " ",
		AutoComplete:           &completer{interp: s.interp},
		Listener:               &recallListener{interp: s.interp},
		HistoryLimit:           -1,
		DisableAutoSaveHistory: true,
		InterruptPrompt:        "^C",
		EOFPrompt:              "exit",
		Stdin:                  opts.Stdin,
		Stdout:                 opts.Stdout,
	})
	if err != nil {
		return nil, fmt.Errorf("shell: %w", err)
	}
	s.rl = rl
	s.out = rl.Stdout()
	return s, nil
}

// Close releases the terminal.
func (s *Shell) Close() error {
	if s.rl == nil {
		return nil
	}
	return s.rl.Close()
}

// Run prints the existing log and reads lines until EOF, an interrupt on
// an empty line, or ctx is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	if s.rl == nil {
		return errors.New("shell: not initialised, use New")
	}
	s.print(s.interp.Log())

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		line, err := s.rl.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			if strings.TrimSpace(line) == "" {
				return nil
			}
			s.interp.ClearInput()
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return fmt.Errorf("shell: read: %w", err)
		}

		s.Handle(line)
	}
}

// Handle submits one line, prints what it produced and carries out the
// host effects.
func (s *Shell) Handle(line string) {
	before := len(s.interp.Log())
	effects := s.interp.Submit(line)
	if after := s.interp.Log(); len(after) > before {
		s.print(after[before:])
	}

	for _, e := range effects {
		s.apply(e)
	}
}

func (s *Shell) apply(e terminal.Effect) {
	switch e.Kind {
	case terminal.EffectOpenExternal:
		if s.open == nil {
			s.info(e.Value)
			return
		}
		if err := s.open(e.Value); err != nil {
			s.logger.Warn("open link", "url", e.Value, "error", err)
			s.info("Could not open a browser. Visit " + e.Value)
		}

	case terminal.EffectEnterGame:
		if s.play == nil {
			s.info("Games are not available in this shell.")
			return
		}
		s.logger.Info("entering game", "game", e.Value)
		score, err := s.play(e.Value)
		if err != nil {
			s.logger.Error("game failed", "game", e.Value, "error", err)
			s.info(fmt.Sprintf("Could not start %s: %v", e.Value, err))
			return
		}
		before := len(s.interp.Log())
		s.interp.GameExited(score)
		s.print(s.interp.Log()[before:])

	case terminal.EffectClearLog:
		s.clearScreen()

	case terminal.EffectExitFullscreen:
		// Line mode is never full-screen.
	}
}

func (s *Shell) info(text string) {
	before := len(s.interp.Log())
	s.interp.AppendInfo(text)
	s.print(s.interp.Log()[before:])
}

func (s *Shell) print(lines []terminal.Line) {
	for _, l := range lines {
		fmt.Fprintln(s.out, s.render(l))
	}
}

// clearScreen only clears styled output; plain output may be a pipe.
func (s *Shell) clearScreen() {
	if s.styled {
		readline.ClearScreen(s.out)
	}
}
