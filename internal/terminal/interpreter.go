package terminal

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Interpreter is one terminal session. It is not safe for concurrent use;
// hosts serialise key events onto a single goroutine.
type Interpreter struct {
	table        *Table
	input        string
	history      []string
	historyIndex int // -1 when not browsing
	log          []Line
	color        string
	fullscreen   bool
	logger       *log.Logger
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithLogger routes dispatch diagnostics to logger.
func WithLogger(logger *log.Logger) Option {
	return func(in *Interpreter) {
		if logger != nil {
			in.logger = logger
		}
	}
}

// WithWelcome seeds the log with info lines.
func WithWelcome(lines ...string) Option {
	return func(in *Interpreter) {
		for _, l := range lines {
			in.log = append(in.log, infoLine(l))
		}
	}
}

// WithFullscreen sets the initial full-screen state.
func WithFullscreen(on bool) Option {
	return func(in *Interpreter) { in.fullscreen = on }
}

// New creates a session over table.
func New(table *Table, opts ...Option) *Interpreter {
	in := &Interpreter{
		table:        table,
		historyIndex: -1,
		logger:       log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Submit interprets one line. The input buffer and history cursor reset
// on every call; a line that is blank after trimming does nothing else.
// It returns the effects the host must carry out: opening links, entering
// a game and leaving full-screen. Log and color effects are applied here;
// ClearLog is still returned so hosts can clear their own screen.
func (in *Interpreter) Submit(line string) []Effect {
	in.input = ""
	in.historyIndex = -1

	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil
	}
	in.history = append(in.history, trimmed)

	fields := strings.Fields(trimmed)
	name := strings.ToLower(fields[0])

	cmd, err := in.table.Lookup(name)
	if err != nil {
		in.logger.Debug("unknown command", "name", name)
		in.log = append(in.log, commandLine(trimmed), in.failureLine(name, err))
		return nil
	}

	env := Env{
		Args:       fields[1:],
		Fullscreen: in.fullscreen,
		History:    in.History(),
		Commands:   in.table.Help(),
	}
	reply, err := in.run(cmd, env)
	in.logger.Debug("dispatch", "command", cmd.Name, "args", len(env.Args), "err", err)

	in.log = append(in.log, commandLine(trimmed))
	in.log = append(in.log, reply.Lines...)
	if err != nil {
		in.log = append(in.log, in.failureLine(cmd.Name, err))
	}

	return in.apply(reply.Effects)
}

// run calls the handler, turning a panic into an error.
func (in *Interpreter) run(cmd Command, env Env) (reply Reply, err error) {
	defer func() {
		if r := recover(); r != nil {
			in.logger.Error("command panicked", "command", cmd.Name, "panic", r)
			reply, err = Reply{}, fmt.Errorf("internal error: %v", r)
		}
	}()
	return cmd.Handler(env)
}

// apply performs interpreter-owned effects and returns the rest in order.
func (in *Interpreter) apply(effects []Effect) []Effect {
	var host []Effect
	for _, e := range effects {
		switch e.Kind {
		case EffectClearLog:
			in.log = nil
			host = append(host, e)
		case EffectSetColor:
			in.color = e.Value
		case EffectExitFullscreen:
			in.fullscreen = false
			host = append(host, e)
		default:
			host = append(host, e)
		}
	}
	return host
}

func (in *Interpreter) failureLine(name string, err error) Line {
	var ue *UsageError
	switch {
	case errors.As(err, &ue):
		return responseLine(ue.Hint)
	case errors.Is(err, ErrUnknownCommand):
		return errorLine(fmt.Sprintf("Command not found: %s. Type 'help' for list.", name))
	case errors.Is(err, ErrPermissionDenied):
		return errorLine("Permission denied: user is not in the sudoers file. This incident will be reported.")
	default:
		return errorLine(fmt.Sprintf("%s: %v", name, err))
	}
}

// Complete returns the single command name with partial as a prefix.
func (in *Interpreter) Complete(partial string) (string, bool) {
	return in.table.Complete(partial)
}

// CompleteInput replaces the buffer with its completion, if there is
// exactly one. It reports whether the buffer changed.
func (in *Interpreter) CompleteInput() bool {
	name, ok := in.table.Complete(in.input)
	if !ok {
		return false
	}
	in.input = name
	return true
}

// RecallPrevious moves the history cursor back and copies that entry
// into the buffer. From "not browsing" it jumps to the newest entry; it
// stops at the oldest.
func (in *Interpreter) RecallPrevious() {
	if len(in.history) == 0 {
		return
	}
	if in.historyIndex == -1 {
		in.historyIndex = len(in.history) - 1
	} else {
		in.historyIndex = max(0, in.historyIndex-1)
	}
	in.input = in.history[in.historyIndex]
}

// RecallNext moves the history cursor forward, stopping at the newest
// entry. It does nothing while not browsing.
func (in *Interpreter) RecallNext() {
	if in.historyIndex == -1 {
		return
	}
	in.historyIndex = min(len(in.history)-1, in.historyIndex+1)
	in.input = in.history[in.historyIndex]
}

// GameExited records the return from a game.
func (in *Interpreter) GameExited(score int) {
	in.log = append(in.log, infoLine(fmt.Sprintf("Game Over. Returned to terminal. Final score: %d", score)))
}

// AppendInfo adds an info line, for host notices such as a link that
// could not be opened.
func (in *Interpreter) AppendInfo(text string) {
	in.log = append(in.log, infoLine(text))
}

// SetInput replaces the buffer.
func (in *Interpreter) SetInput(s string) { in.input = s }

// Input returns the buffer.
func (in *Interpreter) Input() string { return in.input }

// ClearInput empties the buffer.
func (in *Interpreter) ClearInput() { in.input = "" }

// HistoryIndex returns the recall cursor, -1 when not browsing.
func (in *Interpreter) HistoryIndex() int { return in.historyIndex }

// History returns a copy of the submitted lines, oldest first.
func (in *Interpreter) History() []string {
	out := make([]string, len(in.history))
	copy(out, in.history)
	return out
}

// Log returns a copy of the output log.
func (in *Interpreter) Log() []Line {
	out := make([]Line, len(in.log))
	copy(out, in.log)
	return out
}

// Color returns the output color token set by the color command.
func (in *Interpreter) Color() string { return in.color }

// Fullscreen reports the full-screen state as last known.
func (in *Interpreter) Fullscreen() bool { return in.fullscreen }

// SetFullscreen records a full-screen change made by the host.
func (in *Interpreter) SetFullscreen(on bool) { in.fullscreen = on }

// Commands returns the help entries of the session's table.
func (in *Interpreter) Commands() []HelpEntry { return in.table.Help() }
