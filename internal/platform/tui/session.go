package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/poi5en/termfolio/internal/config"
	"github.com/poi5en/termfolio/internal/core"
	"github.com/poi5en/termfolio/internal/registry"
	"github.com/poi5en/termfolio/internal/storage"
	"github.com/poi5en/termfolio/internal/terminal"
)

// Options configures a session.
type Options struct {
	Config     config.Config
	Store      *storage.Store // nil disables score persistence
	Logger     *log.Logger
	Opener     Opener // nil prints links instead of opening them
	Player     string
	Seed       int64
	Fullscreen bool
	ScreenW    int
	ScreenH    int
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}

func (o Options) runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if o.ScreenW > 0 && o.ScreenH > 0 {
		cfg.ScreenW, cfg.ScreenH = o.ScreenW, o.ScreenH
	}
	cfg.Grid = o.Config.Snake.GridSize
	cfg.TickInterval = o.Config.Snake.TickInterval()
	cfg.Seed = o.Seed
	return cfg
}

// NewInterpreter builds the interpreter for one session.
func NewInterpreter(opts Options) *terminal.Interpreter {
	var board terminal.Scoreboard
	if opts.Store != nil {
		board = opts.Store
	}
	return terminal.New(
		terminal.DefaultTable(opts.Config.Profile, board),
		terminal.WithLogger(opts.logger()),
		terminal.WithWelcome(opts.Config.Terminal.Welcome...),
		terminal.WithFullscreen(opts.Fullscreen),
	)
}

// SessionModel is the top-level model: the terminal, with control handed
// to a game while one is running.
type SessionModel struct {
	opts     Options
	logger   *log.Logger
	config   core.RuntimeConfig
	term     TerminalModel
	game     *GameModel
	quitting bool
}

// NewSessionModel creates a session with a fresh interpreter.
func NewSessionModel(opts Options) SessionModel {
	logger := opts.logger()
	term := NewTerminalModel(NewInterpreter(opts), opts.Config.Terminal, opts.Opener, logger)
	return SessionModel{
		opts:   opts,
		logger: logger,
		config: opts.runtimeConfig(),
		term:   term,
	}
}

// Init initializes the terminal.
func (m SessionModel) Init() tea.Cmd {
	return m.term.Init()
}

// Update routes messages to whichever model owns control.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
		// The terminal keeps its layout current while hidden.
		next, _ := m.term.Update(wsm)
		m.term = next.(TerminalModel)
		if m.game == nil {
			return m, nil
		}
	}

	if enter, ok := msg.(EnterGameMsg); ok && m.game == nil {
		return m.enterGame(enter.GameID)
	}

	if m.game != nil {
		return m.updateGame(msg)
	}
	return m.updateTerminal(msg)
}

func (m SessionModel) updateTerminal(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.term.Update(msg)
	m.term = next.(TerminalModel)
	if m.term.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m SessionModel) enterGame(id string) (tea.Model, tea.Cmd) {
	if !registry.Exists(id) {
		m.logger.Warn("unknown game", "game", id)
		m.term.Interpreter().AppendInfo("That game is not installed.")
		m.term = m.term.Refresh()
		return m, nil
	}
	game, err := registry.Create(id)
	if err != nil {
		m.logger.Error("cannot start game", "game", id, "error", err)
		m.term.Interpreter().AppendInfo(fmt.Sprintf("Could not start %s: %v", id, err))
		m.term = m.term.Refresh()
		return m, nil
	}

	m.logger.Info("game started", "game", id, "player", m.opts.Player)
	gm := NewGameModel(game, m.opts.Store, m.config, m.opts.Player, false, m.logger)
	m.game = &gm

	cmds := []tea.Cmd{gm.Init()}
	if !m.term.Interpreter().Fullscreen() {
		cmds = append(cmds, tea.EnterAltScreen)
	}
	return m, tea.Batch(cmds...)
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	gm := next.(GameModel)
	m.game = &gm

	if gm.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if !gm.Exited() {
		return m, cmd
	}

	m.logger.Info("game ended", "game", gm.game.ID(), "player", m.opts.Player, "score", gm.Score())
	m.game = nil
	m.term.Interpreter().GameExited(gm.Score())
	m.term = m.term.Refresh()

	if !m.term.Interpreter().Fullscreen() {
		return m, tea.Batch(tea.ExitAltScreen, m.term.Init())
	}
	return m, m.term.Init()
}

// View renders the active model.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.game != nil {
		return m.game.View()
	}
	return m.term.View()
}

// InGame reports whether a game currently has control.
func (m SessionModel) InGame() bool { return m.game != nil }

// Terminal returns the terminal model.
func (m SessionModel) Terminal() TerminalModel { return m.term }

// Run starts a local terminal session.
func Run(opts Options) error {
	programOpts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if opts.Fullscreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	_, err := tea.NewProgram(NewSessionModel(opts), programOpts...).Run()
	return err
}

// RunGame plays a single game in its own program and returns the final
// score once the player leaves it.
func RunGame(id string, opts Options) (int, error) {
	game, err := registry.Create(id)
	if err != nil {
		return 0, err
	}
	model := NewGameModel(game, opts.Store, opts.runtimeConfig(), opts.Player, true, opts.logger())

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return 0, err
	}
	if gm, ok := final.(GameModel); ok {
		return gm.Score(), nil
	}
	return 0, nil
}
