package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/poi5en/termfolio/internal/config"
	"github.com/poi5en/termfolio/internal/terminal"
)

// EnterGameMsg asks the session to hand control to a game.
type EnterGameMsg struct {
	GameID string
}

// openedMsg reports the outcome of an OpenExternal effect.
type openedMsg struct {
	url string
	err error
}

// TerminalModel is the interactive terminal: a scrollback of the
// interpreter's log above a single-line input.
type TerminalModel struct {
	interp   *terminal.Interpreter
	settings config.Terminal
	opener   Opener
	logger   *log.Logger
	keys     TerminalKeyMap

	input    textinput.Model
	viewport viewport.Model
	help     help.Model

	width    int
	height   int
	quitting bool
}

// NewTerminalModel wraps interp. A nil opener makes link commands print
// their URL instead of opening it, which is what remote sessions need.
func NewTerminalModel(interp *terminal.Interpreter, settings config.Terminal, opener Opener, logger *log.Logger) TerminalModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "type 'help' to get started"
	ti.CharLimit = 512
	ti.Focus()

	vp := viewport.New(80, 20)
	vp.KeyMap = viewport.KeyMap{
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
	}

	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := TerminalModel{
		interp:   interp,
		settings: settings,
		opener:   opener,
		logger:   logger,
		keys:     DefaultTerminalKeyMap(),
		input:    ti,
		viewport: vp,
		help:     help.New(),
		width:    80,
		height:   24,
	}
	return m.layout()
}

// Init starts the cursor blinking.
func (m TerminalModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles keys, resizes and effect results.
func (m TerminalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m.layout(), nil

	case openedMsg:
		if msg.err != nil {
			m.logger.Warn("open failed", "url", msg.url, "error", msg.err)
			m.interp.AppendInfo(fmt.Sprintf("Could not open a browser. Visit %s", msg.url))
			m = m.refresh()
		}
		return m, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m TerminalModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		return m.submit()

	case key.Matches(msg, m.keys.Prev):
		m.interp.SetInput(m.input.Value())
		m.interp.RecallPrevious()
		return m.syncInput(), nil

	case key.Matches(msg, m.keys.Next):
		m.interp.SetInput(m.input.Value())
		m.interp.RecallNext()
		return m.syncInput(), nil

	case key.Matches(msg, m.keys.Complete):
		m.interp.SetInput(m.input.Value())
		m.interp.CompleteInput()
		return m.syncInput(), nil

	case key.Matches(msg, m.keys.Clear):
		m.interp.ClearInput()
		return m.syncInput(), nil

	case key.Matches(msg, m.keys.Fullscreen):
		on := !m.interp.Fullscreen()
		m.interp.SetFullscreen(on)
		if on {
			return m, tea.EnterAltScreen
		}
		return m, tea.ExitAltScreen

	case key.Matches(msg, m.keys.PageUp, m.keys.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.interp.SetInput(m.input.Value())
	return m, cmd
}

// submit runs the buffered line and turns host effects into commands.
func (m TerminalModel) submit() (tea.Model, tea.Cmd) {
	effects := m.interp.Submit(m.input.Value())
	m.input.Reset()

	var cmds []tea.Cmd
	for _, e := range effects {
		switch e.Kind {
		case terminal.EffectOpenExternal:
			cmds = append(cmds, m.open(e.Value))
		case terminal.EffectEnterGame:
			id := e.Value
			cmds = append(cmds, func() tea.Msg { return EnterGameMsg{GameID: id} })
		case terminal.EffectExitFullscreen:
			cmds = append(cmds, tea.ExitAltScreen)
		}
	}

	return m.refresh(), tea.Batch(cmds...)
}

func (m *TerminalModel) open(url string) tea.Cmd {
	if m.opener == nil {
		m.interp.AppendInfo(url)
		return nil
	}
	opener := m.opener
	return func() tea.Msg {
		return openedMsg{url: url, err: opener.Open(url)}
	}
}

func (m TerminalModel) syncInput() TerminalModel {
	m.input.SetValue(m.interp.Input())
	m.input.CursorEnd()
	return m
}

// layout sizes the viewport to the space left by the header and footer.
func (m TerminalModel) layout() TerminalModel {
	m.help.Width = m.width
	m.input.Width = max(10, m.width-lipgloss.Width(m.settings.Prompt)-2)

	chrome := lipgloss.Height(m.headerView()) + 2 // input and help lines
	m.viewport.Width = m.width
	m.viewport.Height = max(1, m.height-chrome)
	return m.refresh()
}

// refresh re-renders the log into the viewport and scrolls to the end.
func (m TerminalModel) refresh() TerminalModel {
	m.viewport.SetContent(RenderLog(m.interp.Log(), m.settings.Prompt, m.interp.Color(), m.width))
	m.viewport.GotoBottom()
	return m
}

// Refresh is called by the session after it appends to the log.
func (m TerminalModel) Refresh() TerminalModel {
	return m.refresh()
}

func (m TerminalModel) headerView() string {
	title := m.settings.Title
	if title == "" {
		title = "termfolio"
	}
	header := titleStyle.Width(m.width).Render(title)

	banner := strings.Trim(m.settings.Banner, "\n")
	if banner != "" && lipgloss.Width(banner) <= m.width && lipgloss.Height(banner)+8 <= m.height {
		header += "\n" + bannerStyle.Render(banner)
	}
	return header
}

// View renders header, scrollback, prompt and key help.
func (m TerminalModel) View() string {
	if m.quitting {
		return ""
	}
	prompt := promptStyle.Render(m.settings.Prompt) + " " + m.input.View()
	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		m.viewport.View(),
		prompt,
		m.help.View(m.keys),
	)
}

// Interpreter returns the session's interpreter.
func (m TerminalModel) Interpreter() *terminal.Interpreter { return m.interp }

// IsQuitting reports whether the user asked to quit.
func (m TerminalModel) IsQuitting() bool { return m.quitting }
