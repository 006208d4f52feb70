package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/poi5en/termfolio/internal/core"
)

// TerminalKeyMap holds the terminal's bindings. Keys not bound here go
// to the text input.
type TerminalKeyMap struct {
	Submit     key.Binding
	Prev       key.Binding
	Next       key.Binding
	Complete   key.Binding
	Clear      key.Binding
	Fullscreen key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Quit       key.Binding
}

// DefaultTerminalKeyMap returns the standard terminal bindings.
func DefaultTerminalKeyMap() TerminalKeyMap {
	return TerminalKeyMap{
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
		Prev:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "history")),
		Next:       key.NewBinding(key.WithKeys("down")),
		Complete:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "complete")),
		Clear:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear line")),
		Fullscreen: key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "fullscreen")),
		PageUp:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup/pgdn", "scroll")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c", "ctrl+d"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k TerminalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Prev, k.Complete, k.Clear, k.Fullscreen, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k TerminalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Prev, k.Complete, k.Clear},
		{k.Fullscreen, k.PageUp, k.Quit},
	}
}

// GameKeyMap translates keys into game actions.
type GameKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// DefaultGameKeyMap returns arrow keys plus WASD.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "w")),
		Down:       key.NewBinding(key.WithKeys("down", "s")),
		Left:       key.NewBinding(key.WithKeys("left", "a")),
		Right:      key.NewBinding(key.WithKeys("right", "d")),
		Pause:      key.NewBinding(key.WithKeys("p", " ")),
		Restart:    key.NewBinding(key.WithKeys("r")),
		Back:       key.NewBinding(key.WithKeys("esc", "q")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c")),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s")),
	}
}

// Action maps a key to a game action, or core.ActionNone.
func (k GameKeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}
