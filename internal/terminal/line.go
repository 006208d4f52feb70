// Package terminal implements the portfolio command interpreter: an input
// buffer with history recall and tab completion, a static command table,
// and an append-only output log. It has no UI dependencies; hosts render
// the log and carry out the effects returned by Submit.
package terminal

import "fmt"

// Kind classifies an output line for rendering.
type Kind int

const (
	KindCommand Kind = iota
	KindResponse
	KindError
	KindInfo
	KindImage
	KindHelpTable
)

var kindNames = [...]string{"command", "response", "error", "info", "image", "help"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// HelpEntry is one row of the help table.
type HelpEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Line is one entry of the output log. Text holds the payload for every
// kind except KindHelpTable, whose rows are in Help. For KindImage the
// text is the image URL.
type Line struct {
	Kind Kind        `json:"kind"`
	Text string      `json:"text,omitempty"`
	Help []HelpEntry `json:"help,omitempty"`
}

func commandLine(s string) Line  { return Line{Kind: KindCommand, Text: s} }
func responseLine(s string) Line { return Line{Kind: KindResponse, Text: s} }
func errorLine(s string) Line    { return Line{Kind: KindError, Text: s} }
func infoLine(s string) Line     { return Line{Kind: KindInfo, Text: s} }
func imageLine(url string) Line  { return Line{Kind: KindImage, Text: url} }

// EffectKind names a side effect a command asks of its host.
type EffectKind int

const (
	// EffectOpenExternal asks the host to open Value (a URL).
	EffectOpenExternal EffectKind = iota
	// EffectEnterGame hands control to the game named by Value.
	EffectEnterGame
	// EffectExitFullscreen asks the host to leave full-screen mode.
	EffectExitFullscreen
	// EffectClearLog empties the output log. Applied by the interpreter and
	// passed on to the host.
	EffectClearLog
	// EffectSetColor sets the output color token to Value. Applied by the interpreter.
	EffectSetColor
)

var effectNames = [...]string{"open_external", "enter_game", "exit_fullscreen", "clear_log", "set_color"}

func (k EffectKind) String() string {
	if k < 0 || int(k) >= len(effectNames) {
		return fmt.Sprintf("effect(%d)", int(k))
	}
	return effectNames[k]
}

// MarshalText encodes the effect kind by name.
func (k EffectKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Effect is a side-effect request produced by a command handler.
type Effect struct {
	Kind  EffectKind `json:"kind"`
	Value string     `json:"value,omitempty"`
}

// OpenExternal requests that url be opened outside the terminal.
func OpenExternal(url string) Effect { return Effect{Kind: EffectOpenExternal, Value: url} }

// EnterGame requests a switch to the game with the given registry ID.
func EnterGame(id string) Effect { return Effect{Kind: EffectEnterGame, Value: id} }

// ExitFullscreen requests the host leave full-screen mode.
func ExitFullscreen() Effect { return Effect{Kind: EffectExitFullscreen} }

// ClearLog requests the output log be emptied.
func ClearLog() Effect { return Effect{Kind: EffectClearLog} }

// SetColor requests the output color token change to value.
func SetColor(value string) Effect { return Effect{Kind: EffectSetColor, Value: value} }
