package shell

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/poi5en/termfolio/internal/terminal"
)

// PlainRenderer prints lines without escape codes, for pipes and dumb
// terminals.
func PlainRenderer(prompt string) Renderer {
	return func(l terminal.Line) string {
		switch l.Kind {
		case terminal.KindCommand:
			return prompt + " " + l.Text
		case terminal.KindImage:
			return "[image] " + l.Text
		case terminal.KindHelpTable:
			return HelpTable(l.Help)
		default:
			return l.Text
		}
	}
}

// HelpTable lays out help entries in two aligned columns.
func HelpTable(entries []terminal.HelpEntry) string {
	width := 0
	for _, e := range entries {
		width = max(width, runewidth.StringWidth(e.Name))
	}

	rows := make([]string, len(entries))
	for i, e := range entries {
		rows[i] = runewidth.FillRight(e.Name, width) + "  " + e.Description
	}
	return strings.Join(rows, "\n")
}
