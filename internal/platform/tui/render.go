package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/poi5en/termfolio/internal/core"
	"github.com/poi5en/termfolio/internal/terminal"
)

const (
	accent = lipgloss.Color("#915EFF")
	pink   = lipgloss.Color("#F472B6")
	gray   = lipgloss.Color("245")
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorAccent:      lipgloss.NewStyle().Foreground(accent),
	core.ColorPink:        lipgloss.NewStyle().Foreground(pink),
	core.ColorGray:        lipgloss.NewStyle().Foreground(gray),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
}

var (
	titleStyle    = lipgloss.NewStyle().Foreground(gray).Background(lipgloss.Color("235")).Padding(0, 1)
	bannerStyle   = lipgloss.NewStyle().Foreground(accent).Bold(true)
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	commandStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	responseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	infoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	imageStyle    = lipgloss.NewStyle().Foreground(pink).Underline(true)
	helpNameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).PaddingRight(2)
	helpDescStyle = lipgloss.NewStyle().Foreground(gray)
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// namedColors lets the color command accept plain names as well as
// anything lipgloss.Color understands (ANSI numbers, hex).
var namedColors = map[string]string{
	"black": "0", "red": "9", "green": "10", "yellow": "11", "blue": "12",
	"magenta": "13", "cyan": "14", "white": "15", "gray": "245", "grey": "245",
	"purple": "#915EFF", "pink": "#F472B6", "orange": "208",
}

// textColor resolves a color token; empty means the default.
func textColor(token string) (lipgloss.TerminalColor, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return nil, false
	}
	if c, ok := namedColors[token]; ok {
		return lipgloss.Color(c), true
	}
	return lipgloss.Color(token), true
}

// RenderLine styles one log line for a terminal width.
func RenderLine(l terminal.Line, prompt, color string, width int) string {
	wrap := func(s lipgloss.Style) lipgloss.Style {
		if width > 0 {
			return s.Width(width)
		}
		return s
	}

	switch l.Kind {
	case terminal.KindCommand:
		return promptStyle.Render(prompt) + " " + commandStyle.Render(l.Text)
	case terminal.KindResponse:
		style := responseStyle
		if c, ok := textColor(color); ok {
			style = style.Foreground(c)
		}
		return wrap(style).Render(l.Text)
	case terminal.KindError:
		return wrap(errorStyle).Render(l.Text)
	case terminal.KindInfo:
		return wrap(infoStyle).Render(l.Text)
	case terminal.KindImage:
		return imageStyle.Render("[image] " + l.Text)
	case terminal.KindHelpTable:
		return renderHelpTable(l.Help)
	default:
		return l.Text
	}
}

// RenderLog renders the whole log, one entry per line.
func RenderLog(lines []terminal.Line, prompt, color string, width int) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = RenderLine(l, prompt, color, width)
	}
	return strings.Join(out, "\n")
}

func renderHelpTable(entries []terminal.HelpEntry) string {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{e.Name, e.Description}
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		Rows(rows...).
		StyleFunc(func(_, col int) lipgloss.Style {
			if col == 0 {
				return helpNameStyle
			}
			return helpDescStyle
		})
	return t.Render()
}
