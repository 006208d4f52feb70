package shell

import (
	"strings"

	"github.com/chzyer/readline"

	"github.com/poi5en/termfolio/internal/terminal"
)

// completer completes the command word through the interpreter, so the
// shell and the TUI agree on the rules: one match or nothing.
type completer struct {
	interp *terminal.Interpreter
}

// Do implements readline.AutoCompleter. Only the first word completes.
func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	word := string(line[:pos])
	if word == "" || strings.ContainsAny(word, " \t") {
		return nil, 0
	}
	name, ok := c.interp.Complete(word)
	if !ok {
		return nil, 0
	}
	suffix := []rune(name)[len([]rune(word)):]
	return [][]rune{append(suffix, ' ')}, len([]rune(word))
}

// recallListener routes Up/Down to the interpreter's history cursor and
// mirrors typed text into its input buffer.
type recallListener struct {
	interp *terminal.Interpreter
}

// OnChange implements readline.Listener.
func (l *recallListener) OnChange(line []rune, pos int, key rune) ([]rune, int, bool) {
	switch key {
	case readline.CharPrev:
		l.interp.RecallPrevious()
	case readline.CharNext:
		l.interp.RecallNext()
	case readline.CharEnter, readline.CharCtrlJ:
		return nil, 0, false
	default:
		l.interp.SetInput(string(line))
		return nil, 0, false
	}
	recalled := []rune(l.interp.Input())
	return recalled, len(recalled), true
}

var _ readline.AutoCompleter = (*completer)(nil)
var _ readline.Listener = (*recallListener)(nil)
