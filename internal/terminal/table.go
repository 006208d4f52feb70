package terminal

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Env is what a handler sees of the session.
type Env struct {
	// Args are the whitespace-separated words after the command name.
	Args []string
	// Fullscreen reports whether the host is in full-screen mode.
	Fullscreen bool
	// History is a snapshot of submitted lines, including the current one.
	History []string
	// Commands lists the table in registration order.
	Commands []HelpEntry
}

// Reply is a handler's result: lines to append and effects to request.
type Reply struct {
	Lines   []Line
	Effects []Effect
}

// Handler computes a reply from a command's arguments.
// Returning a *UsageError or ErrPermissionDenied is reported as a single
// line; the session continues either way.
type Handler func(env Env) (Reply, error)

// Command binds a name to its handler and one-line description.
type Command struct {
	Name        string
	Description string
	Handler     Handler
}

// Table is the immutable command table. Lookup is case-insensitive;
// iteration follows registration order.
type Table struct {
	commands []Command
	index    map[string]int
}

// NewTable validates cmds and builds a table. Names must be non-empty,
// free of whitespace and unique ignoring case; every command needs a handler.
func NewTable(cmds ...Command) (*Table, error) {
	t := &Table{
		commands: make([]Command, 0, len(cmds)),
		index:    make(map[string]int, len(cmds)),
	}

	var errs []error
	for _, c := range cmds {
		key := strings.ToLower(c.Name)
		switch {
		case key == "":
			errs = append(errs, errors.New("terminal: command with empty name"))
			continue
		case strings.IndexFunc(key, unicode.IsSpace) >= 0:
			errs = append(errs, fmt.Errorf("terminal: command %q contains whitespace", c.Name))
			continue
		case c.Handler == nil:
			errs = append(errs, fmt.Errorf("terminal: command %q has no handler", c.Name))
			continue
		}
		if _, dup := t.index[key]; dup {
			errs = append(errs, fmt.Errorf("terminal: duplicate command %q", c.Name))
			continue
		}
		t.index[key] = len(t.commands)
		t.commands = append(t.commands, c)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return t, nil
}

// MustTable is NewTable for static tables; it panics on an invalid table.
func MustTable(cmds ...Command) *Table {
	t, err := NewTable(cmds...)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup finds a command by name, ignoring case.
func (t *Table) Lookup(name string) (Command, error) {
	i, ok := t.index[strings.ToLower(name)]
	if !ok {
		return Command{}, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	return t.commands[i], nil
}

// Len returns the number of commands.
func (t *Table) Len() int {
	return len(t.commands)
}

// Names returns command names in registration order.
func (t *Table) Names() []string {
	names := make([]string, len(t.commands))
	for i, c := range t.commands {
		names[i] = c.Name
	}
	return names
}

// Help returns one entry per command in registration order.
func (t *Table) Help() []HelpEntry {
	entries := make([]HelpEntry, len(t.commands))
	for i, c := range t.commands {
		entries[i] = HelpEntry{Name: c.Name, Description: c.Description}
	}
	return entries
}

// Complete returns the only command name starting with partial. It
// reports false when no name or more than one name matches.
func (t *Table) Complete(partial string) (string, bool) {
	prefix := strings.ToLower(partial)
	match := ""
	for _, c := range t.commands {
		if !strings.HasPrefix(strings.ToLower(c.Name), prefix) {
			continue
		}
		if match != "" {
			return "", false
		}
		match = c.Name
	}
	return match, match != ""
}
