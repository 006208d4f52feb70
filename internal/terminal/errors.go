package terminal

import "errors"

var (
	// ErrUnknownCommand is returned when a name is not in the command table.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrPermissionDenied is returned by commands the visitor may never run.
	ErrPermissionDenied = errors.New("permission denied")
)

// UsageError reports a missing or malformed argument. Hint is shown to
// the user as a plain response line.
type UsageError struct {
	Hint string
}

func (e *UsageError) Error() string {
	return e.Hint
}

// usage returns a *UsageError with the given hint.
func usage(hint string) error {
	return &UsageError{Hint: hint}
}
