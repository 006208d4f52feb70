package tui

import (
	"io"

	"github.com/pkg/browser"
)

// Opener opens external resources requested by link commands.
type Opener interface {
	Open(url string) error
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(url string) error

// Open calls f(url).
func (f OpenerFunc) Open(url string) error { return f(url) }

// BrowserOpener opens URLs in the local default browser.
type BrowserOpener struct{}

// NewBrowserOpener silences the helper process output, which would
// otherwise be written over the TUI.
func NewBrowserOpener() BrowserOpener {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return BrowserOpener{}
}

// Open implements Opener.
func (BrowserOpener) Open(url string) error {
	return browser.OpenURL(url)
}
