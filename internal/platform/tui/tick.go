// Package tui runs termfolio on Bubble Tea: the terminal model, the game
// model, the session that switches between them, and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg advances the game run identified by Run.
type TickMsg struct {
	Run  uint64
	Time time.Time
}

var runSeq atomic.Uint64

// ticker schedules the repeating tick for one game run. A stopped or
// replaced ticker does not own later TickMsgs, so an old run's ticks are
// dropped instead of rescheduled.
type ticker struct {
	run      uint64
	interval time.Duration
}

// newTicker starts a new run generation.
func newTicker(interval time.Duration) ticker {
	return ticker{run: runSeq.Add(1), interval: interval}
}

// cmd schedules the next tick, or nothing if the ticker is stopped.
func (t ticker) cmd() tea.Cmd {
	if t.run == 0 {
		return nil
	}
	run := t.run
	return tea.Tick(t.interval, func(now time.Time) tea.Msg {
		return TickMsg{Run: run, Time: now}
	})
}

// owns reports whether msg belongs to this ticker's run.
func (t ticker) owns(msg TickMsg) bool {
	return t.run != 0 && msg.Run == t.run
}

// stopped returns a ticker that owns no ticks.
func (t ticker) stopped() ticker {
	t.run = 0
	return t
}
