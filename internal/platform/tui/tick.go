// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// advanceTicks converts elapsed wall time into whole simulation steps.
// Deltas are clamped to two steps so a stalled terminal cannot burst the
// game forward, and up to a millisecond is borrowed so a step due right
// after the frame runs in it instead of a frame late.
func advanceTicks(accum, delta, step time.Duration) (steps int, rem time.Duration) {
	if step <= 0 {
		return 0, accum
	}
	if delta > 2*step {
		delta = 2 * step
	}
	accum += delta
	for accum > step-time.Millisecond {
		steps++
		accum -= step
	}
	return steps, accum
}
