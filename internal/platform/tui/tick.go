// Package tui provides the Bubble Tea integration for the doodle platform.
// It handles the terminal UI loop, input mapping, rendering, and the
// fixed-rate frame driver the simulation core is stepped by.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate. One tick is one simulation frame.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
