// Package tui runs a game inside a Bubble Tea program: it owns the frame
// scheduler, maps keys to actions and paints the screen buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is one frame of the scheduler. Gen identifies the tick chain the
// frame belongs to; frames from an abandoned chain are dropped.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd schedules the next frame of chain gen at the given rate.
func tickCmd(tickRate, gen int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
