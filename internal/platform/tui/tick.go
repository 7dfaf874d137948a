// Package tui provides the Bubble Tea host for the maze games.
// It handles the terminal UI loop, key mapping, and frame scheduling.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent on every display refresh.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends a frame message after one
// refresh interval. The simulation rate is decided by the loop driver, not
// by this rate.
func frameCmd(refreshRate int) tea.Cmd {
	if refreshRate <= 0 {
		refreshRate = 60
	}
	interval := time.Second / time.Duration(refreshRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
