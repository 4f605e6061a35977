// Package tui provides the Bubble Tea integration for the viewer.
// It handles the terminal UI loop, input mapping, and frame rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per rendered frame.
type FrameMsg time.Time

// frameInterval returns the target time between frames.
func frameInterval(frameRate int) time.Duration {
	if frameRate <= 0 {
		frameRate = 60
	}
	return time.Second / time.Duration(frameRate)
}

// frameCmd schedules the next frame so that frames start one interval
// apart. Time already spent since frameStart is deducted from the wait.
func frameCmd(frameStart time.Time, interval time.Duration) tea.Cmd {
	wait := interval - time.Since(frameStart)
	if wait < 0 {
		wait = 0
	}
	return tea.Tick(wait, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
