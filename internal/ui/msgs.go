// ABOUTME: Bubble Tea message types driving the overlay program
// ABOUTME: Frame ticks and the capture-stopped notification

package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg fires once per frame interval.
type tickMsg time.Time

// CaptureStoppedMsg reports that the event producer went away. A nil or
// overlay.ErrQueueClosed Err means a clean shutdown.
type CaptureStoppedMsg struct{ Err error }

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
