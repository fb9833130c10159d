// ABOUTME: Entry point for the Bubble Tea overlay program
// ABOUTME: Runs full-screen with mouse and focus reporting until exit or cancellation

package ui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the overlay program and blocks until the user exits, ctx is
// cancelled or the event source fails. Only the latter is reported as an
// error.
func Run(ctx context.Context, deps Deps) error {
	p := tea.NewProgram(
		New(deps),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("bubble tea: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
