// ABOUTME: keycast blends every overlay colour over a fixed black base, never the real terminal background
// ABOUTME: Declares that dark base to lipgloss before bubbletea starts; import with _ ahead of bubbletea

package termfix

import "github.com/charmbracelet/lipgloss"

func init() {
	// The overlay blends every colour over a black base, so the real
	// terminal background is never needed. Setting it up front skips the
	// OSC 10/11 query whose late reply would otherwise arrive as key input.
	//
	// This package must not import bubbletea, directly or transitively.
	lipgloss.SetHasDarkBackground(true)
}
