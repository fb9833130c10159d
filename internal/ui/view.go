// ABOUTME: Frame rendering: keycap row laid out right-to-left inside the overlay panel
// ABOUTME: Oldest keycaps that do not fit are dropped; long labels are truncated

package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/mauromedda/keycast/internal/overlay"
)

const (
	keycapGap = 1
	ellipsis  = "…"
)

// keycapPadding maps the press-in scale onto horizontal padding cells.
func keycapPadding(scale float64) int {
	return 1 + int(math.Round((scale-1)*10))
}

// keycapLabel formats the entry text, including the repeat badge.
func keycapLabel(r overlay.Renderable) string {
	if r.Count > 1 {
		return fmt.Sprintf("%s ×%d", r.Label, r.Count)
	}
	return r.Label
}

func fitLabel(label string, cells int) string {
	if cells < 1 {
		cells = 1
	}
	if uniseg.StringWidth(label) <= cells {
		return label
	}
	return runewidth.Truncate(label, cells, ellipsis)
}

func renderKeycap(r overlay.Renderable, ss surfaceStyles, maxWidth int) string {
	pad := keycapPadding(r.Scale)
	label := fitLabel(keycapLabel(r), maxWidth-2-2*pad)
	return ss.keycap(r.Opacity, pad).Render(label)
}

// layoutRow joins keycaps newest-right. Walking from the newest entry, it
// keeps as many as fit in width and drops the older remainder.
func layoutRow(caps []string, width int, bg lipgloss.Color) string {
	used := 0
	start := len(caps)
	for i := len(caps) - 1; i >= 0; i-- {
		w := lipgloss.Width(caps[i])
		if start < len(caps) {
			w += keycapGap
		}
		if used+w > width {
			break
		}
		used += w
		start = i
	}

	gap := lipgloss.NewStyle().Background(bg).Render(strings.Repeat(" ", keycapGap))
	parts := make([]string, 0, 2*(len(caps)-start))
	for i, c := range caps[start:] {
		if i > 0 {
			parts = append(parts, gap)
		}
		parts = append(parts, c)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Bottom, parts...)
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, row,
		lipgloss.WithWhitespaceBackground(bg))
}

// renderFrame draws the overlay panel for f into area. Hidden surfaces
// render as an empty string.
func renderFrame(f overlay.Frame, area rect, focused bool) string {
	if f.Surface.Hidden || area.W < 4 || area.H < 3 {
		return ""
	}

	ss := newSurfaceStyles(f.Surface, focused)
	bg := lipgloss.Color(ss.base.Hex())
	inner := area.W - 2

	caps := make([]string, 0, len(f.Items))
	for _, it := range f.Items {
		caps = append(caps, renderKeycap(it, ss, inner))
	}

	var hint string
	if !f.Held.IsEmpty() {
		hint = f.Held.String() + " …"
	}

	body := lipgloss.JoinVertical(lipgloss.Right,
		layoutRow(caps, inner, bg),
		ss.hint.Width(inner).Align(lipgloss.Right).Render(hint),
	)

	return ss.panel.
		Width(inner).
		Height(area.H - 2).
		AlignVertical(lipgloss.Bottom).
		Render(body)
}
