// ABOUTME: Overlay palette and opacity emulation by blending over the panel colour
// ABOUTME: Keycap and panel styles are rebuilt per frame from entry and surface opacity

package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/mauromedda/keycast/internal/overlay"
)

// Terminal cells have no alpha channel, so translucency is rendered by
// blending each colour toward whatever sits underneath it.
var (
	screenBase  = rgb(0, 0, 0)
	panelColor  = rgb(35, 35, 35)
	capFill     = rgb(70, 75, 85)
	capBorder   = rgb(140, 150, 170)
	capText     = rgb(255, 255, 255)
	panelBorder = rgb(70, 70, 70)
	focusAccent = rgb(95, 175, 255)
	hintText    = rgb(150, 150, 150)
)

func rgb(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// blend returns over laid on under at the given alpha, as a lipgloss colour.
func blend(under, over colorful.Color, alpha float64) lipgloss.Color {
	return lipgloss.Color(mix(under, over, alpha).Hex())
}

func mix(under, over colorful.Color, alpha float64) colorful.Color {
	switch {
	case alpha <= 0:
		return under
	case alpha >= 1:
		return over
	}
	return under.BlendRgb(over, alpha).Clamped()
}

// surfaceStyles holds the colours shared by every keycap in one frame.
type surfaceStyles struct {
	base  colorful.Color
	alpha float64
	panel lipgloss.Style
	hint  lipgloss.Style
}

func newSurfaceStyles(s overlay.Surface, focused bool) surfaceStyles {
	base := mix(screenBase, panelColor, s.Background)
	border := panelBorder
	if focused {
		border = focusAccent
	}
	bg := lipgloss.Color(base.Hex())
	return surfaceStyles{
		base:  base,
		alpha: s.Opacity,
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(blend(screenBase, border, s.Opacity)).
			Background(bg),
		hint: lipgloss.NewStyle().
			Foreground(blend(base, hintText, s.Opacity)).
			Background(bg),
	}
}

// keycap returns the style for one entry at its current opacity.
func (ss surfaceStyles) keycap(opacity float64, pad int) lipgloss.Style {
	a := opacity * ss.alpha
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(blend(ss.base, capBorder, a)).
		BorderBackground(lipgloss.Color(ss.base.Hex())).
		Background(blend(ss.base, capFill, a)).
		Foreground(blend(ss.base, capText, a)).
		Bold(true).
		Padding(0, pad)
}
