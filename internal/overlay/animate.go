// ABOUTME: Pure animation math: entry opacity/scale and overlay-level visibility
// ABOUTME: BuildFrame turns entries plus a clock reading into renderable tuples

package overlay

import (
	"time"

	"github.com/mauromedda/keycast/internal/keys"
)

// PressInScale is the scale an entry starts at before settling to 1.
const PressInScale = 1.2

// Opacity returns the entry opacity for the given age: 1 while displayed,
// then linear down to 0 across the fade-out.
func Opacity(age time.Duration, t Timing) float64 {
	switch {
	case age < t.Display:
		return 1
	case age >= t.Lifetime() || t.FadeOut <= 0:
		return 0
	}
	return 1 - float64(age-t.Display)/float64(t.FadeOut)
}

// Scale returns the press-in scale for the given age, easing out from
// PressInScale to 1 across t.PressIn.
func Scale(age time.Duration, t Timing) float64 {
	if age >= t.PressIn || t.PressIn <= 0 {
		return 1
	}
	if age < 0 {
		age = 0
	}
	p := float64(age) / float64(t.PressIn)
	return PressInScale - (PressInScale-1)*easeOutCubic(p)
}

func easeOutCubic(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q
}

// Renderable is what the render collaborator draws for one entry.
type Renderable struct {
	ID      uint64
	Label   string
	Count   int
	Opacity float64
	Scale   float64
	Phase   Phase
}

// Renderables maps entries to draw parameters at now, oldest first.
// Entries already past their lifetime are skipped.
func Renderables(now time.Time, entries []Entry, t Timing) []Renderable {
	out := make([]Renderable, 0, len(entries))
	for _, e := range entries {
		phase := e.Phase(now, t)
		if phase == PhaseExpired {
			continue
		}
		age := e.Age(now)
		out = append(out, Renderable{
			ID:      e.ID,
			Label:   e.Label,
			Count:   e.Count,
			Opacity: Opacity(age, t),
			Scale:   Scale(age, t),
			Phase:   phase,
		})
	}
	return out
}

// SurfacePolicy configures overlay-level visibility.
type SurfacePolicy struct {
	// AutoHide fades the whole overlay after HideDelay of inactivity.
	// Without it the surface is always shown at Background opacity.
	AutoHide   bool
	HideDelay  time.Duration
	WindowFade time.Duration
	Background float64
}

// Surface is the overlay-level visibility for one frame.
type Surface struct {
	// Opacity multiplies every entry's own opacity.
	Opacity float64
	// Background is the opacity of the overlay panel behind the entries.
	Background float64
	// Hidden means nothing is drawn and the surface ignores interaction.
	Hidden bool
}

// Visibility computes the surface state at now given the last key event.
// A zero lastKeypress means no key has been seen yet.
func Visibility(now, lastKeypress time.Time, p SurfacePolicy) Surface {
	if !p.AutoHide {
		return Surface{Opacity: 1, Background: p.Background}
	}
	if lastKeypress.IsZero() {
		return Surface{Hidden: true}
	}

	idle := now.Sub(lastKeypress)
	opacity := 1.0
	if idle >= p.HideDelay {
		if p.WindowFade <= 0 {
			opacity = 0
		} else {
			opacity = 1 - float64(idle-p.HideDelay)/float64(p.WindowFade)
		}
	}
	if opacity <= 0 {
		return Surface{Hidden: true}
	}
	return Surface{Opacity: opacity, Background: p.Background * opacity}
}

// Frame is everything the render collaborator needs for one tick.
type Frame struct {
	Items   []Renderable
	Surface Surface
	Held    keys.Modifier
}

// BuildFrame composes entry renderables and overlay visibility.
func BuildFrame(now time.Time, entries []Entry, ctx Context, t Timing, p SurfacePolicy) Frame {
	return Frame{
		Items:   Renderables(now, entries, t),
		Surface: Visibility(now, ctx.LastKeypress, p),
		Held:    ctx.Held,
	}
}
