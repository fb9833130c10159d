// ABOUTME: Displayed entry type and its time-driven lifecycle phase
// ABOUTME: Timing bundles the press-in, display, and fade-out durations

package overlay

import "time"

// Timing holds the durations that drive an entry through its phases.
type Timing struct {
	PressIn time.Duration
	Display time.Duration
	FadeOut time.Duration
}

// Lifetime is the total time an entry stays in the collection.
func (t Timing) Lifetime() time.Duration {
	return t.Display + t.FadeOut
}

// Phase is the lifecycle state of an entry.
type Phase uint8

const (
	PhaseCreated Phase = iota
	PhaseVisible
	PhaseFadingOut
	PhaseExpired
)

func (p Phase) String() string {
	switch p {
	case PhaseCreated:
		return "created"
	case PhaseVisible:
		return "visible"
	case PhaseFadingOut:
		return "fading-out"
	case PhaseExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Entry is one key or combination currently shown.
type Entry struct {
	ID    uint64
	Label string

	// Created is when the entry was appended. Refreshed starts equal to
	// Created and moves forward when auto-repeat merges into the entry.
	Created   time.Time
	Refreshed time.Time

	// Count is 1 plus the number of merged repeats.
	Count int
}

// Age is the time elapsed since the entry was last refreshed.
func (e Entry) Age(now time.Time) time.Duration {
	return now.Sub(e.Refreshed)
}

// Phase reports the lifecycle state of e at now.
func (e Entry) Phase(now time.Time, t Timing) Phase {
	age := e.Age(now)
	switch {
	case age >= t.Lifetime():
		return PhaseExpired
	case age >= t.Display:
		return PhaseFadingOut
	case age < t.PressIn:
		return PhaseCreated
	default:
		return PhaseVisible
	}
}
