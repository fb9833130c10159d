// ABOUTME: Normalized key event handed from input capture to the overlay model
// ABOUTME: Carries the semantic key, press/release/repeat kind, and modifier snapshot

package keys

import (
	"fmt"
	"time"
)

// Kind distinguishes physical presses, releases, and OS auto-repeat.
type Kind uint8

const (
	Press Kind = iota
	Release
	Repeat
)

// String returns a lower-case name for the kind.
func (k Kind) String() string {
	switch k {
	case Press:
		return "press"
	case Release:
		return "release"
	case Repeat:
		return "repeat"
	default:
		return "unknown"
	}
}

// Event is one normalized keyboard event.
type Event struct {
	Key  Key
	Kind Kind

	// Mods is the modifier set held at the moment of the event, after
	// applying this event if it is itself a modifier press or release.
	Mods Modifier

	Time time.Time
}

// Label returns the combination label this event would display.
func (e Event) Label() string {
	return Label(e.Mods, e.Key)
}

// GoString implements fmt.GoStringer for test failure output.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{%s %s mods=%q at=%s}", e.Kind, e.Key, e.Mods.String(), e.Time.Format("15:04:05.000"))
}
