// ABOUTME: Modifier bitset for Ctrl/Shift/Alt/Win with deterministic label order
// ABOUTME: ModifierState tracks which modifiers are currently held down

package keys

import "strings"

// Modifier is a bitset of held modifier keys.
type Modifier uint8

const (
	ModNone Modifier = 0

	ModCtrl Modifier = 1 << iota
	ModShift
	ModAlt
	ModWin
)

// labelOrder is the fixed order modifiers appear in a combination label.
var labelOrder = [...]struct {
	mod  Modifier
	name Key
}{
	{ModCtrl, KeyCtrl},
	{ModShift, KeyShift},
	{ModAlt, KeyAlt},
	{ModWin, KeyWin},
}

// Has reports whether m contains every bit of mod.
func (m Modifier) Has(mod Modifier) bool {
	return mod != ModNone && m&mod == mod
}

// With returns m with mod added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns m with mod removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty reports whether no modifier is set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// Names returns the held modifier names in label order (Ctrl, Shift, Alt, Win).
func (m Modifier) Names() []string {
	var names []string
	for _, o := range labelOrder {
		if m.Has(o.mod) {
			names = append(names, string(o.name))
		}
	}
	return names
}

// String joins the held modifiers with the label separator, e.g. "Ctrl + Shift".
func (m Modifier) String() string {
	return strings.Join(m.Names(), LabelSeparator)
}

// ModifierState is the set of modifiers currently held.
// It is not safe for concurrent use; owners guard it.
type ModifierState struct {
	held Modifier
}

// Update records a modifier press or release. Non-modifier keys and repeats
// leave the state untouched. It returns true when the state changed.
func (s *ModifierState) Update(k Key, kind Kind) bool {
	mod := k.Modifier()
	if mod == ModNone {
		return false
	}
	prev := s.held
	switch kind {
	case Press:
		s.held = s.held.With(mod)
	case Release:
		s.held = s.held.Without(mod)
	}
	return prev != s.held
}

// Snapshot returns the currently held modifiers.
func (s *ModifierState) Snapshot() Modifier {
	return s.held
}

// Reset clears all held modifiers.
func (s *ModifierState) Reset() {
	s.held = ModNone
}
