// ABOUTME: Tests for key labels, modifier ordering, and ModifierState transitions
// ABOUTME: Label order must stay Ctrl, Shift, Alt, Win regardless of press order

package keys

import (
	"testing"
	"time"
)

func TestModifierString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mod  Modifier
		want string
	}{
		{ModNone, ""},
		{ModCtrl, "Ctrl"},
		{ModWin, "Win"},
		{ModAlt | ModCtrl, "Ctrl + Alt"},
		{ModWin | ModShift | ModCtrl, "Ctrl + Shift + Win"},
		{ModCtrl | ModShift | ModAlt | ModWin, "Ctrl + Shift + Alt + Win"},
	}

	for _, tt := range tests {
		if got := tt.mod.String(); got != tt.want {
			t.Errorf("Modifier(%d).String() = %q, want %q", tt.mod, got, tt.want)
		}
	}
}

func TestModifierHas(t *testing.T) {
	t.Parallel()

	m := ModCtrl | ModAlt
	if !m.Has(ModCtrl) || !m.Has(ModAlt) {
		t.Errorf("Has should report set bits of %d", m)
	}
	if m.Has(ModShift) {
		t.Error("Has(ModShift) = true, want false")
	}
	if m.Has(ModNone) {
		t.Error("Has(ModNone) = true, want false")
	}
	if !m.Has(ModCtrl | ModAlt) {
		t.Error("Has(ModCtrl|ModAlt) = false, want true")
	}
}

func TestLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		mods Modifier
		key  Key
		want string
	}{
		{"bare key", ModNone, "A", "A"},
		{"ctrl combo", ModCtrl, "S", "Ctrl + S"},
		{"ordered combo", ModShift | ModCtrl, "P", "Ctrl + Shift + P"},
		{"modifier never prefixes itself", ModCtrl | ModShift, KeyCtrl, "Shift + Ctrl"},
		{"altgr drops alt bit", ModAlt, KeyAltGr, "AltGr"},
		{"win combo", ModWin, "E", "Win + E"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Label(tt.mods, tt.key); got != tt.want {
				t.Errorf("Label(%q, %q) = %q, want %q", tt.mods.String(), tt.key, got, tt.want)
			}
		})
	}
}

func TestKeyModifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  Key
		want Modifier
	}{
		{KeyCtrl, ModCtrl},
		{KeyShift, ModShift},
		{KeyAlt, ModAlt},
		{KeyAltGr, ModAlt},
		{KeyWin, ModWin},
		{KeyTab, ModNone},
		{"A", ModNone},
	}

	for _, tt := range tests {
		if got := tt.key.Modifier(); got != tt.want {
			t.Errorf("%q.Modifier() = %d, want %d", tt.key, got, tt.want)
		}
		if tt.key.IsModifier() != (tt.want != ModNone) {
			t.Errorf("%q.IsModifier() mismatch", tt.key)
		}
	}
}

func TestModifierStateUpdate(t *testing.T) {
	t.Parallel()

	var s ModifierState

	if !s.Update(KeyCtrl, Press) {
		t.Error("Ctrl press should change state")
	}
	if s.Update(KeyCtrl, Repeat) {
		t.Error("Ctrl repeat should not change state")
	}
	if s.Update("S", Press) {
		t.Error("non-modifier press should not change state")
	}
	s.Update(KeyShift, Press)
	if got := s.Snapshot(); got != ModCtrl|ModShift {
		t.Errorf("Snapshot() = %q, want Ctrl + Shift", got.String())
	}

	s.Update(KeyCtrl, Release)
	if got := s.Snapshot(); got != ModShift {
		t.Errorf("after Ctrl release Snapshot() = %q, want Shift", got.String())
	}

	s.Reset()
	if !s.Snapshot().IsEmpty() {
		t.Error("Reset should clear held modifiers")
	}
}

func TestEventLabel(t *testing.T) {
	t.Parallel()

	ev := Event{Key: "S", Kind: Press, Mods: ModCtrl, Time: time.Unix(0, 0)}
	if got := ev.Label(); got != "Ctrl + S" {
		t.Errorf("Label() = %q, want %q", got, "Ctrl + S")
	}
	if Release.String() != "release" || Kind(9).String() != "unknown" {
		t.Error("Kind.String mismatch")
	}
}
