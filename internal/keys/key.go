// ABOUTME: Semantic key names shared by every capture source and the overlay model
// ABOUTME: Modifier keys map onto the Modifier bitset; Label builds "Ctrl + S" style text

package keys

// Key is the semantic, display-ready name of a physical key ("A", "Tab", "Ctrl").
type Key string

// LabelSeparator joins the parts of a combination label.
const LabelSeparator = " + "

// Modifier keys. Left and right variants collapse onto the same name.
const (
	KeyCtrl  Key = "Ctrl"
	KeyShift Key = "Shift"
	KeyAlt   Key = "Alt"
	KeyAltGr Key = "AltGr"
	KeyWin   Key = "Win"
)

// Named non-character keys used across sources.
const (
	KeyEscape    Key = "Esc"
	KeyEnter     Key = "Enter"
	KeyTab       Key = "Tab"
	KeySpace     Key = "Space"
	KeyBackspace Key = "Backspace"
	KeyDelete    Key = "Delete"
	KeyInsert    Key = "Insert"
	KeyHome      Key = "Home"
	KeyEnd       Key = "End"
	KeyPageUp    Key = "PgUp"
	KeyPageDown  Key = "PgDn"
	KeyUp        Key = "Up"
	KeyDown      Key = "Down"
	KeyLeft      Key = "Left"
	KeyRight     Key = "Right"
	KeyCapsLock  Key = "CapsLock"
	KeyNumLock   Key = "NumLock"
	KeyScroll    Key = "ScrollLock"
	KeyPrint     Key = "PrtSc"
	KeyPause     Key = "Pause"
	KeyMenu      Key = "Menu"
)

// Modifier returns the modifier bit this key drives, or ModNone.
// AltGr counts as Alt for combination purposes but keeps its own name.
func (k Key) Modifier() Modifier {
	switch k {
	case KeyCtrl:
		return ModCtrl
	case KeyShift:
		return ModShift
	case KeyAlt, KeyAltGr:
		return ModAlt
	case KeyWin:
		return ModWin
	}
	return ModNone
}

// IsModifier reports whether k is one of the tracked modifier keys.
func (k Key) IsModifier() bool {
	return k.Modifier() != ModNone
}

// Label renders a key pressed while mods are held: "Ctrl + Shift + P".
// A modifier key never prefixes itself.
func Label(mods Modifier, k Key) string {
	mods = mods.Without(k.Modifier())
	if mods.IsEmpty() {
		return string(k)
	}
	return mods.String() + LabelSeparator + string(k)
}
