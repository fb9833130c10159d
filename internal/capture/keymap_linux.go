//go:build linux

// ABOUTME: Translation from evdev key codes to display names
// ABOUTME: Unlisted KEY_* codes fall back to a title-cased evdev name; BTN_* codes are dropped

package capture

import (
	"strings"

	"github.com/holoplot/go-evdev"

	"github.com/mauromedda/keycast/internal/keys"
)

var evdevNames = map[evdev.EvCode]keys.Key{
	evdev.KEY_LEFTCTRL:   keys.KeyCtrl,
	evdev.KEY_RIGHTCTRL:  keys.KeyCtrl,
	evdev.KEY_LEFTSHIFT:  keys.KeyShift,
	evdev.KEY_RIGHTSHIFT: keys.KeyShift,
	evdev.KEY_LEFTALT:    keys.KeyAlt,
	evdev.KEY_RIGHTALT:   keys.KeyAltGr,
	evdev.KEY_LEFTMETA:   keys.KeyWin,
	evdev.KEY_RIGHTMETA:  keys.KeyWin,

	evdev.KEY_ESC:        keys.KeyEscape,
	evdev.KEY_ENTER:      keys.KeyEnter,
	evdev.KEY_KPENTER:    keys.KeyEnter,
	evdev.KEY_TAB:        keys.KeyTab,
	evdev.KEY_SPACE:      keys.KeySpace,
	evdev.KEY_BACKSPACE:  keys.KeyBackspace,
	evdev.KEY_DELETE:     keys.KeyDelete,
	evdev.KEY_INSERT:     keys.KeyInsert,
	evdev.KEY_HOME:       keys.KeyHome,
	evdev.KEY_END:        keys.KeyEnd,
	evdev.KEY_PAGEUP:     keys.KeyPageUp,
	evdev.KEY_PAGEDOWN:   keys.KeyPageDown,
	evdev.KEY_UP:         keys.KeyUp,
	evdev.KEY_DOWN:       keys.KeyDown,
	evdev.KEY_LEFT:       keys.KeyLeft,
	evdev.KEY_RIGHT:      keys.KeyRight,
	evdev.KEY_CAPSLOCK:   keys.KeyCapsLock,
	evdev.KEY_NUMLOCK:    keys.KeyNumLock,
	evdev.KEY_SCROLLLOCK: keys.KeyScroll,
	evdev.KEY_SYSRQ:      keys.KeyPrint,
	evdev.KEY_PAUSE:      keys.KeyPause,
	evdev.KEY_COMPOSE:    keys.KeyMenu,

	evdev.KEY_F1:  "F1",
	evdev.KEY_F2:  "F2",
	evdev.KEY_F3:  "F3",
	evdev.KEY_F4:  "F4",
	evdev.KEY_F5:  "F5",
	evdev.KEY_F6:  "F6",
	evdev.KEY_F7:  "F7",
	evdev.KEY_F8:  "F8",
	evdev.KEY_F9:  "F9",
	evdev.KEY_F10: "F10",
	evdev.KEY_F11: "F11",
	evdev.KEY_F12: "F12",

	evdev.KEY_1: "1",
	evdev.KEY_2: "2",
	evdev.KEY_3: "3",
	evdev.KEY_4: "4",
	evdev.KEY_5: "5",
	evdev.KEY_6: "6",
	evdev.KEY_7: "7",
	evdev.KEY_8: "8",
	evdev.KEY_9: "9",
	evdev.KEY_0: "0",

	evdev.KEY_A: "A",
	evdev.KEY_B: "B",
	evdev.KEY_C: "C",
	evdev.KEY_D: "D",
	evdev.KEY_E: "E",
	evdev.KEY_F: "F",
	evdev.KEY_G: "G",
	evdev.KEY_H: "H",
	evdev.KEY_I: "I",
	evdev.KEY_J: "J",
	evdev.KEY_K: "K",
	evdev.KEY_L: "L",
	evdev.KEY_M: "M",
	evdev.KEY_N: "N",
	evdev.KEY_O: "O",
	evdev.KEY_P: "P",
	evdev.KEY_Q: "Q",
	evdev.KEY_R: "R",
	evdev.KEY_S: "S",
	evdev.KEY_T: "T",
	evdev.KEY_U: "U",
	evdev.KEY_V: "V",
	evdev.KEY_W: "W",
	evdev.KEY_X: "X",
	evdev.KEY_Y: "Y",
	evdev.KEY_Z: "Z",

	evdev.KEY_MINUS:      "-",
	evdev.KEY_EQUAL:      "=",
	evdev.KEY_LEFTBRACE:  "[",
	evdev.KEY_RIGHTBRACE: "]",
	evdev.KEY_SEMICOLON:  ";",
	evdev.KEY_APOSTROPHE: "'",
	evdev.KEY_GRAVE:      "`",
	evdev.KEY_BACKSLASH:  "\\",
	evdev.KEY_COMMA:      ",",
	evdev.KEY_DOT:        ".",
	evdev.KEY_SLASH:      "/",

	evdev.KEY_KP0:        "Num0",
	evdev.KEY_KP1:        "Num1",
	evdev.KEY_KP2:        "Num2",
	evdev.KEY_KP3:        "Num3",
	evdev.KEY_KP4:        "Num4",
	evdev.KEY_KP5:        "Num5",
	evdev.KEY_KP6:        "Num6",
	evdev.KEY_KP7:        "Num7",
	evdev.KEY_KP8:        "Num8",
	evdev.KEY_KP9:        "Num9",
	evdev.KEY_KPPLUS:     "Num+",
	evdev.KEY_KPMINUS:    "Num-",
	evdev.KEY_KPASTERISK: "Num*",
	evdev.KEY_KPSLASH:    "Num/",
	evdev.KEY_KPDOT:      "Num.",
}

// Lookup translates an evdev key code.
func (s *evdevSource) Lookup(code uint32) (keys.Key, bool) {
	return lookupEvdev(code)
}

func lookupEvdev(code uint32) (keys.Key, bool) {
	c := evdev.EvCode(code)
	if k, ok := evdevNames[c]; ok {
		return k, true
	}
	name, ok := strings.CutPrefix(evdev.CodeName(evdev.EV_KEY, c), "KEY_")
	if !ok || name == "" || name == "RESERVED" || name == "UNKNOWN" {
		return "", false
	}
	return fallbackName(name), true
}
