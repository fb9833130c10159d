//go:build darwin || windows

// ABOUTME: macOS/Windows capture backend on robotn/gohook's global event hook
// ABOUTME: Repeated KeyHold events for a held key are reported as repeats

package capture

import (
	"context"
	"strings"
	"unicode/utf8"

	hook "github.com/robotn/gohook"

	"github.com/mauromedda/keycast/internal/keys"
)

var hookNames = map[string]keys.Key{
	"ctrl":      keys.KeyCtrl,
	"rctrl":     keys.KeyCtrl,
	"shift":     keys.KeyShift,
	"rshift":    keys.KeyShift,
	"alt":       keys.KeyAlt,
	"ralt":      keys.KeyAltGr,
	"cmd":       keys.KeyWin,
	"rcmd":      keys.KeyWin,
	"esc":       keys.KeyEscape,
	"enter":     keys.KeyEnter,
	"tab":       keys.KeyTab,
	"space":     keys.KeySpace,
	"backspace": keys.KeyBackspace,
	"delete":    keys.KeyDelete,
	"insert":    keys.KeyInsert,
	"home":      keys.KeyHome,
	"end":       keys.KeyEnd,
	"pageup":    keys.KeyPageUp,
	"pagedown":  keys.KeyPageDown,
	"up":        keys.KeyUp,
	"down":      keys.KeyDown,
	"left":      keys.KeyLeft,
	"right":     keys.KeyRight,
	"capslock":  keys.KeyCapsLock,
	"numlock":   keys.KeyNumLock,

	"printscreen": keys.KeyPrint,
}

type hookSource struct{}

// NewSource returns the gohook-backed source. gohook exposes no permission
// status, so a denied hook shows up as no events rather than an error.
func NewSource(Options) (Source, error) {
	return hookSource{}, nil
}

// ListKeyboards is not available through gohook.
func ListKeyboards() ([]Device, error) {
	return nil, ErrUnsupported
}

func (hookSource) Run(ctx context.Context, emit func(RawEvent)) error {
	events := hook.Start()
	defer hook.End()

	down := make(map[uint16]bool)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return ErrSourceStopped
			}
			switch ev.Kind {
			case hook.KeyHold:
				kind := keys.Press
				if down[ev.Rawcode] {
					kind = keys.Repeat
				}
				down[ev.Rawcode] = true
				emit(RawEvent{Code: uint32(ev.Rawcode), Kind: kind})
			case hook.KeyUp:
				delete(down, ev.Rawcode)
				emit(RawEvent{Code: uint32(ev.Rawcode), Kind: keys.Release})
			}
		}
	}
}

func (hookSource) Lookup(code uint32) (keys.Key, bool) {
	name := hook.RawcodetoKeychar(uint16(code))
	if name == "" {
		return "", false
	}
	if k, ok := hookNames[name]; ok {
		return k, true
	}
	if utf8.RuneCountInString(name) == 1 {
		return keys.Key(strings.ToUpper(name)), true
	}
	return fallbackName(name), true
}
