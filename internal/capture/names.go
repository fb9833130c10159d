// ABOUTME: Shared fallback naming for raw key names no backend table covers
// ABOUTME: "VOLUMEUP" or "volume_up" becomes "Volume Up"-style title case

package capture

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mauromedda/keycast/internal/keys"
)

// fallbackName renders an OS key name for display. A Caser holds state, so
// each call builds its own; sources call this from several goroutines.
func fallbackName(raw string) keys.Key {
	words := strings.FieldsFunc(strings.ToLower(raw), func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	return keys.Key(cases.Title(language.English).String(strings.Join(words, " ")))
}
