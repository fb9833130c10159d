// ABOUTME: Source construction options shared by all platform backends

package capture

// Options selects what a platform Source listens to.
type Options struct {
	// Devices lists explicit device paths. Empty means autodetect.
	// Only the evdev backend uses it.
	Devices []string

	// HotPlug attaches keyboards connected after startup.
	HotPlug bool
}
