//go:build !linux && !darwin && !windows

// ABOUTME: Capture stub for platforms without a global key backend

package capture

// NewSource reports that this platform cannot capture keys globally.
func NewSource(Options) (Source, error) {
	return nil, ErrUnsupported
}

// ListKeyboards reports that this platform cannot enumerate keyboards.
func ListKeyboards() ([]Device, error) {
	return nil, ErrUnsupported
}
