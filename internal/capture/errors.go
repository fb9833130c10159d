// ABOUTME: Sentinel errors for key capture startup and runtime failures
// ABOUTME: All are fatal to the process; none are retried

package capture

import "errors"

var (
	// ErrPermissionDenied means the OS refused the global key subscription.
	ErrPermissionDenied = errors.New("permission denied installing global key capture")

	// ErrNoKeyboard means no keyboard device could be found to listen on.
	ErrNoKeyboard = errors.New("no keyboard device found")

	// ErrUnsupported means this platform has no capture backend.
	ErrUnsupported = errors.New("global key capture is not supported on this platform")

	// ErrSourceStopped means the source ended while the overlay was running.
	ErrSourceStopped = errors.New("key capture stopped unexpectedly")
)
