// ABOUTME: Package documentation for the shared key vocabulary

// Package keys defines the key vocabulary shared by input capture and the
// overlay model.
//
// A Key is already a display name ("A", "PgDn", "Ctrl"): each capture source
// owns the translation from its raw codes. Modifier is a bitset over
// Ctrl, Shift, Alt and Win, and always renders in that order, so replaying
// the same event sequence always produces the same labels.
package keys
