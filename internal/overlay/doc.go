// ABOUTME: Package documentation for the displayed-entry model and its animation math

// Package overlay owns the displayed key entries and the animation math
// applied to them.
//
// Model is single-owner state: the render loop applies drained key events,
// expires entries and asks for a Frame, all on one goroutine. Capture code
// never touches a Model; it pushes into a Queue, which is the only value
// shared between the two sides.
//
// Entry lifecycle is driven purely by elapsed time since the entry was last
// refreshed:
//
//	Created -> Visible -> FadingOut -> Expired (removed on the next Expire)
package overlay
