// ABOUTME: Overlay model: capped FIFO of displayed entries plus modifier aggregation
// ABOUTME: Applies press/release/repeat events and expires entries by age

package overlay

import (
	"slices"
	"time"

	"github.com/mauromedda/keycast/internal/keys"
)

// Context is the mutable aggregation state the model carries between events.
type Context struct {
	// Held is the set of modifiers whose press the model observed and whose
	// release it has not yet seen.
	Held keys.Modifier

	// Used marks held modifiers that took part in a combination during the
	// current hold; their release does not produce a standalone entry.
	Used keys.Modifier

	// LastKeypress is the timestamp of the most recent event of any kind.
	LastKeypress time.Time
}

// Model is the displayed-entry collection. It is not safe for concurrent
// use: only the render loop mutates it.
type Model struct {
	maxKeys int
	timing  Timing

	entries []Entry
	ctx     Context
	nextID  uint64
}

// NewModel creates an empty model holding at most maxKeys entries.
// maxKeys below 1 is treated as 1.
func NewModel(maxKeys int, timing Timing) *Model {
	if maxKeys < 1 {
		maxKeys = 1
	}
	return &Model{
		maxKeys: maxKeys,
		timing:  timing,
		entries: make([]Entry, 0, maxKeys),
	}
}

// Timing returns the durations the model ages entries with.
func (m *Model) Timing() Timing {
	return m.timing
}

// Apply folds one key event into the model.
func (m *Model) Apply(ev keys.Event) {
	m.ctx.LastKeypress = ev.Time

	switch ev.Kind {
	case keys.Press:
		m.press(ev)
	case keys.Repeat:
		m.repeat(ev)
	case keys.Release:
		m.release(ev)
	}
}

// ApplyAll folds events in delivery order.
func (m *Model) ApplyAll(events []keys.Event) {
	for _, ev := range events {
		m.Apply(ev)
	}
}

func (m *Model) press(ev keys.Event) {
	if mod := ev.Key.Modifier(); mod != keys.ModNone {
		// Deferred: the release decides whether this shows on its own.
		m.ctx.Held = m.ctx.Held.With(mod)
		m.ctx.Used = m.ctx.Used.Without(mod)
		return
	}
	m.markUsed(ev.Mods)
	m.push(ev.Label(), ev.Time)
}

func (m *Model) repeat(ev keys.Event) {
	if ev.Key.IsModifier() {
		return
	}
	m.markUsed(ev.Mods)

	label := ev.Label()
	if n := len(m.entries); n > 0 {
		last := &m.entries[n-1]
		if last.Label == label && last.Age(ev.Time) < m.timing.Display {
			last.Refreshed = ev.Time
			last.Count++
			return
		}
	}
	m.push(label, ev.Time)
}

func (m *Model) release(ev keys.Event) {
	mod := ev.Key.Modifier()
	if mod == keys.ModNone {
		return
	}
	if m.ctx.Held.Has(mod) && !m.ctx.Used.Has(mod) {
		m.push(string(ev.Key), ev.Time)
	}
	m.ctx.Held = m.ctx.Held.Without(mod)
	m.ctx.Used = m.ctx.Used.Without(mod)
}

func (m *Model) markUsed(mods keys.Modifier) {
	m.ctx.Used = m.ctx.Used.With(m.ctx.Held | mods)
}

// push appends a new entry, evicting the oldest first when at capacity.
func (m *Model) push(label string, at time.Time) {
	if len(m.entries) >= m.maxKeys {
		m.entries = slices.Delete(m.entries, 0, len(m.entries)-m.maxKeys+1)
	}
	m.nextID++
	m.entries = append(m.entries, Entry{
		ID:        m.nextID,
		Label:     label,
		Created:   at,
		Refreshed: at,
		Count:     1,
	})
}

// Expire removes every entry whose lifetime has elapsed at now and returns
// how many were removed.
func (m *Model) Expire(now time.Time) int {
	before := len(m.entries)
	m.entries = slices.DeleteFunc(m.entries, func(e Entry) bool {
		return e.Phase(now, m.timing) == PhaseExpired
	})
	return before - len(m.entries)
}

// Entries returns a copy of the current entries, oldest first.
func (m *Model) Entries() []Entry {
	return slices.Clone(m.entries)
}

// Len returns the number of entries currently held.
func (m *Model) Len() int {
	return len(m.entries)
}

// Context returns a copy of the aggregation state.
func (m *Model) Context() Context {
	return m.ctx
}

// Frame computes the renderable state for now.
func (m *Model) Frame(now time.Time, policy SurfacePolicy) Frame {
	return BuildFrame(now, m.entries, m.ctx, m.timing, policy)
}
