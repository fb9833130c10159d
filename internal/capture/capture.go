// ABOUTME: Platform-neutral capture core: runs a Source and normalizes its raw codes
// ABOUTME: Stamps each event with the held-modifier snapshot and pushes it to the sink

package capture

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/mauromedda/keycast/internal/keys"
	"github.com/mauromedda/keycast/internal/log"
)

// RawEvent is a key transition as reported by the OS layer.
type RawEvent struct {
	Code uint32
	Kind keys.Kind
}

// Source is a system-wide key event subscription.
type Source interface {
	// Run delivers raw events to emit until ctx is cancelled (returning nil)
	// or the subscription fails. emit may be called from several goroutines.
	Run(ctx context.Context, emit func(RawEvent)) error

	// Lookup translates a raw code into a semantic key name.
	Lookup(code uint32) (keys.Key, bool)
}

// Sink receives normalized events. overlay.Queue satisfies it.
type Sink interface {
	Push(ev keys.Event) error
	Close(cause error)
}

// Device describes one attached keyboard.
type Device struct {
	Path string
	Name string
}

// Stats counts events seen by a Capturer.
type Stats struct {
	Delivered uint64
	Dropped   uint64
}

// Capturer owns the capture-side ModifierState and feeds the sink.
type Capturer struct {
	src  Source
	sink Sink
	now  func() time.Time

	mu    sync.Mutex
	mods  keys.ModifierState
	stats Stats
}

// New creates a Capturer reading from src and delivering into sink.
func New(src Source, sink Sink) *Capturer {
	return &Capturer{src: src, sink: sink, now: time.Now}
}

// Run blocks until ctx is cancelled or the source fails. The sink is closed
// on return; a source that stops on its own closes it with ErrSourceStopped.
func (c *Capturer) Run(ctx context.Context) error {
	err := c.src.Run(ctx, c.emit)
	if err == nil && ctx.Err() == nil {
		err = ErrSourceStopped
	}
	if err != nil && !errors.Is(err, ErrSourceStopped) {
		log.Error("capture: %v", err)
	}
	c.sink.Close(err)
	return err
}

func (c *Capturer) emit(raw RawEvent) {
	k, ok := c.src.Lookup(raw.Code)
	if !ok {
		c.mu.Lock()
		c.stats.Dropped++
		c.mu.Unlock()
		log.Debug("capture: dropping unrecognized key code %d (%s)", raw.Code, raw.Kind)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.mods.Update(k, raw.Kind)
	ev := keys.Event{
		Key:  k,
		Kind: raw.Kind,
		Mods: c.mods.Snapshot(),
		Time: c.now(),
	}
	if err := c.sink.Push(ev); err != nil {
		log.Debug("capture: %s not delivered: %v", ev.Key, err)
		return
	}
	c.stats.Delivered++
}

// Held returns the modifiers the capture side currently believes are down.
func (c *Capturer) Held() keys.Modifier {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mods.Snapshot()
}

// Stats returns delivery counters.
func (c *Capturer) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}
