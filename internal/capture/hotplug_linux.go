//go:build linux

// ABOUTME: Keyboard hot-plug for the evdev backend via fsnotify on /dev/input
// ABOUTME: New event* nodes are probed on create and on udev's follow-up chmod

package capture

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/keycast/internal/log"
)

// watch attaches keyboards that appear while running. If the watcher cannot
// be set up, hot-plug is switched off and capture continues with the
// keyboards it already has.
func (s *evdevSource) watch(ctx context.Context, g *errgroup.Group, emit func(RawEvent)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		log.Warn("capture: hot-plug disabled: %v", err)
		s.hotplug.Store(false)
		return nil
	}
	defer w.Close()

	if err := w.Add(inputDir); err != nil {
		log.Warn("capture: hot-plug disabled: watching %s: %v", inputDir, err)
		s.hotplug.Store(false)
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !isDeviceNode(ev) {
				continue
			}
			if kb := s.attach(ev.Name); kb != nil {
				g.Go(func() error { return s.read(ctx, kb, emit) })
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("capture: hot-plug watcher: %v", err)
		}
	}
}

// isDeviceNode reports whether ev may have made a new event node readable.
func isDeviceNode(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Chmod) {
		return false
	}
	return strings.HasPrefix(filepath.Base(ev.Name), "event")
}
