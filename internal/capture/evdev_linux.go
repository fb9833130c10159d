//go:build linux

// ABOUTME: Linux capture backend reading keyboards through evdev (/dev/input/event*)
// ABOUTME: Fails fast on permission errors; detaches unplugged devices individually

package capture

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/holoplot/go-evdev"
	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/keycast/internal/keys"
	"github.com/mauromedda/keycast/internal/log"
)

const inputDir = "/dev/input"

// evdev key values.
const (
	valueRelease = 0
	valuePress   = 1
	valueRepeat  = 2
)

// keyboardProbe lists the key codes a device must report to count as a keyboard.
var keyboardProbe = []evdev.EvCode{evdev.KEY_A, evdev.KEY_Z, evdev.KEY_SPACE}

// inputDevice is the part of an opened evdev node the reader needs.
type inputDevice interface {
	ReadOne() (*evdev.InputEvent, error)
	Close() error
}

type keyboard struct {
	Device
	dev inputDevice
}

type evdevSource struct {
	hotplug atomic.Bool

	mu       sync.Mutex
	attached map[string]*keyboard
}

// NewSource opens every keyboard up front so permission problems surface at
// startup rather than as silently missing keys.
func NewSource(opts Options) (Source, error) {
	paths := opts.Devices
	if len(paths) == 0 {
		var err error
		paths, err = filepath.Glob(filepath.Join(inputDir, "event*"))
		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", inputDir, err)
		}
	}

	kbs, err := openKeyboards(paths, probe)
	if err != nil {
		return nil, err
	}
	if len(kbs) == 0 {
		return nil, fmt.Errorf("%w among %d input devices", ErrNoKeyboard, len(paths))
	}

	s := &evdevSource{attached: make(map[string]*keyboard, len(kbs))}
	s.hotplug.Store(opts.HotPlug)
	for _, kb := range kbs {
		s.attached[kb.Path] = kb
		log.Info("capture: listening on %s (%s)", kb.Name, kb.Path)
	}
	return s, nil
}

// ListKeyboards returns the keyboards visible to this process.
func ListKeyboards() ([]Device, error) {
	paths, err := filepath.Glob(filepath.Join(inputDir, "event*"))
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", inputDir, err)
	}
	kbs, err := openKeyboards(paths, probe)
	if err != nil {
		return nil, err
	}
	devices := make([]Device, 0, len(kbs))
	for _, kb := range kbs {
		devices = append(devices, kb.Device)
		_ = kb.dev.Close()
	}
	return devices, nil
}

// openKeyboards runs open on every path. Any permission failure aborts the
// whole set: the denied node might be the keyboard the user is typing on.
func openKeyboards(paths []string, open func(string) (*keyboard, error)) ([]*keyboard, error) {
	sort.Strings(paths)

	var kbs []*keyboard
	for _, path := range paths {
		kb, err := open(path)
		if err != nil {
			for _, opened := range kbs {
				_ = opened.dev.Close()
			}
			return nil, err
		}
		if kb != nil {
			kbs = append(kbs, kb)
		}
	}
	return kbs, nil
}

// probe opens path and returns it if it is a keyboard, or nil if it is some
// other input device.
func probe(path string) (*keyboard, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return openError(path, err)
	}

	if !isKeyboard(dev) {
		_ = dev.Close()
		return nil, nil
	}

	name, err := dev.Name()
	if err != nil || name == "" {
		name = filepath.Base(path)
	}
	return &keyboard{Device: Device{Path: path, Name: name}, dev: dev}, nil
}

// openError classifies a failed open. A vanished node is skipped; a denied
// one is fatal.
func openError(path string, err error) (*keyboard, error) {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return nil, fmt.Errorf("%w: %s (add your user to the 'input' group or run as root)", ErrPermissionDenied, path)
	case errors.Is(err, fs.ErrNotExist):
		return nil, nil
	}
	return nil, fmt.Errorf("opening %s: %w", path, err)
}

func isKeyboard(dev *evdev.InputDevice) bool {
	if !slices.Contains(dev.CapableTypes(), evdev.EV_KEY) {
		return false
	}
	codes := dev.CapableEvents(evdev.EV_KEY)
	for _, c := range keyboardProbe {
		if !slices.Contains(codes, c) {
			return false
		}
	}
	return true
}

func kindFromValue(v int32) (keys.Kind, bool) {
	switch v {
	case valuePress:
		return keys.Press, true
	case valueRelease:
		return keys.Release, true
	case valueRepeat:
		return keys.Repeat, true
	}
	return 0, false
}

// Run reads every attached keyboard on its own goroutine until ctx ends.
func (s *evdevSource) Run(ctx context.Context, emit func(RawEvent)) error {
	g, gctx := errgroup.WithContext(ctx)

	s.mu.Lock()
	initial := make([]*keyboard, 0, len(s.attached))
	for _, kb := range s.attached {
		initial = append(initial, kb)
	}
	s.mu.Unlock()

	for _, kb := range initial {
		g.Go(func() error { return s.read(gctx, kb, emit) })
	}
	if s.hotplug.Load() {
		g.Go(func() error { return s.watch(gctx, g, emit) })
	}

	// Closing the devices is what unblocks pending reads.
	g.Go(func() error {
		<-gctx.Done()
		s.closeAll()
		return nil
	})

	return g.Wait()
}

func (s *evdevSource) read(ctx context.Context, kb *keyboard, emit func(RawEvent)) error {
	for {
		ev, err := kb.dev.ReadOne()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.Warn("capture: %s (%s) detached: %v", kb.Name, kb.Path, err)
			if remaining := s.detach(kb.Path); remaining == 0 && !s.hotplug.Load() {
				return fmt.Errorf("%w: last keyboard %s detached", ErrSourceStopped, kb.Path)
			}
			return nil
		}
		if ev.Type != evdev.EV_KEY {
			continue
		}
		kind, ok := kindFromValue(ev.Value)
		if !ok {
			continue
		}
		emit(RawEvent{Code: uint32(ev.Code), Kind: kind})
	}
}

// attach probes a newly appeared node and registers it if it is a keyboard
// not already being read.
func (s *evdevSource) attach(path string) *keyboard {
	s.mu.Lock()
	_, known := s.attached[path]
	s.mu.Unlock()
	if known {
		return nil
	}

	kb, err := probe(path)
	if err != nil {
		log.Debug("capture: hot-plug %s: %v", path, err)
		return nil
	}
	if kb == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, known := s.attached[path]; known {
		_ = kb.dev.Close()
		return nil
	}
	s.attached[path] = kb
	log.Info("capture: attached %s (%s)", kb.Name, kb.Path)
	return kb
}

func (s *evdevSource) detach(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if kb, ok := s.attached[path]; ok {
		_ = kb.dev.Close()
		delete(s.attached, path)
	}
	return len(s.attached)
}

func (s *evdevSource) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for path, kb := range s.attached {
		_ = kb.dev.Close()
		delete(s.attached, path)
	}
}

// Devices returns the currently attached keyboards.
func (s *evdevSource) Devices() []Device {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Device, 0, len(s.attached))
	for _, kb := range s.attached {
		out = append(out, kb.Device)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}
