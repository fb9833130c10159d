// ABOUTME: CLI entry point for keycast: global key capture feeding a terminal overlay
// ABOUTME: Loads settings, starts capture and the Bubble Tea program under one errgroup

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	// termfix must be imported before any package that imports bubbletea.
	_ "github.com/mauromedda/keycast/internal/termfix"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/mauromedda/keycast/internal/capture"
	"github.com/mauromedda/keycast/internal/config"
	"github.com/mauromedda/keycast/internal/log"
	"github.com/mauromedda/keycast/internal/overlay"
	"github.com/mauromedda/keycast/internal/ui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("keycast %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if args.listDevices {
		if err := listDevices(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run wires capture to the overlay and blocks until either side stops.
func run(args cliArgs) error {
	lvl, err := log.ParseLevel(args.logLevel)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)

	settings, err := loadSettings(args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("keycast draws into the terminal; stdout is not a terminal")
	}

	src, err := capture.NewSource(capture.Options{
		Devices: args.devices,
		HotPlug: !args.noHotplug,
	})
	if err != nil {
		return fmt.Errorf("starting key capture: %w", err)
	}

	// The overlay owns the terminal from here on.
	logOut, err := openLog(args.logFile)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logOut.Close()
	log.SetOutput(logOut)
	defer log.SetOutput(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	queue := overlay.NewQueue()
	capturer := capture.New(src, queue)

	g, gctx := errgroup.WithContext(ctx)
	runCtx, cancel := context.WithCancel(gctx)
	defer cancel()

	g.Go(func() error {
		return capturer.Run(runCtx)
	})
	g.Go(func() error {
		// Leaving the overlay stops capture too.
		defer cancel()
		return ui.Run(runCtx, ui.Deps{Events: queue, Settings: *settings})
	})

	err = g.Wait()
	st := capturer.Stats()
	log.Info("keycast exiting: %d events delivered, %d dropped", st.Delivered, st.Dropped)
	return err
}

func loadSettings(args cliArgs) (*config.Settings, error) {
	var (
		s   *config.Settings
		err error
	)
	if args.configPath != "" {
		s, err = config.LoadFile(args.configPath)
	} else {
		s, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if args.autohide {
		s.Variant = config.VariantAutoHide
	}
	return s, nil
}

func openLog(path string) (*os.File, error) {
	if path == "" {
		path = config.LogFile()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

func listDevices(w io.Writer) error {
	devs, err := capture.ListKeyboards()
	if err != nil {
		return err
	}
	if len(devs) == 0 {
		return capture.ErrNoKeyboard
	}
	for _, d := range devs {
		fmt.Fprintf(w, "%s\t%s\n", d.Path, d.Name)
	}
	return nil
}
