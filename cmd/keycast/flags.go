// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports -config, -autohide, -device, -list-devices, logging and -version

package main

import (
	"flag"
	"strings"
)

type cliArgs struct {
	configPath  string
	autohide    bool
	devices     deviceList
	noHotplug   bool
	listDevices bool
	logLevel    string
	logFile     string
	version     bool
}

// deviceList collects repeated -device flags.
type deviceList []string

func (d *deviceList) String() string { return strings.Join(*d, ",") }

func (d *deviceList) Set(v string) error {
	*d = append(*d, v)
	return nil
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.StringVar(&args.configPath, "config", "", "Settings file (default ~/.keycast/config.yaml)")
	flag.BoolVar(&args.autohide, "autohide", false, "Fade the overlay out after a few idle seconds")
	flag.Var(&args.devices, "device", "Input device to read, repeatable (default: every keyboard)")
	flag.BoolVar(&args.noHotplug, "no-hotplug", false, "Ignore keyboards connected after startup")
	flag.BoolVar(&args.listDevices, "list-devices", false, "List detected keyboards and exit")
	flag.StringVar(&args.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.StringVar(&args.logFile, "log-file", "", "Log file while the overlay runs (default ~/.keycast/keycast.log)")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()
	return args
}
