// ABOUTME: Tests for settings resolution, the -device flag value, and log file creation

package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mauromedda/keycast/internal/config"
)

func TestLoadSettings_FileAndAutohide(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("max_keys: 5\ndisplay: 2s\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := loadSettings(cliArgs{configPath: path, autohide: true})
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	if s.MaxKeys != 5 || s.Display != 2*time.Second {
		t.Errorf("file values not applied: %+v", s)
	}
	if s.FadeOut != config.Defaults().FadeOut {
		t.Errorf("FadeOut = %v, want default", s.FadeOut)
	}
	if s.Variant != config.VariantAutoHide {
		t.Errorf("Variant = %q, want %q", s.Variant, config.VariantAutoHide)
	}
}

func TestLoadSettings_MissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := loadSettings(cliArgs{configPath: filepath.Join(t.TempDir(), "nope.yaml")})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want os.ErrNotExist", err)
	}
}

func TestDeviceList(t *testing.T) {
	t.Parallel()

	var d deviceList
	for _, v := range []string{"/dev/input/event3", "/dev/input/event7"} {
		if err := d.Set(v); err != nil {
			t.Fatal(err)
		}
	}
	if got := d.String(); got != "/dev/input/event3,/dev/input/event7" {
		t.Errorf("String() = %q", got)
	}
}

func TestOpenLog_CreatesParentDir(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "keycast.log")
	f, err := openLog(path)
	if err != nil {
		t.Fatalf("openLog: %v", err)
	}
	defer f.Close()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}
