// ABOUTME: Tests for settings defaults, YAML override merging, and validation
// ABOUTME: Uses temp directories for isolated file-based tests

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults_Valid(t *testing.T) {
	t.Parallel()

	d := Defaults()
	if err := d.Validate(); err != nil {
		t.Fatalf("Defaults().Validate() = %v", err)
	}
	if d.MaxKeys != 15 {
		t.Errorf("MaxKeys = %d, want 15", d.MaxKeys)
	}
	if d.Display != 4*time.Second || d.FadeOut != 800*time.Millisecond {
		t.Errorf("Display/FadeOut = %s/%s, want 4s/800ms", d.Display, d.FadeOut)
	}
	if d.Variant != VariantPersistent {
		t.Errorf("Variant = %q, want persistent", d.Variant)
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	result := merge(Defaults(), Settings{MaxKeys: 3, Variant: VariantAutoHide})

	if result.MaxKeys != 3 {
		t.Errorf("MaxKeys = %d, want 3", result.MaxKeys)
	}
	if result.Variant != VariantAutoHide {
		t.Errorf("Variant = %q, want autohide", result.Variant)
	}
	if result.Display != Defaults().Display {
		t.Errorf("Display = %s, want default kept", result.Display)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"zero max keys", func(s *Settings) { s.MaxKeys = 0 }},
		{"negative fade", func(s *Settings) { s.FadeOut = -time.Second }},
		{"zero frame interval", func(s *Settings) { s.FrameInterval = 0 }},
		{"unknown variant", func(s *Settings) { s.Variant = "floating" }},
		{"background above one", func(s *Settings) { s.Background = 1.5 }},
		{"zero width", func(s *Settings) { s.WidthFraction = 0 }},
		{"top below zero", func(s *Settings) { s.TopFraction = -0.1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Defaults()
			tt.mutate(&s)
			if err := s.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "max_keys: 5\ndisplay: 2s\nfade_out: 500ms\nvariant: autohide\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if s.MaxKeys != 5 || s.Display != 2*time.Second || s.FadeOut != 500*time.Millisecond {
		t.Errorf("got MaxKeys=%d Display=%s FadeOut=%s", s.MaxKeys, s.Display, s.FadeOut)
	}
	if s.Variant != VariantAutoHide {
		t.Errorf("Variant = %q, want autohide", s.Variant)
	}
	if s.PressIn != Defaults().PressIn {
		t.Errorf("PressIn = %s, want default", s.PressIn)
	}
}

func TestLoadFile_NotExist(t *testing.T) {
	t.Parallel()

	_, err := LoadFile("/nonexistent/path/config.yaml")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadFile on missing file = %v, want ErrNotExist", err)
	}
}

func TestLoadFile_Malformed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("max_keys: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("expected parse error for malformed YAML")
	}
}

func TestLoadFile_InvalidValues(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("width_fraction: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("LoadFile = %v, want ErrInvalid", err)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *s != Defaults() {
		t.Errorf("Load() = %+v, want defaults", *s)
	}
}

func TestPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got, want := ConfigFile(), filepath.Join(home, ".keycast", "config.yaml"); got != want {
		t.Errorf("ConfigFile() = %q, want %q", got, want)
	}
	if got, want := LogFile(), filepath.Join(home, ".keycast", "keycast.log"); got != want {
		t.Errorf("LogFile() = %q, want %q", got, want)
	}
}
