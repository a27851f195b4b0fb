package popuplist

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/BrandonKowalski/popuplist/pkg/popuplist/constants"
	"github.com/BrandonKowalski/popuplist/pkg/popuplist/keymap"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	want := DefaultConfig()
	want.LogLevel = "debug"
	want.Locale = "de"
	want.TypeaheadTimeout = 750 * time.Millisecond
	want.Bindings = map[string]map[string]string{
		"menu_items": {"j": "next", "k": "previous"},
	}

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"TOML", "popuplist.toml", `
log_level = "debug"
locale = "de"
typeahead_timeout = "750ms"

[keymap.menu_items]
j = "next"
k = "previous"
`},
		{"YAML", "popuplist.yaml", `
log_level: debug
locale: de
typeahead_timeout: 750ms
keymap:
  menu_items:
    j: next
    k: previous
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeFile(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(want, cfg); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}

			k, err := cfg.Keymap()
			if err != nil {
				t.Fatalf("unexpected keymap error: %v", err)
			}
			if cmd, _ := k.Decode(constants.PartMenuItems, "j"); cmd != constants.CommandNext {
				t.Errorf("expected j bound to next, got %v", cmd)
			}
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("UnsupportedFormat", func(t *testing.T) {
		_, err := LoadConfig(writeFile(t, "popuplist.json", "{}"))
		if !errors.Is(err, ErrUnsupportedConfigFormat) || !IsSetupError(err) {
			t.Errorf("expected unsupported format setup error, got %v", err)
		}
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected not exist, got %v", err)
		}
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := LoadConfig(writeFile(t, "bad.toml", "log_level = "))
		if !IsSetupError(err) {
			t.Errorf("expected setup error, got %v", err)
		}
	})

	t.Run("BadKeymap", func(t *testing.T) {
		_, err := LoadConfig(writeFile(t, "bad.toml", "[keymap.menu_items]\nj = \"jump\"\n"))
		if !errors.Is(err, keymap.ErrUnknownCommand) {
			t.Errorf("expected unknown command, got %v", err)
		}
	})
}

func TestConfigHelpers(t *testing.T) {
	cfg := DefaultConfig()

	a, err := cfg.Announcer()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := a.ResultCount(2); got != "2 results available" {
		t.Errorf("unexpected announcement %q", got)
	}

	cfg.Locale = "???"
	if _, err := cfg.Announcer(); !IsSetupError(err) {
		t.Errorf("expected setup error for bad locale, got %v", err)
	}

	d := cfg.DirectionalInput()
	if d.IsHeld() {
		t.Error("new repeater should not be held")
	}
}

func TestInit(t *testing.T) {
	path := writeFile(t, "popuplist.toml", "locale = \"de\"\n")
	if err := Init(Options{ConfigFile: path, LogLevel: "error"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := CurrentConfig().Locale; got != "de" {
		t.Errorf("expected locale de, got %q", got)
	}

	if err := Init(Options{ConfigFile: filepath.Join(t.TempDir(), "nope.yml")}); err == nil {
		t.Error("expected error for missing config")
	}
	if got := CurrentConfig().Locale; got != "de" {
		t.Error("failed init should keep the previous config")
	}
}
