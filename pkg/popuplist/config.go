package popuplist

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/BrandonKowalski/popuplist/pkg/popuplist/announce"
	"github.com/BrandonKowalski/popuplist/pkg/popuplist/constants"
	"github.com/BrandonKowalski/popuplist/pkg/popuplist/input"
	"github.com/BrandonKowalski/popuplist/pkg/popuplist/keymap"
)

// Config holds the user-tunable settings shared by every widget a host creates.
//
// Files are TOML or YAML, chosen by extension:
//
//	log_level = "debug"
//	locale = "de"
//	typeahead_timeout = "750ms"
//
//	[keymap.menu_items]
//	j = "next"
//	k = "previous"
type Config struct {
	LogLevel         string                       `toml:"log_level" yaml:"log_level"`
	Locale           string                       `toml:"locale" yaml:"locale"`
	TypeaheadTimeout time.Duration                `toml:"typeahead_timeout" yaml:"typeahead_timeout"`
	RepeatDelay      time.Duration                `toml:"repeat_delay" yaml:"repeat_delay"`
	RepeatInterval   time.Duration                `toml:"repeat_interval" yaml:"repeat_interval"`
	AccentColor      string                       `toml:"accent_color" yaml:"accent_color"`
	Bindings         map[string]map[string]string `toml:"keymap" yaml:"keymap"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		LogLevel:         "info",
		Locale:           "en",
		TypeaheadTimeout: constants.DefaultTypeaheadTimeout,
		RepeatDelay:      constants.DefaultRepeatDelay,
		RepeatInterval:   constants.DefaultRepeatInterval,
		AccentColor:      "#7D56F4",
	}
}

// LoadConfig reads path over DefaultConfig. Fields missing from the file
// keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, NewSetupError("load_config", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
			return cfg, NewSetupError("load_config", fmt.Errorf("%s: %w", path, err))
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, NewSetupError("load_config", fmt.Errorf("%s: %w", path, err))
		}
	default:
		return cfg, NewSetupError("load_config", fmt.Errorf("%w %q", ErrUnsupportedConfigFormat, ext))
	}

	if _, err := cfg.Keymap(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Keymap returns the default keymap with the configured overrides applied.
func (c Config) Keymap() (*keymap.Keymap, error) {
	k := keymap.Default()
	if err := k.Merge(c.Bindings); err != nil {
		return nil, NewSetupError("keymap", err)
	}
	return k, nil
}

// Announcer returns an announcer for the configured locale.
func (c Config) Announcer() (*announce.Announcer, error) {
	a, err := announce.New(c.Locale)
	if err != nil {
		return nil, NewSetupError("locale", err)
	}
	return a, nil
}

// DirectionalInput returns a key repeater with the configured timing.
func (c Config) DirectionalInput() input.DirectionalInput {
	return input.NewDirectionalInputWithTiming(c.RepeatDelay, c.RepeatInterval)
}
