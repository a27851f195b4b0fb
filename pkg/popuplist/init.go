// Package popuplist provides the behavioral core of two headless, accessible
// popup list widgets: a filterable combobox and a menu.
//
// The widgets own no rendering. A host renderer mounts its nodes onto the
// widget parts (input, button, list container, items), feeds decoded commands
// in, and draws from the state projection the widget pushes to subscribers.
// Node capabilities such as attribute reflection or event delivery are
// optional and discovered when a part is mounted.
package popuplist

import (
	"log/slog"
	"sync"

	"github.com/BrandonKowalski/popuplist/pkg/popuplist/internal"
)

// Options configures logging and shared configuration for a host.
type Options struct {
	LogPath    string // Full path for log file including filename (creates parent directories); stderr when empty
	LogLevel   string // Overrides the configured log level ("debug", "info", "warn", "error")
	ConfigFile string // Optional TOML or YAML config file
}

var (
	configMu      sync.RWMutex
	currentConfig = DefaultConfig()
)

// Init sets up logging and loads the shared configuration.
// Widgets work without it, using the default config and stderr logging.
func Init(options Options) error {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	cfg := DefaultConfig()
	if options.ConfigFile != "" {
		loaded, err := LoadConfig(options.ConfigFile)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to load config", "path", options.ConfigFile, "error", err)
			return err
		}
		cfg = loaded
	}

	level := cfg.LogLevel
	if options.LogLevel != "" {
		level = options.LogLevel
	}
	internal.SetRawLogLevel(level)

	configMu.Lock()
	currentConfig = cfg
	configMu.Unlock()

	internal.GetLogger().Debug("popuplist initialized",
		"config", options.ConfigFile,
		"locale", cfg.Locale,
		"level", level)

	return nil
}

// Close flushes and closes the log file, if any.
func Close() {
	internal.CloseLogger()
}

// CurrentConfig returns the configuration loaded by Init, or the defaults.
func CurrentConfig() Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return currentConfig
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetInternalLogLevel sets the level of the logger the widgets use for their own transitions.
func SetInternalLogLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}
