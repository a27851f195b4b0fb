// Package constants defines shared constants, types, and configuration values
// used throughout the popuplist widgets.
package constants

import (
	"os"
	"strings"
	"time"
)

// DebugEnvVar raises the internal logger to debug level when set to any value.
const DebugEnvVar = "POPUPLIST_DEBUG"

// LogLevelEnvVar overrides the application log level ("debug", "info", "warn", "error").
const LogLevelEnvVar = "POPUPLIST_LOG_LEVEL"

// IsDebug returns true if POPUPLIST_DEBUG is set.
func IsDebug() bool {
	return os.Getenv(DebugEnvVar) != ""
}

// Command is a semantic widget command, decoded from keyboard, pointer or
// controller input. Widgets never see raw key events, only commands.
type Command int

const (
	CommandUnassigned Command = iota
	CommandFirst
	CommandPrevious
	CommandNext
	CommandLast
	CommandNone
	CommandOpen
	CommandClose
	CommandToggle
	CommandSelect
	CommandConfirm   // Select when an item is active, otherwise toggle
	CommandTab       // Select when an item is active, otherwise close; never consumes the key
	CommandCharacter // Typeahead character, carried in the command argument
	CommandFilter    // New filter text, carried in the command argument
	CommandIgnore    // Swallow the key without a transition
)

var commandNames = map[Command]string{
	CommandUnassigned: "unassigned",
	CommandFirst:      "first",
	CommandPrevious:   "previous",
	CommandNext:       "next",
	CommandLast:       "last",
	CommandNone:       "none",
	CommandOpen:       "open",
	CommandClose:      "close",
	CommandToggle:     "toggle",
	CommandSelect:     "select",
	CommandConfirm:    "confirm",
	CommandTab:        "tab",
	CommandCharacter:  "character",
	CommandFilter:     "filter",
	CommandIgnore:     "ignore",
}

func (c Command) GetName() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

func (c Command) String() string {
	return c.GetName()
}

// ParseCommand resolves a command name as written in keymap configuration.
// Names are case-insensitive.
func ParseCommand(name string) (Command, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for cmd, n := range commandNames {
		if n == name && cmd != CommandUnassigned {
			return cmd, true
		}
	}
	return CommandUnassigned, false
}

// Part identifies the widget part a key event was delivered to.
// Keymaps bind keys per part.
type Part int

const (
	PartUnknown Part = iota
	PartComboboxInput
	PartMenuButton
	PartMenuItems
)

var partNames = map[Part]string{
	PartComboboxInput: "combobox_input",
	PartMenuButton:    "menu_button",
	PartMenuItems:     "menu_items",
}

func (p Part) GetName() string {
	if name, ok := partNames[p]; ok {
		return name
	}
	return "unknown"
}

func (p Part) String() string {
	return p.GetName()
}

// ParsePart resolves a keymap section name to a Part.
func ParsePart(name string) (Part, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for part, n := range partNames {
		if n == name {
			return part, true
		}
	}
	return PartUnknown, false
}

// Parts returns every part that accepts key bindings.
func Parts() []Part {
	return []Part{PartComboboxInput, PartMenuButton, PartMenuItems}
}

// Default timing constants.
const (
	DefaultTypeaheadTimeout = 500 * time.Millisecond // Quiet period after which typeahead starts a new query
	DefaultRepeatDelay      = 300 * time.Millisecond // Hold time before a navigation key starts repeating
	DefaultRepeatInterval   = 50 * time.Millisecond  // Interval between repeats of a held navigation key
)

// ID prefixes used when a mounted node has no id of its own.
const (
	ComboboxIDPrefix = "popuplist-combobox"
	MenuIDPrefix     = "popuplist-menu"
)
