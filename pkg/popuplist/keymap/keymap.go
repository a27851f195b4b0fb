// Package keymap decodes named keys into semantic widget commands.
//
// Bindings are grouped by the widget part that receives the key. Hosts
// translate their native key events into the names below and call Decode;
// the widgets only ever see the resulting commands.
//
// Key names: up, down, left, right, home, end, pgup, pgdown, enter, space,
// esc, tab, shift+tab, backspace, or a single printable character.
package keymap

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/BrandonKowalski/popuplist/pkg/popuplist/constants"
)

var (
	// ErrUnknownSection indicates a keymap section that names no widget part.
	ErrUnknownSection = errors.New("unknown keymap section")

	// ErrUnknownKey indicates a key name outside the supported vocabulary.
	ErrUnknownKey = errors.New("unknown key")

	// ErrUnknownCommand indicates a binding to a command name that does not exist.
	ErrUnknownCommand = errors.New("unknown command")
)

var namedKeys = map[string]bool{
	"up": true, "down": true, "left": true, "right": true,
	"home": true, "end": true, "pgup": true, "pgdown": true,
	"enter": true, "space": true, "esc": true, "tab": true,
	"shift+tab": true, "backspace": true,
}

// Keymap binds key names to commands per widget part.
type Keymap struct {
	bindings map[constants.Part]map[string]constants.Command
	// typeahead parts turn unbound printable characters into CommandCharacter
	typeahead map[constants.Part]bool
}

// New creates an empty keymap.
func New() *Keymap {
	return &Keymap{
		bindings:  make(map[constants.Part]map[string]constants.Command),
		typeahead: make(map[constants.Part]bool),
	}
}

// Bind binds key to cmd on part, replacing any previous binding.
// Binding CommandUnassigned removes the key.
func (k *Keymap) Bind(part constants.Part, key string, cmd constants.Command) *Keymap {
	key = normalizeKey(key)
	section, ok := k.bindings[part]
	if !ok {
		section = make(map[string]constants.Command)
		k.bindings[part] = section
	}
	if cmd == constants.CommandUnassigned {
		delete(section, key)
		return k
	}
	section[key] = cmd
	return k
}

// Typeahead makes unbound printable characters on part decode to CommandCharacter.
func (k *Keymap) Typeahead(part constants.Part, enabled bool) *Keymap {
	k.typeahead[part] = enabled
	return k
}

// Decode resolves key on part. The returned argument carries the character
// for CommandCharacter and is empty otherwise. Unbound keys decode to
// CommandUnassigned, meaning the host should handle the key itself.
func (k *Keymap) Decode(part constants.Part, key string) (constants.Command, string) {
	key = normalizeKey(key)
	if cmd, ok := k.bindings[part][key]; ok {
		return cmd, ""
	}
	if k.typeahead[part] && isPrintable(key) {
		return constants.CommandCharacter, key
	}
	return constants.CommandUnassigned, ""
}

// Bindings returns a copy of the bindings for part.
func (k *Keymap) Bindings(part constants.Part) map[string]constants.Command {
	out := make(map[string]constants.Command, len(k.bindings[part]))
	for key, cmd := range k.bindings[part] {
		out[key] = cmd
	}
	return out
}

// Merge applies overrides given as section name -> key name -> command name,
// the shape keymaps take in configuration files. An empty command name
// removes the binding. On error the keymap is left unchanged.
func (k *Keymap) Merge(overrides map[string]map[string]string) error {
	type binding struct {
		part constants.Part
		key  string
		cmd  constants.Command
	}
	var pending []binding

	for sectionName, section := range overrides {
		part, ok := constants.ParsePart(sectionName)
		if !ok {
			return fmt.Errorf("[%s]: %w", sectionName, ErrUnknownSection)
		}

		for keyName, cmdName := range section {
			key, err := resolveKey(keyName)
			if err != nil {
				return fmt.Errorf("[%s] key %q: %w", sectionName, keyName, err)
			}

			cmd := constants.CommandUnassigned
			if cmdName != "" {
				cmd, ok = constants.ParseCommand(cmdName)
				if !ok {
					return fmt.Errorf("[%s] key %q: %w %q", sectionName, keyName, ErrUnknownCommand, cmdName)
				}
			}
			pending = append(pending, binding{part: part, key: key, cmd: cmd})
		}
	}

	for _, b := range pending {
		k.Bind(b.part, b.key, b.cmd)
	}
	return nil
}

func resolveKey(name string) (string, error) {
	key := normalizeKey(name)
	if namedKeys[key] || isPrintable(key) {
		return key, nil
	}
	return "", ErrUnknownKey
}

func normalizeKey(key string) string {
	if key == " " {
		return "space"
	}
	if utf8.RuneCountInString(key) == 1 {
		return key
	}
	return strings.ToLower(strings.TrimSpace(key))
}

func isPrintable(key string) bool {
	if utf8.RuneCountInString(key) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(key)
	return unicode.IsPrint(r) && !unicode.IsSpace(r)
}
