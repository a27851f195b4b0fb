// Package sdlinput decodes SDL keyboard, text input and game controller
// events into widget commands.
//
// SDL reports presses and releases but leaves repeat timing to the
// application, so held navigation keys repeat through input.DirectionalInput.
// Call Repeat once per frame.
package sdlinput

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/popuplist/pkg/popuplist/constants"
	"github.com/BrandonKowalski/popuplist/pkg/popuplist/input"
	"github.com/BrandonKowalski/popuplist/pkg/popuplist/keymap"
)

var keyNames = map[sdl.Keycode]string{
	sdl.K_UP:        "up",
	sdl.K_DOWN:      "down",
	sdl.K_LEFT:      "left",
	sdl.K_RIGHT:     "right",
	sdl.K_HOME:      "home",
	sdl.K_END:       "end",
	sdl.K_PAGEUP:    "pgup",
	sdl.K_PAGEDOWN:  "pgdown",
	sdl.K_RETURN:    "enter",
	sdl.K_KP_ENTER:  "enter",
	sdl.K_SPACE:     "space",
	sdl.K_ESCAPE:    "esc",
	sdl.K_TAB:       "tab",
	sdl.K_BACKSPACE: "backspace",
}

var buttonNames = map[sdl.GameControllerButton]string{
	sdl.CONTROLLER_BUTTON_DPAD_UP:       "up",
	sdl.CONTROLLER_BUTTON_DPAD_DOWN:     "down",
	sdl.CONTROLLER_BUTTON_DPAD_LEFT:     "left",
	sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    "right",
	sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  "pgup",
	sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: "pgdown",
	sdl.CONTROLLER_BUTTON_A:             "enter",
	sdl.CONTROLLER_BUTTON_START:         "enter",
	sdl.CONTROLLER_BUTTON_B:             "esc",
	sdl.CONTROLLER_BUTTON_BACK:          "esc",
}

// KeyName returns the keymap name of an SDL keyboard event.
// Printable characters arrive as text input events instead.
func KeyName(e *sdl.KeyboardEvent) (string, bool) {
	name, ok := keyNames[e.Keysym.Sym]
	if !ok {
		return "", false
	}
	if name == "tab" && e.Keysym.Mod&uint16(sdl.KMOD_SHIFT) != 0 {
		return "shift+tab", true
	}
	return name, true
}

// ButtonName returns the keymap name of a game controller button.
func ButtonName(e *sdl.ControllerButtonEvent) (string, bool) {
	name, ok := buttonNames[sdl.GameControllerButton(e.Button)]
	return name, ok
}

// Text returns the text carried by a text input event.
func Text(event sdl.Event) (string, bool) {
	e, ok := event.(*sdl.TextInputEvent)
	if !ok {
		return "", false
	}
	return e.GetText(), true
}

// Decoder turns SDL events into commands for one widget at a time.
type Decoder struct {
	keymap *keymap.Keymap
	repeat input.DirectionalInput
	part   constants.Part
}

// NewDecoder creates a Decoder. A nil keymap uses keymap.Default().
func NewDecoder(k *keymap.Keymap, repeat input.DirectionalInput) *Decoder {
	if k == nil {
		k = keymap.Default()
	}
	return &Decoder{keymap: k, repeat: repeat}
}

// Decode resolves event for the widget part that has focus. ok is false for
// events that carry no command; text input the keymap does not bind is left
// to the host, see Text.
func (d *Decoder) Decode(part constants.Part, event sdl.Event, now time.Time) (cmd constants.Command, arg string, ok bool) {
	if part != d.part {
		d.repeat.Reset()
		d.part = part
	}

	var name string
	var pressed bool

	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return constants.CommandUnassigned, "", false
		}
		name, ok = KeyName(e)
		pressed = e.State == sdl.PRESSED
	case *sdl.ControllerButtonEvent:
		name, ok = ButtonName(e)
		pressed = e.State == sdl.PRESSED
	case *sdl.TextInputEvent:
		name, ok = e.GetText(), true
		pressed = true
	default:
		return constants.CommandUnassigned, "", false
	}
	if !ok {
		return constants.CommandUnassigned, "", false
	}

	cmd, arg = d.keymap.Decode(part, name)
	if cmd == constants.CommandUnassigned {
		return cmd, "", false
	}

	d.repeat.SetHeld(cmd, pressed, now)
	if !pressed {
		return constants.CommandUnassigned, "", false
	}
	return cmd, arg, true
}

// Repeat returns the held navigation command when it is due to repeat.
func (d *Decoder) Repeat(now time.Time) (constants.Command, bool) {
	cmd := d.repeat.Update(now)
	return cmd, cmd != constants.CommandUnassigned
}
