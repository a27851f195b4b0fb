// Package evdevinput reads keys straight from a Linux input device, for
// hosts that run without a windowing system.
package evdevinput

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/popuplist/pkg/popuplist"
)

// ErrAlreadyRunning is returned when Run is called on a Source that is
// already reading.
var ErrAlreadyRunning = errors.New("source already running")

const (
	valueReleased = 0
	valuePressed  = 1
	valueRepeated = 2
)

var keyNames = map[evdev.EvCode]string{
	evdev.KEY_UP:        "up",
	evdev.KEY_DOWN:      "down",
	evdev.KEY_LEFT:      "left",
	evdev.KEY_RIGHT:     "right",
	evdev.KEY_HOME:      "home",
	evdev.KEY_END:       "end",
	evdev.KEY_PAGEUP:    "pgup",
	evdev.KEY_PAGEDOWN:  "pgdown",
	evdev.KEY_ENTER:     "enter",
	evdev.KEY_KPENTER:   "enter",
	evdev.KEY_SPACE:     "space",
	evdev.KEY_ESC:       "esc",
	evdev.KEY_TAB:       "tab",
	evdev.KEY_BACKSPACE: "backspace",

	evdev.BTN_DPAD_UP:    "up",
	evdev.BTN_DPAD_DOWN:  "down",
	evdev.BTN_DPAD_LEFT:  "left",
	evdev.BTN_DPAD_RIGHT: "right",
	evdev.BTN_SOUTH:      "enter",
	evdev.BTN_EAST:       "esc",
	evdev.BTN_START:      "enter",
	evdev.BTN_SELECT:     "esc",
	evdev.BTN_TL:         "pgup",
	evdev.BTN_TR:         "pgdown",

	evdev.KEY_A: "a", evdev.KEY_B: "b", evdev.KEY_C: "c", evdev.KEY_D: "d",
	evdev.KEY_E: "e", evdev.KEY_F: "f", evdev.KEY_G: "g", evdev.KEY_H: "h",
	evdev.KEY_I: "i", evdev.KEY_J: "j", evdev.KEY_K: "k", evdev.KEY_L: "l",
	evdev.KEY_M: "m", evdev.KEY_N: "n", evdev.KEY_O: "o", evdev.KEY_P: "p",
	evdev.KEY_Q: "q", evdev.KEY_R: "r", evdev.KEY_S: "s", evdev.KEY_T: "t",
	evdev.KEY_U: "u", evdev.KEY_V: "v", evdev.KEY_W: "w", evdev.KEY_X: "x",
	evdev.KEY_Y: "y", evdev.KEY_Z: "z",
	evdev.KEY_0: "0", evdev.KEY_1: "1", evdev.KEY_2: "2", evdev.KEY_3: "3",
	evdev.KEY_4: "4", evdev.KEY_5: "5", evdev.KEY_6: "6", evdev.KEY_7: "7",
	evdev.KEY_8: "8", evdev.KEY_9: "9",
}

// KeyName returns the keymap name of a key code. Letters are reported in
// lower case; shift is only tracked for shift+tab.
func KeyName(code evdev.EvCode, shift bool) (string, bool) {
	name, ok := keyNames[code]
	if ok && shift && name == "tab" {
		return "shift+tab", true
	}
	return name, ok
}

// Key is a named key press. Repeat is set for kernel autorepeat.
type Key struct {
	Name   string
	Repeat bool
}

// Source reads one input device.
type Source struct {
	path    string
	name    string
	dev     *evdev.InputDevice
	running atomic.Bool
	logger  *slog.Logger
}

// Open opens the input device at path, e.g. /dev/input/event1.
func Open(path string) (*Source, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, popuplist.NewSetupError("open_device", fmt.Errorf("%s: %w", path, err))
	}

	name, err := dev.Name()
	if err != nil {
		name = path
	}

	return &Source{
		path:   path,
		name:   name,
		dev:    dev,
		logger: popuplist.GetLogger().With("device", path),
	}, nil
}

// Name returns the device name reported by the kernel.
func (s *Source) Name() string {
	return s.name
}

// Run delivers key presses to keys until ctx is cancelled or the device
// fails. The device is closed when Run returns, so a Source runs once.
func (s *Source) Run(ctx context.Context, keys chan<- Key) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
		case <-stop:
		}
		// Unblocks ReadOne
		s.dev.Close()
	}()

	s.logger.Debug("Reading input device", "name", s.name)

	shift := false
	for {
		ev, err := s.dev.ReadOne()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Error("Failed to read input device", "error", err)
			return popuplist.NewSetupError("read_device", err)
		}

		if ev.Type != evdev.EV_KEY {
			continue
		}

		if ev.Code == evdev.KEY_LEFTSHIFT || ev.Code == evdev.KEY_RIGHTSHIFT {
			shift = ev.Value != valueReleased
			continue
		}

		if ev.Value != valuePressed && ev.Value != valueRepeated {
			continue
		}

		name, ok := KeyName(ev.Code, shift)
		if !ok {
			continue
		}

		select {
		case keys <- Key{Name: name, Repeat: ev.Value == valueRepeated}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
