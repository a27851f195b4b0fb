// Package input turns raw, stateful input streams into semantic widget
// commands: held navigation keys that repeat, and typed characters that
// accumulate into a typeahead query.
package input

import (
	"time"

	"github.com/BrandonKowalski/popuplist/pkg/popuplist/constants"
)

// DirectionalInput tracks held navigation keys and handles repeat timing.
// Sources that only report press and release (SDL, game controllers) embed
// this to get the same repeat behavior as a terminal.
type DirectionalInput struct {
	held struct {
		previous, next bool
	}
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
}

// NewDirectionalInput creates a DirectionalInput with default timing.
// Default delay is 300ms before first repeat, then 50ms between repeats.
func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithTiming(constants.DefaultRepeatDelay, constants.DefaultRepeatInterval)
}

// NewDirectionalInputWithTiming creates a DirectionalInput with custom timing.
func NewDirectionalInputWithTiming(delay, interval time.Duration) DirectionalInput {
	return DirectionalInput{
		repeatDelay:    delay,
		repeatInterval: interval,
		lastRepeatTime: time.Now(),
	}
}

// SetHeld updates the held state for a navigation command at now.
// Returns true if the command repeats while held.
func (d *DirectionalInput) SetHeld(cmd constants.Command, held bool, now time.Time) bool {
	switch cmd {
	case constants.CommandPrevious:
		d.held.previous = held
	case constants.CommandNext:
		d.held.next = held
	default:
		return false
	}

	if held {
		d.lastRepeatTime = now
	}
	d.hasRepeated = false
	return true
}

// IsHeld returns true if any navigation key is currently held.
func (d *DirectionalInput) IsHeld() bool {
	return d.held.previous || d.held.next
}

// HeldCommand returns the command of the held key.
// If both are held, previous wins.
// Returns CommandUnassigned if nothing is held.
func (d *DirectionalInput) HeldCommand() constants.Command {
	if d.held.previous {
		return constants.CommandPrevious
	}
	if d.held.next {
		return constants.CommandNext
	}
	return constants.CommandUnassigned
}

// Update checks if a repeat should fire at now.
// Call this every frame. It returns the command to repeat, or
// CommandUnassigned if no repeat is due.
//
// The first repeat occurs after repeatDelay, subsequent repeats after repeatInterval.
func (d *DirectionalInput) Update(now time.Time) constants.Command {
	if !d.IsHeld() {
		d.lastRepeatTime = now
		d.hasRepeated = false
		return constants.CommandUnassigned
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if now.Sub(d.lastRepeatTime) >= threshold {
		d.lastRepeatTime = now
		d.hasRepeated = true
		return d.HeldCommand()
	}

	return constants.CommandUnassigned
}

// Reset clears all held keys and timing state.
func (d *DirectionalInput) Reset() {
	d.held.previous = false
	d.held.next = false
	d.hasRepeated = false
	d.lastRepeatTime = time.Now()
}
