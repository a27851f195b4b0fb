package main

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/BrandonKowalski/popuplist/pkg/popuplist"
	"github.com/BrandonKowalski/popuplist/pkg/popuplist/input/evdevinput"
)

var deviceKeys = map[string]tea.KeyType{
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"home":      tea.KeyHome,
	"end":       tea.KeyEnd,
	"pgup":      tea.KeyPgUp,
	"pgdown":    tea.KeyPgDown,
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"backspace": tea.KeyBackspace,
}

// keyMsg turns a device key name back into the terminal key it stands for,
// so device and terminal input take the same path through the models.
func keyMsg(name string) tea.KeyMsg {
	if name == "space" {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	if t, ok := deviceKeys[name]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

// forwardDevice sends key presses from the input device at path to p until
// ctx is cancelled. The returned channel yields the reader's exit error.
func forwardDevice(ctx context.Context, path string, p *tea.Program) (<-chan error, error) {
	source, err := evdevinput.Open(path)
	if err != nil {
		return nil, err
	}
	popuplist.GetLogger().Debug("forwarding device keys", "device", source.Name())

	keys := make(chan evdevinput.Key)
	done := make(chan error, 1)

	go func() {
		defer close(keys)
		done <- source.Run(ctx, keys)
	}()
	go func() {
		for k := range keys {
			p.Send(keyMsg(k.Name))
		}
	}()

	return done, nil
}

// runProgram runs model until it quits, feeding it keys from device as well
// as the terminal when device is set.
func runProgram(model tea.Model, device string) error {
	p := tea.NewProgram(model, tea.WithReportFocus())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var done <-chan error
	if device != "" {
		var err error
		if done, err = forwardDevice(ctx, device, p); err != nil {
			return err
		}
	}

	if _, err := p.Run(); err != nil {
		return err
	}

	if done != nil {
		cancel()
		if err := <-done; err != nil && !errors.Is(err, context.Canceled) {
			popuplist.GetLogger().Warn("device reader stopped", "device", device, "error", err)
		}
	}
	return nil
}
