package input

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/popuplist/pkg/popuplist/constants"
)

func TestDirectionalInput(t *testing.T) {
	start := time.Unix(1000, 0)

	t.Run("IgnoresNonNavigation", func(t *testing.T) {
		d := NewDirectionalInput()
		if d.SetHeld(constants.CommandSelect, true, start) {
			t.Error("select should not repeat")
		}
		if d.IsHeld() {
			t.Error("nothing should be held")
		}
	})

	t.Run("RepeatTiming", func(t *testing.T) {
		d := NewDirectionalInputWithTiming(300*time.Millisecond, 50*time.Millisecond)
		d.SetHeld(constants.CommandNext, true, start)

		if got := d.Update(start.Add(299 * time.Millisecond)); got != constants.CommandUnassigned {
			t.Errorf("expected no repeat before delay, got %v", got)
		}
		if got := d.Update(start.Add(300 * time.Millisecond)); got != constants.CommandNext {
			t.Errorf("expected next after delay, got %v", got)
		}
		if got := d.Update(start.Add(340 * time.Millisecond)); got != constants.CommandUnassigned {
			t.Errorf("expected no repeat before interval, got %v", got)
		}
		if got := d.Update(start.Add(350 * time.Millisecond)); got != constants.CommandNext {
			t.Errorf("expected next after interval, got %v", got)
		}
	})

	t.Run("ReleaseStopsRepeat", func(t *testing.T) {
		d := NewDirectionalInputWithTiming(10*time.Millisecond, 10*time.Millisecond)
		d.SetHeld(constants.CommandPrevious, true, start)
		d.SetHeld(constants.CommandPrevious, false, start)

		if got := d.Update(start.Add(time.Second)); got != constants.CommandUnassigned {
			t.Errorf("expected no repeat after release, got %v", got)
		}
	})

	t.Run("PreviousWins", func(t *testing.T) {
		d := NewDirectionalInput()
		d.SetHeld(constants.CommandNext, true, start)
		d.SetHeld(constants.CommandPrevious, true, start)
		if got := d.HeldCommand(); got != constants.CommandPrevious {
			t.Errorf("expected previous, got %v", got)
		}
		d.Reset()
		if d.IsHeld() {
			t.Error("expected nothing held after reset")
		}
	})
}

func TestTypeahead(t *testing.T) {
	start := time.Unix(1000, 0)
	ta := NewTypeahead(500 * time.Millisecond)

	if got := ta.Add("a", start); got != "a" {
		t.Errorf("expected a, got %q", got)
	}
	if got := ta.Add("v", start.Add(400*time.Millisecond)); got != "av" {
		t.Errorf("expected av, got %q", got)
	}
	if got := ta.Add("b", start.Add(1000*time.Millisecond)); got != "b" {
		t.Errorf("expected new query b after pause, got %q", got)
	}

	ta.Reset()
	for i, want := range []string{"é", "é", "é"} {
		if got := ta.Add("é", start.Add(time.Duration(2000+i*100)*time.Millisecond)); got != want {
			t.Errorf("press %d: expected repeated key to search %q, got %q", i+1, want, got)
		}
	}
	if ta.Query() != "ééé" {
		t.Errorf("expected accumulated query ééé, got %q", ta.Query())
	}

	ta.Reset()
	if ta.Query() != "" {
		t.Errorf("expected empty query after reset, got %q", ta.Query())
	}

	if NewTypeahead(0).timeout != constants.DefaultTypeaheadTimeout {
		t.Error("expected default timeout")
	}
}
