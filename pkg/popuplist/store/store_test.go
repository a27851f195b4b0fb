package store

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type counter struct {
	N     int
	Label string
}

func TestStore(t *testing.T) {
	t.Run("SubscribeReceivesCurrent", func(t *testing.T) {
		s := New(counter{N: 1})
		var got []int
		s.Subscribe(func(c counter) { got = append(got, c.N) })

		if diff := cmp.Diff([]int{1}, got); diff != "" {
			t.Errorf("notifications mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("UpdateNotifiesSynchronously", func(t *testing.T) {
		s := New(counter{})
		var got []counter
		s.Subscribe(func(c counter) { got = append(got, c) })

		s.Update(func(c *counter) { c.N = 2 })
		s.Update(func(c *counter) { c.Label = "two" })

		want := []counter{{}, {N: 2}, {N: 2, Label: "two"}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("notifications mismatch (-want +got):\n%s", diff)
		}
		if s.Get().Label != "two" {
			t.Errorf("expected label two, got %q", s.Get().Label)
		}
	})

	t.Run("Unsubscribe", func(t *testing.T) {
		s := New(counter{})
		calls := 0
		unsubscribe := s.Subscribe(func(counter) { calls++ })
		other := 0
		s.Subscribe(func(counter) { other++ })

		unsubscribe()
		s.Set(counter{N: 5})

		if calls != 1 {
			t.Errorf("expected 1 call after unsubscribe, got %d", calls)
		}
		if other != 2 {
			t.Errorf("remaining subscriber expected 2 calls, got %d", other)
		}
	})
}

func TestUnsubscribeReleasesListeners(t *testing.T) {
	t.Run("ChurnDoesNotGrow", func(t *testing.T) {
		s := New(counter{})
		s.Subscribe(func(counter) {})
		for range 100 {
			unsubscribe := s.Subscribe(func(counter) {})
			unsubscribe()
			unsubscribe()
		}
		if got := s.listeners.len(); got != 1 {
			t.Errorf("expected 1 listener left, got %d", got)
		}
	})

	t.Run("RemovedDuringNotify", func(t *testing.T) {
		s := New(counter{})
		var order []string
		var removeSecond func()
		s.Subscribe(func(c counter) {
			order = append(order, "first")
			if c.N == 1 {
				removeSecond()
			}
		})
		removeSecond = s.Subscribe(func(counter) { order = append(order, "second") })
		s.Subscribe(func(counter) { order = append(order, "third") })

		order = nil
		s.Set(counter{N: 1})
		if diff := cmp.Diff([]string{"first", "third"}, order); diff != "" {
			t.Errorf("notification order mismatch (-want +got):\n%s", diff)
		}
		if got := s.listeners.len(); got != 2 {
			t.Errorf("expected 2 listeners, got %d", got)
		}
	})

	t.Run("Derived", func(t *testing.T) {
		d := Derive(New(counter{}), func(c counter) int { return c.N })
		for range 10 {
			d.Subscribe(func(int) {})()
		}
		if got := d.listeners.len(); got != 0 {
			t.Errorf("expected no listeners, got %d", got)
		}
	})
}

func TestDerive(t *testing.T) {
	s := New(counter{N: 1, Label: "one"})
	d := Derive(s, func(c counter) int { return c.N * 10 })

	var got []int
	unsubscribe := d.Subscribe(func(v int) { got = append(got, v) })

	s.Update(func(c *counter) { c.N = 2 })
	s.Update(func(c *counter) { c.Label = "still two" })
	unsubscribe()
	s.Update(func(c *counter) { c.N = 3 })

	if diff := cmp.Diff([]int{10, 20, 20}, got); diff != "" {
		t.Errorf("projection mismatch (-want +got):\n%s", diff)
	}
	if d.Get() != 30 {
		t.Errorf("expected latest projection 30, got %d", d.Get())
	}
}
