package list

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistry(t *testing.T) {
	t.Run("AppendInMountOrder", func(t *testing.T) {
		r := NewRegistry()
		r.Upsert("1", "alpha", false)
		r.Upsert("2", "beta", true)
		r.Upsert("3", "gamma", false)

		want := []Item{
			{ID: "1", Value: "alpha"},
			{ID: "2", Value: "beta", Disabled: true},
			{ID: "3", Value: "gamma"},
		}
		if diff := cmp.Diff(want, r.Items()); diff != "" {
			t.Errorf("items mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("UpdateKeepsPosition", func(t *testing.T) {
		r := NewRegistry()
		r.Upsert("1", "alpha", false)
		r.Upsert("2", "beta", false)
		if !r.Upsert("1", "aleph", true) {
			t.Fatal("expected update to report a change")
		}

		want := []Item{
			{ID: "1", Value: "aleph", Disabled: true},
			{ID: "2", Value: "beta"},
		}
		if diff := cmp.Diff(want, r.Items()); diff != "" {
			t.Errorf("items mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("IdenticalUpsertIsNoop", func(t *testing.T) {
		r := NewRegistry()
		r.Upsert("1", "alpha", false)
		r.Upsert("2", "beta", false)
		before := r.Items()

		if r.Upsert("1", "alpha", false) {
			t.Error("identical upsert reported a change")
		}
		if r.Len() != 2 {
			t.Errorf("expected len 2, got %d", r.Len())
		}
		if diff := cmp.Diff(before, r.Items()); diff != "" {
			t.Errorf("items changed (-before +after):\n%s", diff)
		}
	})

	t.Run("SnapshotsAreImmutable", func(t *testing.T) {
		r := NewRegistry()
		r.Upsert("1", "alpha", false)
		snapshot := r.Items()

		r.Upsert("1", "omega", false)
		r.Upsert("2", "beta", false)

		if len(snapshot) != 1 || snapshot[0].Value != "alpha" {
			t.Errorf("old snapshot changed: %+v", snapshot)
		}
	})

	t.Run("Remove", func(t *testing.T) {
		r := NewRegistry()
		r.Upsert("1", "alpha", false)
		r.Upsert("2", "beta", false)
		r.Upsert("3", "gamma", false)

		index, ok := r.Remove("2")
		if !ok || index != 1 {
			t.Errorf("Remove = (%d, %v), want (1, true)", index, ok)
		}
		if _, ok := r.Remove("2"); ok {
			t.Error("removing twice should report false")
		}
		if _, ok := r.Get("2"); ok {
			t.Error("removed item still registered")
		}

		want := []Item{{ID: "1", Value: "alpha"}, {ID: "3", Value: "gamma"}}
		if diff := cmp.Diff(want, r.Items()); diff != "" {
			t.Errorf("items mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestActiveAfterRemove(t *testing.T) {
	tests := []struct {
		name    string
		active  int
		removed int
		length  int
		policy  RemovePolicy
		want    int
	}{
		{"NoActive", None, 0, 3, RemoveClamps, None},
		{"RemovedAfterActive", 1, 2, 3, RemoveClamps, 1},
		{"RemovedBeforeActive", 2, 0, 3, RemoveClamps, 1},
		{"RemovedActiveClamps", 1, 1, 3, RemoveClamps, 1},
		{"RemovedLastActiveClamps", 3, 3, 3, RemoveClamps, 2},
		{"RemovedActiveClears", 1, 1, 3, RemoveClears, None},
		{"RemovedOnlyItem", 0, 0, 0, RemoveClamps, None},
		{"RemovedBeforeActiveClears", 2, 1, 3, RemoveClears, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ActiveAfterRemove(tt.active, tt.removed, tt.length, tt.policy)
			if got != tt.want {
				t.Errorf("ActiveAfterRemove(%d, %d, %d) = %d, want %d",
					tt.active, tt.removed, tt.length, got, tt.want)
			}
		})
	}
}
