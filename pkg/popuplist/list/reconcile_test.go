package list

import "testing"

func TestReconcile(t *testing.T) {
	tests := []struct {
		name       string
		items      []Item
		selected   Selection
		current    string
		hasCurrent bool
		moved      bool
		want       int
	}{
		{
			name:     "EmptyListHasNoActive",
			items:    nil,
			selected: SelectValue("b"),
			want:     None,
		},
		{
			name:       "KeepsSelectionAfterReorder",
			items:      items("c", "b", "a"),
			selected:   SelectValue("b"),
			current:    "b",
			hasCurrent: true,
			want:       1,
		},
		{
			name:       "SelectionBeatsCurrentWhenNotMoved",
			items:      items("a", "b", "c"),
			selected:   SelectValue("c"),
			current:    "a",
			hasCurrent: true,
			want:       2,
		},
		{
			name:       "CurrentWhenSelectionFilteredOut",
			items:      items("a", "c"),
			selected:   SelectValue("b"),
			current:    "c",
			hasCurrent: true,
			want:       1,
		},
		{
			name:     "FirstWhenNothingMatches",
			items:    items("x", "y"),
			selected: SelectValue("b"),
			want:     0,
		},
		{
			name:       "MovedKeepsCurrentOverSelection",
			items:      items("a", "b", "c"),
			selected:   SelectValue("b"),
			current:    "c",
			hasCurrent: true,
			moved:      true,
			want:       2,
		},
		{
			name:       "MovedFallsBackToFirst",
			items:      items("a", "b"),
			selected:   SelectValue("b"),
			current:    "c",
			hasCurrent: true,
			moved:      true,
			want:       0,
		},
		{
			name:     "UnsetSelectionNeverMatches",
			items:    items("a", ""),
			selected: SelectedByValue{},
			want:     0,
		},
		{
			name:     "IndexSelection",
			items:    items("a", "b", "c"),
			selected: SelectedByIndex(2),
			want:     2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reconcile(tt.items, tt.selected, tt.current, tt.hasCurrent, tt.moved)
			if got != tt.want {
				t.Errorf("Reconcile = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSelection(t *testing.T) {
	abc := items("a", "b", "c")

	t.Run("ByValue", func(t *testing.T) {
		if got := SelectValue("c").Index(abc); got != 2 {
			t.Errorf("expected 2, got %d", got)
		}
		if got := SelectValue("z").Index(abc); got != None {
			t.Errorf("expected None, got %d", got)
		}
		if (SelectedByValue{}).IsSet() {
			t.Error("zero value should be unset")
		}
	})

	t.Run("ByIndex", func(t *testing.T) {
		if got := SelectedByIndex(1).Index(abc); got != 1 {
			t.Errorf("expected 1, got %d", got)
		}
		if got := SelectedByIndex(3).Index(abc); got != None {
			t.Errorf("expected None for out of range, got %d", got)
		}
		if got := Unselected.Index(abc); got != None {
			t.Errorf("expected None, got %d", got)
		}
	})
}
