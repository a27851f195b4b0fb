package list

// Selection is a committed choice, resolved against the current items.
//
// The combobox selects by value, which survives filtering and reordering.
// The menu selects by index, which is only meaningful while the items at that
// index keep their identity.
type Selection interface {
	// Index returns the position of the selected item in items, or None.
	Index(items []Item) int
}

// SelectedByValue selects the first item carrying Value.
// The zero value means nothing is selected.
type SelectedByValue struct {
	Value string
	set   bool
}

// SelectValue returns a selection of value.
func SelectValue(value string) SelectedByValue {
	return SelectedByValue{Value: value, set: true}
}

// IsSet reports whether a value has been selected.
func (s SelectedByValue) IsSet() bool {
	return s.set
}

func (s SelectedByValue) Index(items []Item) int {
	if !s.set {
		return None
	}
	return IndexOfValue(items, s.Value)
}

// SelectedByIndex selects the item at a position.
type SelectedByIndex int

// Unselected is the SelectedByIndex with nothing selected.
const Unselected SelectedByIndex = None

func (s SelectedByIndex) Index(items []Item) int {
	if !InRange(items, int(s)) {
		return None
	}
	return int(s)
}
