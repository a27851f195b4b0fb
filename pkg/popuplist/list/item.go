// Package list holds the state-independent core of the popup list widgets:
// the item registry, the cyclic cursor, the typeahead search and the filter
// reconciliation policy. Everything here is pure or owns only its own data;
// notification is the caller's job.
package list

// None marks the absence of an active item.
const None = -1

// Item is a single registered entry of a popup list.
// ID is stable for the lifetime of the mounted node. Value is the text used
// for display, matching and equality and need not be unique.
type Item struct {
	ID       string
	Value    string
	Disabled bool
}

// IndexOfValue returns the index of the first item whose Value equals value, or None.
func IndexOfValue(items []Item, value string) int {
	for i, item := range items {
		if item.Value == value {
			return i
		}
	}
	return None
}

// IndexOfID returns the index of the item with the given id, or None.
func IndexOfID(items []Item, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return None
}

// InRange reports whether index addresses an item.
func InRange(items []Item, index int) bool {
	return index >= 0 && index < len(items)
}
