package popuplist

// SelectEvent is emitted when an item is committed as the selection.
type SelectEvent struct {
	Index int    // Position of the item at the time of selection
	ID    string // Stable id of the item's node
	Value string // Item value
}

// MenuView is the read-only projection a Menu pushes to subscribers.
type MenuView struct {
	Active   int    // Index of the active item, or list.None
	Expanded bool   // Whether the menu is open
	Value    string // Value of the active item, empty when none is active
}

// ComboboxView is the read-only projection a Combobox pushes to subscribers.
type ComboboxView struct {
	Expanded     bool
	Selected     string // Committed value, meaningful only when HasSelection
	HasSelection bool
	Filter       string
	Active       int    // Index of the active item, or list.None
	ActiveValue  string // Value of the active item, empty when none is active
}
