package constants

// Indicator glyphs for hosts that draw the popup list as text.
const (
	ActivePointer = "›" // Marks the active item
	Check         = "✓" // Marks the selected item
	ChevronDown   = "▾" // Collapsed trigger
	ChevronUp     = "▴" // Expanded trigger
	Disabled      = "·" // Prefix for disabled items
)
