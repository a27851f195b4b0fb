package keymap

import "github.com/BrandonKowalski/popuplist/pkg/popuplist/constants"

// Default returns the standard bindings.
//
// The combobox input keeps printable keys for text editing. The menu trigger
// opens onto the last item with up and the first with down. The open menu
// swallows tab and searches on printable characters.
func Default() *Keymap {
	k := New()

	k.Bind(constants.PartComboboxInput, "enter", constants.CommandConfirm).
		Bind(constants.PartComboboxInput, "esc", constants.CommandClose).
		Bind(constants.PartComboboxInput, "home", constants.CommandFirst).
		Bind(constants.PartComboboxInput, "end", constants.CommandLast).
		Bind(constants.PartComboboxInput, "up", constants.CommandPrevious).
		Bind(constants.PartComboboxInput, "down", constants.CommandNext).
		Bind(constants.PartComboboxInput, "tab", constants.CommandTab)

	k.Bind(constants.PartMenuButton, "space", constants.CommandToggle).
		Bind(constants.PartMenuButton, "enter", constants.CommandToggle).
		Bind(constants.PartMenuButton, "up", constants.CommandLast).
		Bind(constants.PartMenuButton, "down", constants.CommandFirst)

	k.Bind(constants.PartMenuItems, "space", constants.CommandSelect).
		Bind(constants.PartMenuItems, "enter", constants.CommandSelect).
		Bind(constants.PartMenuItems, "esc", constants.CommandClose).
		Bind(constants.PartMenuItems, "home", constants.CommandFirst).
		Bind(constants.PartMenuItems, "pgup", constants.CommandFirst).
		Bind(constants.PartMenuItems, "end", constants.CommandLast).
		Bind(constants.PartMenuItems, "pgdown", constants.CommandLast).
		Bind(constants.PartMenuItems, "up", constants.CommandPrevious).
		Bind(constants.PartMenuItems, "down", constants.CommandNext).
		Bind(constants.PartMenuItems, "tab", constants.CommandIgnore).
		Typeahead(constants.PartMenuItems, true)

	return k
}
