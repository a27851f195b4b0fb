package list

// Reconcile picks the active index once the host has re-rendered items for a
// new filter. current is the value that was active (or selected) before the
// filter changed; hasCurrent is false when there was none.
//
// If the user moved the cursor, keep the item they moved to. Otherwise keep
// the committed selection, then the previous item. Fall back to the top of
// the list, or None when nothing matched the filter.
func Reconcile(items []Item, selected Selection, current string, hasCurrent, moved bool) int {
	if len(items) == 0 {
		return None
	}

	currentIndex := None
	if hasCurrent {
		currentIndex = IndexOfValue(items, current)
	}

	if moved {
		if currentIndex == None {
			return 0
		}
		return currentIndex
	}

	if selectedIndex := selected.Index(items); selectedIndex != None {
		return selectedIndex
	}
	if currentIndex != None {
		return currentIndex
	}
	return 0
}
