package list

// First returns the index of the first enabled item, or None.
func First(items []Item) int {
	for i, item := range items {
		if !item.Disabled {
			return i
		}
	}
	return None
}

// Last returns the index of the last enabled item, or None.
func Last(items []Item) int {
	for i := len(items) - 1; i >= 0; i-- {
		if !items[i].Disabled {
			return i
		}
	}
	return None
}

// Next scans forward from just past active, wrapping once, for an enabled item.
// With no active item the scan starts at the top.
func Next(items []Item, active int) int {
	n := len(items)
	if n == 0 {
		return None
	}

	start := active + 1
	if active == None {
		start = 0
	}

	for i := 0; i < n; i++ {
		index := (start + i) % n
		if !items[index].Disabled {
			return index
		}
	}
	return None
}

// Previous scans backward from just before active, wrapping once, for an
// enabled item. With no active item the scan starts at the bottom.
func Previous(items []Item, active int) int {
	n := len(items)
	if n == 0 {
		return None
	}

	start := active - 1
	if active == None {
		start = n - 1
	}

	for i := 0; i < n; i++ {
		index := ((start-i)%n + n) % n
		if !items[index].Disabled {
			return index
		}
	}
	return None
}
