package list

import (
	"strings"

	"golang.org/x/text/cases"
)

// Search finds the first enabled item whose value starts with query, ignoring
// case. The scan starts just past active and wraps once, so repeated queries
// walk through every match. An empty query or no match returns None.
func Search(items []Item, active int, query string) int {
	n := len(items)
	if n == 0 || query == "" {
		return None
	}

	fold := cases.Fold()
	prefix := fold.String(query)

	for i := 0; i < n; i++ {
		index := (active + 1 + i) % n
		item := items[index]
		if item.Disabled {
			continue
		}
		if strings.HasPrefix(fold.String(item.Value), prefix) {
			return index
		}
	}
	return None
}
