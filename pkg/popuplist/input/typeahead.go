package input

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/BrandonKowalski/popuplist/pkg/popuplist/constants"
)

// Typeahead accumulates typed characters into a search query.
// A pause longer than the timeout starts a new query.
type Typeahead struct {
	timeout time.Duration
	query   string
	last    time.Time
}

// NewTypeahead creates a Typeahead. A non-positive timeout uses the default.
func NewTypeahead(timeout time.Duration) *Typeahead {
	if timeout <= 0 {
		timeout = constants.DefaultTypeaheadTimeout
	}
	return &Typeahead{timeout: timeout}
}

// Add appends text typed at now and returns the query to search for.
// A query of one repeated character searches for that character alone, so
// pressing the same key again moves on to the next match.
func (t *Typeahead) Add(text string, now time.Time) string {
	if t.query != "" && now.Sub(t.last) > t.timeout {
		t.query = ""
	}
	t.query += text
	t.last = now

	if r, size := utf8.DecodeRuneInString(t.query); size > 0 && strings.Count(t.query, string(r))*size == len(t.query) {
		return string(r)
	}
	return t.query
}

// Query returns the accumulated query.
func (t *Typeahead) Query() string {
	return t.query
}

// Reset discards the accumulated query.
func (t *Typeahead) Reset() {
	t.query = ""
}
