package list

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Registry is the ordered set of mounted items, keyed by id.
// Insertion order is mount order; updating an existing id keeps its position.
//
// Items returns an immutable snapshot that is rebuilt on every mutation, so a
// snapshot handed to observers never changes underneath them.
type Registry struct {
	items    *orderedmap.OrderedMap[string, Item]
	snapshot []Item
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		items:    orderedmap.New[string, Item](),
		snapshot: []Item{},
	}
}

// Upsert registers the item with id, or updates its value and disabled flag in
// place. It reports whether anything changed; identical input is a no-op.
func (r *Registry) Upsert(id, value string, disabled bool) bool {
	next := Item{ID: id, Value: value, Disabled: disabled}
	if existing, ok := r.items.Get(id); ok && existing == next {
		return false
	}
	r.items.Set(id, next)
	r.rebuild()
	return true
}

// Remove deletes the item with id and returns the index it occupied.
func (r *Registry) Remove(id string) (int, bool) {
	index := IndexOfID(r.snapshot, id)
	if index == None {
		return None, false
	}
	r.items.Delete(id)
	r.rebuild()
	return index, true
}

// Get returns the item registered under id.
func (r *Registry) Get(id string) (Item, bool) {
	return r.items.Get(id)
}

// Items returns the current ordered snapshot. Callers must not modify it.
func (r *Registry) Items() []Item {
	return r.snapshot
}

// Len returns the number of registered items.
func (r *Registry) Len() int {
	return r.items.Len()
}

func (r *Registry) rebuild() {
	snapshot := make([]Item, 0, r.items.Len())
	for pair := r.items.Oldest(); pair != nil; pair = pair.Next() {
		snapshot = append(snapshot, pair.Value)
	}
	r.snapshot = snapshot
}

// RemovePolicy decides what happens to an active index that pointed at a removed item.
type RemovePolicy int

const (
	// RemoveClears turns the active index into None.
	RemoveClears RemovePolicy = iota
	// RemoveClamps keeps the active index, clamped into the shortened list.
	RemoveClamps
)

// ActiveAfterRemove recomputes the active index after the item at removed was
// deleted, leaving length items. An active index past the removed slot shifts
// down so it keeps addressing the same item.
func ActiveAfterRemove(active, removed, length int, policy RemovePolicy) int {
	switch {
	case active == None || removed > active:
		return active
	case length == 0:
		return None
	case removed < active:
		return active - 1
	case policy == RemoveClears:
		return None
	case active >= length:
		return length - 1
	default:
		return active
	}
}
