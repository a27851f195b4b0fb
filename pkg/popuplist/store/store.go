// Package store is the observer contract the widgets publish state through.
//
// A Store holds one state value. Set and Update replace it and synchronously
// call every subscriber with the new value before returning. There is no
// global registry: each widget owns its store.
//
// Stores are not safe for concurrent use. Like the widgets that own them,
// they are driven from the host's single update loop.
package store

import "slices"

type listener[T any] struct {
	fn      func(T)
	removed bool
}

// listeners keeps subscribers in subscription order.
type listeners[T any] struct {
	list []*listener[T]
}

func (ls *listeners[T]) add(fn func(T)) func() {
	l := &listener[T]{fn: fn}
	ls.list = append(ls.list, l)
	return func() {
		if l.removed {
			return
		}
		l.removed = true
		// A fresh slice leaves any notify loop in progress undisturbed
		ls.list = slices.DeleteFunc(slices.Clone(ls.list), func(o *listener[T]) bool { return o == l })
	}
}

func (ls *listeners[T]) notify(v T) {
	for _, l := range ls.list {
		if !l.removed {
			l.fn(v)
		}
	}
}

func (ls *listeners[T]) len() int {
	return len(ls.list)
}

// Store is a single-writer state container that notifies on changes.
type Store[S any] struct {
	state     S
	listeners listeners[S]
}

// New creates a store holding initial.
func New[S any](initial S) *Store[S] {
	return &Store[S]{state: initial}
}

// Get returns the current state.
func (s *Store[S]) Get() S {
	return s.state
}

// Set replaces the state and notifies subscribers.
func (s *Store[S]) Set(state S) {
	s.state = state
	s.notify()
}

// Update applies fn to a copy of the current state, stores the result and
// notifies subscribers. The copy is shallow: slices must be replaced, not
// modified in place.
func (s *Store[S]) Update(fn func(*S)) {
	next := s.state
	fn(&next)
	s.Set(next)
}

// Subscribe calls fn with the current state, then again after every change.
// The returned function removes the subscription.
func (s *Store[S]) Subscribe(fn func(S)) func() {
	remove := s.listeners.add(fn)
	fn(s.state)
	return remove
}

func (s *Store[S]) notify() {
	s.listeners.notify(s.state)
}

// Derived is a read-only projection of a store.
type Derived[V any] struct {
	value     V
	listeners listeners[V]
}

// Derive projects src through fn. The projection is recomputed and pushed to
// its own subscribers on every change of src.
func Derive[S, V any](src *Store[S], fn func(S) V) *Derived[V] {
	d := &Derived[V]{}
	src.Subscribe(func(state S) {
		d.value = fn(state)
		d.listeners.notify(d.value)
	})
	return d
}

// Get returns the latest projected value.
func (d *Derived[V]) Get() V {
	return d.value
}

// Subscribe calls fn with the current projection, then again after every
// change of the source. The returned function removes the subscription.
func (d *Derived[V]) Subscribe(fn func(V)) func() {
	remove := d.listeners.add(fn)
	fn(d.value)
	return remove
}
