package main

import (
	"github.com/BrandonKowalski/popuplist/pkg/popuplist"
)

// host tracks which mounted node has keyboard focus. Keys from the terminal
// are delivered to that node.
type host struct {
	focused *termNode
	nodes   []*termNode // nodes listening for outside clicks
}

// termNode is a terminal-side stand-in for a widget part. It records the
// reflected attributes and forwards events to whatever the widget attached.
type termNode struct {
	id    string
	host  *host
	attrs map[string]string

	keyHandlers   []func(string) bool
	inputHandlers []func(string)
	clickHandlers []func(string)
	outsideClicks []func(string)
	focusHandlers []func()

	onValue func(string)
	onEvent func(popuplist.SelectEvent)
}

func (h *host) newNode(id string) *termNode {
	return &termNode{id: id, host: h, attrs: make(map[string]string)}
}

// clickOutside tells every node that a click landed on targetID, which is
// outside all of them. An empty targetID means outside the terminal.
func (h *host) clickOutside(targetID string) {
	for _, n := range h.nodes {
		if n.id == targetID {
			continue
		}
		for _, fn := range n.outsideClicks {
			if fn != nil {
				fn(targetID)
			}
		}
	}
}

func (n *termNode) ID() string                      { return n.id }
func (n *termNode) SetID(id string)                 { n.id = id }
func (n *termNode) SetAttribute(name, value string) { n.attrs[name] = value }
func (n *termNode) RemoveAttribute(name string)     { delete(n.attrs, name) }

func (n *termNode) Focus() {
	n.host.focused = n
	for _, h := range n.focusHandlers {
		if h != nil {
			h()
		}
	}
}

func (n *termNode) SetValue(value string) {
	if n.onValue != nil {
		n.onValue(value)
	}
}

func (n *termNode) DispatchEvent(event popuplist.SelectEvent) {
	if n.onEvent != nil {
		n.onEvent(event)
	}
}

func (n *termNode) OnKey(handler func(string) bool) func() {
	return addHandler(&n.keyHandlers, handler)
}

func (n *termNode) OnInput(handler func(string)) func() {
	return addHandler(&n.inputHandlers, handler)
}

func (n *termNode) OnClick(handler func(string)) func() {
	return addHandler(&n.clickHandlers, handler)
}

func (n *termNode) OnClickOutside(handler func(string)) func() {
	if len(n.outsideClicks) == 0 {
		n.host.nodes = append(n.host.nodes, n)
	}
	return addHandler(&n.outsideClicks, handler)
}

func (n *termNode) OnFocus(handler func()) func() {
	return addHandler(&n.focusHandlers, handler)
}

func addHandler[F any](handlers *[]F, handler F) func() {
	*handlers = append(*handlers, handler)
	idx := len(*handlers) - 1
	return func() {
		var zero F
		(*handlers)[idx] = zero
	}
}

// press delivers a key name and reports whether the widget consumed it.
func (n *termNode) press(key string) bool {
	consumed := false
	for _, h := range n.keyHandlers {
		if h != nil && h(key) {
			consumed = true
		}
	}
	return consumed
}

func (n *termNode) input(text string) {
	for _, h := range n.inputHandlers {
		if h != nil {
			h(text)
		}
	}
}
