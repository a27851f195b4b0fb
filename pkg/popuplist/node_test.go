package popuplist

// testNode implements every optional node capability and records what the
// widgets do to it.
type testNode struct {
	id      string
	attrs   map[string]string
	value   string
	text    string
	focused int
	events  []SelectEvent

	keyHandlers   []func(string) bool
	clickHandlers []func(string)
	outsideClicks []func(string)
	inputHandlers []func(string)
	moveHandlers  []func(string)
	outHandlers   []func()
	focusHandlers []func()
}

func newTestNode(id string) *testNode {
	return &testNode{id: id, attrs: make(map[string]string)}
}

func (n *testNode) ID() string                      { return n.id }
func (n *testNode) SetID(id string)                 { n.id = id }
func (n *testNode) SetAttribute(name, value string) { n.attrs[name] = value }
func (n *testNode) RemoveAttribute(name string)     { delete(n.attrs, name) }
func (n *testNode) SetValue(value string)           { n.value = value }
func (n *testNode) Focus()                          { n.focused++ }
func (n *testNode) DispatchEvent(e SelectEvent)     { n.events = append(n.events, e) }
func (n *testNode) TextContent() string             { return n.text }

func (n *testNode) OnKey(handler func(string) bool) func() {
	return register(&n.keyHandlers, handler)
}

func (n *testNode) OnClick(handler func(string)) func() {
	return register(&n.clickHandlers, handler)
}

func (n *testNode) OnClickOutside(handler func(string)) func() {
	return register(&n.outsideClicks, handler)
}

func (n *testNode) OnInput(handler func(string)) func() {
	return register(&n.inputHandlers, handler)
}

func (n *testNode) OnPointerMove(handler func(string)) func() {
	return register(&n.moveHandlers, handler)
}

func (n *testNode) OnPointerOut(handler func()) func() {
	return register(&n.outHandlers, handler)
}

func (n *testNode) OnFocus(handler func()) func() {
	return register(&n.focusHandlers, handler)
}

func register[F any](handlers *[]F, handler F) func() {
	*handlers = append(*handlers, handler)
	idx := len(*handlers) - 1
	return func() {
		var zero F
		(*handlers)[idx] = zero
	}
}

// press delivers key and reports whether any handler consumed it.
func (n *testNode) press(key string) bool {
	consumed := false
	for _, h := range n.keyHandlers {
		if h != nil && h(key) {
			consumed = true
		}
	}
	return consumed
}

func (n *testNode) click(targetID string) {
	for _, h := range n.clickHandlers {
		if h != nil {
			h(targetID)
		}
	}
}

func (n *testNode) clickOutside(targetID string) {
	for _, h := range n.outsideClicks {
		if h != nil {
			h(targetID)
		}
	}
}

func (n *testNode) input(text string) {
	n.value = text
	for _, h := range n.inputHandlers {
		if h != nil {
			h(text)
		}
	}
}

func (n *testNode) pointerMove(targetID string) {
	for _, h := range n.moveHandlers {
		if h != nil {
			h(targetID)
		}
	}
}

func (n *testNode) pointerOut() {
	for _, h := range n.outHandlers {
		if h != nil {
			h()
		}
	}
}

func (n *testNode) focus() {
	for _, h := range n.focusHandlers {
		if h != nil {
			h()
		}
	}
}

// plainNode has an identity and nothing else.
type plainNode struct{ id string }

func (n *plainNode) ID() string      { return n.id }
func (n *plainNode) SetID(id string) { n.id = id }
