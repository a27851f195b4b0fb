package popuplist

import (
	"github.com/BrandonKowalski/popuplist/pkg/popuplist/behavior"
)

// Node is a host element a widget part is mounted on. The interfaces below
// are optional capabilities; a part only uses the ones its node implements.
type Node = behavior.Node

// Attributes receives reflected accessibility attributes.
type Attributes interface {
	SetAttribute(name, value string)
	RemoveAttribute(name string)
}

// ValueSetter receives the combobox's selected value when the popup closes.
type ValueSetter interface {
	SetValue(value string)
}

// Focuser can take input focus.
type Focuser interface {
	Focus()
}

// EventDispatcher receives selection events from the part that owns them.
type EventDispatcher interface {
	DispatchEvent(event SelectEvent)
}

// TextContent supplies an item's value when ItemOptions.Value is empty.
type TextContent interface {
	TextContent() string
}

// KeyTarget delivers named keys (see package keymap). The handler reports
// whether the key was consumed.
type KeyTarget interface {
	OnKey(handler func(key string) bool) (remove func())
}

// ClickTarget delivers clicks. targetID is the id of the clicked descendant,
// or the node's own id.
type ClickTarget interface {
	OnClick(handler func(targetID string)) (remove func())
}

// OutsideClickTarget delivers clicks that land outside the node. targetID
// is the id of the element that was clicked, or empty when it has none.
type OutsideClickTarget interface {
	OnClickOutside(handler func(targetID string)) (remove func())
}

// InputTarget delivers edits of a text input.
type InputTarget interface {
	OnInput(handler func(text string)) (remove func())
}

// PointerTarget delivers pointer movement over descendants.
type PointerTarget interface {
	OnPointerMove(handler func(targetID string)) (remove func())
	OnPointerOut(handler func()) (remove func())
}

// FocusTarget delivers focus gained events.
type FocusTarget interface {
	OnFocus(handler func()) (remove func())
}
