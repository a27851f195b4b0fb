package popuplist

import (
	"strconv"

	"github.com/BrandonKowalski/popuplist/pkg/popuplist/behavior"
	"github.com/BrandonKowalski/popuplist/pkg/popuplist/constants"
	"github.com/BrandonKowalski/popuplist/pkg/popuplist/keymap"
	"github.com/BrandonKowalski/popuplist/pkg/popuplist/list"
)

// popupState is what attribute reflection needs from a widget's state.
type popupState interface {
	isExpanded() bool
	label() string
	controls() string
	activeItem() (list.Item, bool)
	itemByID(id string) (list.Item, bool)
}

func setAttribute(name, value string) behavior.Behavior {
	return func(node behavior.Node) func() {
		attrs, ok := node.(Attributes)
		if !ok {
			return nil
		}
		attrs.SetAttribute(name, value)
		return func() { attrs.RemoveAttribute(name) }
	}
}

func setRole(role string) behavior.Behavior {
	return setAttribute("role", role)
}

func setTabIndex(index int) behavior.Behavior {
	return setAttribute("tabindex", strconv.Itoa(index))
}

func setType(typ string) behavior.Behavior {
	return setAttribute("type", typ)
}

func setHasPopup() behavior.Behavior {
	return setAttribute("aria-haspopup", "true")
}

// reflectAttribute keeps name in sync with state. fn returning false removes it.
func reflectAttribute[S any](subscribe func(func(S)) func(), name string, fn func(node behavior.Node, state S) (string, bool)) behavior.Behavior {
	return func(node behavior.Node) func() {
		attrs, ok := node.(Attributes)
		if !ok {
			return nil
		}
		unsubscribe := subscribe(func(state S) {
			if value, ok := fn(node, state); ok {
				attrs.SetAttribute(name, value)
			} else {
				attrs.RemoveAttribute(name)
			}
		})
		return func() {
			unsubscribe()
			attrs.RemoveAttribute(name)
		}
	}
}

func reflectAriaLabel[S popupState](subscribe func(func(S)) func()) behavior.Behavior {
	return reflectAttribute(subscribe, "aria-label", func(_ behavior.Node, state S) (string, bool) {
		return state.label(), state.label() != ""
	})
}

func reflectAriaExpanded[S popupState](subscribe func(func(S)) func()) behavior.Behavior {
	return reflectAttribute(subscribe, "aria-expanded", func(_ behavior.Node, state S) (string, bool) {
		return strconv.FormatBool(state.isExpanded()), true
	})
}

func reflectAriaControls[S popupState](subscribe func(func(S)) func()) behavior.Behavior {
	return reflectAttribute(subscribe, "aria-controls", func(_ behavior.Node, state S) (string, bool) {
		return state.controls(), state.controls() != ""
	})
}

func reflectAriaActiveDescendant[S popupState](subscribe func(func(S)) func()) behavior.Behavior {
	return reflectAttribute(subscribe, "aria-activedescendant", func(_ behavior.Node, state S) (string, bool) {
		item, ok := state.activeItem()
		return item.ID, ok
	})
}

// reflectAriaDisabled is mounted on an item node and tracks that item.
func reflectAriaDisabled[S popupState](subscribe func(func(S)) func()) behavior.Behavior {
	return reflectAttribute(subscribe, "aria-disabled", func(node behavior.Node, state S) (string, bool) {
		item, ok := state.itemByID(node.ID())
		return "true", ok && item.Disabled
	})
}

// onExpandedChange calls fn on every change of the expanded flag after mount.
func onExpandedChange[S popupState](subscribe func(func(S)) func(), fn func(node behavior.Node, state S, expanded bool)) behavior.Behavior {
	return func(node behavior.Node) func() {
		initialized := false
		prev := false
		return subscribe(func(state S) {
			expanded := state.isExpanded()
			if initialized && expanded != prev {
				fn(node, state, expanded)
			}
			initialized = true
			prev = expanded
		})
	}
}

func focusOnClose[S popupState](subscribe func(func(S)) func()) behavior.Behavior {
	return onExpandedChange(subscribe, func(node behavior.Node, _ S, expanded bool) {
		if f, ok := node.(Focuser); ok && !expanded {
			f.Focus()
		}
	})
}

func focusOnExpanded[S popupState](subscribe func(func(S)) func()) behavior.Behavior {
	return onExpandedChange(subscribe, func(node behavior.Node, _ S, expanded bool) {
		if f, ok := node.(Focuser); ok && expanded {
			f.Focus()
		}
	})
}

// reflectSelectedValueOnClose writes the selected value into the input each
// time the popup closes, discarding whatever filter text was typed.
func reflectSelectedValueOnClose(subscribe func(func(ComboboxState)) func()) behavior.Behavior {
	return onExpandedChange(subscribe, func(node behavior.Node, state ComboboxState, expanded bool) {
		setter, ok := node.(ValueSetter)
		if !ok || expanded {
			return
		}
		setter.SetValue(state.Selected.Value)
	})
}

func onKey(k *keymap.Keymap, part constants.Part, handle func(cmd constants.Command, arg string) bool) behavior.Behavior {
	return func(node behavior.Node) func() {
		target, ok := node.(KeyTarget)
		if !ok {
			return nil
		}
		return target.OnKey(func(key string) bool {
			cmd, arg := k.Decode(part, key)
			if cmd == constants.CommandUnassigned {
				return false
			}
			return handle(cmd, arg)
		})
	}
}

func onClick(fn func(targetID string)) behavior.Behavior {
	return func(node behavior.Node) func() {
		if target, ok := node.(ClickTarget); ok {
			return target.OnClick(fn)
		}
		return nil
	}
}

func onClickOutside(fn func(targetID string)) behavior.Behavior {
	return func(node behavior.Node) func() {
		if target, ok := node.(OutsideClickTarget); ok {
			return target.OnClickOutside(fn)
		}
		return nil
	}
}

func onInput(fn func(text string)) behavior.Behavior {
	return func(node behavior.Node) func() {
		if target, ok := node.(InputTarget); ok {
			return target.OnInput(fn)
		}
		return nil
	}
}

func onPointer(move func(targetID string), out func()) behavior.Behavior {
	return func(node behavior.Node) func() {
		target, ok := node.(PointerTarget)
		if !ok {
			return nil
		}
		removeMove := target.OnPointerMove(move)
		removeOut := target.OnPointerOut(out)
		return func() {
			removeOut()
			removeMove()
		}
	}
}

func onFocus(fn func()) behavior.Behavior {
	return func(node behavior.Node) func() {
		if target, ok := node.(FocusTarget); ok {
			return target.OnFocus(fn)
		}
		return nil
	}
}
