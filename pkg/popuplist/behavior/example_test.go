package behavior_test

import (
	"fmt"
	"strings"

	"github.com/BrandonKowalski/popuplist/pkg/popuplist/behavior"
)

type element struct {
	id    string
	attrs map[string]string
}

func (e *element) ID() string      { return e.id }
func (e *element) SetID(id string) { e.id = id }

func attribute(name, value string) behavior.Behavior {
	return func(node behavior.Node) func() {
		el := node.(*element)
		el.attrs[name] = value
		fmt.Printf("set %s=%s\n", name, value)
		return func() {
			delete(el.attrs, name)
			fmt.Printf("removed %s\n", name)
		}
	}
}

// Example demonstrates attaching behaviors and tearing them down in reverse.
func Example() {
	el := &element{attrs: map[string]string{}}

	destroy := behavior.Apply(el,
		attribute("role", "listbox"),
		attribute("tabindex", "-1"),
		nil,
	)

	fmt.Println(len(el.attrs), "attributes")
	destroy()
	destroy()
	fmt.Println(len(el.attrs), "attributes")

	// Output:
	// set role=listbox
	// set tabindex=-1
	// 2 attributes
	// removed tabindex
	// removed role
	// 0 attributes
}

// Example_ensureID demonstrates id assignment for unnamed nodes.
func Example_ensureID() {
	named := &element{id: "trigger"}
	unnamed := &element{}

	fmt.Println(behavior.EnsureID(named, "menu"))
	id := behavior.EnsureID(unnamed, "menu")
	fmt.Println(strings.HasPrefix(id, "menu-"), unnamed.ID() == id)

	// Output:
	// trigger
	// true true
}
