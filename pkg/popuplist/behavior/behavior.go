package behavior

import (
	"github.com/google/uuid"
)

// Node is a host element a widget part is mounted on.
// Capabilities beyond identity are discovered with type assertions.
type Node interface {
	ID() string
	SetID(id string)
}

// Behavior wires one concern to node and returns its teardown, or nil when
// there is nothing to undo.
type Behavior func(node Node) func()

// Apply attaches behaviors to node in order and returns a teardown that
// detaches them in reverse. The teardown is safe to call more than once.
func Apply(node Node, behaviors ...Behavior) func() {
	stack := NewStack()
	for i, b := range behaviors {
		if b == nil {
			continue
		}
		stack.Push(i, b(node))
	}

	done := false
	return func() {
		if done {
			return
		}
		done = true
		stack.Unwind()
	}
}

// EnsureID gives node a generated id of the form "<prefix>-<uuid>" when it
// has none, and returns the node's id.
func EnsureID(node Node, prefix string) string {
	if id := node.ID(); id != "" {
		return id
	}
	id := prefix + "-" + uuid.NewString()
	node.SetID(id)
	return id
}
