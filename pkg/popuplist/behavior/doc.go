// Package behavior attaches an ordered list of behaviors to a mounted node and
// hands back a single teardown.
//
// A Behavior is a function that wires something to a node (a subscription,
// an attribute, an event emitter) and returns the function that unwires it.
// Apply runs the behaviors in order and records each teardown on a Stack, so
// the combined teardown unwinds them in reverse.
//
// # Basic Usage
//
//	setRole := func(role string) behavior.Behavior {
//	    return func(node behavior.Node) func() {
//	        attrs := node.(Attributes)
//	        attrs.SetAttribute("role", role)
//	        return func() { attrs.RemoveAttribute("role") }
//	    }
//	}
//
//	destroy := behavior.Apply(node,
//	    setRole("listbox"),
//	    reflectExpanded(store),
//	)
//	defer destroy()
//
// # Node identity
//
// Nodes are identified by a stable string id. EnsureID assigns a generated id
// to nodes the host did not name, so registries can key on it.
package behavior
