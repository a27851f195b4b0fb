package popuplist

import (
	"github.com/BrandonKowalski/popuplist/pkg/popuplist/behavior"
)

// ItemOptions describes a mounted item.
// An empty Value falls back to the node's TextContent when it has one.
type ItemOptions struct {
	Value    string
	Disabled bool
}

// ItemHandle is returned by an item mount.
type ItemHandle struct {
	update  func(ItemOptions)
	destroy func()
}

// Update re-registers the item with new options without remounting.
// Position and id are kept.
func (h *ItemHandle) Update(options ItemOptions) {
	h.update(options)
}

// Destroy unregisters the item and detaches its behaviors.
// Safe to call more than once.
func (h *ItemHandle) Destroy() {
	h.destroy()
}

func itemValue(node behavior.Node, options ItemOptions) string {
	if options.Value != "" {
		return options.Value
	}
	if tc, ok := node.(TextContent); ok {
		return tc.TextContent()
	}
	return ""
}

// mountItem registers node through upsert and returns a handle whose Destroy
// detaches behaviors and calls remove.
func mountItem(node behavior.Node, prefix string, options ItemOptions,
	upsert func(id, value string, disabled bool), remove func(id string),
	behaviors ...behavior.Behavior) *ItemHandle {

	id := behavior.EnsureID(node, prefix)

	update := func(options ItemOptions) {
		upsert(id, itemValue(node, options), options.Disabled)
	}
	update(options)

	detach := behavior.Apply(node, behaviors...)

	destroyed := false
	return &ItemHandle{
		update: func(options ItemOptions) {
			if destroyed {
				return
			}
			update(options)
		},
		destroy: func() {
			if destroyed {
				return
			}
			destroyed = true
			detach()
			remove(id)
		},
	}
}
