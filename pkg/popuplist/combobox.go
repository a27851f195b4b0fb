package popuplist

import (
	"log/slog"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/popuplist/pkg/popuplist/behavior"
	"github.com/BrandonKowalski/popuplist/pkg/popuplist/constants"
	"github.com/BrandonKowalski/popuplist/pkg/popuplist/internal"
	"github.com/BrandonKowalski/popuplist/pkg/popuplist/keymap"
	"github.com/BrandonKowalski/popuplist/pkg/popuplist/list"
	"github.com/BrandonKowalski/popuplist/pkg/popuplist/store"
)

// ComboboxState is the full internal state of a Combobox.
type ComboboxState struct {
	Items    []list.Item
	Active   int
	Selected list.SelectedByValue
	Expanded bool
	Opened   bool   // Set once the popup has been opened at least once
	Filter   string // Current filter text
	Moved    bool   // Whether the user navigated since the last reset or close
	Label    string

	InputID    string
	ButtonID   string
	ControlsID string
}

func (s ComboboxState) isExpanded() bool { return s.Expanded }
func (s ComboboxState) label() string    { return s.Label }
func (s ComboboxState) controls() string { return s.ControlsID }

func (s ComboboxState) activeItem() (list.Item, bool) {
	if !list.InRange(s.Items, s.Active) {
		return list.Item{}, false
	}
	return s.Items[s.Active], true
}

func (s ComboboxState) itemByID(id string) (list.Item, bool) {
	if i := list.IndexOfID(s.Items, id); i != list.None {
		return s.Items[i], true
	}
	return list.Item{}, false
}

// ComboboxOptions configures a Combobox.
type ComboboxOptions struct {
	Label     string         // Accessible label reflected onto the input
	Selected  string         // Initially selected value; empty selects nothing
	Scheduler Scheduler      // Runs filter reconciliation after the host re-renders; defaults to a TickScheduler
	Keymap    *keymap.Keymap // Defaults to keymap.Default()
}

// Combobox is a filterable single-select popup list.
//
// Its selection is tracked by value, so it survives the host adding,
// removing and reordering items as the filter changes.
type Combobox struct {
	store     *store.Store[ComboboxState]
	view      *store.Derived[ComboboxView]
	registry  *list.Registry
	scheduler Scheduler
	keymap    *keymap.Keymap
	logger    *slog.Logger

	// token advances on every filter change; reconciliation scheduled under
	// an older token is stale.
	token atomic.Uint64

	input Node
	emit  func(SelectEvent)
}

// NewCombobox creates a closed Combobox with no items.
func NewCombobox(options ComboboxOptions) *Combobox {
	initial := ComboboxState{
		Active: list.None,
		Label:  options.Label,
	}
	if options.Selected != "" {
		initial.Selected = list.SelectValue(options.Selected)
	}

	c := &Combobox{
		store:     store.New(initial),
		registry:  list.NewRegistry(),
		scheduler: options.Scheduler,
		keymap:    options.Keymap,
		logger:    internal.GetInternalLogger().With("widget", "combobox"),
		emit:      func(SelectEvent) {},
	}
	if c.scheduler == nil {
		c.scheduler = NewTickScheduler()
	}
	if c.keymap == nil {
		c.keymap = keymap.Default()
	}
	c.view = store.Derive(c.store, comboboxView)

	return c
}

func comboboxView(s ComboboxState) ComboboxView {
	v := ComboboxView{
		Expanded:     s.Expanded,
		Selected:     s.Selected.Value,
		HasSelection: s.Selected.IsSet(),
		Filter:       s.Filter,
		Active:       s.Active,
	}
	if item, ok := s.activeItem(); ok {
		v.ActiveValue = item.Value
	}
	return v
}

// Subscribe calls fn with the current view and after every state change.
func (c *Combobox) Subscribe(fn func(ComboboxView)) func() {
	return c.view.Subscribe(fn)
}

// View returns the current projection.
func (c *Combobox) View() ComboboxView {
	return c.view.Get()
}

// State returns a snapshot of the full state.
func (c *Combobox) State() ComboboxState {
	return c.store.Get()
}

// Scheduler returns the scheduler filter reconciliation runs on.
func (c *Combobox) Scheduler() Scheduler {
	return c.scheduler
}

func (c *Combobox) update(fn func(*ComboboxState)) {
	c.store.Update(fn)
}

// Set is an escape hatch for changing state directly. Items remain owned by
// the mounted item nodes and are restored after fn runs; an Active index out
// of range becomes list.None.
func (c *Combobox) Set(fn func(*ComboboxState)) {
	c.update(func(s *ComboboxState) {
		fn(s)
		s.Items = c.registry.Items()
		if !list.InRange(s.Items, s.Active) {
			s.Active = list.None
		}
	})
}

// Open expands the popup with the selected item active, if it is present.
func (c *Combobox) Open() {
	c.update(func(s *ComboboxState) {
		s.Expanded = true
		s.Opened = true
		s.Active = s.Selected.Index(s.Items)
	})
}

// Close collapses the popup and clears the active item.
// The selection and filter are kept. A pending filter reconciliation is dropped.
func (c *Combobox) Close() {
	c.token.Inc()
	c.update(func(s *ComboboxState) {
		s.Expanded = false
		s.Active = list.None
		s.Moved = false
	})
}

// Toggle closes an open popup and opens a closed one.
func (c *Combobox) Toggle() {
	if c.store.Get().Expanded {
		c.Close()
		return
	}
	c.Open()
}

// Reset clears the filter and collapses the popup.
func (c *Combobox) Reset() {
	c.token.Inc()
	c.update(func(s *ComboboxState) {
		s.Filter = ""
		s.Expanded = false
		s.Active = list.None
		s.Moved = false
	})
}

// Focus makes index active, opening the popup when expand is set.
// Focusing the active index again does nothing.
func (c *Combobox) Focus(index int, expand bool) {
	state := c.store.Get()
	if index != list.None && !list.InRange(state.Items, index) {
		c.logger.Debug("Ignoring focus outside items", "index", index, "items", len(state.Items))
		return
	}
	if state.Active == index {
		return
	}
	c.update(func(s *ComboboxState) {
		s.Active = index
		if expand {
			s.Expanded = true
			s.Opened = true
		}
	})
}

// move is a directional focus: it always expands and marks the cursor as moved.
func (c *Combobox) move(index int) {
	if c.store.Get().Active == index {
		return
	}
	c.update(func(s *ComboboxState) {
		s.Active = index
		s.Expanded = true
		s.Opened = true
		s.Moved = true
	})
}

// selectedEnabled returns the index of the selected item when it is present
// and enabled.
func (c *Combobox) selectedEnabled(s ComboboxState) int {
	i := s.Selected.Index(s.Items)
	if i == list.None || s.Items[i].Disabled {
		return list.None
	}
	return i
}

// First activates the first enabled item.
func (c *Combobox) First() {
	c.move(list.First(c.store.Get().Items))
}

// Previous activates the previous enabled item, wrapping around. With no
// active item it starts from the selected item.
func (c *Combobox) Previous() {
	s := c.store.Get()
	if s.Active == list.None {
		if i := c.selectedEnabled(s); i != list.None {
			c.move(i)
			return
		}
	}
	c.move(list.Previous(s.Items, s.Active))
}

// Next activates the next enabled item, wrapping around. With no active item
// it starts from the selected item.
func (c *Combobox) Next() {
	s := c.store.Get()
	if s.Active == list.None {
		if i := c.selectedEnabled(s); i != list.None {
			c.move(i)
			return
		}
	}
	c.move(list.Next(s.Items, s.Active))
}

// Last activates the last enabled item.
func (c *Combobox) Last() {
	c.move(list.Last(c.store.Get().Items))
}

// None clears the active item without closing.
func (c *Combobox) None() {
	c.Focus(list.None, false)
}

// FocusItem activates the item with id, as when the pointer moves over it.
// Disabled and unknown items clear the active item.
func (c *Combobox) FocusItem(id string) {
	s := c.store.Get()
	i := list.IndexOfID(s.Items, id)
	if i != list.None && s.Items[i].Disabled {
		i = list.None
	}
	c.Focus(i, false)
}

// Activate focuses and selects the item with id, as when it is clicked.
// Unknown ids close the popup; disabled items ignore the click.
func (c *Combobox) Activate(id string) {
	s := c.store.Get()
	i := list.IndexOfID(s.Items, id)
	if i == list.None {
		c.Close()
		return
	}
	if s.Items[i].Disabled {
		return
	}
	c.Focus(i, false)
	c.Select()
}

// ClickOutside closes the popup unless target is one of the widget's own parts.
func (c *Combobox) ClickOutside(targetID string) {
	s := c.store.Get()
	if targetID != "" && (targetID == s.InputID || targetID == s.ButtonID || targetID == s.ControlsID) {
		return
	}
	if s.Expanded {
		c.Close()
	}
}

// Select commits the active item, closes the popup and emits a SelectEvent.
// Without an enabled active item nothing happens.
func (c *Combobox) Select() {
	s := c.store.Get()
	item, ok := s.activeItem()
	if !ok || item.Disabled {
		c.logger.Debug("Ignoring select without an active item", "active", s.Active)
		return
	}

	index := s.Active
	c.token.Inc()
	c.update(func(s *ComboboxState) {
		s.Selected = list.SelectValue(item.Value)
		s.Expanded = false
		s.Active = list.None
		s.Moved = false
	})

	c.emit(SelectEvent{Index: index, ID: item.ID, Value: item.Value})
}

// Filter applies new filter text and opens the popup. The active item is
// recomputed once the host has mounted the matching items and the scheduler
// runs; a newer Filter call supersedes a pending one.
func (c *Combobox) Filter(text string) {
	s := c.store.Get()

	current, hasCurrent := s.Selected.Value, s.Selected.IsSet()
	if item, ok := s.activeItem(); ok {
		current, hasCurrent = item.Value, true
	}

	c.update(func(s *ComboboxState) {
		s.Filter = text
		s.Expanded = true
		s.Opened = true
	})

	token := c.token.Inc()
	c.scheduler.Schedule(func() {
		c.reconcile(token, current, hasCurrent)
	})
}

func (c *Combobox) reconcile(token uint64, current string, hasCurrent bool) {
	if latest := c.token.Load(); latest != token {
		c.logger.Debug("Discarding stale filter reconciliation", "token", token, "latest", latest)
		return
	}

	s := c.store.Get()
	if !s.Expanded {
		return
	}
	active := list.Reconcile(s.Items, s.Selected, current, hasCurrent, s.Moved)
	if active == s.Active {
		return
	}
	c.update(func(s *ComboboxState) {
		s.Active = active
	})
}

// Handle applies a decoded command. It reports whether the key that produced
// the command should be considered consumed.
func (c *Combobox) Handle(cmd constants.Command, arg string) bool {
	switch cmd {
	case constants.CommandFirst:
		c.First()
	case constants.CommandPrevious:
		c.Previous()
	case constants.CommandNext:
		c.Next()
	case constants.CommandLast:
		c.Last()
	case constants.CommandNone:
		c.None()
	case constants.CommandOpen:
		c.Open()
	case constants.CommandClose:
		c.Close()
	case constants.CommandToggle:
		c.Toggle()
	case constants.CommandSelect:
		c.Select()
	case constants.CommandConfirm:
		if c.store.Get().Active != list.None {
			c.Select()
		} else {
			c.Toggle()
		}
	case constants.CommandTab:
		if c.store.Get().Active != list.None {
			c.Select()
		} else {
			c.Close()
		}
		return false
	case constants.CommandFilter:
		c.Filter(arg)
	case constants.CommandIgnore:
	default:
		c.logger.Debug("Ignoring command", "command", cmd.String())
		return false
	}
	return true
}

func (c *Combobox) upsert(id, value string, disabled bool) {
	if !c.registry.Upsert(id, value, disabled) {
		return
	}
	c.update(func(s *ComboboxState) {
		s.Items = c.registry.Items()
	})
}

func (c *Combobox) remove(id string) {
	removed, ok := c.registry.Remove(id)
	if !ok {
		return
	}
	c.update(func(s *ComboboxState) {
		s.Items = c.registry.Items()
		s.Active = list.ActiveAfterRemove(s.Active, removed, len(s.Items), list.RemoveClamps)
	})
}

// Input mounts the text input. Selection events are dispatched to it, and
// the selected value is written back into it whenever the popup closes.
func (c *Combobox) Input(node Node) func() {
	id := behavior.EnsureID(node, constants.ComboboxIDPrefix)
	c.input = node
	c.update(func(s *ComboboxState) { s.InputID = id })

	c.emit = func(event SelectEvent) {
		if d, ok := node.(EventDispatcher); ok {
			d.DispatchEvent(event)
		}
	}

	detach := behavior.Apply(node,
		setType("text"),
		setRole("combobox"),
		setTabIndex(0),
		reflectAriaLabel(c.store.Subscribe),
		reflectAriaExpanded(c.store.Subscribe),
		reflectAriaControls(c.store.Subscribe),
		reflectSelectedValueOnClose(c.store.Subscribe),
		onKey(c.keymap, constants.PartComboboxInput, c.Handle),
		onInput(c.Filter),
		focusOnClose(c.store.Subscribe),
	)

	return func() {
		detach()
		if c.input == node {
			c.input = nil
			c.emit = func(SelectEvent) {}
		}
	}
}

// Button mounts the auxiliary toggle button. Focus moves on to the input.
func (c *Combobox) Button(node Node) func() {
	id := behavior.EnsureID(node, constants.ComboboxIDPrefix)
	c.update(func(s *ComboboxState) { s.ButtonID = id })

	return behavior.Apply(node,
		setType("button"),
		setRole("button"),
		setHasPopup(),
		setTabIndex(-1),
		reflectAriaExpanded(c.store.Subscribe),
		reflectAriaControls(c.store.Subscribe),
		onClick(func(string) { c.Toggle() }),
		onFocus(func() {
			if f, ok := c.input.(Focuser); ok {
				f.Focus()
			}
		}),
	)
}

// Items mounts the list container.
func (c *Combobox) Items(node Node) func() {
	id := behavior.EnsureID(node, constants.ComboboxIDPrefix)
	c.update(func(s *ComboboxState) { s.ControlsID = id })

	return behavior.Apply(node,
		setRole("listbox"),
		setTabIndex(-1),
		onClick(c.Activate),
		onClickOutside(c.ClickOutside),
		onPointer(c.FocusItem, c.None),
		reflectAriaActiveDescendant(c.store.Subscribe),
	)
}

// Item mounts one option. The returned handle updates or removes it.
func (c *Combobox) Item(node Node, options ItemOptions) *ItemHandle {
	return mountItem(node, constants.ComboboxIDPrefix, options, c.upsert, c.remove,
		setTabIndex(-1),
		setRole("option"),
		reflectAriaDisabled(c.store.Subscribe),
	)
}
