package popuplist

import (
	"log/slog"
	"time"

	"github.com/BrandonKowalski/popuplist/pkg/popuplist/behavior"
	"github.com/BrandonKowalski/popuplist/pkg/popuplist/constants"
	"github.com/BrandonKowalski/popuplist/pkg/popuplist/input"
	"github.com/BrandonKowalski/popuplist/pkg/popuplist/internal"
	"github.com/BrandonKowalski/popuplist/pkg/popuplist/keymap"
	"github.com/BrandonKowalski/popuplist/pkg/popuplist/list"
	"github.com/BrandonKowalski/popuplist/pkg/popuplist/store"
)

// MenuState is the full internal state of a Menu.
type MenuState struct {
	Items    []list.Item
	Active   int
	Selected list.SelectedByIndex
	Expanded bool
	Label    string

	ButtonID string
	MenuID   string
}

func (s MenuState) isExpanded() bool { return s.Expanded }
func (s MenuState) label() string    { return s.Label }
func (s MenuState) controls() string { return s.MenuID }

func (s MenuState) activeItem() (list.Item, bool) {
	if !list.InRange(s.Items, s.Active) {
		return list.Item{}, false
	}
	return s.Items[s.Active], true
}

func (s MenuState) itemByID(id string) (list.Item, bool) {
	if i := list.IndexOfID(s.Items, id); i != list.None {
		return s.Items[i], true
	}
	return list.Item{}, false
}

// MenuOptions configures a Menu.
type MenuOptions struct {
	Label            string           // Accessible label reflected onto the trigger button
	Keymap           *keymap.Keymap   // Defaults to keymap.Default()
	TypeaheadTimeout time.Duration    // Pause that starts a new typeahead query; defaults to 500ms
	Clock            func() time.Time // Time source for typeahead; defaults to time.Now
}

// Menu is a button-triggered single-select popup list with typeahead.
//
// Its selection is tracked by index. An index stays meaningful only while
// the items before it are neither removed nor reordered.
type Menu struct {
	store     *store.Store[MenuState]
	view      *store.Derived[MenuView]
	registry  *list.Registry
	keymap    *keymap.Keymap
	typeahead *input.Typeahead
	clock     func() time.Time
	logger    *slog.Logger

	// emit is installed when the trigger button mounts
	emit func(SelectEvent)
}

// NewMenu creates a closed Menu with no items.
func NewMenu(options MenuOptions) *Menu {
	m := &Menu{
		store: store.New(MenuState{
			Active:   list.None,
			Selected: list.Unselected,
			Label:    options.Label,
		}),
		registry:  list.NewRegistry(),
		keymap:    options.Keymap,
		typeahead: input.NewTypeahead(options.TypeaheadTimeout),
		clock:     options.Clock,
		logger:    internal.GetInternalLogger().With("widget", "menu"),
		emit:      func(SelectEvent) {},
	}
	if m.keymap == nil {
		m.keymap = keymap.Default()
	}
	if m.clock == nil {
		m.clock = time.Now
	}
	m.view = store.Derive(m.store, menuView)

	return m
}

func menuView(s MenuState) MenuView {
	v := MenuView{
		Active:   s.Active,
		Expanded: s.Expanded,
	}
	if item, ok := s.activeItem(); ok {
		v.Value = item.Value
	}
	return v
}

// Subscribe calls fn with the current view and after every state change.
func (m *Menu) Subscribe(fn func(MenuView)) func() {
	return m.view.Subscribe(fn)
}

// View returns the current projection.
func (m *Menu) View() MenuView {
	return m.view.Get()
}

// State returns a snapshot of the full state.
func (m *Menu) State() MenuState {
	return m.store.Get()
}

func (m *Menu) update(fn func(*MenuState)) {
	m.store.Update(fn)
}

// Set is an escape hatch for changing state directly. Items remain owned by
// the mounted item nodes and are restored after fn runs; an Active index out
// of range becomes list.None.
func (m *Menu) Set(fn func(*MenuState)) {
	m.update(func(s *MenuState) {
		fn(s)
		s.Items = m.registry.Items()
		if !list.InRange(s.Items, s.Active) {
			s.Active = list.None
		}
	})
}

// Open expands the menu with the selected index active, if it still exists.
func (m *Menu) Open() {
	m.update(func(s *MenuState) {
		s.Expanded = true
		s.Active = s.Selected.Index(s.Items)
	})
}

// Close collapses the menu and clears the active item and typeahead query.
func (m *Menu) Close() {
	m.typeahead.Reset()
	m.update(func(s *MenuState) {
		s.Expanded = false
		s.Active = list.None
	})
}

// Toggle closes an open menu and opens a closed one.
func (m *Menu) Toggle() {
	if m.store.Get().Expanded {
		m.Close()
		return
	}
	m.Open()
}

// Focus makes index active, opening the menu when index is an item.
// Focusing the active index again does nothing.
func (m *Menu) Focus(index int) {
	state := m.store.Get()
	if index != list.None && !list.InRange(state.Items, index) {
		m.logger.Debug("Ignoring focus outside items", "index", index, "items", len(state.Items))
		return
	}
	if state.Active == index {
		return
	}
	m.update(func(s *MenuState) {
		s.Active = index
		s.Expanded = s.Expanded || index != list.None
	})
}

// First activates the first enabled item.
func (m *Menu) First() {
	m.Focus(list.First(m.store.Get().Items))
}

// Previous activates the previous enabled item, wrapping around.
func (m *Menu) Previous() {
	s := m.store.Get()
	m.Focus(list.Previous(s.Items, s.Active))
}

// Next activates the next enabled item, wrapping around.
func (m *Menu) Next() {
	s := m.store.Get()
	m.Focus(list.Next(s.Items, s.Active))
}

// Last activates the last enabled item.
func (m *Menu) Last() {
	m.Focus(list.Last(m.store.Get().Items))
}

// None clears the active item without closing.
func (m *Menu) None() {
	m.Focus(list.None)
}

// Search activates the first enabled item past the active one whose value
// starts with query, ignoring case. No match leaves the state unchanged.
func (m *Menu) Search(query string) {
	s := m.store.Get()
	if i := list.Search(s.Items, s.Active, query); i != list.None {
		m.Focus(i)
	}
}

// Type adds typed text to the typeahead query and searches for it.
func (m *Menu) Type(text string) {
	m.Search(m.typeahead.Add(text, m.clock()))
}

// FocusItem activates the item with id, as when the pointer moves over it.
// Disabled and unknown items clear the active item.
func (m *Menu) FocusItem(id string) {
	s := m.store.Get()
	i := list.IndexOfID(s.Items, id)
	if i != list.None && s.Items[i].Disabled {
		i = list.None
	}
	m.Focus(i)
}

// Activate focuses and selects the item with id, as when it is clicked.
// Unknown ids close the menu; disabled items ignore the click.
func (m *Menu) Activate(id string) {
	s := m.store.Get()
	i := list.IndexOfID(s.Items, id)
	if i == list.None {
		m.Close()
		return
	}
	if s.Items[i].Disabled {
		return
	}
	m.Focus(i)
	m.Select()
}

// ClickOutside closes the menu unless target is one of the menu's own parts.
func (m *Menu) ClickOutside(targetID string) {
	s := m.store.Get()
	if targetID != "" && (targetID == s.ButtonID || targetID == s.MenuID) {
		return
	}
	if s.Expanded {
		m.Close()
	}
}

// Select commits the active index, closes the menu and emits a SelectEvent
// through the trigger button. Without an enabled active item nothing happens.
func (m *Menu) Select() {
	s := m.store.Get()
	item, ok := s.activeItem()
	if !ok || item.Disabled {
		m.logger.Debug("Ignoring select without an active item", "active", s.Active)
		return
	}

	index := s.Active
	m.typeahead.Reset()
	m.update(func(s *MenuState) {
		s.Selected = list.SelectedByIndex(index)
		s.Expanded = false
		s.Active = list.None
	})

	m.emit(SelectEvent{Index: index, ID: item.ID, Value: item.Value})
}

// Handle applies a decoded command. It reports whether the key that produced
// the command should be considered consumed.
func (m *Menu) Handle(cmd constants.Command, arg string) bool {
	switch cmd {
	case constants.CommandFirst:
		m.First()
	case constants.CommandPrevious:
		m.Previous()
	case constants.CommandNext:
		m.Next()
	case constants.CommandLast:
		m.Last()
	case constants.CommandNone:
		m.None()
	case constants.CommandOpen:
		m.Open()
	case constants.CommandClose:
		m.Close()
	case constants.CommandToggle:
		m.Toggle()
	case constants.CommandSelect:
		m.Select()
	case constants.CommandConfirm:
		if m.store.Get().Active != list.None {
			m.Select()
		} else {
			m.Toggle()
		}
	case constants.CommandTab:
		if m.store.Get().Active != list.None {
			m.Select()
		} else {
			m.Close()
		}
		return false
	case constants.CommandCharacter:
		m.Type(arg)
	case constants.CommandIgnore:
	default:
		m.logger.Debug("Ignoring command", "command", cmd.String())
		return false
	}
	return true
}

// The menu's index-based selection is left as is when items are removed.
func (m *Menu) upsert(id, value string, disabled bool) {
	if !m.registry.Upsert(id, value, disabled) {
		return
	}
	m.update(func(s *MenuState) {
		s.Items = m.registry.Items()
	})
}

func (m *Menu) remove(id string) {
	removed, ok := m.registry.Remove(id)
	if !ok {
		return
	}
	m.update(func(s *MenuState) {
		s.Items = m.registry.Items()
		s.Active = list.ActiveAfterRemove(s.Active, removed, len(s.Items), list.RemoveClamps)
	})
}

// Button mounts the trigger button. Selection events are dispatched to it.
func (m *Menu) Button(node Node) func() {
	id := behavior.EnsureID(node, constants.MenuIDPrefix)
	m.update(func(s *MenuState) { s.ButtonID = id })

	emit := func(event SelectEvent) {
		if d, ok := node.(EventDispatcher); ok {
			d.DispatchEvent(event)
		}
	}
	m.emit = emit

	detach := behavior.Apply(node,
		setType("button"),
		setRole("button"),
		setHasPopup(),
		setTabIndex(0),
		reflectAriaLabel(m.store.Subscribe),
		reflectAriaExpanded(m.store.Subscribe),
		reflectAriaControls(m.store.Subscribe),
		onClick(func(string) { m.Toggle() }),
		onKey(m.keymap, constants.PartMenuButton, m.Handle),
		focusOnClose(m.store.Subscribe),
	)

	return func() {
		detach()
		m.emit = func(SelectEvent) {}
	}
}

// Items mounts the menu container.
func (m *Menu) Items(node Node) func() {
	id := behavior.EnsureID(node, constants.MenuIDPrefix)
	m.update(func(s *MenuState) { s.MenuID = id })

	return behavior.Apply(node,
		setRole("menu"),
		setTabIndex(0),
		onClick(m.Activate),
		onClickOutside(m.ClickOutside),
		onPointer(m.FocusItem, m.None),
		onKey(m.keymap, constants.PartMenuItems, m.Handle),
		focusOnExpanded(m.store.Subscribe),
		reflectAriaActiveDescendant(m.store.Subscribe),
	)
}

// Item mounts one menu item. The returned handle updates or removes it.
func (m *Menu) Item(node Node, options ItemOptions) *ItemHandle {
	return mountItem(node, constants.MenuIDPrefix, options, m.upsert, m.remove,
		setTabIndex(-1),
		setRole("menuitem"),
		reflectAriaDisabled(m.store.Subscribe),
	)
}
