package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/BrandonKowalski/popuplist/pkg/popuplist"
	"github.com/BrandonKowalski/popuplist/pkg/popuplist/announce"
	"github.com/BrandonKowalski/popuplist/pkg/popuplist/keymap"
	"github.com/BrandonKowalski/popuplist/pkg/popuplist/list"
)

// menuModel renders a Menu in the terminal. Keys go to whichever part the
// menu focused last: the trigger button while closed, the items while open.
type menuModel struct {
	menu      *popuplist.Menu
	announcer *announce.Announcer
	theme     theme
	host      *host
	button    *termNode
	items     *termNode

	view     popuplist.MenuView
	selected *popuplist.SelectEvent
	quitting bool
	width    int
}

func newMenuModel(label string, entries []entry, options popuplist.MenuOptions, k *keymap.Keymap, a *announce.Announcer, t theme) *menuModel {
	m := &menuModel{
		announcer: a,
		theme:     t,
		host:      &host{},
		width:     40,
	}

	options.Label = label
	options.Keymap = k
	m.menu = popuplist.NewMenu(options)

	m.button = m.host.newNode("menu-button")
	m.button.onEvent = func(e popuplist.SelectEvent) { m.selected = &e }
	m.items = m.host.newNode("menu-items")
	m.host.focused = m.button

	m.menu.Button(m.button)
	m.menu.Items(m.items)
	for i, e := range entries {
		m.menu.Item(m.host.newNode(fmt.Sprintf("menu-item-%d", i)), popuplist.ItemOptions{
			Value:    e.value,
			Disabled: e.disabled,
		})
	}
	m.menu.Subscribe(func(v popuplist.MenuView) { m.view = v })

	return m
}

func (m *menuModel) Init() tea.Cmd {
	return nil
}

func (m *menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.BlurMsg:
		// Leaving the terminal counts as clicking outside the widget.
		m.host.clickOutside("")

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.quit()
		}

		key := keyName(msg)
		wasExpanded := m.view.Expanded
		consumed := m.host.focused.press(key)

		if m.selected != nil {
			return m.quit()
		}
		if !wasExpanded && (key == "esc" || (key == "q" && !consumed)) {
			return m.quit()
		}
	}

	return m, nil
}

func (m *menuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	state := m.menu.State()
	b.WriteString(m.theme.button.Render(state.Label + " " + m.theme.chevron(m.view.Expanded)))
	b.WriteString("\n")

	if m.view.Expanded {
		var rows []string
		for i, item := range state.Items {
			selected := state.Selected.Index(state.Items) == i
			rows = append(rows, m.theme.row(item.Value, i == m.view.Active, selected, item.Disabled, m.width))
		}
		b.WriteString(m.theme.popup.Render(strings.Join(rows, "\n")))
		b.WriteString("\n")
	}

	b.WriteString(m.theme.hint.Render(m.announcement(len(state.Items))))
	b.WriteString("\n")
	return b.String()
}

func (m *menuModel) announcement(total int) string {
	switch {
	case m.view.Expanded && m.view.Active != list.None:
		return m.announcer.Position(m.view.Value, m.view.Active+1, total)
	case m.view.Expanded:
		return m.announcer.ResultCount(total)
	default:
		return m.announcer.Collapsed()
	}
}

func (m *menuModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}
