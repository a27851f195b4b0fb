package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/cases"

	"github.com/BrandonKowalski/popuplist/pkg/popuplist"
	"github.com/BrandonKowalski/popuplist/pkg/popuplist/announce"
	"github.com/BrandonKowalski/popuplist/pkg/popuplist/keymap"
	"github.com/BrandonKowalski/popuplist/pkg/popuplist/list"
)

// entry is one line of demo input. Lines starting with "!" are disabled.
type entry struct {
	value    string
	disabled bool
}

func parseEntry(line string) entry {
	if rest, ok := strings.CutPrefix(line, "!"); ok {
		return entry{value: rest, disabled: true}
	}
	return entry{value: line}
}

// comboboxModel renders a Combobox in the terminal. It plays the part of the
// host renderer: it mounts an item node for every entry that matches the
// filter and ticks the scheduler once the items are in place.
type comboboxModel struct {
	combobox  *popuplist.Combobox
	sched     *popuplist.TickScheduler
	announcer *announce.Announcer
	theme     theme
	host      *host
	input     *termNode
	listbox   *termNode
	text      textinput.Model
	fold      cases.Caser

	entries []entry
	mounted []int // entry indices in mount order
	handles map[int]*popuplist.ItemHandle

	view     popuplist.ComboboxView
	selected *popuplist.SelectEvent
	quitting bool
	width    int
}

func newComboboxModel(label string, entries []entry, k *keymap.Keymap, a *announce.Announcer, t theme) *comboboxModel {
	m := &comboboxModel{
		sched:     popuplist.NewTickScheduler(),
		announcer: a,
		theme:     t,
		host:      &host{},
		text:      textinput.New(),
		fold:      cases.Fold(),
		entries:   entries,
		handles:   make(map[int]*popuplist.ItemHandle),
		width:     40,
	}
	m.text.Prompt = ""
	m.text.Placeholder = "type to filter"
	m.text.Focus()

	m.combobox = popuplist.NewCombobox(popuplist.ComboboxOptions{
		Label:     label,
		Scheduler: m.sched,
		Keymap:    k,
	})

	m.input = m.host.newNode("combobox-input")
	m.input.onValue = func(v string) { m.text.SetValue(v) }
	m.input.onEvent = func(e popuplist.SelectEvent) { m.selected = &e }
	m.listbox = m.host.newNode("combobox-listbox")

	m.combobox.Input(m.input)
	m.combobox.Items(m.listbox)
	m.combobox.Subscribe(func(v popuplist.ComboboxView) { m.view = v })

	m.render("")
	m.sched.Tick()
	return m
}

func (m *comboboxModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *comboboxModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.BlurMsg:
		// Leaving the terminal counts as clicking outside the widget.
		m.host.clickOutside("")
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.quit()
		}

		key := keyName(msg)
		wasExpanded := m.view.Expanded

		var cmd tea.Cmd
		if !m.input.press(key) {
			before := m.text.Value()
			m.text, cmd = m.text.Update(msg)
			if after := m.text.Value(); after != before {
				m.input.input(after)
			}
		}

		// The host re-renders for the new filter, then lets reconciliation run.
		m.render(m.view.Filter)
		m.sched.Tick()

		if m.selected != nil || (key == "esc" && !wasExpanded) {
			return m.quit()
		}
		return m, cmd
	}

	return m, nil
}

// render mounts the entries matching filter and unmounts the rest, keeping
// entry order.
func (m *comboboxModel) render(filter string) {
	needle := m.fold.String(filter)
	var want []int
	for i, e := range m.entries {
		if strings.Contains(m.fold.String(e.value), needle) {
			want = append(want, i)
		}
	}

	wanted := make(map[int]bool, len(want))
	for _, i := range want {
		wanted[i] = true
	}

	kept := m.mounted[:0]
	for _, i := range m.mounted {
		if wanted[i] {
			kept = append(kept, i)
			continue
		}
		m.handles[i].Destroy()
		delete(m.handles, i)
	}
	m.mounted = kept

	// Entries can only be appended, so remount when a new one sorts earlier.
	if !isPrefix(m.mounted, want) {
		for _, i := range m.mounted {
			m.handles[i].Destroy()
			delete(m.handles, i)
		}
		m.mounted = nil
	}

	for _, i := range want[len(m.mounted):] {
		node := m.host.newNode(fmt.Sprintf("combobox-item-%d", i))
		m.handles[i] = m.combobox.Item(node, popuplist.ItemOptions{
			Value:    m.entries[i].value,
			Disabled: m.entries[i].disabled,
		})
		m.mounted = append(m.mounted, i)
	}
}

func isPrefix(prefix, of []int) bool {
	if len(prefix) > len(of) {
		return false
	}
	for i := range prefix {
		if prefix[i] != of[i] {
			return false
		}
	}
	return true
}

func (m *comboboxModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.theme.label.Render(m.combobox.State().Label))
	b.WriteString(" ")
	b.WriteString(m.text.View())
	b.WriteString(" ")
	b.WriteString(m.theme.chevron(m.view.Expanded))
	b.WriteString("\n")

	items := m.combobox.State().Items
	if m.view.Expanded {
		var rows []string
		for i, item := range items {
			selected := m.view.HasSelection && item.Value == m.view.Selected
			rows = append(rows, m.theme.row(item.Value, i == m.view.Active, selected, item.Disabled, m.width))
		}
		if len(rows) > 0 {
			b.WriteString(m.theme.popup.Render(strings.Join(rows, "\n")))
			b.WriteString("\n")
		}
	}

	b.WriteString(m.theme.hint.Render(m.announcement(items)))
	b.WriteString("\n")
	return b.String()
}

func (m *comboboxModel) announcement(items []list.Item) string {
	switch {
	case m.view.Expanded && m.view.Active != list.None:
		return m.announcer.Position(m.view.ActiveValue, m.view.Active+1, len(items))
	case m.view.Expanded:
		return m.announcer.ResultCount(len(items))
	case m.view.HasSelection:
		return m.announcer.Selected(m.view.Selected)
	default:
		return m.announcer.Collapsed()
	}
}

// keyName maps a terminal key to the names package keymap understands.
func keyName(msg tea.KeyMsg) string {
	if msg.Type == tea.KeySpace {
		return "space"
	}
	return msg.String()
}

func (m *comboboxModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}
