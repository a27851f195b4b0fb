package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/BrandonKowalski/popuplist/pkg/popuplist/constants"
)

// theme holds the terminal styles for the demo widgets.
type theme struct {
	label    lipgloss.Style
	button   lipgloss.Style
	active   lipgloss.Style
	item     lipgloss.Style
	disabled lipgloss.Style
	hint     lipgloss.Style
	popup    lipgloss.Style
}

// newTheme builds the styles around an accent color such as "#008080".
// Text colors follow the Cannoli palette: light text, dark text on highlight.
func newTheme(accent string) theme {
	accentColor := lipgloss.Color(accent)
	textColor := lipgloss.Color("#FFFFFF")
	highlightedTextColor := lipgloss.Color("#000000")
	hintColor := lipgloss.Color("#808080")

	return theme{
		label:    lipgloss.NewStyle().Bold(true).Foreground(accentColor),
		button:   lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(accentColor),
		active:   lipgloss.NewStyle().Background(accentColor).Foreground(highlightedTextColor),
		item:     lipgloss.NewStyle().Foreground(textColor),
		disabled: lipgloss.NewStyle().Foreground(hintColor).Strikethrough(true),
		hint:     lipgloss.NewStyle().Foreground(hintColor).Italic(true),
		popup:    lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(accentColor).Padding(0, 1),
	}
}

// row renders one item line, truncated to width terminal cells.
func (t theme) row(value string, active, selected, disabled bool, width int) string {
	marker := " "
	switch {
	case disabled:
		marker = constants.Disabled
	case active:
		marker = constants.ActivePointer
	}

	check := " "
	if selected {
		check = constants.Check
	}

	text := runewidth.Truncate(value, max(width-4, 1), "…")
	line := marker + " " + text + " " + check

	switch {
	case disabled:
		return t.disabled.Render(line)
	case active:
		return t.active.Render(line)
	default:
		return t.item.Render(line)
	}
}

func (t theme) chevron(expanded bool) string {
	if expanded {
		return constants.ChevronUp
	}
	return constants.ChevronDown
}
