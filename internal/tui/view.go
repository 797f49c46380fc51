package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const noneLabel = "(none)"

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{titleStyle.Render("FancyUI • component showcase")}

	if len(m.entries) == 0 {
		sections = append(sections, mutedStyle.Render("No components registered."), m.help.View(m.keys))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	sections = append(sections, m.renderTabs())

	entry := m.entries[m.current]
	if entry.Description != "" {
		sections = append(sections, mutedStyle.Render(entry.Description))
	}

	sections = append(sections, sectionStyle.Render("Variants"), m.renderAxes())

	sections = append(sections, sectionStyle.Render("Extra classes"))
	if m.editing {
		sections = append(sections, m.input.View())
	} else if extra := m.overrides[m.current]; extra != "" {
		sections = append(sections, extra)
	} else {
		sections = append(sections, mutedStyle.Render(noneLabel))
	}

	sections = append(sections, sectionStyle.Render("Resolved class"))
	resolved, err := m.Resolved()
	if err != nil {
		sections = append(sections, errorStyle.Render(err.Error()))
	} else {
		sections = append(sections, m.renderClass(resolved))
	}

	sections = append(sections, "", m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(m.entries))
	for i, entry := range m.entries {
		if i == m.current {
			tabs = append(tabs, activeTab.Render(entry.Name))
			continue
		}
		tabs = append(tabs, tabStyle.Render(entry.Name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderAxes() string {
	r := m.entries[m.current].Resolver
	sel := m.selections[m.current]

	var lines []string
	for i, axis := range r.Schema().Axes() {
		label := axisStyle.Render(axis)
		marker := "  "
		if i == m.axis {
			label = focusedAxis.Render(axis)
			marker = "▸ "
		}

		var opts []string
		for _, option := range choices(r, axis) {
			name := option
			if name == "" {
				name = noneLabel
			}
			if option == sel[axis] {
				opts = append(opts, selectedStyle.Render(fmt.Sprintf("[%s]", name)))
				continue
			}
			opts = append(opts, optionStyle.Render(name))
		}

		lines = append(lines, marker+label+strings.Join(opts, ""))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderClass(class string) string {
	style := classStyle
	if m.width > 4 {
		style = style.Width(m.width - 4)
	}
	return style.Render(class)
}
