package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}

	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.overrides[m.current] = strings.TrimSpace(m.input.Value())
		m.editing = false
		m.input.Blur()
		m.log.ForComponent(m.Component()).Debug("updated extra classes")
		return m, nil
	case tea.KeyEsc:
		m.editing = false
		m.input.Blur()
		return m, nil
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if len(m.entries) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.NextComponent):
		m.current = (m.current + 1) % len(m.entries)
		m.axis = 0
	case key.Matches(msg, m.keys.PrevComponent):
		m.current = (m.current - 1 + len(m.entries)) % len(m.entries)
		m.axis = 0
	case key.Matches(msg, m.keys.Down):
		if axes := m.axes(); m.axis < len(axes)-1 {
			m.axis++
		}
	case key.Matches(msg, m.keys.Up):
		if m.axis > 0 {
			m.axis--
		}
	case key.Matches(msg, m.keys.NextOption):
		m.cycle(1)
	case key.Matches(msg, m.keys.PrevOption):
		m.cycle(-1)
	case key.Matches(msg, m.keys.Reset):
		m.selections[m.current] = defaultSelection(m.entries[m.current].Resolver)
		m.overrides[m.current] = ""
	case key.Matches(msg, m.keys.EditClass):
		m.editing = true
		m.input.SetValue(m.overrides[m.current])
		m.input.CursorEnd()
		return m, m.input.Focus()
	}

	return m, nil
}

func (m Model) axes() []string {
	return m.entries[m.current].Resolver.Schema().Axes()
}

// cycle moves the focused axis to the next or previous choice.
func (m *Model) cycle(step int) {
	axes := m.axes()
	if m.axis >= len(axes) {
		return
	}
	axis := axes[m.axis]
	options := choices(m.entries[m.current].Resolver, axis)
	sel := m.selections[m.current]

	pos := 0
	for i, option := range options {
		if option == sel[axis] {
			pos = i
			break
		}
	}
	pos = (pos + step + len(options)) % len(options)
	sel[axis] = options[pos]

	m.log.ForComponent(m.Component()).Debug("changed option", "axis", axis, "option", options[pos])
}
