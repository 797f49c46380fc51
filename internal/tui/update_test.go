package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestUpdateSwitchesComponents(t *testing.T) {
	m := NewModel(testCatalogue(t), nil)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, "button", m.Component())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, "chip", m.Component())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, "button", m.Component())
}

func TestUpdateCyclesOptions(t *testing.T) {
	m := NewModel(testCatalogue(t), nil)

	m = press(t, m, runes("l"))
	require.Equal(t, "loud", m.Selection()["tone"])

	m = press(t, m, runes("l"))
	require.Equal(t, "calm", m.Selection()["tone"])

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	require.Equal(t, "loud", m.Selection()["tone"])

	class, err := m.Resolved()
	require.NoError(t, err)
	require.Equal(t, "rounded bg-red-500", class)
}

func TestUpdateCyclesThroughEmptyChoice(t *testing.T) {
	m := NewModel(testCatalogue(t), nil)

	m = press(t, m, runes("j"), runes("l"))
	require.Equal(t, "sm", m.Selection()["size"])

	m = press(t, m, runes("l"), runes("l"))
	require.Equal(t, "", m.Selection()["size"])

	class, err := m.Resolved()
	require.NoError(t, err)
	require.Equal(t, "rounded bg-blue-500", class)
}

func TestUpdateAxisFocusStaysInRange(t *testing.T) {
	m := NewModel(testCatalogue(t), nil)

	m = press(t, m, runes("k"))
	require.Equal(t, 0, m.axis)

	m = press(t, m, runes("j"), runes("j"), runes("j"))
	require.Equal(t, 1, m.axis)
}

func TestUpdateResetRestoresDefaults(t *testing.T) {
	m := NewModel(testCatalogue(t), nil)
	m = press(t, m, runes("l"), runes("j"), runes("l"))
	require.Equal(t, "loud", m.Selection()["tone"])

	m = press(t, m, runes("r"))
	require.Equal(t, "calm", m.Selection()["tone"])
	require.NotContains(t, m.Selection(), "size")
}

func TestUpdateEditsExtraClasses(t *testing.T) {
	m := NewModel(testCatalogue(t), nil)

	m = press(t, m, runes("c"))
	require.True(t, m.editing)

	m = press(t, m, runes("bg-red-500 ml-2"), tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, m.editing)

	class, err := m.Resolved()
	require.NoError(t, err)
	require.Equal(t, "rounded bg-blue-500 bg-red-500 ml-2", class)
}

func TestUpdateEscapeDiscardsEdit(t *testing.T) {
	m := NewModel(testCatalogue(t), nil)

	m = press(t, m, runes("c"), runes("w-full"), tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, m.editing)

	class, err := m.Resolved()
	require.NoError(t, err)
	require.Equal(t, "rounded bg-blue-500", class)
}

func TestUpdateQuitKeysWhileEditing(t *testing.T) {
	m := NewModel(testCatalogue(t), nil)
	m = press(t, m, runes("c"))

	// q is text while editing
	m = press(t, m, runes("q"))
	require.False(t, m.Quitting())

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.True(t, updated.(Model).Quitting())
}

func TestUpdateQuit(t *testing.T) {
	m := NewModel(testCatalogue(t), nil)
	updated, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	require.True(t, updated.(Model).Quitting())
}

func TestUpdateTracksWindowWidth(t *testing.T) {
	m := NewModel(testCatalogue(t), nil)
	m = press(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	require.Equal(t, 100, m.width)
}

func TestUpdateHelpToggle(t *testing.T) {
	m := NewModel(testCatalogue(t), nil)
	m = press(t, m, runes("?"))
	require.True(t, m.help.ShowAll)
}
