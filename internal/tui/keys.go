package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	NextComponent key.Binding
	PrevComponent key.Binding
	Up            key.Binding
	Down          key.Binding
	NextOption    key.Binding
	PrevOption    key.Binding
	Reset         key.Binding
	EditClass     key.Binding
	Help          key.Binding
	Quit          key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextComponent: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next component")),
		PrevComponent: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev component")),
		Up:            key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev axis")),
		Down:          key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next axis")),
		NextOption:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next option")),
		PrevOption:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev option")),
		Reset:         key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset to defaults")),
		EditClass:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "edit extra classes")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextComponent, k.NextOption, k.EditClass, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextComponent, k.PrevComponent, k.Up, k.Down},
		{k.NextOption, k.PrevOption, k.Reset, k.EditClass},
		{k.Help, k.Quit},
	}
}
