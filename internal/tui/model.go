// Package tui implements the interactive component showcase: pick a
// component, cycle its variant options and watch the resolved class string.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/fancyui/internal/components"
	"github.com/alexisbeaulieu97/fancyui/internal/logger"
	"github.com/alexisbeaulieu97/fancyui/internal/variant"
)

// Model contains the Bubbletea state for the showcase.
type Model struct {
	entries    []components.Entry
	selections []variant.Selection
	overrides  []string

	current int
	axis    int

	keys    keyMap
	help    help.Model
	input   textinput.Model
	editing bool

	width    int
	quitting bool
	log      *logger.Logger
}

// NewModel constructs a showcase over every entry of the catalogue.
func NewModel(catalogue *components.Catalogue, log *logger.Logger) Model {
	entries := catalogue.Entries()

	ti := textinput.New()
	ti.Placeholder = "extra classes, e.g. ml-4 w-full"
	ti.Width = 48

	m := Model{
		entries:    entries,
		selections: make([]variant.Selection, len(entries)),
		overrides:  make([]string, len(entries)),
		keys:       defaultKeyMap(),
		help:       help.New(),
		input:      ti,
		log:        log,
	}
	for i := range entries {
		m.selections[i] = defaultSelection(entries[i].Resolver)
	}
	return m
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Component returns the name of the component on screen.
func (m Model) Component() string {
	if len(m.entries) == 0 {
		return ""
	}
	return m.entries[m.current].Name
}

// Selection returns a copy of the current component's selection.
func (m Model) Selection() variant.Selection {
	if len(m.entries) == 0 {
		return nil
	}
	out := make(variant.Selection, len(m.selections[m.current]))
	for axis, option := range m.selections[m.current] {
		out[axis] = option
	}
	return out
}

// Resolved returns the class string for the current component.
func (m Model) Resolved() (string, error) {
	if len(m.entries) == 0 {
		return "", nil
	}
	return m.entries[m.current].Resolver.Resolve(m.selections[m.current], m.overrides[m.current])
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func defaultSelection(r *variant.Resolver) variant.Selection {
	sel := make(variant.Selection)
	for _, axis := range r.Schema().Axes() {
		if option, ok := r.Default(axis); ok {
			sel[axis] = option
		}
	}
	return sel
}

// choices lists the values an axis can cycle through. Axes without a
// default also offer the empty choice, which contributes no classes.
func choices(r *variant.Resolver, axis string) []string {
	options := r.Schema().Options(axis)
	if _, ok := r.Default(axis); ok {
		return options
	}
	return append([]string{""}, options...)
}
