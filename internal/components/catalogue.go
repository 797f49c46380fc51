package components

import (
	"fmt"
	"sort"

	"github.com/alexisbeaulieu97/fancyui/internal/variant"
)

// Entry names a component's resolver so tools can enumerate its axes.
type Entry struct {
	Name        string
	Description string
	Resolver    *variant.Resolver
}

// Catalogue is an ordered set of named component resolvers.
type Catalogue struct {
	entries []Entry
	index   map[string]int
}

// NewCatalogue builds a catalogue, rejecting duplicate or unnamed entries.
func NewCatalogue(entries ...Entry) (*Catalogue, error) {
	c := &Catalogue{index: make(map[string]int, len(entries))}
	for _, entry := range entries {
		if err := c.Add(entry); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// DefaultCatalogue lists the built-in components.
func DefaultCatalogue() *Catalogue {
	c, err := NewCatalogue(
		Entry{Name: "button", Description: "Clickable action with colour and size variants", Resolver: ButtonVariants()},
		Entry{Name: "input", Description: "Text field with icon padding and error state", Resolver: InputVariants()},
		Entry{Name: "modal", Description: "Dialog content panel sized by width", Resolver: ModalVariants()},
		Entry{Name: "datepicker", Description: "Outline trigger that opens a calendar popover", Resolver: DatePickerTriggerVariants()},
	)
	if err != nil {
		panic(err)
	}
	return c
}

// Add appends entry.
func (c *Catalogue) Add(entry Entry) error {
	if entry.Name == "" {
		return fmt.Errorf("component name is required")
	}
	if entry.Resolver == nil {
		return fmt.Errorf("component %q has no resolver", entry.Name)
	}
	if _, exists := c.index[entry.Name]; exists {
		return fmt.Errorf("component %q already registered", entry.Name)
	}
	c.index[entry.Name] = len(c.entries)
	c.entries = append(c.entries, entry)
	return nil
}

// Merge adds every entry of other, replacing entries with the same name.
func (c *Catalogue) Merge(other *Catalogue) {
	if other == nil {
		return
	}
	for _, entry := range other.entries {
		if i, exists := c.index[entry.Name]; exists {
			c.entries[i] = entry
			continue
		}
		c.index[entry.Name] = len(c.entries)
		c.entries = append(c.entries, entry)
	}
}

// Lookup returns the entry called name.
func (c *Catalogue) Lookup(name string) (Entry, bool) {
	i, ok := c.index[name]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Entries returns the entries in registration order.
func (c *Catalogue) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

// Names returns the sorted component names.
func (c *Catalogue) Names() []string {
	names := make([]string, 0, len(c.entries))
	for _, entry := range c.entries {
		names = append(names, entry.Name)
	}
	sort.Strings(names)
	return names
}
