package tui

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/fancyui/internal/components"
)

// Render lists every component with its axes and the class string produced
// by its defaults. It is used when the output is not a terminal.
func Render(catalogue *components.Catalogue) string {
	var b strings.Builder
	for i, entry := range catalogue.Entries() {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s\n", entry.Name)
		if entry.Description != "" {
			fmt.Fprintf(&b, "  %s\n", entry.Description)
		}

		r := entry.Resolver
		for _, axis := range r.Schema().Axes() {
			options := r.Schema().Options(axis)
			marked := make([]string, len(options))
			def, _ := r.Default(axis)
			for j, option := range options {
				if option == def {
					marked[j] = "*" + option
					continue
				}
				marked[j] = option
			}
			fmt.Fprintf(&b, "  %-10s %s\n", axis, strings.Join(marked, " "))
		}

		class, err := r.Resolve(nil)
		if err != nil {
			fmt.Fprintf(&b, "  error: %v\n", err)
			continue
		}
		fmt.Fprintf(&b, "  class      %s\n", class)
	}
	return b.String()
}
