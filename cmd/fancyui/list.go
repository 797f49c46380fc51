package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/fancyui/internal/components"
)

type listOptions struct {
	schemaPath string
	jsonOutput bool
}

func newListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List components with their axes, options and defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd, rootFlags)
			if err != nil {
				return err
			}

			catalogue, err := loadCatalogue("list", opts.schemaPath, log)
			if err != nil {
				log.Error(err, "list command failed")
				return err
			}

			if opts.jsonOutput {
				return renderListJSON(cmd, catalogue)
			}
			return renderListTable(cmd, catalogue)
		},
	}

	cmd.Flags().StringVar(&opts.schemaPath, "schema", "", "Schema document adding components (YAML or TOML)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func renderListTable(cmd *cobra.Command, catalogue *components.Catalogue) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "COMPONENT\tAXIS\tDEFAULT\tOPTIONS")

	for _, entry := range catalogue.Entries() {
		r := entry.Resolver
		axes := r.Schema().Axes()
		if len(axes) == 0 {
			fmt.Fprintf(writer, "%s\t-\t-\t-\n", entry.Name)
			continue
		}
		for i, axis := range axes {
			name := entry.Name
			if i > 0 {
				name = ""
			}
			def, ok := r.Default(axis)
			if !ok {
				def = "(none)"
			}
			fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", name, axis, def, strings.Join(r.Schema().Options(axis), ", "))
		}
	}

	return writer.Flush()
}

type listJSONAxis struct {
	Name    string   `json:"name"`
	Default string   `json:"default,omitempty"`
	Options []string `json:"options"`
}

type listJSONComponent struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Base        []string       `json:"base"`
	Axes        []listJSONAxis `json:"axes"`
}

type listJSONPayload struct {
	Version    string              `json:"version"`
	Count      int                 `json:"count"`
	Components []listJSONComponent `json:"components"`
}

func renderListJSON(cmd *cobra.Command, catalogue *components.Catalogue) error {
	entries := catalogue.Entries()
	payload := listJSONPayload{
		Version:    "1.0",
		Count:      len(entries),
		Components: make([]listJSONComponent, len(entries)),
	}

	for i, entry := range entries {
		r := entry.Resolver
		component := listJSONComponent{
			Name:        entry.Name,
			Description: entry.Description,
			Base:        r.Base(),
			Axes:        []listJSONAxis{},
		}
		if component.Base == nil {
			component.Base = []string{}
		}
		for _, axis := range r.Schema().Axes() {
			def, _ := r.Default(axis)
			component.Axes = append(component.Axes, listJSONAxis{
				Name:    axis,
				Default: def,
				Options: r.Schema().Options(axis),
			})
		}
		payload.Components[i] = component
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
