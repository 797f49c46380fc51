package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/fancyui/internal/logger"
	"github.com/alexisbeaulieu97/fancyui/internal/variant"
)

type resolveOptions struct {
	sets       []string
	class      string
	schemaPath string
	jsonOutput bool
}

func newResolveCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <component>",
		Short: "Resolve a component's variant selection into a class string",
		Example: `  fancyui resolve button --set variant=destructive --set size=lg
  fancyui resolve button --class "w-full" --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd, rootFlags)
			if err != nil {
				return err
			}
			log = log.ForComponent(args[0])

			err = runResolve(cmd, args[0], opts, log)
			if err != nil {
				log.Error(err, "resolve command failed")
			}
			return err
		},
	}

	cmd.Flags().StringArrayVarP(&opts.sets, "set", "s", nil, "Select an option as axis=option (repeatable)")
	cmd.Flags().StringVarP(&opts.class, "class", "c", "", "Extra classes appended after the variant classes")
	cmd.Flags().StringVar(&opts.schemaPath, "schema", "", "Schema document adding components (YAML or TOML)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type resolveJSONPayload struct {
	Component string            `json:"component"`
	Selection map[string]string `json:"selection"`
	Tokens    []string          `json:"tokens"`
	Class     string            `json:"class"`
}

func runResolve(cmd *cobra.Command, name string, opts *resolveOptions, log *logger.Logger) error {
	sel, err := parseSelection(opts.sets)
	if err != nil {
		return newCommandError("resolve", "parsing --set flags", err, "Pass selections as --set axis=option, for example --set size=lg.")
	}

	catalogue, err := loadCatalogue("resolve", opts.schemaPath, log)
	if err != nil {
		return err
	}

	entry, ok := catalogue.Lookup(name)
	if !ok {
		return newCommandError("resolve", fmt.Sprintf("looking up component %q", name), fmt.Errorf("unknown component"), "Run 'fancyui list' to see the available components: "+strings.Join(catalogue.Names(), ", ")+".")
	}

	effective, err := entry.Resolver.Effective(sel)
	if err != nil {
		return newCommandError("resolve", fmt.Sprintf("resolving %q", name), err, "Run 'fancyui list' to see the options of every axis.")
	}

	tokens, err := entry.Resolver.Tokens(sel, opts.class)
	if err != nil {
		return newCommandError("resolve", fmt.Sprintf("resolving %q", name), err, "Run 'fancyui list' to see the options of every axis.")
	}
	class := variant.Join(tokens)
	log.Debug("resolved class", "class", class)

	if opts.jsonOutput {
		payload := resolveJSONPayload{
			Component: name,
			Selection: effective,
			Tokens:    tokens,
			Class:     class,
		}
		if payload.Tokens == nil {
			payload.Tokens = []string{}
		}
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	}

	fmt.Fprintln(cmd.OutOrStdout(), class)
	return nil
}

// parseSelection turns repeated axis=option pairs into a Selection. The last
// pair for an axis wins.
func parseSelection(pairs []string) (variant.Selection, error) {
	sel := make(variant.Selection, len(pairs))
	for _, pair := range pairs {
		axis, option, ok := strings.Cut(pair, "=")
		axis = strings.TrimSpace(axis)
		option = strings.TrimSpace(option)
		if !ok || axis == "" {
			return nil, fmt.Errorf("invalid selection %q: expected axis=option", pair)
		}
		sel[axis] = option
	}
	return sel, nil
}
