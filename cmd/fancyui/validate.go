package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/fancyui/internal/config"
)

func newValidateCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <schema-file>",
		Short: "Validate a component schema document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd, rootFlags)
			if err != nil {
				return err
			}
			log = log.With("path", args[0])
			log.Debug("validating schema document")

			doc, err := config.ParseDocument(args[0])
			if err != nil {
				log.Error(err, "schema document is invalid")
				return newCommandError("validate", fmt.Sprintf("validating %q", args[0]), err, "Fix the problem above and run validate again.")
			}

			log.Info("schema document is valid", "components", len(doc.Components))
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is valid (%d components)\n", args[0], len(doc.Components))
			return nil
		},
	}

	return cmd
}
