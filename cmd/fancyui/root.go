package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/fancyui/internal/components"
	"github.com/alexisbeaulieu97/fancyui/internal/config"
	"github.com/alexisbeaulieu97/fancyui/internal/logger"
)

type rootFlags struct {
	verbose bool
	logJSON bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "fancyui",
		Short:         "FancyUI resolves component variants into class strings",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.logJSON, "log-json", false, "Write logs as JSON")

	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newLogger builds the command logger. Logs go to stderr so that command
// output on stdout stays machine readable.
func newLogger(cmd *cobra.Command, flags *rootFlags) (*logger.Logger, error) {
	level := "warn"
	if flags.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{
		Level:         level,
		HumanReadable: !flags.logJSON,
		Writer:        cmd.ErrOrStderr(),
	})
}

// loadCatalogue returns the built-in components, extended or replaced by the
// components of schemaPath when it is set.
func loadCatalogue(operation, schemaPath string, log *logger.Logger) (*components.Catalogue, error) {
	catalogue := components.DefaultCatalogue()
	if schemaPath == "" {
		return catalogue, nil
	}

	log.Debug("loading schema document", "path", schemaPath)

	doc, err := config.ParseDocument(schemaPath)
	if err != nil {
		return nil, newCommandError(operation, "loading schema document", err, "Run 'fancyui validate "+schemaPath+"' to see every problem in the file.")
	}

	extra, err := doc.Catalogue()
	if err != nil {
		return nil, newCommandError(operation, "building components", err, "Check that every default names an option of its axis.")
	}

	for _, name := range extra.Names() {
		if _, exists := catalogue.Lookup(name); exists {
			log.Warn("schema component replaces built-in component", "component", name, "path", schemaPath)
		}
	}
	catalogue.Merge(extra)
	log.Debug("schema document loaded", "path", schemaPath, "components", len(doc.Components))
	return catalogue, nil
}
