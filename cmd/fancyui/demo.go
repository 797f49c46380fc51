package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/fancyui/internal/logger"
	"github.com/alexisbeaulieu97/fancyui/internal/tui"
)

type demoOptions struct {
	schemaPath string
}

func newDemoCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Browse components and their variants interactively",
		Long:  `Launch the interactive component showcase. When stdout is not a terminal a static listing is printed instead.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd, rootFlags)
			if err != nil {
				return err
			}

			catalogue, err := loadCatalogue("demo", opts.schemaPath, log)
			if err != nil {
				log.Error(err, "demo command failed")
				return err
			}

			if !isTerminal(cmd.OutOrStdout()) {
				log.Debug("stdout is not a terminal, printing static listing")
				fmt.Fprint(cmd.OutOrStdout(), tui.Render(catalogue))
				return nil
			}

			p := tea.NewProgram(tui.NewModel(catalogue, showcaseLogger(log, true)), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				log.Error(err, "showcase execution failed")
				return fmt.Errorf("failed to run showcase: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.schemaPath, "schema", "", "Schema document adding components (YAML or TOML)")

	return cmd
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

// showcaseLogger returns the logger handed to the showcase model. While the
// alt screen is active stderr shares the terminal, so interactive sessions
// log nothing.
func showcaseLogger(log *logger.Logger, interactive bool) *logger.Logger {
	if interactive {
		return logger.Nop()
	}
	return log
}
