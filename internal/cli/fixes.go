package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdnorm/internal/logging"
	"github.com/yaklabco/mdnorm/pkg/normalize"
)

type fixesFlags struct {
	format string
}

const formatJSON = "json"

// fixInfo represents a fix group in JSON output.
type fixInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func newFixesCommand() *cobra.Command {
	flags := &fixesFlags{}

	cmd := &cobra.Command{
		Use:   "fixes",
		Short: "List available fix groups",
		Long: `List the fix groups accepted by the --fix flag, with a short
description of what each one does.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			names := normalize.FixNames()
			descriptions := normalize.FixDescriptions()

			if flags.format == formatJSON {
				return outputFixesJSON(names, descriptions)
			}

			logger := logging.NewInteractive()
			logger.Info("available fixes")
			for _, name := range names {
				logger.Info(name, logging.FieldDescription, descriptions[name])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")

	return cmd
}

// outputFixesJSON outputs fix groups as a JSON array.
func outputFixesJSON(names []string, descriptions map[string]string) error {
	infos := make([]fixInfo, 0, len(names))
	for _, name := range names {
		infos = append(infos, fixInfo{Name: name, Description: descriptions[name]})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding fixes: %w", err)
	}
	return nil
}
