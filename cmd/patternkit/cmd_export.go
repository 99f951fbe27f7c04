package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func exportCmd() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every registered prototype as a seed file",
		Long:  "Writes the catalog in the seed file format accepted by catalog.seed_file, so the output can be edited and loaded back.",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			cat, err := newCatalog(logger)
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			seed := cat.Snapshot()

			var w io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("export: creating output file: %w", err)
				}
				defer func() { _ = f.Close() }()
				w = f
			}

			switch format {
			case "yaml":
				enc := yaml.NewEncoder(w)
				enc.SetIndent(2)
				if encErr := enc.Encode(seed); encErr != nil {
					return fmt.Errorf("export: encoding YAML: %w", encErr)
				}
				if closeErr := enc.Close(); closeErr != nil {
					return fmt.Errorf("export: encoding YAML: %w", closeErr)
				}
			case "json":
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				if encErr := enc.Encode(seed); encErr != nil {
					return fmt.Errorf("export: encoding JSON: %w", encErr)
				}
			default:
				return fmt.Errorf("export: unsupported format %q (use yaml or json)", format)
			}

			if output != "" && output != "-" {
				logger.Info("export complete", "path", output)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml or json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}
