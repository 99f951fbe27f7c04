package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func getCmd() *cobra.Command {
	var outputJSON bool

	cmd := &cobra.Command{
		Use:   "get [kind] [type]",
		Short: "Show a registered prototype without cloning it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			kind, err := parseKind(args[0])
			if err != nil {
				return fmt.Errorf("get: %w", err)
			}
			cat, err := newCatalog(logger)
			if err != nil {
				return fmt.Errorf("get: %w", err)
			}

			p, err := cat.Get(kind, args[1])
			if err != nil {
				return fmt.Errorf("get: %w", err)
			}
			return printEntity(cmd.OutOrStdout(), p, outputJSON)
		},
	}

	cmd.Flags().BoolVar(&outputJSON, "json", false, "output as JSON")
	return cmd
}

// printEntity writes v as indented JSON or as YAML.
func printEntity(w io.Writer, v any, asJSON bool) error {
	if asJSON {
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	}
	out, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	_, err = w.Write(out)
	return err
}
