package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajitpratap0/patternkit/internal/catalog"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [kind]",
		Short: "List registered prototype types",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			cat, err := newCatalog(logger)
			if err != nil {
				return fmt.Errorf("list: %w", err)
			}

			kinds := cat.Kinds()
			if len(args) == 1 {
				k, err := parseKind(args[0])
				if err != nil {
					return fmt.Errorf("list: %w", err)
				}
				kinds = []catalog.Kind{k}
			}

			out := cmd.OutOrStdout()
			for _, k := range kinds {
				types, err := cat.Types(k)
				if err != nil {
					return fmt.Errorf("list: %w", err)
				}
				if len(types) == 0 {
					fmt.Fprintf(out, "%-14s (none)\n", k)
					continue
				}
				fmt.Fprintf(out, "%-14s %s\n", k, strings.Join(types, ", "))
			}
			return nil
		},
	}
}
