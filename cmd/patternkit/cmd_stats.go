package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show how many prototypes each registry holds",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			cat, err := newCatalog(logger)
			if err != nil {
				return fmt.Errorf("stats: %w", err)
			}

			stats := cat.Stats()
			total := 0
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "By kind:")
			for _, k := range cat.Kinds() {
				fmt.Fprintf(out, "  %-14s %d\n", k, stats[k])
				total += stats[k]
			}
			fmt.Fprintf(out, "\nTotal prototypes: %d\n", total)
			return nil
		},
	}
}
