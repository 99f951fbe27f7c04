package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func cloneCmd() *cobra.Command {
	var (
		outputJSON bool
		count      int
	)

	cmd := &cobra.Command{
		Use:   "clone [kind] [type]",
		Short: "Mint fresh copies of a registered prototype",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			if count < 1 {
				return fmt.Errorf("clone: --count must be at least 1")
			}
			kind, err := parseKind(args[0])
			if err != nil {
				return fmt.Errorf("clone: %w", err)
			}
			cat, err := newCatalog(logger)
			if err != nil {
				return fmt.Errorf("clone: %w", err)
			}

			out := cmd.OutOrStdout()
			for i := 0; i < count; i++ {
				c, err := cat.Clone(kind, args[1])
				if err != nil {
					return fmt.Errorf("clone: %w", err)
				}
				if count > 1 && !outputJSON {
					fmt.Fprintf(out, "# clone %d\n", i+1)
				}
				if err := printEntity(out, c, outputJSON); err != nil {
					return fmt.Errorf("clone: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&outputJSON, "json", false, "output as JSON")
	cmd.Flags().IntVar(&count, "count", 1, "number of clones to mint")
	return cmd
}
