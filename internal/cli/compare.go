package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// compareCommand reports a per-node neighbourhood comparison (spec.md
// §6's `compare`).
func (c *CLI) compareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <input> <nodeA> <nodeB>",
		Short: "Compare two nodes' neighbourhoods",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			net, stats, err := loadNetwork(args[0])
			if err != nil {
				return err
			}
			logImportStats(logger, stats)

			cmp, err := net.CompareNodes(args[1], args[2])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "shared: %v\n", cmp.Shared)
			fmt.Fprintf(out, "%s only: %v\n", args[1], cmp.AOnly)
			fmt.Fprintf(out, "%s only: %v\n", args[2], cmp.BOnly)
			fmt.Fprintf(out, "jaccard: %.4f\n", cmp.Jaccard)

			return nil
		},
	}

	return cmd
}
