package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gobiofabric/biofabric/graphalgo"
)

// infoCommand reports node/edge counts, components, and degree statistics
// (spec.md §6's `info`).
func (c *CLI) infoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <input>",
		Short: "Report node/edge counts, components, and degree statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			net, stats, err := loadNetwork(args[0])
			if err != nil {
				return err
			}
			logImportStats(logger, stats)

			components, err := graphalgo.ConnectedComponents(net)
			if err != nil {
				return err
			}
			degrees, err := graphalgo.NodesByDegree(net)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "nodes: %d\n", net.NodeCount())
			fmt.Fprintf(cmd.OutOrStdout(), "edges: %d\n", net.EdgeCount())
			fmt.Fprintf(cmd.OutOrStdout(), "directed: %v\n", net.IsDirected())
			fmt.Fprintf(cmd.OutOrStdout(), "bipartite: %v\n", net.IsBipartite())
			fmt.Fprintf(cmd.OutOrStdout(), "acyclic (DAG): %v\n", net.IsDAG())
			fmt.Fprintf(cmd.OutOrStdout(), "connected components: %d\n", len(components))

			largest := 0
			for _, comp := range components {
				if len(comp.Nodes) > largest {
					largest = len(comp.Nodes)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "largest component: %d node(s)\n", largest)

			top := degrees
			if len(top) > 10 {
				top = top[:10]
			}
			fmt.Fprintln(cmd.OutOrStdout(), "top degree nodes:")
			for _, d := range top {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s: %d\n", d.ID, d.Degree)
			}

			return nil
		},
	}

	return cmd
}
