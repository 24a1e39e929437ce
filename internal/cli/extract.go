package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gobiofabric/biofabric/session"
)

// extractCommand extracts the node-induced sub-network within --hops of
// --node, preserving any attached layout via session.ExtractSubmodel
// (spec.md §6's `extract`, spec.md §4.11's `extract_submodel`).
func (c *CLI) extractCommand() *cobra.Command {
	var (
		node   string
		hops   int
		output string
	)

	cmd := &cobra.Command{
		Use:   "extract <input>",
		Short: "Extract the sub-network within --hops of --node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			if node == "" {
				return fmt.Errorf("%w: --node is required", ErrUsage)
			}
			if output == "" {
				return fmt.Errorf("%w: -o/--output is required", ErrUsage)
			}
			format, err := formatFromPath(output)
			if err != nil {
				return err
			}

			s, stats, err := loadSession(args[0])
			if err != nil {
				return err
			}
			logImportStats(logger, stats)

			nodeSet, err := s.Network.NHopNeighborhood(node, hops)
			if err != nil {
				return err
			}

			sub, err := session.ExtractSubmodel(s, nodeSet)
			if err != nil {
				return err
			}
			logger.Infof("extracted %d node(s) within %d hop(s) of %q", sub.Network.NodeCount(), hops, node)

			return saveSession(sub, output, format)
		},
	}

	cmd.Flags().StringVar(&node, "node", "", "start node")
	cmd.Flags().IntVar(&hops, "hops", 1, "neighbourhood radius")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output session path")

	return cmd
}
