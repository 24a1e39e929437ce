package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// searchCommand searches node ids and edge relations for a substring match
// (spec.md §6's `search`). Matching is case-insensitive, the same
// normalization core.NormalizeID already applies to node identity.
func (c *CLI) searchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <input> <pattern>",
		Short: "Search node ids and relations for a substring match",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			net, stats, err := loadNetwork(args[0])
			if err != nil {
				return err
			}
			logImportStats(logger, stats)

			pattern := strings.ToLower(args[1])
			out := cmd.OutOrStdout()

			for _, id := range net.NodeOrder() {
				node, err := net.GetNode(id)
				if err != nil {
					continue
				}
				if strings.Contains(strings.ToLower(node.Display), pattern) {
					fmt.Fprintf(out, "node\t%s\n", node.Display)
				}
			}

			seen := make(map[string]bool)
			for _, e := range net.Edges() {
				if e.IsShadow || seen[e.Relation] {
					continue
				}
				if strings.Contains(strings.ToLower(e.Relation), pattern) {
					seen[e.Relation] = true
					fmt.Fprintf(out, "relation\t%s\n", e.Relation)
				}
			}

			return nil
		},
	}

	return cmd
}
