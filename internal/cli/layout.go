package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gobiofabric/biofabric/core"
	"github.com/gobiofabric/biofabric/ioformat"
	"github.com/gobiofabric/biofabric/layout"
)

// layoutFlags is the subset of layout.Params the layout command exposes on
// the command line (align has its own flags and does not use these);
// Cluster/ControlTop/Set/Similarity's richer per-algorithm configuration
// beyond --cluster-attribute stays
// programmatic (library callers build a layout.Params directly) rather
// than growing a flag per struct field.
type layoutFlags struct {
	kind        string
	startNode   string
	noShadows   bool
	pointUp     bool
	linkGroups  string
	clusterAttr string
	output      string
	outFormat   string
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.kind, "kind", "", "node layout kind (default, hierdag, cluster, controltop, set, worldbank, similarity)")
	cmd.Flags().StringVar(&f.startNode, "start-node", "", "seed node for Default-derived layouts")
	cmd.Flags().BoolVar(&f.noShadows, "no-shadows", false, "restrict edge layout to non-shadow edges")
	cmd.Flags().BoolVar(&f.pointUp, "point-up", false, "reverse HierDAG's level axis")
	cmd.Flags().StringVar(&f.linkGroups, "link-groups", "", "comma-separated relation-suffix group order")
	cmd.Flags().StringVar(&f.clusterAttr, "cluster-attribute", "", "attribute file supplying Cluster's node->tag assignment (via its \"cluster\" column)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output session path")
	cmd.Flags().StringVar(&f.outFormat, "output-format", "", "output format override (default: infer from --output extension)")
}

// params builds a layout.Params from the flags and c's config defaults,
// loading --cluster-attribute onto net in place when given.
func (c *CLI) params(f *layoutFlags, net *core.Network) (layout.Params, error) {
	p := layout.Params{
		StartNode:  f.startNode,
		NoShadows:  f.noShadows,
		PointUp:    f.pointUp,
		LinkGroups: splitCSV(f.linkGroups),
	}
	if len(p.LinkGroups) == 0 {
		p.LinkGroups = c.cfg.LinkGroups
	}
	if !f.noShadows && !c.cfg.ShowShadows {
		p.NoShadows = true
	}

	if f.clusterAttr != "" {
		assignment, err := loadClusterAssignment(f.clusterAttr, net)
		if err != nil {
			return p, err
		}
		p.Cluster.Assignment = assignment
	}

	return p, nil
}

// loadClusterAssignment parses path as an attribute file onto net (which
// mutates net.Nodes[*].Attrs in place, per ParseAttributeFile's contract)
// and returns the resulting node -> "cluster" column map.
func loadClusterAssignment(path string, net *core.Network) (map[string]string, error) {
	f, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if _, err := ioformat.ParseAttributeFile(f, net); err != nil {
		return nil, err
	}

	assignment := make(map[string]string, net.NodeCount())
	for _, id := range net.NodeOrder() {
		node, err := net.GetNode(id)
		if err != nil {
			continue
		}
		if tag, ok := node.Attrs["cluster"]; ok {
			assignment[id] = tag
		}
	}

	return assignment, nil
}

func (c *CLI) layoutCommand() *cobra.Command {
	var f layoutFlags

	cmd := &cobra.Command{
		Use:   "layout <input>",
		Short: "Run a named node and edge layout, emitting a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			mon := newLogMonitor(cmd.Context(), logger)

			if f.output == "" {
				return fmt.Errorf("%w: -o/--output is required", ErrUsage)
			}
			format, err := outputFormat(f.output, f.outFormat)
			if err != nil {
				return err
			}

			s, stats, err := loadSession(args[0])
			if err != nil {
				return err
			}
			logImportStats(logger, stats)

			kindName := f.kind
			if kindName == "" {
				kindName = c.cfg.LayoutKind
			}
			kind, err := parseKind(kindName)
			if err != nil {
				return err
			}

			params, err := c.params(&f, s.Network)
			if err != nil {
				return err
			}
			params.Monitor = mon

			order, annotations, err := layout.LayoutNodes(s.Network, kind, params)
			if err != nil {
				return err
			}

			nl, err := layout.LayoutEdges(s.Network, order, params)
			if err != nil {
				return err
			}
			nl.NodeAnnotations = append(nl.NodeAnnotations, annotations...)

			s.AttachLayout(nl)
			logger.Infof("laid out %d rows, %d columns (%d without shadows)", nl.RowCount, nl.ColumnCount, nl.ColumnCountNoShadows)

			return saveSession(s, f.output, format)
		},
	}

	f.register(cmd)

	return cmd
}

// outputFormat resolves the save format for -o/--output, preferring an
// explicit override over the path's extension.
func outputFormat(path, override string) (networkFormat, error) {
	if override != "" {
		return parseNetworkFormat(override)
	}

	return formatFromPath(path)
}

func logImportStats(logger *log.Logger, stats ioformat.ImportStats) {
	if len(stats.BadLines) > 0 {
		logger.Warnf("%d malformed line(s) skipped during import", len(stats.BadLines))
	}
}
