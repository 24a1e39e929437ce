package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gobiofabric/biofabric/alignment"
	"github.com/gobiofabric/biofabric/core"
	"github.com/gobiofabric/biofabric/ioformat"
	"github.com/gobiofabric/biofabric/layout"
	"github.com/gobiofabric/biofabric/progress"
	"github.com/gobiofabric/biofabric/session"
)

// alignCommand runs the full alignment pipeline: merge two networks under
// an alignment map, optionally score against a perfect map, lay out the
// merged network in Group/Orphan/Cycle mode, and write the resulting
// session (spec.md §6's `align`, spec.md §4.6-§4.10).
func (c *CLI) alignCommand() *cobra.Command {
	var (
		perfectPath string
		score       bool
		layoutMode  string
		shadows     bool
		output      string
	)

	cmd := &cobra.Command{
		Use:   "align <g1> <g2> <alignment-file>",
		Short: "Merge two networks under an alignment map and lay out the result",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			mon := newLogMonitor(cmd.Context(), logger)

			if output == "" {
				return fmt.Errorf("%w: -o/--output is required", ErrUsage)
			}
			format, err := formatFromPath(output)
			if err != nil {
				return err
			}

			g1, stats1, err := loadNetwork(args[0])
			if err != nil {
				return err
			}
			logImportStats(logger, stats1)

			g2, stats2, err := loadNetwork(args[1])
			if err != nil {
				return err
			}
			logImportStats(logger, stats2)

			alignMap, err := loadAlignmentMap(args[2])
			if err != nil {
				return err
			}

			var perfectMap *alignment.AlignmentMap
			if perfectPath != "" {
				perfectMap, err = loadAlignmentMap(perfectPath)
				if err != nil {
					return err
				}
			}

			merged, err := alignment.Merge(g1, g2, alignMap, perfectMap, mon)
			if err != nil {
				return err
			}

			if score {
				printScores(cmd, g1, g2, merged, alignMap, perfectMap)
			}

			order, annotations, edgeParams, err := alignLayout(merged, layoutMode, g1, g2, alignMap, perfectMap, mon)
			if err != nil {
				return err
			}
			edgeParams.NoShadows = !shadows
			edgeParams.Monitor = mon

			layoutNet := merged.Network
			if layoutMode == "orphan" {
				layoutNet = alignment.OrphanFilter(merged)
			}

			nl, err := layout.LayoutEdges(layoutNet, order, edgeParams)
			if err != nil {
				return err
			}
			nl.NodeAnnotations = append(nl.NodeAnnotations, annotations...)

			s, err := session.FromNetwork(layoutNet)
			if err != nil {
				return err
			}
			s.AttachLayout(nl)
			s.AttachAlignment(merged)
			if layoutMode == "cycle" {
				s.Display.ExplicitShadows = true
			}

			logger.Infof("merged %d node(s), %d edge(s)", merged.Network.NodeCount(), merged.Network.EdgeCount())

			return saveSession(s, output, format)
		},
	}

	cmd.Flags().StringVar(&perfectPath, "perfect", "", "perfect alignment-file reference for scoring and cycle classification")
	cmd.Flags().BoolVar(&score, "score", false, "print EC/S3/ICS (and NC/NGS/LGS/JS with --perfect)")
	cmd.Flags().StringVar(&layoutMode, "layout", "group", "merged-network layout mode (group, orphan, cycle)")
	cmd.Flags().BoolVar(&shadows, "shadows", true, "include shadow edges in the merged layout")

	cmd.Flags().StringVarP(&output, "output", "o", "", "output session path")

	return cmd
}

func loadAlignmentMap(path string) (*alignment.AlignmentMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pairs, _, err := ioformat.ParseAlignmentFile(f)
	if err != nil {
		return nil, err
	}

	return alignment.NewAlignmentMap(pairs), nil
}

// alignLayout dispatches --layout to the matching node-layout/edge-params
// pair from alignment/layouts.go.
func alignLayout(
	m *alignment.Merged, mode string,
	g1, g2 *core.Network, alignMap, perfectMap *alignment.AlignmentMap,
	mon progress.Monitor,
) ([]string, layout.AnnotationSet, layout.Params, error) {
	switch mode {
	case "", "group":
		order, annotations, err := alignment.GroupNodeLayout(m, mon)

		return order, annotations, alignment.GroupEdgeParams(m), err

	case "orphan":
		order, err := alignment.OrphanNodeLayout(m)

		return order, nil, layout.Params{}, err

	case "cycle":
		entries, _ := alignment.ClassifyCycles(alignMap, perfectMap, g1.NodeOrder(), g2.NodeOrder())
		order, annotations := alignment.CycleNodeLayout(m, entries)

		return order, annotations, alignment.CycleEdgeParams(m), nil

	default:
		return nil, nil, layout.Params{}, fmt.Errorf("%w: unknown --layout %q (want group, orphan, or cycle)", ErrUsage, mode)
	}
}

// printScores computes and prints the quality numbers --score asks for:
// the topological triple always, NC/NGS/LGS/JS only when a perfect map
// was supplied (spec.md §4.7's documented zero-value convention otherwise).
func printScores(cmd *cobra.Command, g1, g2 *core.Network, merged *alignment.Merged, alignMap, perfectMap *alignment.AlignmentMap) {
	s := alignment.TopologicalScores(merged)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "EC:  %.4f\n", s.EC)
	fmt.Fprintf(out, "S3:  %.4f\n", s.S3)
	fmt.Fprintf(out, "ICS: %.4f\n", s.ICS)

	if perfectMap == nil {
		return
	}

	s.NC = alignment.NodeCorrectness(merged)
	fmt.Fprintf(out, "NC:  %.4f\n", s.NC)

	perfectMerged, err := alignment.Merge(g1, g2, perfectMap, nil, nil)
	if err == nil {
		if ngs, err := alignment.NGS(merged, perfectMerged); err == nil {
			fmt.Fprintf(out, "NGS: %.4f\n", ngs)
		}
		if lgs, err := alignment.LGS(merged, perfectMerged); err == nil {
			fmt.Fprintf(out, "LGS: %.4f\n", lgs)
		}
	}

	if js, err := alignment.JS(g1, g2, alignMap, perfectMap); err == nil {
		fmt.Fprintf(out, "JS:  %.4f\n", js)
	}
}
