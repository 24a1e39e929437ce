package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gobiofabric/biofabric/ioformat"
	"github.com/gobiofabric/biofabric/layout"
)

// exportOrderCommand emits NOA (row order) or EDA (shadow-on column
// order) from a session's layout, computing a Default layout first if the
// input carries none (spec.md §6's `export-order`).
func (c *CLI) exportOrderCommand() *cobra.Command {
	var (
		output string
		kind   string
	)

	cmd := &cobra.Command{
		Use:   "export-order <input>",
		Short: "Emit NOA or EDA from a session's (or a freshly computed) layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			if output == "" {
				return fmt.Errorf("%w: -o/--output is required", ErrUsage)
			}

			s, stats, err := loadSession(args[0])
			if err != nil {
				return err
			}
			logImportStats(logger, stats)

			if s.Layout == nil {
				nodeKind, err := parseKind(kind)
				if err != nil {
					return err
				}
				order, annotations, err := layout.LayoutNodes(s.Network, nodeKind, layout.Params{})
				if err != nil {
					return err
				}
				nl, err := layout.LayoutEdges(s.Network, order, layout.Params{})
				if err != nil {
					return err
				}
				nl.NodeAnnotations = append(nl.NodeAnnotations, annotations...)
				s.AttachLayout(nl)
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()

			switch strings.ToLower(filepath.Ext(output)) {
			case ".eda":
				return ioformat.WriteEDA(s.Layout, f)
			default:
				return ioformat.WriteNOA(s.Layout, f)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output .noa or .eda path")
	cmd.Flags().StringVar(&kind, "kind", "", "node layout kind to compute when the input has none")

	return cmd
}
