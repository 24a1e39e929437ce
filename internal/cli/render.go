package cli

import (
	"github.com/spf13/cobra"
)

// renderCommand is a documented external-collaborator stub: raster
// rendering (PNG output, colour palettes) is on spec.md's explicit
// non-goal list, so render exists on the command tree (spec.md §6 names
// it as a CLI surface) but returns ErrRenderUnsupported rather than
// silently doing nothing or being omitted.
func (c *CLI) renderCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render <input>",
		Short: "Rasterize a session to an image (not implemented)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ErrRenderUnsupported
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output image path")

	return cmd
}
