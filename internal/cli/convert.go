package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// convertCommand parses input in whichever format its extension implies
// and re-emits it in the format named by -f (spec.md §6's `convert`).
// Converting into BIF with no prior layout computes none (BIF writes
// happily with nil NetworkLayout, omitting row/column attributes);
// converting out of BIF into SIF/GW simply drops any attached layout and
// display state, those formats having nowhere to put it.
func (c *CLI) convertCommand() *cobra.Command {
	var (
		formatName string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "convert <input>",
		Short: "Parse and re-emit a network in a different format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			if formatName == "" {
				return fmt.Errorf("%w: -f/--format is required", ErrUsage)
			}
			if output == "" {
				return fmt.Errorf("%w: -o/--output is required", ErrUsage)
			}
			target, err := parseNetworkFormat(formatName)
			if err != nil {
				return err
			}

			s, stats, err := loadSession(args[0])
			if err != nil {
				return err
			}
			logImportStats(logger, stats)

			if err := saveSession(s, output, target); err != nil {
				return err
			}
			logger.Infof("converted %s -> %s", args[0], output)

			return nil
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "", "target format (sif, gw, bif)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path")

	return cmd
}
