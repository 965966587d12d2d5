package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// infoCommand creates the info command, which summarizes a point file.
func (c *CLI) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info [points.json|points.toml]",
		Short: "Show point count, row count and x range of a point file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cv, err := loadCanvas(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printKeyValue(w, "File", args[0])
			printNumber(w, "Points", cv.PointCount())
			printNumber(w, "Rows", cv.RowCount())
			if lo, hi, ok := cv.XRange(); ok {
				printKeyValue(w, "X range", fmt.Sprintf("[%s, %s]", formatCoord(lo), formatCoord(hi)))
			} else {
				printKeyValue(w, "X range", "empty")
			}
			return nil
		},
	}
}
