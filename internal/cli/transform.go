package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sparsecanvas/pkg/canvas"
	"github.com/matzehuels/sparsecanvas/pkg/canvas/transform"
	"github.com/matzehuels/sparsecanvas/pkg/observability"
)

// transformFunc applies one geometric transform to a loaded canvas.
type transformFunc func(*canvas.Canvas[float64]) (*canvas.Canvas[float64], error)

// runTransform loads input, applies fn and writes the result.
func runTransform(ctx context.Context, cmd *cobra.Command, input, output, name string, fn transformFunc) error {
	cv, err := loadCanvas(ctx, input)
	if err != nil {
		return err
	}

	prog := newProgress(loggerFromContext(ctx))
	out, err := fn(cv)
	if err != nil {
		observability.Operations().OnTransform(ctx, name, cv.PointCount(), 0, time.Since(prog.start), err)
		return err
	}
	observability.Operations().OnTransform(ctx, name, cv.PointCount(), out.PointCount(), time.Since(prog.start), nil)
	prog.done("applied transform", "name", name, "points", out.PointCount(), "merged", cv.PointCount()-out.PointCount())
	return writeCanvas(ctx, cmd.OutOrStdout(), out, output)
}

// shiftCommand creates the shift command.
func (c *CLI) shiftCommand() *cobra.Command {
	var (
		dx, dy float64
		output string
	)

	cmd := &cobra.Command{
		Use:   "shift [points.json|points.toml]",
		Short: "Translate every point by (dx, dy)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd.Context(), cmd, args[0], output, "shift", func(cv *canvas.Canvas[float64]) (*canvas.Canvas[float64], error) {
				return transform.Shift(cv, dx, dy)
			})
		},
	}

	cmd.Flags().Float64Var(&dx, "dx", 0, "horizontal offset")
	cmd.Flags().Float64Var(&dy, "dy", 0, "vertical offset")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the result to a point file instead of stdout")

	return cmd
}

// rotateCommand creates the rotate command. The angle is given either in
// radians (--theta) or in degrees (--degrees).
func (c *CLI) rotateCommand() *cobra.Command {
	var (
		theta, degrees, snap float64
		output               string
	)

	cmd := &cobra.Command{
		Use:   "rotate [points.json|points.toml]",
		Short: "Rotate every point counter-clockwise about the origin",
		Long: `Rotate every point counter-clockwise about the origin.

Rotation goes through sine and cosine, so results are usually a few ulps away
from exact values. Use --snap to round coordinates to a grid afterwards.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			angle := theta
			if cmd.Flags().Changed("degrees") {
				angle = transform.Degrees(degrees)
			}
			snapped := cmd.Flags().Changed("snap")

			return runTransform(cmd.Context(), cmd, args[0], output, "rotate", func(cv *canvas.Canvas[float64]) (*canvas.Canvas[float64], error) {
				out, err := transform.Rotate(cv, angle)
				if err != nil || !snapped {
					return out, err
				}
				return transform.Snap(out, snap)
			})
		},
	}

	cmd.Flags().Float64Var(&theta, "theta", 0, "angle in radians")
	cmd.Flags().Float64Var(&degrees, "degrees", 0, "angle in degrees")
	cmd.Flags().Float64Var(&snap, "snap", 0, "round coordinates to multiples of this tolerance")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the result to a point file instead of stdout")
	cmd.MarkFlagsMutuallyExclusive("theta", "degrees")
	cmd.MarkFlagsOneRequired("theta", "degrees")

	return cmd
}

// magnifyCommand creates the magnify command.
func (c *CLI) magnifyCommand() *cobra.Command {
	var (
		factor float64
		output string
	)

	cmd := &cobra.Command{
		Use:   "magnify [points.json|points.toml]",
		Short: "Scale every coordinate by a factor about the origin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd.Context(), cmd, args[0], output, "magnify", func(cv *canvas.Canvas[float64]) (*canvas.Canvas[float64], error) {
				return transform.Magnify(cv, factor)
			})
		},
	}

	cmd.Flags().Float64Var(&factor, "factor", 1, "scale factor")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the result to a point file instead of stdout")
	_ = cmd.MarkFlagRequired("factor")

	return cmd
}
