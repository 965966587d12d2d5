package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sparsecanvas/pkg/canvas"
	"github.com/matzehuels/sparsecanvas/pkg/observability"
)

// sliceOpts holds the command-line flags for the slice command.
type sliceOpts struct {
	top, bottom float64 // vertical bounds, bottom < top
	left, right float64 // horizontal bounds, left < right
	count       bool    // print only the number of points inside
	output      string  // optional point file to write the slice to
}

// sliceCommand creates the slice command for rectangle queries.
func (c *CLI) sliceCommand() *cobra.Command {
	var opts sliceOpts

	cmd := &cobra.Command{
		Use:   "slice [points.json|points.toml]",
		Short: "Select the points inside a closed rectangle",
		Long: `Select the points inside the closed rectangle [left,right]x[bottom,top].

Points on the rectangle's edges are included. With --count only the number of
selected points is printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSlice(cmd, args[0], opts)
		},
	}

	cmd.Flags().Float64Var(&opts.top, "top", 0, "upper y bound (inclusive)")
	cmd.Flags().Float64Var(&opts.bottom, "bottom", 0, "lower y bound (inclusive)")
	cmd.Flags().Float64Var(&opts.left, "left", 0, "lower x bound (inclusive)")
	cmd.Flags().Float64Var(&opts.right, "right", 0, "upper x bound (inclusive)")
	cmd.Flags().BoolVar(&opts.count, "count", false, "print only the number of points inside")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the slice to a point file instead of stdout")
	for _, name := range []string{"top", "bottom", "left", "right"} {
		_ = cmd.MarkFlagRequired(name)
	}
	cmd.MarkFlagsMutuallyExclusive("count", "output")

	return cmd
}

func (c *CLI) runSlice(cmd *cobra.Command, input string, opts sliceOpts) error {
	ctx := cmd.Context()
	cv, err := loadCanvas(ctx, input)
	if err != nil {
		return err
	}

	r, err := canvas.NewRectangle(opts.top, opts.bottom, opts.left, opts.right)
	if err != nil {
		return fmt.Errorf("rectangle: %w", err)
	}

	if opts.count {
		return c.printSliceCount(ctx, cmd, cv, r)
	}

	prog := newProgress(loggerFromContext(ctx))
	s, err := cv.Slice(r)
	if err != nil {
		observability.Operations().OnSlice(ctx, r.String(), 0, time.Since(prog.start), err)
		return err
	}
	observability.Operations().OnSlice(ctx, r.String(), s.PointCount(), time.Since(prog.start), nil)
	prog.done("sliced canvas", "rect", r.String(), "points", s.PointCount())
	return writeCanvas(ctx, cmd.OutOrStdout(), s, opts.output)
}

func (c *CLI) printSliceCount(ctx context.Context, cmd *cobra.Command, cv *canvas.Canvas[float64], r *canvas.Rectangle[float64]) error {
	prog := newProgress(loggerFromContext(ctx))
	n, err := cv.SliceCount(r)
	observability.Operations().OnSlice(ctx, r.String(), n, time.Since(prog.start), err)
	if err != nil {
		return err
	}
	prog.done("counted slice", "rect", r.String(), "points", n)
	fmt.Fprintln(cmd.OutOrStdout(), n)
	return nil
}
