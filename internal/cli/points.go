package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/matzehuels/sparsecanvas/pkg/canvas"
	pointio "github.com/matzehuels/sparsecanvas/pkg/io"
	"github.com/matzehuels/sparsecanvas/pkg/observability"
)

// loadCanvas imports the point file at path.
func loadCanvas(ctx context.Context, path string) (*canvas.Canvas[float64], error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	c, err := pointio.Import(path)
	if err != nil {
		observability.Operations().OnLoad(ctx, path, 0, time.Since(prog.start), err)
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	observability.Operations().OnLoad(ctx, path, c.PointCount(), time.Since(prog.start), nil)
	prog.done("loaded point file", "file", path, "points", c.PointCount(), "rows", c.RowCount())
	return c, nil
}

// writeCanvas prints the points of c to w, or exports them when output is set.
func writeCanvas(ctx context.Context, w io.Writer, c *canvas.Canvas[float64], output string) error {
	if output == "" {
		return printPoints(w, c)
	}
	err := pointio.Export(c, output)
	observability.Operations().OnWrite(ctx, output, c.PointCount(), err)
	if err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	loggerFromContext(ctx).Info("wrote point file", "file", output, "points", c.PointCount())
	printSuccess(w, "Wrote %d points", c.PointCount())
	printFile(w, output)
	return nil
}

// printPoints writes one "x y" line per point in ascending order.
func printPoints(w io.Writer, c *canvas.Canvas[float64]) error {
	for _, p := range c.Points() {
		if _, err := fmt.Fprintf(w, "%s %s\n", formatCoord(p.X), formatCoord(p.Y)); err != nil {
			return err
		}
	}
	return nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
