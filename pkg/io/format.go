package io

import (
	"github.com/matzehuels/sparsecanvas/pkg/canvas"
	"github.com/matzehuels/sparsecanvas/pkg/errors"
)

type pointFile struct {
	Rows []pointRow `json:"rows" toml:"rows"`
}

type pointRow struct {
	X float64   `json:"x" toml:"x"`
	Y []float64 `json:"y" toml:"y"`
}

// toFile lists the rows of c in ascending x order.
func toFile(c *canvas.Canvas[float64]) pointFile {
	xs := c.XSet()
	out := pointFile{Rows: make([]pointRow, 0, len(xs))}
	for _, x := range xs {
		ys, _ := c.YSet(x)
		out.Rows = append(out.Rows, pointRow{X: x, Y: ys})
	}
	return out
}

// toCanvas merges rows sharing an x and builds the canvas.
func (f pointFile) toCanvas() (*canvas.Canvas[float64], error) {
	points := make(map[float64][]float64, len(f.Rows))
	for i, r := range f.Rows {
		if len(r.Y) == 0 {
			return nil, errors.Invalid("row %d (x=%v) has no y values", i, r.X)
		}
		points[r.X] = append(points[r.X], r.Y...)
	}
	return canvas.Of(points)
}
