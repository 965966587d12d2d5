package transform

import (
	"math"

	"github.com/matzehuels/sparsecanvas/pkg/canvas"
	"github.com/matzehuels/sparsecanvas/pkg/errors"
)

// Shift returns c translated by (dx, dy).
func Shift(c *canvas.Canvas[float64], dx, dy float64) (*canvas.Canvas[float64], error) {
	if err := validate(c, arg{"dx", dx}, arg{"dy", dy}); err != nil {
		return nil, err
	}
	return c.Transform(
		func(x float64) float64 { return x + dx },
		func(y float64) float64 { return y + dy },
	)
}

// Magnify returns c scaled by factor about the origin.
func Magnify(c *canvas.Canvas[float64], factor float64) (*canvas.Canvas[float64], error) {
	if err := validate(c, arg{"factor", factor}); err != nil {
		return nil, err
	}
	return c.Transform(
		func(x float64) float64 { return x * factor },
		func(y float64) float64 { return y * factor },
	)
}

// Rotate returns c rotated about the origin by theta radians:
//
//	x' = x·cos θ − y·sin θ
//	y' = x·sin θ + y·cos θ
func Rotate(c *canvas.Canvas[float64], theta float64) (*canvas.Canvas[float64], error) {
	if err := validate(c, arg{"theta", theta}); err != nil {
		return nil, err
	}
	sin, cos := math.Sincos(theta)
	return c.TransformJoint(
		func(x, y float64) float64 { return x*cos - y*sin },
		func(x, y float64) float64 { return x*sin + y*cos },
	)
}

// Snap returns c with every coordinate rounded to the nearest multiple of
// tolerance. Points that round to the same grid position merge.
//
// Snap returns ErrCodeInvalidArgument unless tolerance is positive.
func Snap(c *canvas.Canvas[float64], tolerance float64) (*canvas.Canvas[float64], error) {
	if err := validate(c, arg{"tolerance", tolerance}); err != nil {
		return nil, err
	}
	if tolerance <= 0 || math.IsInf(tolerance, 1) {
		return nil, errors.Invalid("tolerance %v must be positive and finite", tolerance)
	}
	round := func(v float64) float64 {
		// +0 turns a rounded -0 into 0.
		return math.Round(v/tolerance)*tolerance + 0
	}
	return c.Transform(round, round)
}

// Degrees converts an angle in degrees to radians.
func Degrees(deg float64) float64 {
	return deg * math.Pi / 180
}

type arg struct {
	name  string
	value float64
}

// validate checks that c is non-nil and that no argument is NaN.
func validate(c *canvas.Canvas[float64], args ...arg) error {
	if c == nil {
		return errors.Missing("canvas")
	}
	for _, a := range args {
		if math.IsNaN(a.value) {
			return errors.Missing("%s", a.name)
		}
	}
	return nil
}
