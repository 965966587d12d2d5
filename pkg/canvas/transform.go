package canvas

import (
	"github.com/matzehuels/sparsecanvas/pkg/errors"
)

// Transform returns a new canvas with every point (x, y) moved to
// (fx(x), fy(y)). fx runs once per row and fy once per point.
//
// Points that land on the same destination are kept once, and rows whose
// new x values coincide are merged. Transform returns ErrCodeMissingValue if
// either function is nil and ErrCodeInvalidArgument if a function produces a
// missing coordinate.
func (c *Canvas[T]) Transform(fx, fy func(T) T) (*Canvas[T], error) {
	if fx == nil {
		return nil, errors.Missing("horizontal mapper")
	}
	if fy == nil {
		return nil, errors.Missing("vertical mapper")
	}

	out := New[T]()
	var err error
	c.rows.Ascend(func(r row[T]) bool {
		x := fx(r.x)
		if isMissing(x) {
			err = errors.Invalid("horizontal mapper produced a missing value for x=%v", r.x)
			return false
		}
		r.ys.Ascend(func(y T) bool {
			ny := fy(y)
			if isMissing(ny) {
				err = errors.Invalid("vertical mapper produced a missing value for y=%v", y)
				return false
			}
			out.insert(x, ny)
			return true
		})
		return err == nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TransformJoint returns a new canvas with every point (x, y) moved to
// (gx(x, y), gy(x, y)). Use it when each new coordinate depends on both old
// ones, as in a rotation.
//
// Collisions and errors follow [Canvas.Transform].
func (c *Canvas[T]) TransformJoint(gx, gy func(x, y T) T) (*Canvas[T], error) {
	if gx == nil {
		return nil, errors.Missing("horizontal mapper")
	}
	if gy == nil {
		return nil, errors.Missing("vertical mapper")
	}

	out := New[T]()
	var err error
	c.rows.Ascend(func(r row[T]) bool {
		r.ys.Ascend(func(y T) bool {
			nx, ny := gx(r.x, y), gy(r.x, y)
			if isMissing(nx) || isMissing(ny) {
				err = errors.Invalid("mapper produced a missing value for point (%v, %v)", r.x, y)
				return false
			}
			out.insert(nx, ny)
			return true
		})
		return err == nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
