package canvas

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/matzehuels/sparsecanvas/pkg/errors"
)

// Rectangle is an immutable axis-aligned bounding box used by
// [Canvas.Slice] and [Canvas.SliceCount]. All four bounds are inclusive.
//
// The zero value is a degenerate box at the origin; use [NewRectangle] or
// [Bounds] to build one.
type Rectangle[T constraints.Ordered] struct {
	top, bottom, left, right T
}

// NewRectangle returns a rectangle with the given bounds.
//
// It returns an error coded ErrCodeMissingValue if any bound is missing, and
// ErrCodeInvalidArgument if bottom >= top or left >= right.
func NewRectangle[T constraints.Ordered](top, bottom, left, right T) (*Rectangle[T], error) {
	r, err := Bounds(top, bottom, left, right)
	if err != nil {
		return nil, err
	}
	if err := verifyBounds("bottom", bottom, "top", top); err != nil {
		return nil, err
	}
	if err := verifyBounds("left", left, "right", right); err != nil {
		return nil, err
	}
	return r, nil
}

// Bounds returns a rectangle without checking bound ordering. It still
// rejects missing bounds. A rectangle with inverted bounds contains no points.
func Bounds[T constraints.Ordered](top, bottom, left, right T) (*Rectangle[T], error) {
	for _, b := range []struct {
		name  string
		value T
	}{
		{"top", top},
		{"bottom", bottom},
		{"left", left},
		{"right", right},
	} {
		if isMissing(b.value) {
			return nil, errors.Missing("rectangle %s bound", b.name)
		}
	}
	return &Rectangle[T]{top: top, bottom: bottom, left: left, right: right}, nil
}

func verifyBounds[T constraints.Ordered](lowerName string, lower T, upperName string, upper T) error {
	if lower >= upper {
		return errors.Invalid("%s bound %v must be less than %s bound %v", lowerName, lower, upperName, upper)
	}
	return nil
}

// Top returns the upper y bound.
func (r *Rectangle[T]) Top() T { return r.top }

// Bottom returns the lower y bound.
func (r *Rectangle[T]) Bottom() T { return r.bottom }

// Left returns the lower x bound.
func (r *Rectangle[T]) Left() T { return r.left }

// Right returns the upper x bound.
func (r *Rectangle[T]) Right() T { return r.right }

// Contains reports whether (x, y) lies inside r, bounds included.
func (r *Rectangle[T]) Contains(x, y T) bool {
	return r.containsX(x) && r.containsY(y)
}

func (r *Rectangle[T]) containsX(x T) bool { return r.left <= x && x <= r.right }
func (r *Rectangle[T]) containsY(y T) bool { return r.bottom <= y && y <= r.top }

// String formats r as "[left,right]x[bottom,top]".
func (r *Rectangle[T]) String() string {
	return fmt.Sprintf("[%v,%v]x[%v,%v]", r.left, r.right, r.bottom, r.top)
}
