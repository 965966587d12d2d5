package canvas

import (
	"github.com/google/btree"
	"golang.org/x/exp/constraints"

	"github.com/matzehuels/sparsecanvas/pkg/errors"
)

// linearSliceRows is the row count up to which Slice filters every point
// directly instead of narrowing through ceiling/floor lookups.
const linearSliceRows = 32

// Slice returns a new canvas holding the points of c that lie inside r,
// bounds included. It returns an error coded ErrCodeMissingValue if r is nil.
//
// Small canvases are filtered point by point. Larger ones first narrow the
// x-keys to [ceiling(left), floor(right)] and then each surviving row to
// [ceiling(bottom), floor(top)]. Both strategies return the same points.
func (c *Canvas[T]) Slice(r *Rectangle[T]) (*Canvas[T], error) {
	if r == nil {
		return nil, errors.Missing("rectangle")
	}
	if c.rows.Len() <= linearSliceRows {
		return c.filterSlice(r), nil
	}
	return c.narrowSlice(r), nil
}

// SliceCount returns the number of points inside r. It equals
// Slice(r).PointCount() but counts without building a canvas.
func (c *Canvas[T]) SliceCount(r *Rectangle[T]) (int, error) {
	if r == nil {
		return 0, errors.Missing("rectangle")
	}
	n := 0
	for _, rw := range boundedRows(c.rows, r.left, r.right) {
		n += countBounded(rw.ys, r.bottom, r.top)
	}
	return n, nil
}

// SubCanvas returns a new canvas holding the full rows of c whose x lies in
// [xMin, xMax].
//
// It returns ErrCodeMissingValue if either bound is missing and
// ErrCodeInvalidArgument if xMin > xMax.
func (c *Canvas[T]) SubCanvas(xMin, xMax T) (*Canvas[T], error) {
	if isMissing(xMin) {
		return nil, errors.Missing("lower x bound")
	}
	if isMissing(xMax) {
		return nil, errors.Missing("upper x bound")
	}
	if xMin > xMax {
		return nil, errors.Invalid("lower x bound %v is greater than upper x bound %v", xMin, xMax)
	}
	out := New[T]()
	for _, rw := range boundedRows(c.rows, xMin, xMax) {
		out.rows.ReplaceOrInsert(row[T]{x: rw.x, ys: rw.ys.Clone()})
	}
	return out, nil
}

func (c *Canvas[T]) filterSlice(r *Rectangle[T]) *Canvas[T] {
	out := New[T]()
	c.rows.Ascend(func(rw row[T]) bool {
		if !r.containsX(rw.x) {
			return true
		}
		rw.ys.Ascend(func(y T) bool {
			if r.containsY(y) {
				out.insert(rw.x, y)
			}
			return true
		})
		return true
	})
	return out
}

func (c *Canvas[T]) narrowSlice(r *Rectangle[T]) *Canvas[T] {
	out := New[T]()
	for _, rw := range boundedRows(c.rows, r.left, r.right) {
		if ys := boundedValues(rw.ys, r.bottom, r.top); ys.Len() > 0 {
			out.rows.ReplaceOrInsert(row[T]{x: rw.x, ys: ys})
		}
	}
	return out
}

// boundedRows returns the rows whose key lies in [lo, hi], ascending.
func boundedRows[T constraints.Ordered](rows *btree.BTreeG[row[T]], lo, hi T) []row[T] {
	first, ok := ceiling(rows, row[T]{x: lo})
	if !ok {
		return nil
	}
	last, ok := floor(rows, row[T]{x: hi})
	if !ok || last.x < first.x {
		return nil
	}
	var out []row[T]
	rows.AscendGreaterOrEqual(first, func(rw row[T]) bool {
		if rw.x > last.x {
			return false
		}
		out = append(out, rw)
		return true
	})
	return out
}

// boundedValues returns a new tree holding the values of ys in [lo, hi].
func boundedValues[T constraints.Ordered](ys *btree.BTreeG[T], lo, hi T) *btree.BTreeG[T] {
	out := newValues[T]()
	ascendBounded(ys, lo, hi, func(y T) {
		out.ReplaceOrInsert(y)
	})
	return out
}

func countBounded[T constraints.Ordered](ys *btree.BTreeG[T], lo, hi T) int {
	n := 0
	ascendBounded(ys, lo, hi, func(T) { n++ })
	return n
}

func ascendBounded[T constraints.Ordered](ys *btree.BTreeG[T], lo, hi T, fn func(T)) {
	first, ok := ceiling(ys, lo)
	if !ok {
		return
	}
	last, ok := floor(ys, hi)
	if !ok || last < first {
		return
	}
	ys.AscendGreaterOrEqual(first, func(y T) bool {
		if y > last {
			return false
		}
		fn(y)
		return true
	})
}

// ceiling returns the least item of t that is >= pivot.
func ceiling[E any](t *btree.BTreeG[E], pivot E) (E, bool) {
	var found E
	var ok bool
	t.AscendGreaterOrEqual(pivot, func(item E) bool {
		found, ok = item, true
		return false
	})
	return found, ok
}

// floor returns the greatest item of t that is <= pivot.
func floor[E any](t *btree.BTreeG[E], pivot E) (E, bool) {
	var found E
	var ok bool
	t.DescendLessOrEqual(pivot, func(item E) bool {
		found, ok = item, true
		return false
	})
	return found, ok
}
