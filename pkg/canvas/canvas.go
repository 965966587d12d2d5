package canvas

import (
	"github.com/google/btree"
	"golang.org/x/exp/constraints"

	"github.com/matzehuels/sparsecanvas/pkg/errors"
)

// treeDegree is the B-tree degree used for rows and row values.
const treeDegree = 8

// Point is a single (X, Y) coordinate pair.
type Point[T constraints.Ordered] struct {
	X, Y T
}

// row holds the ordered y values present at x. A row stored in a canvas is
// never empty.
type row[T constraints.Ordered] struct {
	x  T
	ys *btree.BTreeG[T]
}

// Canvas is a sparse set of points keyed by x. Each x maps to the non-empty
// ordered set of y values present in that column.
//
// The zero value is not usable; create canvases with [New] or [Of].
// Canvas is not safe for concurrent use when [Canvas.Add] is involved.
type Canvas[T constraints.Ordered] struct {
	rows *btree.BTreeG[row[T]]
}

// New returns an empty canvas.
func New[T constraints.Ordered]() *Canvas[T] {
	return &Canvas[T]{rows: newRows[T]()}
}

// Of returns a canvas holding a deep copy of points. Duplicate y values
// within a row collapse into one point.
//
// Of returns an error coded ErrCodeMissingValue if points is nil, a row slice
// is nil, or a key is missing. It returns ErrCodeInvalidArgument if a row is
// empty or contains a missing y value.
func Of[T constraints.Ordered](points map[T][]T) (*Canvas[T], error) {
	if points == nil {
		return nil, errors.Missing("point map")
	}
	c := New[T]()
	for x, ys := range points {
		if isMissing(x) {
			return nil, errors.Missing("row key")
		}
		if ys == nil {
			return nil, errors.Missing("row %v", x)
		}
		if len(ys) == 0 {
			return nil, errors.Invalid("row %v must not be empty", x)
		}
		set := newValues[T]()
		for _, y := range ys {
			if isMissing(y) {
				return nil, errors.Invalid("row %v contains a missing y value", x)
			}
			set.ReplaceOrInsert(y)
		}
		c.rows.ReplaceOrInsert(row[T]{x: x, ys: set})
	}
	return c, nil
}

// XSet returns the x coordinates that hold at least one point, ascending.
// The returned slice is owned by the caller.
func (c *Canvas[T]) XSet() []T {
	xs := make([]T, 0, c.rows.Len())
	c.rows.Ascend(func(r row[T]) bool {
		xs = append(xs, r.x)
		return true
	})
	return xs
}

// YSet returns the y values present at x, ascending, or an empty slice if x
// has no points. The returned slice is owned by the caller.
func (c *Canvas[T]) YSet(x T) ([]T, error) {
	if isMissing(x) {
		return nil, errors.Missing("x coordinate")
	}
	r, ok := c.row(x)
	if !ok {
		return []T{}, nil
	}
	return values(r.ys), nil
}

// HasPoint reports whether (x, y) is on the canvas.
func (c *Canvas[T]) HasPoint(x, y T) (bool, error) {
	if isMissing(x) {
		return false, errors.Missing("x coordinate")
	}
	if isMissing(y) {
		return false, errors.Missing("y coordinate")
	}
	return c.has(x, y), nil
}

// PointCount returns the total number of points, summed across all rows.
func (c *Canvas[T]) PointCount() int {
	n := 0
	c.rows.Ascend(func(r row[T]) bool {
		n += r.ys.Len()
		return true
	})
	return n
}

// RowCount returns the number of distinct x coordinates.
func (c *Canvas[T]) RowCount() int { return c.rows.Len() }

// XRange returns the smallest and largest x coordinates. ok is false when
// the canvas is empty.
func (c *Canvas[T]) XRange() (lo, hi T, ok bool) {
	first, ok := c.rows.Min()
	if !ok {
		return lo, hi, false
	}
	last, _ := c.rows.Max()
	return first.x, last.x, true
}

// Add inserts (x, y) and reports whether the point was new.
//
// Unlike the query methods, Add does not fail on a missing coordinate: it
// returns false, the same as for a point that already exists.
func (c *Canvas[T]) Add(x, y T) bool {
	if isMissing(x) || isMissing(y) || c.has(x, y) {
		return false
	}
	c.insert(x, y)
	return true
}

// Points returns every point ordered by x, then by y.
func (c *Canvas[T]) Points() []Point[T] {
	pts := make([]Point[T], 0, c.PointCount())
	c.rows.Ascend(func(r row[T]) bool {
		r.ys.Ascend(func(y T) bool {
			pts = append(pts, Point[T]{X: r.x, Y: y})
			return true
		})
		return true
	})
	return pts
}

// ToMap returns a deep copy of the canvas as a map of rows. It is the
// inverse of [Of]: Of(c.ToMap()) equals c.
func (c *Canvas[T]) ToMap() map[T][]T {
	m := make(map[T][]T, c.rows.Len())
	c.rows.Ascend(func(r row[T]) bool {
		m[r.x] = values(r.ys)
		return true
	})
	return m
}

// Equal reports whether c and other hold exactly the same points.
func (c *Canvas[T]) Equal(other *Canvas[T]) bool {
	if other == nil || c.rows.Len() != other.rows.Len() {
		return false
	}
	equal := true
	c.rows.Ascend(func(r row[T]) bool {
		o, ok := other.row(r.x)
		if !ok || o.ys.Len() != r.ys.Len() {
			equal = false
			return false
		}
		r.ys.Ascend(func(y T) bool {
			equal = o.ys.Has(y)
			return equal
		})
		return equal
	})
	return equal
}

func (c *Canvas[T]) row(x T) (row[T], bool) {
	return c.rows.Get(row[T]{x: x})
}

func (c *Canvas[T]) has(x, y T) bool {
	r, ok := c.row(x)
	return ok && r.ys.Has(y)
}

// insert adds (x, y), creating the row on first use. Callers have already
// rejected missing coordinates.
func (c *Canvas[T]) insert(x, y T) {
	if r, ok := c.row(x); ok {
		r.ys.ReplaceOrInsert(y)
		return
	}
	ys := newValues[T]()
	ys.ReplaceOrInsert(y)
	c.rows.ReplaceOrInsert(row[T]{x: x, ys: ys})
}

// isMissing reports whether v is NaN, the only value of an ordered type
// that is not equal to itself.
func isMissing[T constraints.Ordered](v T) bool {
	return v != v
}

func less[T constraints.Ordered](a, b T) bool { return a < b }

func rowLess[T constraints.Ordered](a, b row[T]) bool { return a.x < b.x }

func newRows[T constraints.Ordered]() *btree.BTreeG[row[T]] {
	return btree.NewG[row[T]](treeDegree, rowLess[T])
}

func newValues[T constraints.Ordered]() *btree.BTreeG[T] {
	return btree.NewG[T](treeDegree, less[T])
}

func values[T constraints.Ordered](t *btree.BTreeG[T]) []T {
	out := make([]T, 0, t.Len())
	t.Ascend(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}
