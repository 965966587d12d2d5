// Package canvas provides a sparse, ordered, two-dimensional point set.
//
// # Overview
//
// A [Canvas] is a mathematical set of points (x, y) over any ordered
// coordinate type. It is not a pixel buffer: only the points that exist are
// stored, grouped into rows keyed by x. Each row holds the ordered set of y
// values present at that x.
//
// Rows and their values are kept in B-trees, so keys are always sorted and
// nearest-neighbor lookups (ceiling and floor) are logarithmic. This makes
// range extraction cheap on large canvases.
//
// # Basic Usage
//
// Build a canvas from a map of rows with [Of], then query it:
//
//	c, err := canvas.Of(map[int][]int{
//	    -1: {0},
//	    0:  {-3, 4},
//	    2:  {0},
//	})
//	c.PointCount()      // 4
//	c.YSet(0)           // [-3 4]
//	c.HasPoint(-1, 0)   // true
//
// [Of] copies its input. Later changes to the source map are not visible
// through the canvas, and [Canvas.Add] never touches the source map.
//
// # Slicing
//
// [Canvas.Slice] returns the points inside a [Rectangle], inclusive on all
// four bounds. [Canvas.SliceCount] counts them without building a new canvas,
// and [Canvas.SubCanvas] restricts the x-range only.
//
// Rectangles come in two flavours. [NewRectangle] requires bottom < top and
// left < right. [Bounds] only requires that no bound is missing; an inverted
// permissive rectangle simply contains nothing.
//
// # Transforms
//
// [Canvas.Transform] maps every point through independent x and y functions.
// [Canvas.TransformJoint] passes both coordinates to each function, which is
// what rotations and shears need. Both return a new canvas. When two source
// points land on the same destination, the destination holds it once.
//
// Ready-made geometric transforms live in the transform subpackage.
//
// # Missing Values
//
// A coordinate is missing when it is NaN; NaN has no place in a total order.
// Queries reject missing arguments with an error coded
// [errors.ErrCodeMissingValue]. [Canvas.Add] is the exception: it reports a
// missing coordinate by returning false.
//
// # Concurrency
//
// Read-only methods are safe for concurrent use. [Canvas.Add] mutates the
// canvas and requires external synchronization when the canvas is shared.
//
// [errors.ErrCodeMissingValue]: github.com/matzehuels/sparsecanvas/pkg/errors.ErrCodeMissingValue
package canvas
