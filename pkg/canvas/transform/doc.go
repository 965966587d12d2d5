// Package transform provides geometric transforms over canvases of
// float64 coordinates.
//
// # Overview
//
// Every function here is a thin composition over [canvas.Canvas.Transform] or
// [canvas.Canvas.TransformJoint]. None of them keep state or mutate their
// input; each returns a new canvas.
//
//   - [Shift] translates every point by (dx, dy)
//   - [Magnify] scales every coordinate by a factor about the origin
//   - [Rotate] rotates every point about the origin by theta radians,
//     counter-clockwise for positive theta
//   - [Snap] rounds coordinates to a grid to remove rounding noise
//
// # Collisions
//
// Transforms may map several points onto one destination; the result holds
// it once. Magnifying by zero, for instance, collapses any canvas onto the
// single point (0, 0).
//
// # Rounding
//
// Rotation goes through math.Sin and math.Cos, so a quarter turn of an
// integer point usually lands a few ulps away from the integer target. Run
// the result through [Snap] when exact grid positions matter.
//
// # Missing Values
//
// A nil canvas or a NaN argument is reported as an error coded
// ErrCodeMissingValue before any work is done.
package transform
