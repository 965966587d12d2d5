// Package pkg provides the core libraries for sparsecanvas.
//
// # Overview
//
// Sparsecanvas stores sparse sets of 2D points over any ordered coordinate
// type, answers closed-rectangle queries, and maps whole point sets through
// geometric transforms. The pkg directory is organized as follows:
//
//  1. [canvas] - The point set, rectangles, slicing and the transform primitive
//  2. [canvas/transform] - Shift, rotate, magnify and snap over float64 canvases
//  3. [io] - JSON and TOML point files
//  4. [errors] - Coded errors shared by every package
//  5. [observability] - Hooks for instrumenting canvas operations
//  6. [buildinfo] - Version information injected at build time
//
// # Architecture
//
// The typical data flow:
//
//	points.json / points.toml
//	         ↓
//	    [io] package (decode, merge rows)
//	         ↓
//	    [canvas] package (query, slice)
//	         ↓
//	    [canvas/transform] package (shift, rotate, magnify)
//	         ↓
//	    point listing or point file
//
// # Quick Start
//
//	c, _ := io.Import("points.toml")
//	r, _ := canvas.NewRectangle(3.0, -3.0, -3.0, 3.0)
//	inside, _ := c.Slice(r)
//	turned, _ := transform.Rotate(inside, transform.Degrees(90))
//	_ = io.Export(turned, "turned.json")
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/canvas/...   # Specific package
//	go test -run Example       # Examples only
//
// [canvas]: https://pkg.go.dev/github.com/matzehuels/sparsecanvas/pkg/canvas
// [canvas/transform]: https://pkg.go.dev/github.com/matzehuels/sparsecanvas/pkg/canvas/transform
// [io]: https://pkg.go.dev/github.com/matzehuels/sparsecanvas/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/sparsecanvas/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/sparsecanvas/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/sparsecanvas/pkg/buildinfo
package pkg
