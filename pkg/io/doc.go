// Package io provides JSON and TOML import and export for point canvases.
//
// # Overview
//
// A point file lists the rows of a [canvas.Canvas] of float64 coordinates.
// Each row names an x coordinate and the y values present at that x:
//
//	{
//	  "rows": [
//	    {"x": -1, "y": [0]},
//	    {"x": 0, "y": [-3, 4]}
//	  ]
//	}
//
// The TOML form has the same shape:
//
//	[[rows]]
//	x = -1.0
//	y = [0.0]
//
//	[[rows]]
//	x = 0.0
//	y = [-3.0, 4.0]
//
// Rows that repeat an x coordinate merge, and repeated y values collapse into
// one point. A row with no y values is rejected.
//
// # Import
//
// Use [Import] to read a canvas from a file path. The codec is chosen by the
// file extension (.json or .toml). [ReadJSON] and [ReadTOML] read from any
// io.Reader:
//
//	c, err := io.Import("points.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Malformed input is reported as ErrCodeInvalidFormat; a file that does not
// exist as ErrCodeFileNotFound.
//
// # Export
//
// Use [Export] to write a canvas to a file, or [WriteJSON] and [WriteTOML] to
// write to any io.Writer. Rows are written in ascending x order and y values
// in ascending order, so exporting the same canvas twice yields identical
// bytes.
package io
