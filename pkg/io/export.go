package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/sparsecanvas/pkg/canvas"
	"github.com/matzehuels/sparsecanvas/pkg/errors"
)

// WriteJSON encodes c as an indented JSON point file and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(c *canvas.Canvas[float64], w io.Writer) error {
	if c == nil {
		return errors.Missing("canvas")
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toFile(c)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode json")
	}
	return nil
}

// WriteTOML encodes c as a TOML point file and writes it to w.
func WriteTOML(c *canvas.Canvas[float64], w io.Writer) error {
	if c == nil {
		return errors.Missing("canvas")
	}
	if err := toml.NewEncoder(w).Encode(toFile(c)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode toml")
	}
	return nil
}

// Export writes c to path, choosing the codec by extension.
func Export(c *canvas.Canvas[float64], path string) (err error) {
	ext, err := errors.ValidatePointFile(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(errors.ErrCodeInternal, cerr, "close %s", path)
		}
	}()

	if ext == errors.ExtTOML {
		return WriteTOML(c, f)
	}
	return WriteJSON(c, f)
}
