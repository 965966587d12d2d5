package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/sparsecanvas/pkg/canvas"
	"github.com/matzehuels/sparsecanvas/pkg/errors"
)

// ReadJSON decodes a JSON point file from r.
//
// ReadJSON returns an error if:
//   - The JSON is malformed (ErrCodeInvalidFormat)
//   - A row has no y values (ErrCodeInvalidArgument)
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*canvas.Canvas[float64], error) {
	var data pointFile
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json")
	}
	return data.toCanvas()
}

// ReadTOML decodes a TOML point file from r. Keys other than rows, x and y
// are rejected so that typos do not silently drop points.
func ReadTOML(r io.Reader) (*canvas.Canvas[float64], error) {
	var data pointFile
	md, err := toml.NewDecoder(r).Decode(&data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "decode toml: unknown key %q", undecoded[0].String())
	}
	return data.toCanvas()
}

// Import reads the point file at path, choosing the codec by extension.
func Import(path string) (*canvas.Canvas[float64], error) {
	ext, err := errors.ValidatePointFile(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	if ext == errors.ExtTOML {
		return ReadTOML(f)
	}
	return ReadJSON(f)
}
