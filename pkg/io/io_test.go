package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/sparsecanvas/pkg/canvas"
	"github.com/matzehuels/sparsecanvas/pkg/errors"
)

func sample(t *testing.T) *canvas.Canvas[float64] {
	t.Helper()
	c, err := canvas.Of(map[float64][]float64{
		-1:  {0},
		0:   {-3, 4},
		2.5: {0.25},
	})
	if err != nil {
		t.Fatalf("Of() error = %v", err)
	}
	return c
}

func TestReadJSON(t *testing.T) {
	in := `{"rows": [{"x": -1, "y": [0]}, {"x": 0, "y": [4, -3]}, {"x": 2.5, "y": [0.25]}]}`

	c, err := ReadJSON(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if !c.Equal(sample(t)) {
		t.Errorf("ReadJSON() = %v, want %v", c.Points(), sample(t).Points())
	}
}

func TestReadJSON_MergesRows(t *testing.T) {
	in := `{"rows": [{"x": 1, "y": [2]}, {"x": 1, "y": [3, 2]}]}`

	c, err := ReadJSON(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if c.RowCount() != 1 || c.PointCount() != 2 {
		t.Errorf("rows=%d points=%d, want 1 row with 2 points", c.RowCount(), c.PointCount())
	}
}

func TestReadJSON_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		code errors.Code
	}{
		{"malformed", `{"rows": [`, errors.ErrCodeInvalidFormat},
		{"wrong type", `{"rows": [{"x": "a", "y": [1]}]}`, errors.ErrCodeInvalidFormat},
		{"empty row", `{"rows": [{"x": 1, "y": []}]}`, errors.ErrCodeInvalidArgument},
		{"absent y", `{"rows": [{"x": 1}]}`, errors.ErrCodeInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.in))
			if !errors.Is(err, tt.code) {
				t.Errorf("ReadJSON() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestReadJSON_EmptyFile(t *testing.T) {
	c, err := ReadJSON(strings.NewReader(`{"rows": []}`))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if c.PointCount() != 0 {
		t.Errorf("PointCount() = %d, want 0", c.PointCount())
	}
}

func TestReadTOML(t *testing.T) {
	in := `
[[rows]]
x = -1
y = [0]

[[rows]]
x = 0.0
y = [-3.0, 4.0]

[[rows]]
x = 2.5
y = [0.25]
`
	c, err := ReadTOML(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadTOML() error = %v", err)
	}
	if !c.Equal(sample(t)) {
		t.Errorf("ReadTOML() = %v, want %v", c.Points(), sample(t).Points())
	}
}

func TestReadTOML_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		code errors.Code
	}{
		{"malformed", "[[rows]\nx = 1", errors.ErrCodeInvalidFormat},
		{"unknown key", "[[rows]]\nx = 1.0\ny = [1.0]\nz = 2.0", errors.ErrCodeInvalidFormat},
		{"empty row", "[[rows]]\nx = 1.0\ny = []", errors.ErrCodeInvalidArgument},
		{"nan key", "[[rows]]\nx = nan\ny = [1.0]", errors.ErrCodeMissingValue},
		{"nan value", "[[rows]]\nx = 1.0\ny = [nan]", errors.ErrCodeInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadTOML(strings.NewReader(tt.in))
			if !errors.Is(err, tt.code) {
				t.Errorf("ReadTOML() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	c := sample(t)
	var buf bytes.Buffer
	if err := WriteJSON(c, &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if !got.Equal(c) {
		t.Errorf("round trip = %v, want %v", got.Points(), c.Points())
	}
}

func TestWriteTOML_RoundTrip(t *testing.T) {
	c := sample(t)
	var buf bytes.Buffer
	if err := WriteTOML(c, &buf); err != nil {
		t.Fatalf("WriteTOML() error = %v", err)
	}
	got, err := ReadTOML(&buf)
	if err != nil {
		t.Fatalf("ReadTOML() error = %v\n%s", err, buf.String())
	}
	if !got.Equal(c) {
		t.Errorf("round trip = %v, want %v", got.Points(), c.Points())
	}
}

func TestWriteJSON_Deterministic(t *testing.T) {
	c := sample(t)
	var a, b bytes.Buffer
	_ = WriteJSON(c, &a)
	_ = WriteJSON(c, &b)
	if a.String() != b.String() {
		t.Errorf("WriteJSON() output differs between calls:\n%s\n%s", a.String(), b.String())
	}
	if !strings.Contains(a.String(), `"rows"`) {
		t.Errorf("WriteJSON() output missing rows key:\n%s", a.String())
	}
}

func TestWrite_NilCanvas(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(nil, &buf); !errors.Is(err, errors.ErrCodeMissingValue) {
		t.Errorf("WriteJSON(nil) error = %v, want MISSING_VALUE", err)
	}
	if err := WriteTOML(nil, &buf); !errors.Is(err, errors.ErrCodeMissingValue) {
		t.Errorf("WriteTOML(nil) error = %v, want MISSING_VALUE", err)
	}
}

func TestExportImport(t *testing.T) {
	dir := t.TempDir()
	c := sample(t)

	for _, name := range []string{"points.json", "points.toml", "POINTS.TOML"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := Export(c, path); err != nil {
				t.Fatalf("Export() error = %v", err)
			}
			got, err := Import(path)
			if err != nil {
				t.Fatalf("Import() error = %v", err)
			}
			if !got.Equal(c) {
				t.Errorf("Import() = %v, want %v", got.Points(), c.Points())
			}
		})
	}
}

func TestImport_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		code errors.Code
	}{
		{"empty path", "", errors.ErrCodeInvalidPath},
		{"unknown extension", filepath.Join(dir, "points.yaml"), errors.ErrCodeInvalidFormat},
		{"missing file", filepath.Join(dir, "missing.json"), errors.ErrCodeFileNotFound},
		{"malformed file", bad, errors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Import(tt.path)
			if !errors.Is(err, tt.code) {
				t.Errorf("Import(%q) error = %v, want code %s", tt.path, err, tt.code)
			}
		})
	}
}

func TestExport_UnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.csv")
	if err := Export(sample(t), path); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Export() error = %v, want INVALID_FORMAT", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Export() created %s despite rejecting it", path)
	}
}

func TestImport_Examples(t *testing.T) {
	fromJSON, err := Import(filepath.Join("..", "..", "examples", "corners.json"))
	if err != nil {
		t.Fatalf("Import(corners.json) error = %v", err)
	}
	fromTOML, err := Import(filepath.Join("..", "..", "examples", "corners.toml"))
	if err != nil {
		t.Fatalf("Import(corners.toml) error = %v", err)
	}
	if !fromJSON.Equal(fromTOML) {
		t.Errorf("corners.json = %v, corners.toml = %v", fromJSON.Points(), fromTOML.Points())
	}
	if fromJSON.PointCount() != 8 {
		t.Errorf("PointCount() = %d, want 8", fromJSON.PointCount())
	}
}
