package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// Point file extensions understood by the codec.
const (
	ExtJSON = ".json"
	ExtTOML = ".toml"
)

// ValidatePointFile validates a point-file path and returns its lowercased
// extension.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Extension must be .json or .toml (case-insensitive)
func ValidatePointFile(path string) (string, error) {
	if path == "" {
		return "", New(ErrCodeInvalidPath, "point file path cannot be empty")
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return "", New(ErrCodeInvalidPath, "point file path contains invalid characters")
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ExtJSON, ExtTOML:
		return ext, nil
	case "":
		return "", New(ErrCodeInvalidFormat, "point file %q has no extension (want %s or %s)", path, ExtJSON, ExtTOML)
	default:
		return "", New(ErrCodeInvalidFormat, "unsupported point file extension %q (want %s or %s)", ext, ExtJSON, ExtTOML)
	}
}
