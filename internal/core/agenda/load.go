package agenda

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format names an agenda document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks a format from the file extension. Anything that is
// not .yaml or .yml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode reads an agenda document (an array of items) and builds its Index.
func Decode(r io.Reader, format Format) (*Index, error) {
	var items []Item

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		if err := dec.Decode(&items); err != nil && err != io.EOF {
			return nil, fmt.Errorf("decode agenda yaml: %w", err)
		}
	case FormatJSON, "":
		if err := json.NewDecoder(r).Decode(&items); err != nil {
			return nil, fmt.Errorf("decode agenda json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported agenda format %q", format)
	}

	idx, err := NewIndex(items)
	if err != nil {
		return nil, fmt.Errorf("build index: %w", err)
	}
	return idx, nil
}

// LoadFile opens and decodes the agenda document at path.
func LoadFile(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open agenda: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f, FormatFromPath(path))
}
