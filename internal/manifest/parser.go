package manifest

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Parse decodes a component manifest from raw JSON.
func Parse(data []byte) (*Component, error) {
	var c Component
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing component manifest: %w", err)
	}
	return &c, nil
}

// Decode reads a component manifest from r.
func Decode(r io.Reader) (*Component, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading component manifest: %w", err)
	}
	return Parse(data)
}

// ParseFile reads and decodes a manifest stored on disk.
func ParseFile(path string) (*Component, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
