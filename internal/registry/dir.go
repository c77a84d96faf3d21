package registry

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/nerdboi-ui/nerdboi-ui/internal/manifest"
)

// DirSource serves manifests from a local directory laid out like the remote
// registry: <Dir>/<name>.json.
type DirSource struct {
	Dir string
}

// Fetch reads <Dir>/<name>.json.
func (d *DirSource) Fetch(ctx context.Context, name string) (*manifest.Component, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, &FetchError{Name: name, Err: err}
	}

	path := filepath.Join(d.Dir, filepath.FromSlash(name)+".json")
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, &FetchError{Name: name, URL: path, NotFound: true}
	}
	if err != nil {
		return nil, &FetchError{Name: name, URL: path, Err: err}
	}

	c, err := manifest.Parse(data)
	if err != nil {
		return nil, &FetchError{Name: name, URL: path, Err: err}
	}
	if c.Name == "" {
		c.Name = name
	}
	return c, nil
}
