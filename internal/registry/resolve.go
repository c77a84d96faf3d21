package registry

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// ValidateName rejects component names that cannot be mapped safely onto a
// registry URL or directory. Nested names such as "forms/input" are allowed.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("component name is empty")
	}
	if strings.Contains(name, `\`) {
		return fmt.Errorf("invalid component name %q: backslashes are not allowed", name)
	}
	if strings.HasPrefix(name, "/") {
		return fmt.Errorf("invalid component name %q: must not be absolute", name)
	}
	for _, seg := range strings.Split(name, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return fmt.Errorf("invalid component name %q: bad path segment %q", name, seg)
		}
	}
	return nil
}

// NewSource picks a Source for a registry location. http(s) URLs use the
// HTTP client; file:// URLs and plain paths use a DirSource.
func NewSource(location string, opts ...Option) (Source, error) {
	if location == "" {
		return nil, fmt.Errorf("registry location is empty")
	}

	u, err := url.Parse(location)
	if err == nil {
		switch u.Scheme {
		case "http", "https":
			return New(location, opts...), nil
		case "file":
			return newDirSource(u.Path)
		}
	}

	return newDirSource(location)
}

func newDirSource(dir string) (*DirSource, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving registry directory %s: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("registry directory %s: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("registry location %s is not a directory", abs)
	}
	return &DirSource{Dir: abs}, nil
}
