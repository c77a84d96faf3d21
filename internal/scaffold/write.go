package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nerdboi-ui/nerdboi-ui/internal/manifest"
)

// Result holds the outcome of a Write.
type Result struct {
	OutputDir string
	Files     []string // absolute paths, in manifest order
}

// Plan returns the destination path of every file without touching the
// filesystem. It fails if any name escapes dir.
func Plan(dir string, files []manifest.File) ([]string, error) {
	paths := make([]string, 0, len(files))
	for _, f := range files {
		p, err := destination(dir, f.Name)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// Write writes each file under dir, overwriting existing content. All names
// are checked before the first write, so a manifest with a bad name leaves
// the disk untouched.
func Write(dir string, files []manifest.File) (*Result, error) {
	paths, err := Plan(dir, files)
	if err != nil {
		return nil, err
	}

	result := &Result{OutputDir: dir}
	for i, f := range files {
		p := paths[i]
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			return result, fmt.Errorf("creating directory for %s: %w", f.Name, err)
		}
		if err := os.WriteFile(p, []byte(f.Content), 0644); err != nil {
			return result, fmt.Errorf("writing %s: %w", p, err)
		}
		result.Files = append(result.Files, p)
	}
	return result, nil
}

// destination joins a manifest file name onto dir, rejecting names that are
// empty, absolute, or climb out of dir.
func destination(dir, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("manifest file has an empty name")
	}
	rel := filepath.FromSlash(name)
	if filepath.IsAbs(rel) || strings.HasPrefix(name, "/") {
		return "", fmt.Errorf("manifest file %q must be a relative path", name)
	}

	base := filepath.Clean(dir)
	p := filepath.Join(base, rel)
	r, err := filepath.Rel(base, p)
	if err != nil || r == "." || r == ".." || strings.HasPrefix(r, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("manifest file %q escapes the components directory", name)
	}
	return p, nil
}
