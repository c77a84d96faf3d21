package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/nerdboi-ui/nerdboi-ui/internal/manifest"
)

// Source fetches a component manifest by name.
type Source interface {
	Fetch(ctx context.Context, name string) (*manifest.Component, error)
}

// Node is one component in a resolved dependency tree.
type Node struct {
	Name      string
	Component *manifest.Component
	Children  []*Node
	Deduped   bool // already visited elsewhere in the tree; Component is nil
}

// FetchError reports a failed manifest fetch for a named component.
type FetchError struct {
	Name       string
	URL        string
	StatusCode int   // non-2xx HTTP status, 0 for transport/decoding failures
	NotFound   bool  // the registry has no manifest with this name
	Err        error // underlying transport or decoding error
}

func (e *FetchError) Error() string {
	switch {
	case e.NotFound:
		return fmt.Sprintf("component %q not found in registry", e.Name)
	case e.StatusCode != 0:
		return fmt.Sprintf("fetching component %q: registry returned status %d", e.Name, e.StatusCode)
	default:
		return fmt.Sprintf("fetching component %q: %v", e.Name, e.Err)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

// CycleError reports a registry dependency cycle. Path starts and ends with
// the same component name.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return "dependency cycle detected: " + strings.Join(e.Path, " -> ")
}
