package registry

import (
	"context"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/nerdboi-ui/nerdboi-ui/internal/logging"
	"github.com/nerdboi-ui/nerdboi-ui/internal/manifest"
)

// Resolver builds dependency trees from a Source. It remembers every manifest
// it has fetched, so within one add run a component shared by several
// requested components is fetched only once. Fetch errors are not remembered.
type Resolver struct {
	src     Source
	fetched map[string]*manifest.Component
	logger  *log.Logger
}

// NewResolver returns a Resolver reading from src. A nil logger discards output.
func NewResolver(src Source, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Resolver{
		src:     src,
		fetched: make(map[string]*manifest.Component),
		logger:  logger,
	}
}

// Resolve fetches name and, recursively, every registry dependency it
// declares. A name seen a second time within the tree becomes a Deduped
// leaf. A name that is already on the current path yields a *CycleError.
func (r *Resolver) Resolve(ctx context.Context, name string) (*Node, error) {
	seen := make(map[string]bool)
	return r.buildNode(ctx, name, nil, seen)
}

func (r *Resolver) buildNode(ctx context.Context, name string, stack []string, seen map[string]bool) (*Node, error) {
	if slices.Contains(stack, name) {
		path := append(slices.Clone(stack), name)
		return nil, &CycleError{Path: path}
	}

	if seen[name] {
		return &Node{Name: name, Deduped: true}, nil
	}
	seen[name] = true

	comp, err := r.fetch(ctx, name)
	if err != nil {
		return nil, err
	}

	node := &Node{Name: name, Component: comp}
	stack = append(stack, name)

	for _, dep := range comp.RegistryDependencies {
		child, err := r.buildNode(ctx, dep, stack, seen)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}

	return node, nil
}

func (r *Resolver) fetch(ctx context.Context, name string) (*manifest.Component, error) {
	if comp, ok := r.fetched[name]; ok {
		r.logger.Debug("reusing fetched manifest", "name", name)
		return comp, nil
	}
	comp, err := r.src.Fetch(ctx, name)
	if err != nil {
		return nil, err
	}
	r.fetched[name] = comp
	return comp, nil
}

// Flatten returns the tree's nodes in installation order: dependencies
// before dependents, each name once, Deduped leaves omitted.
func Flatten(root *Node) []*Node {
	seen := make(map[string]bool)
	var result []*Node
	flattenRecursive(root, seen, &result)
	return result
}

func flattenRecursive(node *Node, seen map[string]bool, result *[]*Node) {
	if node == nil || node.Deduped || seen[node.Name] {
		return
	}

	for _, child := range node.Children {
		flattenRecursive(child, seen, result)
	}

	if !seen[node.Name] {
		seen[node.Name] = true
		*result = append(*result, node)
	}
}
