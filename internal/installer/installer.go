package installer

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/nerdboi-ui/nerdboi-ui/internal/logging"
	"github.com/nerdboi-ui/nerdboi-ui/internal/project"
	"github.com/nerdboi-ui/nerdboi-ui/internal/registry"
	"github.com/nerdboi-ui/nerdboi-ui/internal/scaffold"
	"github.com/nerdboi-ui/nerdboi-ui/internal/ui"
)

// PackageInstaller installs plain package dependencies.
type PackageInstaller interface {
	Install(ctx context.Context, deps []string) error
}

// DependencyError reports a failure on a registry dependency of the
// requested component rather than on the component itself.
type DependencyError struct {
	Component  string
	Dependency string
	Err        error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("dependency %q: %v", e.Dependency, e.Err)
}

func (e *DependencyError) Unwrap() error { return e.Err }

// Installer adds components to a project. The zero value is not usable;
// Root, Config, Source, and Packages must be set.
type Installer struct {
	Root     string
	Config   *project.Config
	Source   registry.Source
	Packages PackageInstaller
	Out      io.Writer
	Logger   *log.Logger
	DryRun   bool

	resolver  *registry.Resolver
	installed map[string]bool
	failed    map[string]error
}

func (in *Installer) init() {
	if in.Out == nil {
		in.Out = io.Discard
	}
	if in.Logger == nil {
		in.Logger = logging.Discard()
	}
	if in.resolver == nil {
		in.resolver = registry.NewResolver(in.Source, in.Logger)
	}
	if in.installed == nil {
		in.installed = make(map[string]bool)
		in.failed = make(map[string]error)
	}
}

// Add processes names in order and returns one Result per name. A
// component already installed earlier in the same run, directly or as a
// dependency, is not fetched or written again.
func (in *Installer) Add(ctx context.Context, names []string) *Report {
	in.init()

	ui.Info(in.Out, "Adding %d component(s)...", len(names))
	fmt.Fprintln(in.Out)

	report := &Report{DryRun: in.DryRun}
	for _, name := range names {
		res := in.addOne(ctx, name)
		if res.Err != nil {
			ui.Fail(in.Out, "Failed to install %s", name)
			ui.Error(in.Out, "%v", res.Err)
		} else if in.DryRun {
			ui.Success(in.Out, "Resolved %s", name)
		} else {
			ui.Success(in.Out, "Installed %s", name)
		}
		report.Results = append(report.Results, res)
	}
	return report
}

func (in *Installer) addOne(ctx context.Context, name string) Result {
	res := Result{Name: name}

	if err := ctx.Err(); err != nil {
		res.Err = fmt.Errorf("cancelled: %w", err)
		return res
	}

	in.Logger.Debug("resolving component", "name", name)
	root, err := in.resolver.Resolve(ctx, name)
	if err != nil {
		res.Err = err
		return res
	}

	if in.DryRun {
		res.Err = in.preview(root)
		return res
	}

	for _, node := range registry.Flatten(root) {
		if in.installed[node.Name] {
			in.Logger.Debug("already installed in this run", "name", node.Name)
			continue
		}
		if prev, ok := in.failed[node.Name]; ok {
			res.Err = in.wrap(name, node.Name, fmt.Errorf("failed earlier: %w", prev))
			return res
		}

		written, err := in.installNode(ctx, node)
		res.Written = append(res.Written, written...)
		if err != nil {
			in.failed[node.Name] = err
			res.Err = in.wrap(name, node.Name, err)
			return res
		}

		in.installed[node.Name] = true
		res.Installed = append(res.Installed, node.Name)
		if node.Name != name {
			ui.Success(in.Out, "Installed %s (required by %s)", node.Name, name)
		}
	}

	return res
}

// installNode installs one component's plain dependencies, then writes its files.
func (in *Installer) installNode(ctx context.Context, node *registry.Node) ([]string, error) {
	comp := node.Component

	if comp.HasDependencies() {
		in.Logger.Debug("installing dependencies", "component", node.Name, "deps", comp.Dependencies)
		if err := in.Packages.Install(ctx, comp.Dependencies); err != nil {
			return nil, err
		}
	}

	dir := in.Config.ComponentsDir(in.Root)
	result, err := scaffold.Write(dir, comp.Files)
	var written []string
	if result != nil {
		written = result.Files
	}
	if err != nil {
		return written, err
	}
	in.Logger.Debug("wrote component files", "component", node.Name, "count", len(written))
	return written, nil
}

// preview prints what would happen for a resolved tree without side effects.
func (in *Installer) preview(root *registry.Node) error {
	registry.PrintTree(in.Out, root)

	dir := in.Config.ComponentsDir(in.Root)
	for _, node := range registry.Flatten(root) {
		paths, err := scaffold.Plan(dir, node.Component.Files)
		if err != nil {
			return in.wrap(root.Name, node.Name, err)
		}
		for _, p := range paths {
			fmt.Fprintf(in.Out, "    would write %s\n", p)
		}
		if node.Component.HasDependencies() {
			fmt.Fprintf(in.Out, "    would install %v\n", node.Component.Dependencies)
		}
	}
	fmt.Fprintln(in.Out)
	return nil
}

func (in *Installer) wrap(requested, failedName string, err error) error {
	if requested == failedName {
		return err
	}
	var de *DependencyError
	if errors.As(err, &de) {
		return err
	}
	return &DependencyError{Component: requested, Dependency: failedName, Err: err}
}
