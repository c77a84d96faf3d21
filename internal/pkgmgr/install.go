package pkgmgr

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/nerdboi-ui/nerdboi-ui/internal/logging"
)

// Runner executes a command in dir.
type Runner interface {
	Run(ctx context.Context, dir string, stdout, stderr io.Writer, name string, args ...string) error
}

// ExecRunner runs commands with os/exec, resolving the binary on PATH.
type ExecRunner struct{}

// Run looks up name on PATH and runs it to completion.
func (ExecRunner) Run(ctx context.Context, dir string, stdout, stderr io.Writer, name string, args ...string) error {
	bin, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("%s not found on PATH: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// InstallError reports a failed package manager invocation.
type InstallError struct {
	Manager Manager
	Deps    []string
	Err     error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("failed to install dependencies with %s (%s): %v", e.Manager, strings.Join(e.Deps, " "), e.Err)
}

func (e *InstallError) Unwrap() error { return e.Err }

// Installer adds plain package dependencies to a project.
type Installer struct {
	Root    string  // project root; lockfile detection and working directory
	Manager Manager // forced manager; empty means Detect(Root) per call
	Runner  Runner
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *log.Logger
}

// Resolve returns the manager Install will use.
func (in *Installer) Resolve() Manager {
	if in.Manager != "" {
		return in.Manager
	}
	return Detect(in.Root)
}

// Install runs the package manager once with every dep appended. An empty
// deps list is a no-op.
func (in *Installer) Install(ctx context.Context, deps []string) error {
	if len(deps) == 0 {
		return nil
	}

	m := in.Resolve()
	args := m.Args(deps)

	runner := in.Runner
	if runner == nil {
		runner = ExecRunner{}
	}
	stdout, stderr := in.Stdout, in.Stderr
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	logger := in.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	logger.Debug("running package manager", "manager", m, "args", strings.Join(args, " "), "dir", in.Root)

	if err := runner.Run(ctx, in.Root, stdout, stderr, string(m), args...); err != nil {
		return &InstallError{Manager: m, Deps: deps, Err: err}
	}
	return nil
}
