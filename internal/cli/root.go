package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/nerdboi-ui/nerdboi-ui/internal/branding"
	"github.com/nerdboi-ui/nerdboi-ui/internal/config"
	"github.com/nerdboi-ui/nerdboi-ui/internal/pkgmgr"
	"github.com/nerdboi-ui/nerdboi-ui/internal/ui"
	"github.com/nerdboi-ui/nerdboi-ui/internal/updater"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	flagCwd     string
	flagVerbose bool
)

// packageRunner executes package manager commands. Nil means os/exec.
var packageRunner pkgmgr.Runner

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagCwd, "cwd", "C", "", "Project root (defaults to the current directory)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` copies UI component source files from a registry into your project
and installs the packages they depend on.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// version --check reports on its own.
		if cmd.Name() == "version" {
			return
		}
		updater.New(buildVersion).CheckAndPrintBanner(cmd.ErrOrStderr(), config.Dir())
	},
}

// Execute runs the root command with build info injected via ldflags. The
// context is cancelled on SIGINT or SIGTERM.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !isReported(err) {
		ui.Fail(rootCmd.ErrOrStderr(), "Error: %v", err)
	}
	return err
}

// reportedError marks an error whose details were already printed, so
// Execute only has to turn it into a non-zero exit.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	return &reportedError{err: err}
}

func isReported(err error) bool {
	var re *reportedError
	return errors.As(err, &re)
}

// projectRoot returns the absolute project directory from --cwd or the
// working directory.
func projectRoot() (string, error) {
	dir := flagCwd
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting current directory: %w", err)
		}
		dir = wd
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving project directory %s: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("project directory %s: %w", abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("project directory %s is not a directory", abs)
	}
	return abs, nil
}
