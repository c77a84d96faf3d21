package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/nerdboi-ui/nerdboi-ui/internal/branding"
	"github.com/nerdboi-ui/nerdboi-ui/internal/config"
	"github.com/nerdboi-ui/nerdboi-ui/internal/installer"
	"github.com/nerdboi-ui/nerdboi-ui/internal/logging"
	"github.com/nerdboi-ui/nerdboi-ui/internal/pkgmgr"
	"github.com/nerdboi-ui/nerdboi-ui/internal/project"
	"github.com/nerdboi-ui/nerdboi-ui/internal/registry"
	"github.com/nerdboi-ui/nerdboi-ui/internal/ui"
	"github.com/spf13/cobra"
)

var (
	addDryRun         bool
	addRegistry       string
	addPackageManager string
)

func init() {
	addCmd.Flags().BoolVar(&addDryRun, "dry-run", false, "Resolve components and show what would be written without changing anything")
	addCmd.Flags().StringVar(&addRegistry, "registry", "", "Registry URL or local directory (overrides the configured registry)")
	addCmd.Flags().StringVar(&addPackageManager, "package-manager", "", "Package manager to use: npm, yarn, or pnpm (default: detected from lockfile)")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <components...>",
	Short: "Add components to your project",
	Long: `Add one or more components to your project.

Each component is fetched from the registry together with the components it
depends on. Dependencies are written first and their npm packages installed
with the project's package manager. Files are written under the components
alias from components.json.`,
	Example: fmt.Sprintf("  %[1]s add button\n  %[1]s add dialog card --dry-run", branding.CLIName()),
	Args:    cobra.MinimumNArgs(1),
	RunE:    runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	root, err := projectRoot()
	if err != nil {
		return err
	}

	cfg, err := project.Load(root)
	if err != nil {
		ui.Fail(stderr, "%v", err)
		if errors.Is(err, project.ErrNotFound) {
			ui.Hint(stderr, "Run `%s init` to create one.", branding.CLIName())
		}
		return reported(err)
	}

	config.Load()
	location := addRegistry
	if location == "" {
		location = config.Registry()
	}

	logger := logging.New(stderr, flagVerbose)

	src, err := registry.NewSource(location,
		registry.WithTimeout(config.Timeout()),
		registry.WithUserAgent(branding.CLIName()+"/"+buildVersion),
		registry.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("opening registry: %w", err)
	}

	var manager pkgmgr.Manager
	if name := firstNonEmpty(addPackageManager, config.PackageManager()); name != "" {
		if manager, err = pkgmgr.Parse(name); err != nil {
			return err
		}
	}

	var pmOut io.Writer = io.Discard
	if flagVerbose {
		pmOut = stderr
	}

	in := &installer.Installer{
		Root:   root,
		Config: cfg,
		Source: src,
		Packages: &pkgmgr.Installer{
			Root:    root,
			Manager: manager,
			Runner:  packageRunner,
			Stdout:  pmOut,
			Stderr:  stderr,
			Logger:  logger,
		},
		Out:    stdout,
		Logger: logger,
		DryRun: addDryRun,
	}

	report := in.Add(cmd.Context(), args)
	installer.PrintSummary(stdout, report)
	if err := report.Err(); err != nil {
		return reported(err)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
