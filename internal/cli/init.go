package cli

import (
	"errors"
	"fmt"

	"github.com/nerdboi-ui/nerdboi-ui/internal/branding"
	"github.com/nerdboi-ui/nerdboi-ui/internal/project"
	"github.com/nerdboi-ui/nerdboi-ui/internal/ui"
	"github.com/nerdboi-ui/nerdboi-ui/internal/wizard"
	"github.com/spf13/cobra"
)

var (
	initYes   bool
	initForce bool
)

func init() {
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "Accept all defaults without prompting")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing components.json without asking")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create components.json for your project",
	Long: `Initialize the project by answering a few questions about styling and
paths. The answers are saved to components.json in the project root.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	root, err := projectRoot()
	if err != nil {
		return err
	}
	exists := project.Exists(root)

	var cfg *project.Config
	if initYes {
		if exists && !initForce {
			return fmt.Errorf("%s already exists in %s (use --force to overwrite)", project.FileName, root)
		}
		cfg = project.Default()
	} else {
		cfg, err = wizard.Run(cmd.InOrStdin(), out, exists && !initForce)
		if errors.Is(err, wizard.ErrCancelled) {
			fmt.Fprintln(out)
			ui.Warn(out, "Cancelled. %s was not changed.", project.FileName)
			return nil
		}
		if err != nil {
			return err
		}
	}

	if err := project.Save(root, cfg); err != nil {
		return err
	}

	fmt.Fprintln(out)
	ui.Success(out, "Created %s", project.ConfigPath(root))
	ui.Hint(out, "Add your first component with `%s add button`.", branding.CLIName())
	return nil
}
