package cli

import (
	"encoding/json"
	"fmt"

	"github.com/nerdboi-ui/nerdboi-ui/internal/branding"
	"github.com/nerdboi-ui/nerdboi-ui/internal/config"
	"github.com/nerdboi-ui/nerdboi-ui/internal/ui"
	"github.com/nerdboi-ui/nerdboi-ui/internal/updater"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
	versionCheck bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	versionCmd.Flags().BoolVar(&versionCheck, "check", false, "Check GitHub for a newer release")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if versionShort {
			fmt.Fprintln(out, buildVersion)
			return nil
		}

		if versionJSON {
			info := map[string]string{
				"version": buildVersion,
				"commit":  buildCommit,
				"date":    buildDate,
			}
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintf(out, "%s version %s (commit: %s, built: %s)\n", branding.CLIName(), buildVersion, buildCommit, buildDate)

		if versionCheck {
			return checkForUpdate(cmd)
		}
		return nil
	},
}

func checkForUpdate(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	if !updater.IsRelease(buildVersion) {
		ui.Warn(out, "Development build; update check skipped.")
		return nil
	}

	result, err := updater.New(buildVersion).Check(cmd.Context(), config.Dir())
	if err != nil {
		return fmt.Errorf("checking for updates: %w", err)
	}

	if !result.UpdateAvailable {
		ui.Success(out, "You are on the latest version (%s).", result.LatestVersion)
		return nil
	}
	ui.Warn(out, "Update available: %s -> %s", result.CurrentVersion, result.LatestVersion)
	if result.ReleaseURL != "" {
		ui.Hint(out, "    %s", result.ReleaseURL)
	}
	return nil
}
