package cli

import (
	"fmt"
	"slices"

	"github.com/nerdboi-ui/nerdboi-ui/internal/branding"
	"github.com/nerdboi-ui/nerdboi-ui/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: fmt.Sprintf(`Read and write settings stored at ~/%s/config.yaml.

Keys: registry, timeout, package_manager. Each can also be set through the
environment with the %s_ prefix, e.g. %s.`, branding.HomeDir(), branding.EnvPrefix(), branding.EnvVar("REGISTRY")),
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		if !slices.Contains(config.Keys(), key) {
			return fmt.Errorf("unknown key %q (known keys: %v)", key, config.Keys())
		}
		config.Load()
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(key))
		return nil
	},
}
