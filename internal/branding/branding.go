// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed, so a fork only has to edit one file to rename the
// tool or point it at a different registry.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	GitHubRepo  string `yaml:"github_repo"`
	RegistryURL string `yaml:"registry_url"`
	SchemaURL   string `yaml:"schema_url"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or partial.
		defaults = brand{
			CLIName:     "nerdboi-ui",
			DisplayName: "nerdboi-ui",
			Description: "Add components to your project",
			HomeDir:     ".nerdboi-ui",
			EnvPrefix:   "NERDBOI_UI",
			GoModule:    "github.com/nerdboi-ui/nerdboi-ui",
			GitHubRepo:  "nerdboi-ui/nerdboi-ui",
			RegistryURL: "https://raw.githubusercontent.com/nerdboi-ui/nerdboi-ui/main/public/r",
			SchemaURL:   "https://ui.shadcn.com/schema.json",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "nerdboi-ui").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".nerdboi-ui").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "NERDBOI_UI").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string used for release checks.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// RegistryURL returns the default component registry base URL.
func RegistryURL() string { load(); return defaults.RegistryURL }

// SchemaURL returns the $schema value written into components.json.
func SchemaURL() string { load(); return defaults.SchemaURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("registry") → "NERDBOI_UI_REGISTRY".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
