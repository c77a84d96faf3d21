package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nerdboi-ui/nerdboi-ui/internal/branding"
)

// FileName is the project config file looked up in the project root.
const FileName = "components.json"

// ErrNotFound is returned by Load when the project has no components.json.
var ErrNotFound = errors.New("components.json not found")

// Config represents the components.json structure.
type Config struct {
	Schema   string   `json:"$schema,omitempty"`
	Style    string   `json:"style,omitempty"`
	RSC      bool     `json:"rsc"`
	TSX      bool     `json:"tsx"`
	Tailwind Tailwind `json:"tailwind"`
	Aliases  Aliases  `json:"aliases"`
}

// Tailwind holds the styling settings chosen during init. The add flow
// carries them through untouched.
type Tailwind struct {
	Config       string `json:"config"`
	CSS          string `json:"css"`
	BaseColor    string `json:"baseColor"`
	CSSVariables bool   `json:"cssVariables"`
}

// Aliases maps logical locations to project-relative paths.
type Aliases struct {
	Components string `json:"components"`
	Utils      string `json:"utils"`
}

// Default returns the configuration produced by accepting every init default.
func Default() *Config {
	return &Config{
		Schema: branding.SchemaURL(),
		Style:  "default",
		RSC:    true,
		TSX:    true,
		Tailwind: Tailwind{
			Config:       "tailwind.config.js",
			CSS:          "src/app/globals.css",
			BaseColor:    "slate",
			CSSVariables: true,
		},
		Aliases: Aliases{
			Components: "src/components",
			Utils:      "src/lib/utils",
		},
	}
}

// ConfigPath returns the full path to components.json for a project.
func ConfigPath(root string) string {
	return filepath.Join(root, FileName)
}

// Exists reports whether the project already has a components.json.
func Exists(root string) bool {
	_, err := os.Stat(ConfigPath(root))
	return err == nil
}

// Load reads, validates, and parses components.json from the project root.
// A missing file yields an error wrapping ErrNotFound; a file that breaks the
// schema yields a *ValidationError.
func Load(root string) (*Config, error) {
	path := ConfigPath(root)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w in %s", ErrNotFound, root)
	}
	if err != nil {
		return nil, fmt.Errorf("reading project config: %w", err)
	}

	if err := Validate(data); err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}
	return &cfg, nil
}

// Save writes the config to components.json as indented JSON.
func Save(root string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling project config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(ConfigPath(root), data, 0644); err != nil {
		return fmt.Errorf("writing project config: %w", err)
	}
	return nil
}

// ComponentsDir resolves the components alias against the project root.
// Absolute aliases are used as-is.
func (c *Config) ComponentsDir(root string) string {
	if filepath.IsAbs(c.Aliases.Components) {
		return filepath.Clean(c.Aliases.Components)
	}
	return filepath.Join(root, c.Aliases.Components)
}
