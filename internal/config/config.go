package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/nerdboi-ui/nerdboi-ui/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyRegistry       = "registry"
	KeyTimeout        = "timeout"
	KeyPackageManager = "package_manager"
)

// DefaultTimeout bounds a single registry request.
const DefaultTimeout = 30 * time.Second

var knownKeys = map[string]bool{
	KeyRegistry:       true,
	KeyTimeout:        true,
	KeyPackageManager: true,
}

// Dir returns the path to the config directory (~/.nerdboi-ui/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.nerdboi-ui/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyRegistry, branding.RegistryURL())
	viper.SetDefault(KeyTimeout, DefaultTimeout.String())
	viper.SetDefault(KeyPackageManager, "")

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Registry returns the configured registry location (URL or directory).
func Registry() string {
	return viper.GetString(KeyRegistry)
}

// Timeout returns the per-request registry timeout. Zero disables it.
func Timeout() time.Duration {
	return viper.GetDuration(KeyTimeout)
}

// PackageManager returns the forced package manager, or "" for detection.
func PackageManager() string {
	return viper.GetString(KeyPackageManager)
}

// Keys returns the recognized configuration keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(knownKeys))
	for k := range knownKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !knownKeys[key] {
		return fmt.Errorf("unknown key %q (known keys: %v)", key, Keys())
	}
	if key == KeyTimeout {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
