package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nerdboi-ui/nerdboi-ui/internal/branding"
	"github.com/spf13/viper"
)

func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return home
}

func TestLoad_Defaults(t *testing.T) {
	setupHome(t)
	Load()

	if got := Registry(); got != branding.RegistryURL() {
		t.Errorf("Registry() = %q, want %q", got, branding.RegistryURL())
	}
	if got := Timeout(); got != DefaultTimeout {
		t.Errorf("Timeout() = %v, want %v", got, DefaultTimeout)
	}
	if got := PackageManager(); got != "" {
		t.Errorf("PackageManager() = %q, want empty", got)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	setupHome(t)
	t.Setenv("NERDBOI_UI_REGISTRY", "http://localhost:9999/r")
	t.Setenv("NERDBOI_UI_PACKAGE_MANAGER", "pnpm")
	Load()

	if got := Registry(); got != "http://localhost:9999/r" {
		t.Errorf("Registry() = %q", got)
	}
	if got := PackageManager(); got != "pnpm" {
		t.Errorf("PackageManager() = %q", got)
	}
}

func TestSet_PersistsToFile(t *testing.T) {
	home := setupHome(t)
	Load()

	if err := Set(KeyTimeout, "5s"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(home, ".nerdboi-ui", "config.yaml"))
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	if !strings.Contains(string(data), "timeout: 5s") {
		t.Errorf("config file missing timeout, got:\n%s", data)
	}

	viper.Reset()
	Load()
	if got := Timeout(); got != 5*time.Second {
		t.Errorf("Timeout() after reload = %v, want 5s", got)
	}
}

func TestSet_RejectsUnknownKey(t *testing.T) {
	setupHome(t)
	Load()
	if err := Set("colour", "blue"); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestSet_RejectsBadDuration(t *testing.T) {
	setupHome(t)
	Load()
	if err := Set(KeyTimeout, "soon"); err == nil {
		t.Fatal("expected error for invalid duration")
	}
}
