//go:build integration

package integration_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir     string // HOME, so user config never leaks in
	RegistryDir string // local registry laid out as <name>.json
	ProjectDir  string // a mock frontend project
}

// setupTestEnv creates isolated temp directories and points HOME at one of
// them. Env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:     t.TempDir(),
		RegistryDir: t.TempDir(),
		ProjectDir:  t.TempDir(),
	}
	t.Setenv("HOME", env.HomeDir)
	t.Setenv("NERDBOI_UI_REGISTRY", "")

	writeFile(t, filepath.Join(env.ProjectDir, "package.json"), `{"name": "mock-app", "private": true}`+"\n")
	return env
}

// setupRegistry writes a synthetic registry: utils has no deps, button
// depends on utils, dialog and alert-dialog both depend on button, and
// loop-a/loop-b reference each other.
func setupRegistry(t *testing.T, registryDir string) {
	t.Helper()

	writeFile(t, filepath.Join(registryDir, "utils.json"), `{
  "name": "utils",
  "type": "components:lib",
  "files": [{"name": "lib/utils.ts", "content": "export function cn() {}\n"}],
  "dependencies": ["clsx", "tailwind-merge"]
}`)

	writeFile(t, filepath.Join(registryDir, "button.json"), `{
  "name": "button",
  "type": "components:ui",
  "files": [{"name": "ui/button.tsx", "content": "export function Button() {}\n"}],
  "dependencies": ["@radix-ui/react-slot"],
  "registryDependencies": ["utils"]
}`)

	writeFile(t, filepath.Join(registryDir, "dialog.json"), `{
  "name": "dialog",
  "type": "components:ui",
  "files": [
    {"name": "ui/dialog.tsx", "content": "export function Dialog() {}\n"},
    {"name": "ui/dialog/overlay.tsx", "content": "export function Overlay() {}\n"}
  ],
  "dependencies": ["@radix-ui/react-dialog"],
  "registryDependencies": ["button"]
}`)

	writeFile(t, filepath.Join(registryDir, "alert-dialog.json"), `{
  "name": "alert-dialog",
  "type": "components:ui",
  "files": [{"name": "ui/alert-dialog.tsx", "content": "export function AlertDialog() {}\n"}],
  "registryDependencies": ["button", "dialog"]
}`)

	writeFile(t, filepath.Join(registryDir, "loop-a.json"), `{
  "name": "loop-a",
  "files": [{"name": "ui/loop-a.tsx", "content": "a\n"}],
  "registryDependencies": ["loop-b"]
}`)
	writeFile(t, filepath.Join(registryDir, "loop-b.json"), `{
  "name": "loop-b",
  "files": [{"name": "ui/loop-b.tsx", "content": "b\n"}],
  "registryDependencies": ["loop-a"]
}`)
}

// recordingPackages stands in for the package manager.
type recordingPackages struct {
	installs [][]string
}

func (r *recordingPackages) Install(_ context.Context, deps []string) error {
	r.installs = append(r.installs, deps)
	return nil
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
