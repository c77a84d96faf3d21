package pkgmgr

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Manager identifies a JavaScript package manager.
type Manager string

// Supported package managers.
const (
	NPM  Manager = "npm"
	Yarn Manager = "yarn"
	PNPM Manager = "pnpm"
)

// lockfiles are checked in order; the first one present wins.
var lockfiles = []struct {
	name    string
	manager Manager
}{
	{"package-lock.json", NPM},
	{"yarn.lock", Yarn},
	{"pnpm-lock.yaml", PNPM},
}

// Detect infers the package manager from lockfiles in root, defaulting to npm.
func Detect(root string) Manager {
	for _, lf := range lockfiles {
		if _, err := os.Stat(filepath.Join(root, lf.name)); err == nil {
			return lf.manager
		}
	}
	return NPM
}

// Parse converts a user-supplied name into a Manager.
func Parse(s string) (Manager, error) {
	switch m := Manager(strings.ToLower(strings.TrimSpace(s))); m {
	case NPM, Yarn, PNPM:
		return m, nil
	default:
		return "", fmt.Errorf("unsupported package manager %q: supported are %q, %q, and %q", s, NPM, Yarn, PNPM)
	}
}

// Args returns the full argument list (excluding the binary) that adds deps.
func (m Manager) Args(deps []string) []string {
	verb := "add"
	if m == NPM {
		verb = "install"
	}
	return append([]string{verb}, deps...)
}

func (m Manager) String() string {
	return string(m)
}
