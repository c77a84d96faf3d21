// Package pkgmgr installs plain package dependencies through the project's
// JavaScript package manager. The manager is inferred from the lockfile in
// the project root (npm, yarn, or pnpm; npm when there is none) and invoked
// once per component with every dependency appended to its add command.
package pkgmgr
