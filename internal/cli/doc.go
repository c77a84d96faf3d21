// Package cli defines the Cobra command tree for the nerdboi-ui CLI. Each
// file registers one top-level command with the root command. Commands
// resolve the project root, load configuration, and hand off to the internal
// packages; they only deal with flags, console output, and exit status.
package cli
