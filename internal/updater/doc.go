// Package updater tells users when a newer nerdboi-ui release exists. It
// asks the GitHub Releases API for the latest tag, compares it with the
// running version using semver, and keeps the answer in a daily cache under
// the user config directory so the startup banner never waits on the network.
package updater
