// Package config manages user-level settings stored at ~/.nerdboi-ui/config.yaml.
// It provides functions to load, read, and write keys such as the registry
// base URL, the HTTP timeout, and a forced package manager. Every key can
// also be supplied through a NERDBOI_UI_<KEY> environment variable.
package config
