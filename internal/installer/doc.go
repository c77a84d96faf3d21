// Package installer runs the add flow: for each requested component it
// resolves the registry dependency tree, installs plain package dependencies,
// and writes component files, dependencies first. Components are processed
// one at a time and a failure is confined to the component it happened in;
// the returned Report tells the caller which ones failed.
package installer
