// Package project reads and writes the project-local components.json file.
// The file tells the add flow where component files belong; it is produced
// by the init wizard and validated against an embedded JSON Schema on every
// load.
package project
