// Package scaffold materializes component files into a project directory.
// Every file named by a manifest lands under the components directory, parent
// directories are created as needed, and existing files are overwritten
// without prompting.
package scaffold
