// Package manifest defines the registry component manifest: the files a
// component consists of plus its plain (package manager) and registry
// (other component) dependencies. Manifests are fetched as JSON and are not
// validated beyond decoding.
package manifest
