// Package registry fetches component manifests and resolves the graph of
// registry dependencies between them. A Source is either the remote HTTP
// registry (<base>/<name>.json) or a local directory laid out the same way.
// The Resolver walks registryDependencies depth-first with an in-progress
// stack, so cycles fail fast and shared dependencies are visited once.
package registry
