// Package analyzer orchestrates the discovery-and-extraction pipeline: it
// enumerates the node library's modules, resolves the class hierarchy down
// to concrete leaves, cross-references constructor signatures with
// documentation blocks, filters the requirements manifest, and persists the
// sorted catalog.
package analyzer
