// Package manifest reads the node library's requirements manifest and
// filters it down to the dependency declarations relevant to the libraries
// actually used by discovered nodes.
package manifest
