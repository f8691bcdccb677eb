// Package registry holds the process-wide index of registered node class
// definitions and resolves the class hierarchy down to its concrete leaves.
// Node library packages self-register at init time, replacing the runtime
// type inspection a dynamic language would use; module enumeration and leaf
// resolution then operate over the registry's entries.
package registry
