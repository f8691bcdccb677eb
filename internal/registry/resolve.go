package registry

import (
	"fmt"

	"github.com/pipedex-io/pipedex/internal/node"
)

// ResolveLeaves returns the leaf node classes declared across the given
// modules: classes with no registered descendant anywhere in the scanned set.
// The result is keyed by qualified class name and is independent of module
// and member traversal order.
//
// A module with no registered definitions aborts resolution; it is the
// analog of a library module that fails to import.
func (r *Registry) ResolveLeaves(modules []string) (map[string]*node.Definition, error) {
	parents := make(map[string]bool)
	children := make(map[string]*node.Definition)

	for _, m := range modules {
		defs, ok := r.Definitions(m)
		if !ok || len(defs) == 0 {
			return nil, fmt.Errorf("module %q has no registered node classes", m)
		}
		for _, def := range defs {
			// The direct superclass has a known descendant, so it cannot
			// be a leaf.
			delete(children, def.Base)
			parents[def.Base] = true

			// A class already known to be someone's superclass is not a
			// leaf either, even though its subclass was visited first.
			if !parents[def.QualifiedName()] {
				children[def.QualifiedName()] = def
			}
		}
	}

	return children, nil
}
