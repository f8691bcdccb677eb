package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/pipedex-io/pipedex/internal/node"
)

// Enumerator lists the fully qualified module names available under a dotted
// root. It is the module-enumeration collaborator contract; the default
// implementation is backed by the process-wide registry.
type Enumerator func(root string) ([]string, error)

// Registry holds the node class definitions registered by node library
// packages for a single process.
type Registry struct {
	mu       sync.RWMutex
	byName   map[string]*node.Definition
	byModule map[string][]*node.Definition
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		byName:   make(map[string]*node.Definition),
		byModule: make(map[string][]*node.Definition),
	}
}

// Default is the process-wide registry that node library packages register
// into at init time.
var Default = New()

// Register records a node class definition in the default registry. It panics
// on invalid or duplicate definitions, making registration mistakes fail at
// init time. Node library packages call it from init functions.
func Register(def *node.Definition) {
	if err := Default.Register(def); err != nil {
		panic(err)
	}
}

// Register records a node class definition.
func (r *Registry) Register(def *node.Definition) error {
	if def == nil {
		return fmt.Errorf("registry: nil definition")
	}
	if def.Class == "" || def.Module == "" {
		return fmt.Errorf("registry: definition missing class or module name")
	}
	if def.Base == "" {
		return fmt.Errorf("registry: class %s declares no base class", def.QualifiedName())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	name := def.QualifiedName()
	if _, exists := r.byName[name]; exists {
		return fmt.Errorf("registry: class %s registered twice", name)
	}
	r.byName[name] = def
	r.byModule[def.Module] = append(r.byModule[def.Module], def)
	return nil
}

// Modules returns the sorted module names registered under root: root itself
// plus any dotted descendant. An empty result is an error, the analog of a
// library tree that fails to import.
func (r *Registry) Modules(root string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var modules []string
	prefix := root + "."
	for m := range r.byModule {
		if m == root || strings.HasPrefix(m, prefix) {
			modules = append(modules, m)
		}
	}
	if len(modules) == 0 {
		return nil, fmt.Errorf("no modules registered under %q", root)
	}
	sort.Strings(modules)
	return modules, nil
}

// Definitions returns the definitions registered in a single module, in
// registration order. The second return reports whether the module is known.
func (r *Registry) Definitions(module string) ([]*node.Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	defs, ok := r.byModule[module]
	return defs, ok
}

// Lookup returns the definition registered under a qualified class name.
func (r *Registry) Lookup(qualified string) (*node.Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.byName[qualified]
	return def, ok
}
