package node

import "github.com/pipedex-io/pipedex/internal/docblock"

// RootClass is the qualified name of the base node capability. Every
// registered hierarchy bottoms out at it; it is never registered itself.
const RootClass = "node.Node"

// Tags classifies a node class by origin library and node kind. Every node
// class must carry tags; unlike the I/O and method facets they are not
// optional.
type Tags struct {
	Library string
	Type    string
}

// Param is one formal constructor parameter in declaration order. HasDefault
// distinguishes a declared default of nil from no default at all.
type Param struct {
	Name       string
	Default    any
	HasDefault bool
}

// Definition describes one node class to the catalog builder. Node library
// packages construct these and register them at init time.
//
// Inputs and Outputs map variable names to either a type-name string or a
// value whose canonical type name is substituted during assembly. A nil map
// means the class declares no I/O contract, which is distinct from an empty
// one.
//
// Params lists the full constructor signature, including the two leading
// parameters reserved by the node base contract (the receiver and the node
// identifier); parameter synthesis skips those.
type Definition struct {
	Class   string
	Module  string
	Base    string
	Tags    Tags
	Inputs  map[string]any
	Outputs map[string]any
	Methods []string
	Params  []Param
	Doc     docblock.Block
}

// QualifiedName returns the module-qualified class name, e.g.
// "library.pandas.io.CSVLoader".
func (d *Definition) QualifiedName() string {
	return d.Module + "." + d.Class
}

// Constructor builds a full constructor parameter list: the two leading
// parameters reserved by the node base contract followed by the class's own.
func Constructor(params ...Param) []Param {
	reserved := []Param{{Name: "self"}, {Name: "node_id"}}
	return append(reserved, params...)
}
