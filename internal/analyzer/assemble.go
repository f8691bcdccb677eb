package analyzer

import (
	"reflect"

	"github.com/pipedex-io/pipedex/internal/catalog"
	"github.com/pipedex-io/pipedex/internal/docblock"
	"github.com/pipedex-io/pipedex/internal/node"
)

// ioStructure renders a declared I/O mapping with human-readable type names.
// String values pass through unchanged; anything else contributes its
// canonical type name. A nil declaration stays nil so consumers can tell
// "no I/O contract" from "zero variables by design".
func ioStructure(decl map[string]any) catalog.IOStructure {
	if decl == nil {
		return nil
	}
	io := make(catalog.IOStructure, len(decl))
	for name, v := range decl {
		switch t := v.(type) {
		case string:
			io[name] = t
		case reflect.Type:
			io[name] = t.Name()
		default:
			io[name] = reflect.TypeOf(v).Name()
		}
	}
	return io
}

// assemble combines a leaf class's structural facets, parameter list, and
// documentation into one catalog entry.
func assemble(def *node.Definition) catalog.NodeRecord {
	summary, desc, typ := docblock.Extract(def.Doc)

	return catalog.NodeRecord{
		ClassName:   def.Class,
		Package:     def.QualifiedName(),
		Input:       ioStructure(def.Inputs),
		Output:      ioStructure(def.Outputs),
		Parameter:   synthesizeParams(def, desc, typ),
		Methods:     def.Methods,
		Tags:        catalog.TagSet{Library: def.Tags.Library, Type: def.Tags.Type},
		Description: summary,
	}
}
