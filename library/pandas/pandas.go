// Package pandas declares the pandas-backed node classes: tabular I/O and
// data frame transformations.
package pandas

import (
	"reflect"

	"github.com/pipedex-io/pipedex/internal/docblock"
	"github.com/pipedex-io/pipedex/internal/node"
	"github.com/pipedex-io/pipedex/internal/registry"
)

// DataFrame marks the tabular dataset type flowing between pandas nodes.
type DataFrame struct{}

const (
	moduleCommons   = "library.pandas.commons"
	moduleIO        = "library.pandas.io"
	moduleTransform = "library.pandas.transform"

	classNode      = moduleCommons + ".PandasNode"
	classInput     = moduleCommons + ".PandasInputNode"
	classOutput    = moduleCommons + ".PandasOutputNode"
	classTransform = moduleCommons + ".PandasTransformNode"
)

func init() {
	// Abstract bases. They never appear in the catalog; they anchor the
	// hierarchy so leaf resolution can exclude them.
	registry.Register(&node.Definition{
		Class:  "PandasNode",
		Module: moduleCommons,
		Base:   node.RootClass,
		Tags:   node.Tags{Library: "pandas", Type: "other"},
	})
	registry.Register(&node.Definition{
		Class:  "PandasInputNode",
		Module: moduleCommons,
		Base:   classNode,
		Tags:   node.Tags{Library: "pandas", Type: "input"},
	})
	registry.Register(&node.Definition{
		Class:  "PandasOutputNode",
		Module: moduleCommons,
		Base:   classNode,
		Tags:   node.Tags{Library: "pandas", Type: "output"},
	})
	registry.Register(&node.Definition{
		Class:  "PandasTransformNode",
		Module: moduleCommons,
		Base:   classNode,
		Tags:   node.Tags{Library: "pandas", Type: "transformer"},
	})

	registry.Register(&node.Definition{
		Class:   "CSVLoader",
		Module:  moduleIO,
		Base:    classInput,
		Tags:    node.Tags{Library: "pandas", Type: "input"},
		Outputs: map[string]any{"dataset": reflect.TypeOf(DataFrame{})},
		Methods: []string{"execute"},
		Params: node.Constructor(
			node.Param{Name: "path"},
			node.Param{Name: "delim", Default: ",", HasDefault: true},
			node.Param{Name: "index_col", Default: nil, HasDefault: true},
		),
		Doc: docblock.Block{
			Summary: []string{"Loads a CSV file from disk into a data frame."},
			Params: []docblock.ParamEntry{
				{Name: "path", Type: "str", Desc: []string{"Path of the CSV file to load."}},
				{Name: "delim", Type: "str, default ','", Desc: []string{"Field delimiter of the file."}},
				{Name: "index_col", Type: "str, default None", Desc: []string{"Column to use as the row index."}},
			},
		},
	})

	registry.Register(&node.Definition{
		Class:   "CSVWriter",
		Module:  moduleIO,
		Base:    classOutput,
		Tags:    node.Tags{Library: "pandas", Type: "output"},
		Inputs:  map[string]any{"dataset": reflect.TypeOf(DataFrame{})},
		Methods: []string{"execute"},
		Params: node.Constructor(
			node.Param{Name: "path"},
			node.Param{Name: "delim", Default: ",", HasDefault: true},
			node.Param{Name: "include_index", Default: false, HasDefault: true},
		),
		Doc: docblock.Block{
			Summary: []string{"Writes a data frame to disk as a CSV file."},
			Params: []docblock.ParamEntry{
				{Name: "path", Type: "str", Desc: []string{"Destination path of the CSV file."}},
				{Name: "delim", Type: "str, default ','", Desc: []string{"Field delimiter to use."}},
				{Name: "include_index", Type: "bool, default False", Desc: []string{"Whether to write the row index."}},
			},
		},
	})

	registry.Register(&node.Definition{
		Class:   "ColumnSelector",
		Module:  moduleTransform,
		Base:    classTransform,
		Tags:    node.Tags{Library: "pandas", Type: "transformer"},
		Inputs:  map[string]any{"dataset": reflect.TypeOf(DataFrame{})},
		Outputs: map[string]any{"dataset": reflect.TypeOf(DataFrame{})},
		Methods: []string{"execute"},
		Params: node.Constructor(
			node.Param{Name: "columns"},
		),
		Doc: docblock.Block{
			Summary: []string{"Keeps only the named columns of a data frame."},
			Params: []docblock.ParamEntry{
				{Name: "columns", Type: "list[str]", Desc: []string{"Names of the columns to keep."}},
			},
		},
	})

	registry.Register(&node.Definition{
		Class:   "ColumnRenamer",
		Module:  moduleTransform,
		Base:    classTransform,
		Tags:    node.Tags{Library: "pandas", Type: "transformer"},
		Inputs:  map[string]any{"dataset": reflect.TypeOf(DataFrame{})},
		Outputs: map[string]any{"dataset": reflect.TypeOf(DataFrame{})},
		Methods: []string{"execute"},
		Params: node.Constructor(
			node.Param{Name: "mapping"},
			// TODO: add an errors="raise" switch once the editor can render
			// enum-valued parameters.
		),
		Doc: docblock.Block{
			Summary: []string{"Renames data frame columns", "according to a mapping."},
			Params: []docblock.ParamEntry{
				{Name: "mapping", Type: "dict", Desc: []string{"Old name to new name mapping."}},
			},
		},
	})
}
