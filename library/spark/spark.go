// Package spark declares the pyspark-backed node classes for distributed
// tabular I/O.
package spark

import (
	"github.com/pipedex-io/pipedex/internal/docblock"
	"github.com/pipedex-io/pipedex/internal/node"
	"github.com/pipedex-io/pipedex/internal/registry"
)

const (
	moduleCommons = "library.spark.commons"
	moduleIO      = "library.spark.io"

	classNode = moduleCommons + ".SparkNode"
)

func init() {
	registry.Register(&node.Definition{
		Class:  "SparkNode",
		Module: moduleCommons,
		Base:   node.RootClass,
		Tags:   node.Tags{Library: "spark", Type: "other"},
	})

	registry.Register(&node.Definition{
		Class:   "SparkCSVLoader",
		Module:  moduleIO,
		Base:    classNode,
		Tags:    node.Tags{Library: "spark", Type: "input"},
		Outputs: map[string]any{"dataset": "SparkDataFrame"},
		Methods: []string{"execute"},
		Params: node.Constructor(
			node.Param{Name: "path"},
			node.Param{Name: "header", Default: true, HasDefault: true},
			node.Param{Name: "infer_schema", Default: true, HasDefault: true},
		),
		Doc: docblock.Block{
			Summary: []string{"Loads a CSV file into a distributed data frame."},
			Params: []docblock.ParamEntry{
				{Name: "path", Type: "str", Desc: []string{"Path or glob of the CSV files to load."}},
				{Name: "header", Type: "bool, default True", Desc: []string{"Whether the first row holds column names."}},
				{Name: "infer_schema", Type: "bool, default True", Desc: []string{"Whether to infer column types from the data."}},
			},
		},
	})

	registry.Register(&node.Definition{
		Class:   "SparkModelSaver",
		Module:  moduleIO,
		Base:    classNode,
		Tags:    node.Tags{Library: "spark", Type: "output"},
		Inputs:  map[string]any{"model": "Estimator"},
		Methods: []string{"execute"},
		Params: node.Constructor(
			node.Param{Name: "path"},
			node.Param{Name: "overwrite", Default: false, HasDefault: true},
		),
		Doc: docblock.Block{
			Summary: []string{"Persists a fitted model to distributed storage."},
			Params: []docblock.ParamEntry{
				{Name: "path", Type: "str", Desc: []string{"Destination directory of the model."}},
				{Name: "overwrite", Type: "bool, default False", Desc: []string{"Whether to replace an existing model at the path."}},
			},
		},
	})
}
