// Package sklearn declares the scikit-learn-backed node classes: dataset
// splitting and estimator training.
package sklearn

import (
	"reflect"

	"github.com/pipedex-io/pipedex/internal/docblock"
	"github.com/pipedex-io/pipedex/internal/node"
	"github.com/pipedex-io/pipedex/internal/registry"
)

// Estimator marks the fitted model type flowing between sklearn nodes.
type Estimator struct{}

const (
	moduleCommons   = "library.sklearn.commons"
	moduleFunctions = "library.sklearn.functions"
	moduleModels    = "library.sklearn.models"

	classNode      = moduleCommons + ".SklearnNode"
	classEstimator = moduleCommons + ".SklearnEstimator"
)

func init() {
	registry.Register(&node.Definition{
		Class:  "SklearnNode",
		Module: moduleCommons,
		Base:   node.RootClass,
		Tags:   node.Tags{Library: "sklearn", Type: "other"},
	})
	registry.Register(&node.Definition{
		Class:  "SklearnEstimator",
		Module: moduleCommons,
		Base:   classNode,
		Tags:   node.Tags{Library: "sklearn", Type: "trainer"},
	})

	registry.Register(&node.Definition{
		Class:  "TrainTestSplit",
		Module: moduleFunctions,
		Base:   classNode,
		Tags:   node.Tags{Library: "sklearn", Type: "transformer"},
		Inputs: map[string]any{"dataset": "DataFrame"},
		Outputs: map[string]any{
			"train": "DataFrame",
			"test":  "DataFrame",
		},
		Methods: []string{"execute"},
		Params: node.Constructor(
			node.Param{Name: "test_size", Default: 0.25, HasDefault: true},
			node.Param{Name: "shuffle", Default: true, HasDefault: true},
			node.Param{Name: "random_state", Default: nil, HasDefault: true},
		),
		Doc: docblock.Block{
			Summary: []string{"Splits a dataset into train and test partitions."},
			Params: []docblock.ParamEntry{
				{Name: "test_size", Type: "float, default 0.25", Desc: []string{"Fraction of rows held out for the test partition."}},
				{Name: "shuffle", Type: "bool, default True", Desc: []string{"Whether to shuffle rows before splitting."}},
				{Name: "random_state", Type: "int, default None", Desc: []string{"Seed for the shuffle."}},
			},
		},
	})

	registry.Register(&node.Definition{
		Class:   "LinearSVC",
		Module:  moduleModels,
		Base:    classEstimator,
		Tags:    node.Tags{Library: "sklearn", Type: "trainer"},
		Inputs:  map[string]any{"train": "DataFrame"},
		Outputs: map[string]any{"model": reflect.TypeOf(Estimator{})},
		Methods: []string{"execute", "fit", "predict", "score"},
		Params: node.Constructor(
			node.Param{Name: "target"},
			node.Param{Name: "c", Default: 1.0, HasDefault: true},
			node.Param{Name: "max_iter", Default: 1000, HasDefault: true},
		),
		Doc: docblock.Block{
			Summary: []string{"Trains a linear support vector classifier."},
			Params: []docblock.ParamEntry{
				{Name: "target", Type: "str", Desc: []string{"Name of the label column."}},
				{Name: "c", Type: "float, default 1.0", Desc: []string{"Inverse regularization strength."}},
				{Name: "max_iter", Type: "int, default 1000", Desc: []string{"Maximum number of solver iterations."}},
			},
		},
	})

	registry.Register(&node.Definition{
		Class:   "KMeans",
		Module:  moduleModels,
		Base:    classEstimator,
		Tags:    node.Tags{Library: "sklearn", Type: "trainer"},
		Inputs:  map[string]any{"train": "DataFrame"},
		Outputs: map[string]any{"model": reflect.TypeOf(Estimator{})},
		Methods: []string{"execute", "fit", "predict", "score"},
		Params: node.Constructor(
			node.Param{Name: "n_clusters", Default: 8, HasDefault: true},
			node.Param{Name: "max_iter", Default: 300, HasDefault: true},
			node.Param{Name: "random_state", Default: nil, HasDefault: true},
		),
		Doc: docblock.Block{
			Summary: []string{"Clusters a dataset with the k-means algorithm."},
			Params: []docblock.ParamEntry{
				{Name: "n_clusters", Type: "int, default 8", Desc: []string{"Number of clusters to form."}},
				{Name: "max_iter", Type: "int, default 300", Desc: []string{"Maximum iterations of a single run."}},
				{Name: "random_state", Type: "int, default None", Desc: []string{"Seed for centroid initialization."}},
			},
		},
	})
}
