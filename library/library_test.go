package library

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/pipedex-io/pipedex/internal/analyzer"
	"github.com/pipedex-io/pipedex/internal/catalog"
	"github.com/pipedex-io/pipedex/internal/registry"
)

// Analyzing the shipped library end to end: the default registry holds every
// class the sub-packages registered at init, and the builder must reduce them
// to concrete leaves with the manifest filtered to the libraries in use.
func TestShippedLibraryCatalog(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "catalog.json")

	b := analyzer.New(registry.Default, "library", "requirements.txt", outputPath)
	cat, err := b.Run()
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	wantLeaves := []string{
		"library.pandas.io.CSVLoader",
		"library.pandas.io.CSVWriter",
		"library.pandas.transform.ColumnRenamer",
		"library.pandas.transform.ColumnSelector",
		"library.sklearn.functions.TrainTestSplit",
		"library.sklearn.models.KMeans",
		"library.sklearn.models.LinearSVC",
		"library.spark.io.SparkCSVLoader",
		"library.spark.io.SparkModelSaver",
	}
	got := make([]string, 0, len(cat.Nodes))
	for _, n := range cat.Nodes {
		got = append(got, n.Package)
	}
	if !reflect.DeepEqual(got, wantLeaves) {
		t.Errorf("leaf packages = %v, want %v", got, wantLeaves)
	}

	for _, n := range cat.Nodes {
		if strings.Contains(n.Package, ".commons.") {
			t.Errorf("abstract base %s leaked into the catalog", n.Package)
		}
	}

	wantDeps := []string{"pandas==2.1.4", "scikit-learn==1.3.2", "pyspark==3.5.0"}
	if !reflect.DeepEqual(cat.Dependencies, wantDeps) {
		t.Errorf("dependencies = %v, want %v", cat.Dependencies, wantDeps)
	}

	result, err := catalog.ValidateFile(outputPath)
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if !result.Valid {
		t.Errorf("shipped catalog fails schema validation: %+v", result.Issues)
	}
}
