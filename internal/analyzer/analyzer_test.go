package analyzer

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/pipedex-io/pipedex/internal/catalog"
	"github.com/pipedex-io/pipedex/internal/docblock"
	"github.com/pipedex-io/pipedex/internal/node"
	"github.com/pipedex-io/pipedex/internal/registry"
)

// testRegistry builds a small two-library hierarchy:
// Base -> {ZLoader (pandas), Writer (sklearn)}, with Base never a leaf.
func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New()

	defs := []*node.Definition{
		{
			Class:  "Base",
			Module: "acme.commons",
			Base:   node.RootClass,
			Tags:   node.Tags{Library: "pandas", Type: "other"},
		},
		{
			Class:   "ZLoader",
			Module:  "acme.io",
			Base:    "acme.commons.Base",
			Tags:    node.Tags{Library: "pandas", Type: "input"},
			Outputs: map[string]any{"dataset": "DataFrame"},
			Params: node.Constructor(
				node.Param{Name: "path"},
				node.Param{Name: "sep", Default: ",", HasDefault: true},
			),
			Doc: docblock.Block{
				Summary: []string{"Loads a dataset."},
				Params: []docblock.ParamEntry{
					{Name: "path", Type: "str", Desc: []string{"Dataset path."}},
					{Name: "sep", Type: "str, default ','", Desc: []string{"Field separator."}},
				},
			},
		},
		{
			Class:  "Writer",
			Module: "acme.io",
			Base:   "acme.commons.Base",
			Tags:   node.Tags{Library: "sklearn", Type: "output"},
			Inputs: map[string]any{"model": "Estimator"},
			Doc: docblock.Block{
				Summary: []string{"Persists a fitted model."},
			},
		},
	}
	for _, d := range defs {
		if err := reg.Register(d); err != nil {
			t.Fatalf("Register(%s) error: %v", d.QualifiedName(), err)
		}
	}
	return reg
}

func writeManifest(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "requirements.txt")
	if err := os.WriteFile(path, []byte(lines), 0o644); err != nil {
		t.Fatalf("writing manifest fixture: %v", err)
	}
	return path
}

func TestBuilderRun(t *testing.T) {
	reg := testRegistry(t)
	manifestPath := writeManifest(t, "numpy==1.26.4\nscikit-learn==1.3.2\npandas==2.1.4\n")
	outputPath := filepath.Join(t.TempDir(), "output", "catalog.json")

	b := New(reg, "acme", manifestPath, outputPath)
	cat, err := b.Run()
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if len(cat.Nodes) != 2 {
		t.Fatalf("nodes len = %d, want 2 (abstract base excluded)", len(cat.Nodes))
	}

	// Sorted ascending by package path regardless of discovery order:
	// acme.io.Writer < acme.io.ZLoader.
	if cat.Nodes[0].Package != "acme.io.Writer" || cat.Nodes[1].Package != "acme.io.ZLoader" {
		t.Errorf("node order = [%s, %s], want [acme.io.Writer, acme.io.ZLoader]",
			cat.Nodes[0].Package, cat.Nodes[1].Package)
	}

	// Dependencies filtered to the libraries in use, manifest order kept.
	wantDeps := []string{"scikit-learn==1.3.2", "pandas==2.1.4"}
	if !reflect.DeepEqual(cat.Dependencies, wantDeps) {
		t.Errorf("dependencies = %v, want %v", cat.Dependencies, wantDeps)
	}

	// The documented default suffix is stripped from the stored type.
	loader := cat.Nodes[1]
	var sep *catalog.ParameterRecord
	for i := range loader.Parameter {
		if loader.Parameter[i].Name == "sep" {
			sep = &loader.Parameter[i]
		}
	}
	if sep == nil {
		t.Fatal("ZLoader has no sep parameter")
	}
	if sep.Type == nil || *sep.Type != "str" {
		t.Errorf("sep.Type = %v, want str", sep.Type)
	}
}

func TestBuilderRun_RoundTrip(t *testing.T) {
	reg := testRegistry(t)
	manifestPath := writeManifest(t, "pandas==2.1.4\n")
	outputPath := filepath.Join(t.TempDir(), "catalog.json")

	written, err := New(reg, "acme", manifestPath, outputPath).Run()
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	loaded, err := catalog.Nodes(outputPath)
	if err != nil {
		t.Fatalf("Nodes error: %v", err)
	}
	if !reflect.DeepEqual(loaded, written.Nodes) {
		t.Errorf("round-tripped nodes differ:\ngot  %+v\nwant %+v", loaded, written.Nodes)
	}
}

func TestBuilderRun_WrittenCatalogValidates(t *testing.T) {
	reg := testRegistry(t)
	manifestPath := writeManifest(t, "pandas==2.1.4\n")
	outputPath := filepath.Join(t.TempDir(), "catalog.json")

	if _, err := New(reg, "acme", manifestPath, outputPath).Run(); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	result, err := catalog.ValidateFile(outputPath)
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if !result.Valid {
		t.Errorf("written catalog fails schema validation: %+v", result.Issues)
	}
}

func TestBuilderRun_MissingManifestWritesNothing(t *testing.T) {
	reg := testRegistry(t)
	outputPath := filepath.Join(t.TempDir(), "catalog.json")

	b := New(reg, "acme", filepath.Join(t.TempDir(), "absent.txt"), outputPath)
	if _, err := b.Run(); err == nil {
		t.Fatal("expected error for missing manifest, got nil")
	}
	if _, err := os.Stat(outputPath); !os.IsNotExist(err) {
		t.Error("catalog file written despite failed run")
	}
}

func TestBuilderRun_UnknownRoot(t *testing.T) {
	reg := testRegistry(t)
	manifestPath := writeManifest(t, "pandas==2.1.4\n")

	b := New(reg, "missing", manifestPath, filepath.Join(t.TempDir(), "catalog.json"))
	if _, err := b.Run(); err == nil {
		t.Fatal("expected error for unknown library root, got nil")
	}
}
