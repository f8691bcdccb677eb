package catalog

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func strPtr(s string) *string { return &s }

func sampleCatalog() *Catalog {
	return &Catalog{
		SchemaVersion: SchemaVersion,
		Nodes: []NodeRecord{
			{
				ClassName: "CSVLoader",
				Package:   "library.pandas.io.CSVLoader",
				Input:     nil,
				Output:    IOStructure{"dataset": "DataFrame"},
				Parameter: []ParameterRecord{
					{
						Name:        "path",
						Type:        strPtr("str"),
						IsMandatory: true,
						Description: strPtr("Path of the CSV file."),
					},
					{
						Name:         "sep",
						IsMandatory:  false,
						DefaultValue: ",",
					},
				},
				Methods:     nil,
				Tags:        TagSet{Library: "pandas", Type: "input"},
				Description: "Loads a CSV file into a data frame.",
			},
		},
		Dependencies: []string{"pandas==2.1.4"},
	}
}

func TestWriteLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output", "catalog.json")
	original := sampleCatalog()

	if err := Write(original, path); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !reflect.DeepEqual(loaded.Nodes, original.Nodes) {
		t.Errorf("round-tripped nodes differ:\ngot  %+v\nwant %+v", loaded.Nodes, original.Nodes)
	}
	if !reflect.DeepEqual(loaded.Dependencies, original.Dependencies) {
		t.Errorf("round-tripped dependencies differ: got %v, want %v", loaded.Dependencies, original.Dependencies)
	}
}

func TestWrite_NullFacetsPreserved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	c := &Catalog{
		SchemaVersion: SchemaVersion,
		Nodes: []NodeRecord{{
			ClassName:   "Leaf",
			Package:     "lib.io.Leaf",
			Parameter:   []ParameterRecord{},
			Tags:        TagSet{Library: "test", Type: "other"},
			Description: "A node with no declared I/O.",
		}},
		Dependencies: []string{},
	}
	if err := Write(c, path); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written catalog: %v", err)
	}
	text := string(data)
	for _, want := range []string{`"input": null`, `"output": null`, `"methods": null`} {
		if !strings.Contains(text, want) {
			t.Errorf("serialized catalog missing %q:\n%s", want, text)
		}
	}
	if !strings.Contains(text, `"parameter": []`) {
		t.Errorf("parameter list should serialize as empty array, not null:\n%s", text)
	}
}

func TestWrite_EmptyIOStructureDistinctFromNull(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	c := sampleCatalog()
	c.Nodes[0].Input = IOStructure{}
	if err := Write(c, path); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), `"input": {}`) {
		t.Errorf("empty input should serialize as {}, got:\n%s", string(data))
	}
}

func TestWrite_NoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	if err := Write(sampleCatalog(), path); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading dir: %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), tmpSuffix) {
			t.Errorf("temporary file %s left behind", e.Name())
		}
	}
}

func TestLoad_IncompatibleSchemaVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	content := `{"schema_version": "2.0.0", "nodes": [], "dependencies": []}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for incompatible schema version, got nil")
	}
}

func TestLoad_MissingSchemaVersionAccepted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	content := `{"nodes": [], "dependencies": []}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := Load(path); err != nil {
		t.Fatalf("Load error: %v", err)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing catalog, got nil")
	}
}

func TestNodes_Verbatim(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	original := sampleCatalog()
	if err := Write(original, path); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	nodes, err := Nodes(path)
	if err != nil {
		t.Fatalf("Nodes error: %v", err)
	}
	if !reflect.DeepEqual(nodes, original.Nodes) {
		t.Errorf("Nodes = %+v, want %+v", nodes, original.Nodes)
	}
}
