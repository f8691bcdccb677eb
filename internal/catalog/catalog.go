package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// tmpSuffix is appended to the target file during atomic writes.
const tmpSuffix = ".tmp"

// Write serializes the catalog and atomically replaces the file at path.
// It writes to a temporary file first and renames on success, so a failed
// run never leaves a partial catalog behind.
func Write(c *Catalog, path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing catalog: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp := path + tmpSuffix
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("finalizing catalog write: %w", err)
	}
	return nil
}

// Load reads a previously persisted catalog verbatim. Catalogs written by an
// incompatible schema major version are rejected.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}

	if c.SchemaVersion != "" {
		if err := checkSchemaVersion(c.SchemaVersion); err != nil {
			return nil, err
		}
	}
	return &c, nil
}

// Nodes loads the catalog at path and returns its nodes array unchanged.
func Nodes(path string) ([]NodeRecord, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}
	return c.Nodes, nil
}

// checkSchemaVersion verifies a persisted schema version is readable by this
// build: the major versions must match.
func checkSchemaVersion(v string) error {
	fileVersion, err := semver.NewVersion(strings.TrimPrefix(v, "v"))
	if err != nil {
		return fmt.Errorf("parsing catalog schema_version %q: %w", v, err)
	}
	ours := semver.MustParse(SchemaVersion)
	if fileVersion.Major() != ours.Major() {
		return fmt.Errorf("catalog schema_version %s is not compatible with reader version %s", v, SchemaVersion)
	}
	return nil
}
