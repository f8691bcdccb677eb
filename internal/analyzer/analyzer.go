package analyzer

import (
	"fmt"
	"sort"

	"github.com/pipedex-io/pipedex/internal/catalog"
	"github.com/pipedex-io/pipedex/internal/manifest"
	"github.com/pipedex-io/pipedex/internal/registry"
)

// Builder runs one full analysis of a node library and persists the catalog.
// A run is atomic from the caller's perspective: it either completes and
// writes one file, or fails and writes nothing.
type Builder struct {
	Registry     *registry.Registry
	Enumerate    registry.Enumerator // defaults to Registry.Modules
	LibraryRoot  string              // dotted module root to analyze
	ManifestPath string              // requirements manifest of the node library
	OutputPath   string              // catalog destination
}

// New returns a Builder over the given registry.
func New(reg *registry.Registry, libraryRoot, manifestPath, outputPath string) *Builder {
	return &Builder{
		Registry:     reg,
		LibraryRoot:  libraryRoot,
		ManifestPath: manifestPath,
		OutputPath:   outputPath,
	}
}

// Run performs one full analysis: enumerate modules, resolve leaf classes,
// assemble one record per leaf, filter the requirements manifest down to the
// libraries in use, sort, and persist. The written catalog is returned.
func (b *Builder) Run() (*catalog.Catalog, error) {
	enumerate := b.Enumerate
	if enumerate == nil {
		enumerate = b.Registry.Modules
	}

	modules, err := enumerate(b.LibraryRoot)
	if err != nil {
		return nil, fmt.Errorf("enumerating modules under %q: %w", b.LibraryRoot, err)
	}

	leaves, err := b.Registry.ResolveLeaves(modules)
	if err != nil {
		return nil, fmt.Errorf("resolving leaf classes: %w", err)
	}

	libraries := make(map[string]bool)
	records := make([]catalog.NodeRecord, 0, len(leaves))
	for _, def := range leaves {
		records = append(records, assemble(def))
		libraries[def.Tags.Library] = true
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Package < records[j].Package
	})

	lines, err := manifest.ReadFile(b.ManifestPath)
	if err != nil {
		return nil, err
	}
	deps := manifest.FilterDependencies(sortedKeys(libraries), lines)

	cat := &catalog.Catalog{
		SchemaVersion: catalog.SchemaVersion,
		Nodes:         records,
		Dependencies:  deps,
	}
	if err := catalog.Write(cat, b.OutputPath); err != nil {
		return nil, err
	}
	return cat, nil
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
