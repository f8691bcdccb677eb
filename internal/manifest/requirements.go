package manifest

import (
	"fmt"
	"os"
	"strings"
)

// distAliases maps import-style library names to the distribution names used
// in requirements manifests. Tag libraries are declared by import name, but
// manifests pin the distribution.
var distAliases = map[string]string{
	"sklearn": "scikit-learn",
	"cv2":     "opencv-python",
	"yaml":    "pyyaml",
}

// ReadFile reads a line-oriented requirements manifest in full. A missing or
// unreadable manifest is fatal for the analysis run.
func ReadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading requirements manifest %s: %w", path, err)
	}
	normalized := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.Split(normalized, "\n"), nil
}

// FilterDependencies returns the manifest lines naming any of the given
// libraries. Matching is a case-insensitive substring test against the
// lower-cased library names (plus their distribution aliases); retained
// lines keep manifest order and are trimmed, and a line matching several
// libraries is kept once.
func FilterDependencies(libraries []string, lines []string) []string {
	names := make([]string, 0, len(libraries)*2)
	for _, lib := range libraries {
		lib = strings.ToLower(lib)
		if lib == "" {
			continue
		}
		names = append(names, lib)
		if alias, ok := distAliases[lib]; ok {
			names = append(names, alias)
		}
	}

	deps := []string{}
	for _, line := range lines {
		lower := strings.ToLower(line)
		for _, name := range names {
			if strings.Contains(lower, name) {
				deps = append(deps, strings.TrimSpace(line))
				break
			}
		}
	}
	return deps
}
