package docblock

import "strings"

// defaultMarker starts an inline default value appended to a documented type
// ("int, default 5"). Everything from the marker on is discarded.
const defaultMarker = ", default"

// ParamEntry is one documented constructor parameter as produced by the
// external documentation parser.
type ParamEntry struct {
	Name string
	Type string
	Desc []string
}

// Block is a documentation block pre-parsed into a summary line sequence and
// a list of parameter entries.
type Block struct {
	Summary []string
	Params  []ParamEntry
}

// Extract returns the space-joined summary of a documentation block plus two
// maps keyed by parameter name: the space-joined description and the declared
// type. A trailing ", default ..." suffix on the type is stripped, keeping
// only the trimmed text before it.
func Extract(b Block) (summary string, desc map[string]string, typ map[string]string) {
	desc = make(map[string]string, len(b.Params))
	typ = make(map[string]string, len(b.Params))
	for _, p := range b.Params {
		desc[p.Name] = strings.Join(p.Desc, " ")
		if i := strings.Index(p.Type, defaultMarker); i >= 0 {
			typ[p.Name] = strings.TrimSpace(p.Type[:i])
		} else {
			typ[p.Name] = p.Type
		}
	}
	return strings.Join(b.Summary, " "), desc, typ
}
