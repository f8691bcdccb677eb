package catalog

// SchemaVersion is the wire-format version stamped into every catalog this
// build writes. Readers accept any catalog with the same major version.
const SchemaVersion = "1.0.0"

// IOStructure maps a variable name to a human-readable type identifier.
type IOStructure map[string]string

// TagSet classifies a node record by origin library and node kind.
type TagSet struct {
	Library string `json:"library"`
	Type    string `json:"type"`
}

// ParameterRecord describes one constructor parameter of a node class.
// Type and Description are null unless the parameter is documented;
// DefaultValue is populated only when the parameter is optional.
type ParameterRecord struct {
	Name         string  `json:"name"`
	Type         *string `json:"type"`
	IsMandatory  bool    `json:"is_mandatory"`
	DefaultValue any     `json:"default_value"`
	Description  *string `json:"description"`
}

// NodeRecord is one catalog entry. The optional facets (Input, Output,
// Methods) serialize as null when the class declares no such contract, which
// consumers distinguish from an empty declaration.
type NodeRecord struct {
	ClassName   string            `json:"class_name"`
	Package     string            `json:"package"`
	Input       IOStructure       `json:"input"`
	Output      IOStructure       `json:"output"`
	Parameter   []ParameterRecord `json:"parameter"`
	Methods     []string          `json:"methods"`
	Tags        TagSet            `json:"tags"`
	Description string            `json:"description"`
}

// Catalog is the serialized aggregate of all discovered node records plus
// the filtered dependency declarations. Nodes are sorted ascending by
// package path before persistence.
type Catalog struct {
	SchemaVersion string       `json:"schema_version"`
	Nodes         []NodeRecord `json:"nodes"`
	Dependencies  []string     `json:"dependencies"`
}
