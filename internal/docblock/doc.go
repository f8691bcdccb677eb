// Package docblock defines the calling contract of the external
// documentation-block parser. Node libraries supply their class documentation
// already parsed into a summary plus per-parameter entries; this package
// turns that structure into the lookup maps the analyzer cross-references
// against constructor signatures.
package docblock
