// Package catalog defines the node catalog wire format and its persistence.
// A catalog is written atomically as a single JSON document, loaded back
// verbatim for downstream querying, and can be validated against an embedded
// JSON schema.
package catalog
