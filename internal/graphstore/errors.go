package graphstore

import "fmt"

// Table names, as used in configuration and error messages.
const (
	TableProteinNodes      = "protein_nodes"
	TableGoTermNodes       = "go_term_nodes"
	TableEdges             = "edges"
	TableIdentifierRecords = "identifier_records"
)

// Tables lists every table the graph needs, in load order.
var Tables = []string{TableProteinNodes, TableGoTermNodes, TableEdges, TableIdentifierRecords}

// DataLoadError reports a required table that is missing, unreadable or
// malformed. It is fatal: no engine may be built from a partial graph.
type DataLoadError struct {
	Table string
	Path  string
	Err   error
}

// Error implements the error interface for DataLoadError.
func (e *DataLoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to load table %q: %v", e.Table, e.Err)
	}
	return fmt.Sprintf("failed to load table %q from %s: %v", e.Table, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *DataLoadError) Unwrap() error {
	return e.Err
}
