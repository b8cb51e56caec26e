// Package graphstore defines the interface for reading the four immutable
// tables that make up the protein annotation graph.
//
// # Why Graph Store Exists
//
// The graph store isolates **how the tables got into memory** (file formats,
// paths, concurrency of the load) from **what is derived from them** (the
// identifier indices and traversal queries owned by the engine).
//
// # Lifecycle and Usage
//
// The store is:
//  1. **Populated** exactly once by a loader (see internal/tableio)
//  2. **Scanned** by the engine's index builder and by traversal queries
//  3. **Never mutated** afterwards; it lives as long as the process
//
// No query logic lives here. A store hands out row slices in table order and
// callers treat them as read-only views.
package graphstore

import (
	"github.com/vk/protgraph/internal/model"
)

// Store is the interface for the row-scan primitives of the graph.
//
// # Thread-Safety Requirements
//
// Implementations MUST be safe for concurrent reads. Since the tables are
// immutable after load, returning the owned slices is sufficient; callers
// MUST NOT modify them.
type Store interface {
	// ProteinNodes returns all protein rows in table order.
	ProteinNodes() []model.ProteinNode

	// GoTermNodes returns all GO term rows in table order.
	GoTermNodes() []model.GoTermNode

	// Edges returns all edge rows in table order. Query results that follow
	// "edge order" follow the order of this slice.
	Edges() []model.Edge

	// IdentifierRecords returns all identifier rows in table order.
	IdentifierRecords() []model.IdentifierRecord

	// Stats returns the row count of every table.
	Stats() Stats
}

// Stats holds row counts for the four tables.
type Stats struct {
	ProteinNodes      int `json:"protein_nodes"`
	GoTermNodes       int `json:"go_term_nodes"`
	Edges             int `json:"edges"`
	IdentifierRecords int `json:"identifier_records"`
}
