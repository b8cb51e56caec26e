// Package inmemorystore provides a read-only, in-memory implementation of the
// graphstore.Store interface.
//
// # Characteristics
//
//   - **Immutable:** Rows are copied in once by New and never changed
//   - **Lock-Free:** With no writes after construction, concurrent reads need no
//     synchronization
//   - **Ordered:** Rows are returned in the order they were supplied, which is
//     the table order every query result depends on
package inmemorystore

import (
	"github.com/vk/protgraph/internal/graphstore"
	"github.com/vk/protgraph/internal/model"
)

// Store is an in-memory implementation of graphstore.Store backed by plain slices.
type Store struct {
	proteins    []model.ProteinNode
	goTerms     []model.GoTermNode
	edges       []model.Edge
	identifiers []model.IdentifierRecord
}

var _ graphstore.Store = (*Store)(nil)

// Tables groups the rows of the four tables for construction.
type Tables struct {
	ProteinNodes      []model.ProteinNode
	GoTermNodes       []model.GoTermNode
	Edges             []model.Edge
	IdentifierRecords []model.IdentifierRecord
}

// New creates a store holding private copies of the given rows, so later
// changes to the caller's slices cannot leak into the graph.
func New(t Tables) *Store {
	return &Store{
		proteins:    append([]model.ProteinNode(nil), t.ProteinNodes...),
		goTerms:     append([]model.GoTermNode(nil), t.GoTermNodes...),
		edges:       append([]model.Edge(nil), t.Edges...),
		identifiers: append([]model.IdentifierRecord(nil), t.IdentifierRecords...),
	}
}

// ProteinNodes returns all protein rows in table order.
func (s *Store) ProteinNodes() []model.ProteinNode {
	return s.proteins
}

// GoTermNodes returns all GO term rows in table order.
func (s *Store) GoTermNodes() []model.GoTermNode {
	return s.goTerms
}

// Edges returns all edge rows in table order.
func (s *Store) Edges() []model.Edge {
	return s.edges
}

// IdentifierRecords returns all identifier rows in table order.
func (s *Store) IdentifierRecords() []model.IdentifierRecord {
	return s.identifiers
}

// Stats returns the row count of every table.
func (s *Store) Stats() graphstore.Stats {
	return graphstore.Stats{
		ProteinNodes:      len(s.proteins),
		GoTermNodes:       len(s.goTerms),
		Edges:             len(s.edges),
		IdentifierRecords: len(s.identifiers),
	}
}
