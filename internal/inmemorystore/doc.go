// Package inmemorystore provides a read-only, in-memory implementation
// of the graphstore.Store interface. It is what the table loader produces and
// what tests build directly from literal rows.
package inmemorystore
