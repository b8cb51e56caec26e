// Package engine is the identifier resolution and query layer of the
// application. It builds four derived indices from a graphstore.Store once,
// then answers lookups and graph traversals against that immutable snapshot.
//
// # Indices
//
//   - details: canonical protein id -> stored row (or edge placeholder)
//   - uuids:   uuid -> canonical ids
//   - aliases: any identifier (id, uuid, name, secondary, ambiguous) -> canonical ids
//   - names:   display name -> canonical ids
//
// Every list-valued entry is non-empty, deduplicated and kept in insertion
// order. An alias marked ambiguous upstream simply accumulates several ids;
// the engine never picks one, and callers must treat a multi-id result as
// "disambiguation needed".
//
// # Concurrency
//
// New is the only writer. Once it returns, every method is a bounded
// in-memory read and is safe to call from any number of goroutines without
// locking.
package engine
