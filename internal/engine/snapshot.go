package engine

import "slices"

// IndexEntry is one key of a list-valued index with its ids.
type IndexEntry struct {
	Key string
	IDs []string
}

// IndexSnapshot is a deep copy of the four derived indices in insertion
// order. It exists for diagnostics and for comparing two builds.
type IndexSnapshot struct {
	Details []string
	UUIDs   []IndexEntry
	Aliases []IndexEntry
	Names   []IndexEntry
}

// Snapshot copies the derived indices out of the engine.
func (e *Engine) Snapshot() IndexSnapshot {
	snap := IndexSnapshot{
		Details: make([]string, 0, e.idx.details.Len()),
		UUIDs:   copyIndex(e.idx.uuids),
		Aliases: copyIndex(e.idx.aliases),
		Names:   copyIndex(e.idx.names),
	}
	for pair := e.idx.details.Oldest(); pair != nil; pair = pair.Next() {
		snap.Details = append(snap.Details, pair.Key)
	}
	return snap
}

func copyIndex(m *idIndex) []IndexEntry {
	out := make([]IndexEntry, 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, IndexEntry{Key: pair.Key, IDs: slices.Clone(pair.Value)})
	}
	return out
}
