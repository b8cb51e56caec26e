package engine

// DefaultSearchLimit is the number of proteins a search summarizes when the
// caller does not ask for another limit.
const DefaultSearchLimit = 20

// Search resolves identifier and summarizes each matching protein with its
// display name and uuid, in Resolve order. At most limit proteins are
// returned; a limit of zero or less returns them all. Proteins without a
// stored row are named after their id. Scores are always null.
func (e *Engine) Search(identifier string, limit int) []ProteinSummary {
	ids := e.Resolve(identifier)
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}

	out := make([]ProteinSummary, 0, len(ids))
	for _, id := range ids {
		uuid, _ := e.UUID(id)
		out = append(out, ProteinSummary{
			ProteinID: id,
			Name:      e.record(id).Name,
			UUID:      uuid,
		})
	}
	return out
}
