package engine

import "maps"

// Details returns everything known about a canonical protein: its stored row
// (or a `{id, name: id}` placeholder), its uuid, its functional annotations
// and its interactions. It never fails; an unknown id yields the placeholder
// with empty lists.
func (e *Engine) Details(canonicalID string) ProteinDetails {
	return ProteinDetails{
		Details:               e.record(canonicalID),
		UUID:                  e.idx.uuidOf[canonicalID],
		FunctionalAnnotations: e.AnnotationsFor(canonicalID),
		ProteinInteractions:   e.InteractionsFor(canonicalID),
	}
}

// Has reports whether canonicalID has a details entry, either from the
// protein table or repaired from an edge endpoint.
func (e *Engine) Has(canonicalID string) bool {
	_, ok := e.idx.details.Get(canonicalID)
	return ok
}

// UUID returns the first uuid whose id list contains canonicalID.
func (e *Engine) UUID(canonicalID string) (string, bool) {
	uuid, ok := e.idx.uuidOf[canonicalID]
	return uuid, ok
}

// record returns a copy of the stored details, or the placeholder.
func (e *Engine) record(canonicalID string) Details {
	d, ok := e.idx.details.Get(canonicalID)
	if !ok {
		return placeholder(canonicalID)
	}
	d.Attributes = maps.Clone(d.Attributes)
	if d.Name != nil {
		name := *d.Name
		d.Name = &name
	}
	return d
}

// storedName returns the name of a protein that has a details entry.
func (e *Engine) storedName(canonicalID string) (*string, bool) {
	d, ok := e.idx.details.Get(canonicalID)
	if !ok {
		return nil, false
	}
	if d.Name == nil {
		return nil, true
	}
	name := *d.Name
	return &name, true
}
