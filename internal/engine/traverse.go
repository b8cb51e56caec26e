package engine

import "github.com/vk/protgraph/internal/model"

// AnnotationsFor lists the functional annotations of a protein in edge order.
// Edges whose target is not a known GO term are skipped.
func (e *Engine) AnnotationsFor(canonicalID string) []Annotation {
	edges := e.store.Edges()
	out := []Annotation{}
	for _, i := range e.idx.annotationsBySource[canonicalID] {
		edge := edges[i]
		term, ok := e.idx.goByID[edge.Target]
		if !ok {
			continue
		}
		ns, _ := edge.Relationship.Namespace()
		out = append(out, Annotation{
			GoTermID:  edge.Target,
			GoID:      term.ExternalID,
			Name:      term.Name,
			Namespace: ns,
			Score:     copyScore(edge.MLPredictionScore),
		})
	}
	return out
}

// InteractionsFor lists the interaction partners of a protein. Partners found
// as edge targets come first, then partners found as edge sources, each group
// in edge order.
func (e *Engine) InteractionsFor(canonicalID string) []Interaction {
	edges := e.store.Edges()
	bySource := e.idx.interactionsBySource[canonicalID]
	byTarget := e.idx.interactionsByTarget[canonicalID]

	out := make([]Interaction, 0, len(bySource)+len(byTarget))
	for _, i := range bySource {
		out = append(out, e.interaction(edges[i], edges[i].Target, DirectionTarget))
	}
	for _, i := range byTarget {
		out = append(out, e.interaction(edges[i], edges[i].Source, DirectionSource))
	}
	return out
}

func (e *Engine) interaction(edge model.Edge, partner string, dir Direction) Interaction {
	rec := Interaction{
		ProteinID:   partner,
		Direction:   dir,
		Score:       copyScore(edge.StringCombinedScore),
		ProteinUUID: e.idx.uuidOf[partner],
	}
	if name, ok := e.storedName(partner); ok {
		rec.Name = name
	}
	return rec
}

// ProteinsForGoTerm lists the proteins annotated with the GO term whose
// public accession is goExternalID, in edge order. An unknown accession
// yields an empty result.
func (e *Engine) ProteinsForGoTerm(goExternalID string) []ProteinSummary {
	term, ok := e.idx.goByExternal[goExternalID]
	if !ok {
		return []ProteinSummary{}
	}
	return e.proteinsForTerm(term.ID)
}

// GoTerm returns a GO term by accession along with its annotated proteins.
func (e *Engine) GoTerm(goExternalID string) (GoTermDetails, bool) {
	term, ok := e.idx.goByExternal[goExternalID]
	if !ok {
		return GoTermDetails{}, false
	}
	return GoTermDetails{
		ID:         term.ID,
		ExternalID: term.ExternalID,
		Name:       term.Name,
		Namespace:  term.Namespace,
		Proteins:   e.proteinsForTerm(term.ID),
	}, true
}

func (e *Engine) proteinsForTerm(internalID string) []ProteinSummary {
	edges := e.store.Edges()
	positions := e.idx.annotationsByTarget[internalID]

	out := make([]ProteinSummary, 0, len(positions))
	for _, i := range positions {
		edge := edges[i]
		name, ok := e.storedName(edge.Source)
		if !ok {
			name = model.StringPtr(edge.Source)
		}
		out = append(out, ProteinSummary{
			ProteinID: edge.Source,
			Name:      name,
			Score:     copyScore(edge.MLPredictionScore),
			UUID:      e.idx.uuidOf[edge.Source],
		})
	}
	return out
}

func copyScore(score *float64) *float64 {
	if score == nil {
		return nil
	}
	v := *score
	return &v
}
