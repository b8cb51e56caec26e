package engine

import (
	"slices"
	"strings"

	"github.com/vk/protgraph/internal/graphstore"
	"github.com/vk/protgraph/internal/model"
	"github.com/vk/protgraph/internal/nodeid"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// idIndex maps a key to an insertion-ordered, deduplicated list of canonical ids.
type idIndex = orderedmap.OrderedMap[string, []string]

// nameEntry is a name-map entry with its lowercased key precomputed for the
// substring fallback.
type nameEntry struct {
	lower string
	ids   []string
}

// indices is everything derived from the graph store. It is produced by
// buildIndices and never written afterwards.
type indices struct {
	details *orderedmap.OrderedMap[string, Details]
	uuids   *idIndex
	aliases *idIndex
	names   *idIndex

	lowerNames []nameEntry

	// uuidOf keeps, for every canonical id, the first uuid (in uuid-map order)
	// whose list contains it.
	uuidOf map[string]string

	goByID       map[string]model.GoTermNode
	goByExternal map[string]model.GoTermNode

	// Edge positions in table order, per endpoint.
	annotationsBySource  map[string][]int
	annotationsByTarget  map[string][]int
	interactionsBySource map[string][]int
	interactionsByTarget map[string][]int
}

// buildIndices merges the three id sources in precedence order (protein rows,
// identifier records, then edges as a repair pass) and derives the auxiliary
// lookups. It reads the store and nothing else.
func buildIndices(store graphstore.Store, proteinKind string) *indices {
	idx := &indices{
		details:              orderedmap.New[string, Details](),
		uuids:                orderedmap.New[string, []string](),
		aliases:              orderedmap.New[string, []string](),
		names:                orderedmap.New[string, []string](),
		uuidOf:               make(map[string]string),
		goByID:               make(map[string]model.GoTermNode),
		goByExternal:         make(map[string]model.GoTermNode),
		annotationsBySource:  make(map[string][]int),
		annotationsByTarget:  make(map[string][]int),
		interactionsBySource: make(map[string][]int),
		interactionsByTarget: make(map[string][]int),
	}

	idx.addProteinNodes(store.ProteinNodes())
	idx.addIdentifierRecords(store.IdentifierRecords(), proteinKind)
	idx.repairFromEdges(store.Edges(), proteinKind)

	idx.indexGoTerms(store.GoTermNodes())
	idx.indexEdges(store.Edges())
	idx.buildReverseUUIDs()
	idx.buildLowerNames()

	return idx
}

func (idx *indices) addProteinNodes(rows []model.ProteinNode) {
	for _, row := range rows {
		if row.ID == "" {
			continue
		}
		idx.details.Set(row.ID, Details{ID: row.ID, Name: row.Name, Attributes: row.Attributes})

		if _, ok := idx.aliases.Get(row.ID); !ok {
			idx.aliases.Set(row.ID, []string{row.ID})
		}

		if row.HasName() {
			appendUnique(idx.names, *row.Name, row.ID)
			appendUnique(idx.aliases, *row.Name, row.ID)
		}
	}
}

func (idx *indices) addIdentifierRecords(rows []model.IdentifierRecord, proteinKind string) {
	for _, row := range rows {
		ext := row.ExternalID
		if ext == "" {
			continue
		}

		if row.UUID != "" {
			appendUnique(idx.uuids, row.UUID, ext)
			if nodeid.HasKind(row.UUID, proteinKind) {
				appendUnique(idx.aliases, row.UUID, row.UUID)
			}
			appendUnique(idx.aliases, row.UUID, ext)
		}

		appendUnique(idx.aliases, ext, ext)

		if row.HasName() {
			appendUnique(idx.names, *row.Name, ext)
			appendUnique(idx.aliases, *row.Name, ext)
		}

		for _, alias := range row.SecondaryIDs {
			appendUnique(idx.aliases, alias, ext)
		}
		for _, alias := range row.AmbiguousSecondaryIDs {
			appendUnique(idx.aliases, alias, ext)
		}
	}
}

// repairFromEdges makes every protein referenced by an edge resolvable, even
// when neither node table knows it.
func (idx *indices) repairFromEdges(edges []model.Edge, proteinKind string) {
	for _, e := range edges {
		for _, id := range [2]string{e.Source, e.Target} {
			if !nodeid.HasKind(id, proteinKind) {
				continue
			}
			appendUnique(idx.aliases, id, id)
			if _, ok := idx.details.Get(id); !ok {
				idx.details.Set(id, placeholder(id))
			}
		}
	}
}

func (idx *indices) indexGoTerms(rows []model.GoTermNode) {
	for _, row := range rows {
		if _, ok := idx.goByID[row.ID]; !ok && row.ID != "" {
			idx.goByID[row.ID] = row
		}
		if _, ok := idx.goByExternal[row.ExternalID]; !ok && row.ExternalID != "" {
			idx.goByExternal[row.ExternalID] = row
		}
	}
}

func (idx *indices) indexEdges(edges []model.Edge) {
	for i, e := range edges {
		switch {
		case e.Relationship.IsAnnotation():
			idx.annotationsBySource[e.Source] = append(idx.annotationsBySource[e.Source], i)
			idx.annotationsByTarget[e.Target] = append(idx.annotationsByTarget[e.Target], i)
		case e.Relationship.IsInteraction():
			idx.interactionsBySource[e.Source] = append(idx.interactionsBySource[e.Source], i)
			idx.interactionsByTarget[e.Target] = append(idx.interactionsByTarget[e.Target], i)
		}
	}
}

// buildReverseUUIDs walks the uuid map in insertion order so that the first
// uuid listing an id wins, exactly as a linear scan of the map would.
func (idx *indices) buildReverseUUIDs() {
	for pair := idx.uuids.Oldest(); pair != nil; pair = pair.Next() {
		for _, id := range pair.Value {
			if _, ok := idx.uuidOf[id]; !ok {
				idx.uuidOf[id] = pair.Key
			}
		}
	}
}

func (idx *indices) buildLowerNames() {
	idx.lowerNames = make([]nameEntry, 0, idx.names.Len())
	for pair := idx.names.Oldest(); pair != nil; pair = pair.Next() {
		idx.lowerNames = append(idx.lowerNames, nameEntry{lower: strings.ToLower(pair.Key), ids: pair.Value})
	}
}

// appendUnique adds value to the list under key unless it is already there.
// Empty keys are never indexed.
func appendUnique(m *idIndex, key, value string) {
	if key == "" || value == "" {
		return
	}
	ids, _ := m.Get(key)
	if slices.Contains(ids, value) {
		return
	}
	m.Set(key, append(ids, value))
}

// placeholder is the degenerate record used for proteins only known by id.
func placeholder(id string) Details {
	return Details{ID: id, Name: model.StringPtr(id)}
}
