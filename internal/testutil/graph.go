package testutil

import (
	"github.com/vk/protgraph/internal/inmemorystore"
	"github.com/vk/protgraph/internal/model"
	"github.com/zclconf/go-cty/cty"
)

// Fixture protein ids.
const (
	ProteinA = "Protein::A" // named, has two uuids, interacts with B, C and D
	ProteinB = "Protein::B"
	ProteinC = "Protein::C" // in the node table without a name
	ProteinD = "Protein::D" // only referenced by an edge
	ProteinE = "Protein::E"

	GoTermMito    = "GO_Term::1"
	GoTermNucleus = "GO_Term::2"
	GoTermMissing = "GO_Term::404"
)

// ProteinGraph returns a small graph that exercises every index source and
// every traversal edge case: dangling GO targets, null scores, ambiguous
// aliases, uuids with and without the protein prefix, and a protein known
// only through an edge.
func ProteinGraph() inmemorystore.Tables {
	return inmemorystore.Tables{
		ProteinNodes: []model.ProteinNode{
			{ID: ProteinA, Name: model.StringPtr("Tumor protein p53"), Attributes: map[string]cty.Value{"length": cty.NumberIntVal(393)}},
			{ID: ProteinB, Name: model.StringPtr("Cyclin-dependent kinase inhibitor")},
			{ID: ProteinC},
			{ID: ProteinE, Name: model.StringPtr("Tyrosine-protein kinase ABL1")},
		},
		GoTermNodes: []model.GoTermNode{
			{ID: GoTermMito, ExternalID: "GO:0000001", Name: "mitochondrion inheritance", Namespace: "biological_process"},
			{ID: GoTermNucleus, ExternalID: "GO:0005634", Name: "nucleus", Namespace: "cellular_component"},
		},
		Edges: []model.Edge{
			{Source: ProteinA, Target: GoTermMito, Relationship: model.RelBiologicalProcess, MLPredictionScore: model.Float64Ptr(0.9)},
			{Source: ProteinA, Target: GoTermNucleus, Relationship: model.RelCellularComponent},
			{Source: ProteinA, Target: GoTermMissing, Relationship: model.RelMolecularFunction, MLPredictionScore: model.Float64Ptr(0.5)},
			{Source: ProteinA, Target: ProteinB, Relationship: model.RelProteinInteraction, StringCombinedScore: model.Float64Ptr(0.75)},
			{Source: ProteinC, Target: ProteinA, Relationship: model.RelProteinInteraction},
			{Source: ProteinB, Target: GoTermMito, Relationship: model.RelMolecularFunction, MLPredictionScore: model.Float64Ptr(0.3)},
			{Source: ProteinD, Target: ProteinA, Relationship: model.RelProteinInteraction, StringCombinedScore: model.Float64Ptr(0.1)},
			{Source: ProteinA, Target: "Gene::TP53", Relationship: "Protein-Gene-Encodes"},
		},
		IdentifierRecords: []model.IdentifierRecord{
			{
				UUID:                  "Protein::uuid-a",
				ExternalID:            ProteinA,
				Name:                  model.StringPtr("TP53"),
				SecondaryIDs:          []string{"P04637", "p53"},
				AmbiguousSecondaryIDs: []string{"SHARED"},
			},
			{
				UUID:                  "Protein::uuid-b",
				ExternalID:            ProteinB,
				Name:                  model.StringPtr("CDKN1A"),
				SecondaryIDs:          []string{"P38936"},
				AmbiguousSecondaryIDs: []string{"SHARED"},
			},
			{UUID: "legacy-uuid-a2", ExternalID: ProteinA},
			{UUID: "orphan-uuid", Name: model.StringPtr("Orphan")},
		},
	}
}
