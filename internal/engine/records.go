package engine

import (
	"github.com/vk/protgraph/internal/model"
	"github.com/zclconf/go-cty/cty"
)

// Direction tags which end of an interaction edge the partner protein sits on.
type Direction string

const (
	// DirectionTarget marks a partner found as the edge target.
	DirectionTarget Direction = "target"
	// DirectionSource marks a partner found as the edge source.
	DirectionSource Direction = "source"
)

// Details is the stored record of a canonical protein. It encodes as one
// flat JSON object in which attribute columns sit beside id and name.
type Details struct {
	ID         string               `json:"id"`
	Name       *string              `json:"name"`
	Attributes map[string]cty.Value `json:"-"`
}

// ProteinDetails is the full record returned by Engine.Details. On a column
// name clash, uuid and the two lists win over attributes.
type ProteinDetails struct {
	Details
	UUID                  string        `json:"uuid,omitempty"`
	FunctionalAnnotations []Annotation  `json:"functional_annotations"`
	ProteinInteractions   []Interaction `json:"protein_interactions"`
}

// Annotation links a protein to a GO term through a functional annotation edge.
type Annotation struct {
	GoTermID  string          `json:"go_term_id"`
	GoID      string          `json:"go_id"`
	Name      string          `json:"name"`
	Namespace model.Namespace `json:"namespace"`
	Score     *float64        `json:"score"`
}

// Interaction is one protein-protein interaction seen from a given protein.
type Interaction struct {
	ProteinID   string    `json:"protein_id"`
	Direction   Direction `json:"direction"`
	Score       *float64  `json:"score"`
	Name        *string   `json:"name,omitempty"`
	ProteinUUID string    `json:"protein_uuid,omitempty"`
}

// ProteinSummary is a protein annotated with a given GO term.
type ProteinSummary struct {
	ProteinID string   `json:"protein_id"`
	Name      *string  `json:"name"`
	Score     *float64 `json:"score"`
	UUID      string   `json:"uuid,omitempty"`
}

// GoTermDetails is a GO term together with the proteins annotated with it.
type GoTermDetails struct {
	ID         string           `json:"id"`
	ExternalID string           `json:"external_id"`
	Name       string           `json:"name"`
	Namespace  string           `json:"namespace"`
	Proteins   []ProteinSummary `json:"proteins"`
}

// Stats reports the size of every table and derived index.
type Stats struct {
	ProteinNodes      int `json:"protein_nodes"`
	GoTermNodes       int `json:"go_term_nodes"`
	Edges             int `json:"edges"`
	IdentifierRecords int `json:"identifier_records"`

	DetailsEntries int `json:"details_entries"`
	UUIDEntries    int `json:"uuid_entries"`
	AliasEntries   int `json:"alias_entries"`
	NameEntries    int `json:"name_entries"`
}
