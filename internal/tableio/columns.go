package tableio

import (
	"fmt"
	"math"

	"github.com/vk/protgraph/internal/model"
	"github.com/zclconf/go-cty/cty"
)

// Column names shared with the upstream exporter.
const (
	colID                    = "id"
	colName                  = "name"
	colExternalID            = "external_id"
	colNamespace             = "namespace"
	colSource                = "source"
	colTarget                = "target"
	colRelationship          = "relationship"
	colMLPredictionScore     = "ML_prediction_score"
	colStringCombinedScore   = "string_combined_score"
	colUUID                  = "uuid"
	colSecondaryIDs          = "secondary_ids"
	colAmbiguousSecondaryIDs = "ambiguous_secondary_ids"
)

func toProteinNode(r row) (model.ProteinNode, error) {
	id, err := requiredString(r, colID)
	if err != nil {
		return model.ProteinNode{}, err
	}
	name, err := optionalString(r, colName)
	if err != nil {
		return model.ProteinNode{}, err
	}

	var attrs map[string]cty.Value
	for k, v := range r {
		if k == colID || k == colName {
			continue
		}
		val, err := attributeValue(v)
		if err != nil {
			return model.ProteinNode{}, fmt.Errorf("column %q: %w", k, err)
		}
		if attrs == nil {
			attrs = make(map[string]cty.Value, len(r))
		}
		attrs[k] = val
	}
	return model.ProteinNode{ID: id, Name: name, Attributes: attrs}, nil
}

func toGoTermNode(r row) (model.GoTermNode, error) {
	id, err := requiredString(r, colID)
	if err != nil {
		return model.GoTermNode{}, err
	}
	node := model.GoTermNode{ID: id}
	for col, dst := range map[string]*string{
		colExternalID: &node.ExternalID,
		colName:       &node.Name,
		colNamespace:  &node.Namespace,
	} {
		v, err := optionalString(r, col)
		if err != nil {
			return model.GoTermNode{}, err
		}
		if v != nil {
			*dst = *v
		}
	}
	return node, nil
}

func toEdge(r row) (model.Edge, error) {
	var e model.Edge
	var err error
	if e.Source, err = requiredString(r, colSource); err != nil {
		return model.Edge{}, err
	}
	if e.Target, err = requiredString(r, colTarget); err != nil {
		return model.Edge{}, err
	}
	rel, err := requiredString(r, colRelationship)
	if err != nil {
		return model.Edge{}, err
	}
	e.Relationship = model.Relationship(rel)
	if e.MLPredictionScore, err = optionalFloat(r, colMLPredictionScore); err != nil {
		return model.Edge{}, err
	}
	if e.StringCombinedScore, err = optionalFloat(r, colStringCombinedScore); err != nil {
		return model.Edge{}, err
	}
	return e, nil
}

func toIdentifierRecord(r row) (model.IdentifierRecord, error) {
	var rec model.IdentifierRecord
	uuid, err := optionalString(r, colUUID)
	if err != nil {
		return rec, err
	}
	ext, err := optionalString(r, colExternalID)
	if err != nil {
		return rec, err
	}
	if rec.Name, err = optionalString(r, colName); err != nil {
		return rec, err
	}
	if uuid != nil {
		rec.UUID = *uuid
	}
	if ext != nil {
		rec.ExternalID = *ext
	}
	rec.SecondaryIDs = stringList(r, colSecondaryIDs)
	rec.AmbiguousSecondaryIDs = stringList(r, colAmbiguousSecondaryIDs)
	return rec, nil
}

func requiredString(r row, col string) (string, error) {
	v, err := optionalString(r, col)
	if err != nil {
		return "", err
	}
	if v == nil {
		return "", fmt.Errorf("column %q is missing or null", col)
	}
	return *v, nil
}

// optionalString reads a nullable string column. A NaN cell is read as
// absent, since float-typed exports fill missing strings with it.
func optionalString(r row, col string) (*string, error) {
	raw, ok := r[col]
	if !ok || raw == nil || isNaN(raw) {
		return nil, nil
	}
	s, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("column %q: expected string, got %T", col, raw)
	}
	return &s, nil
}

// optionalFloat reads a nullable score. NaN is read as absent.
func optionalFloat(r row, col string) (*float64, error) {
	raw, ok := r[col]
	if !ok || raw == nil {
		return nil, nil
	}
	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int8:
		f = float64(v)
	case int16:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint8:
		f = float64(v)
	case uint16:
		f = float64(v)
	case uint32:
		f = float64(v)
	case uint64:
		f = float64(v)
	default:
		return nil, fmt.Errorf("column %q: expected number, got %T", col, raw)
	}
	if math.IsNaN(f) {
		return nil, nil
	}
	return &f, nil
}

// stringList reads a list column. Anything that is not a list is treated as
// absent, and non-string elements are dropped.
func stringList(r row, col string) []string {
	items, ok := r[col].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
