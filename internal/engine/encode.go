package engine

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

type jsonObject = orderedmap.OrderedMap[string, json.RawMessage]

// MarshalJSON encodes id and name first, then the attributes sorted by
// column name.
func (d Details) MarshalJSON() ([]byte, error) {
	obj, err := d.jsonObject()
	if err != nil {
		return nil, err
	}
	return json.Marshal(obj)
}

// MarshalJSON extends the flat Details object with the uuid and the
// annotation and interaction lists.
func (p ProteinDetails) MarshalJSON() ([]byte, error) {
	obj, err := p.Details.jsonObject()
	if err != nil {
		return nil, err
	}
	if p.UUID != "" {
		if err := setJSON(obj, "uuid", p.UUID); err != nil {
			return nil, err
		}
	}
	if err := setJSON(obj, "functional_annotations", p.FunctionalAnnotations); err != nil {
		return nil, err
	}
	if err := setJSON(obj, "protein_interactions", p.ProteinInteractions); err != nil {
		return nil, err
	}
	return json.Marshal(obj)
}

func (d Details) jsonObject() (*jsonObject, error) {
	obj := orderedmap.New[string, json.RawMessage]()
	if err := setJSON(obj, "id", d.ID); err != nil {
		return nil, err
	}
	if err := setJSON(obj, "name", d.Name); err != nil {
		return nil, err
	}
	for _, col := range slices.Sorted(maps.Keys(d.Attributes)) {
		if _, taken := obj.Get(col); taken {
			continue
		}
		v := d.Attributes[col]
		raw, err := ctyjson.Marshal(v, v.Type())
		if err != nil {
			return nil, fmt.Errorf("encoding attribute %q: %w", col, err)
		}
		obj.Set(col, raw)
	}
	return obj, nil
}

func setJSON(obj *jsonObject, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", key, err)
	}
	obj.Set(key, raw)
	return nil
}
