// internal/models/codec.go
package models

import (
	"encoding/json"
	"fmt"
)

// The original storage kept sections, requirements and tags as JSON text
// inside a string column, so callers still send either a raw JSON string
// or a decoded array. These codecs accept both shapes and always hand the
// rest of the code a typed slice.

// DecodeSections decodes a sections value from any of the wire or storage
// shapes it arrives in: nil, JSON text ([]byte or string), or a decoded
// array.
func DecodeSections(raw interface{}) ([]Section, error) {
	data, err := normalizeJSON(raw, "sections")
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []Section{}, nil
	}
	var sections []Section
	if err := json.Unmarshal(data, &sections); err != nil {
		return nil, fmt.Errorf("decode sections: %w", err)
	}
	if sections == nil {
		sections = []Section{}
	}
	return sections, nil
}

// EncodeSections serializes sections for the JSONB column. A nil slice
// encodes as an empty list, never as JSON null.
func EncodeSections(sections []Section) ([]byte, error) {
	if sections == nil {
		sections = []Section{}
	}
	return json.Marshal(sections)
}

// DecodeStringList decodes requirements/tags values with the same
// tolerance as DecodeSections.
func DecodeStringList(raw interface{}, field string) ([]string, error) {
	if list, ok := raw.([]string); ok {
		return list, nil
	}
	data, err := normalizeJSON(raw, field)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []string{}, nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decode %s: %w", field, err)
	}
	if list == nil {
		list = []string{}
	}
	return list, nil
}

// EncodeStringList serializes a requirements/tags list for storage.
func EncodeStringList(list []string) ([]byte, error) {
	if list == nil {
		list = []string{}
	}
	return json.Marshal(list)
}

// normalizeJSON reduces the accepted input shapes to raw JSON bytes.
// Arrays that are already decoded get re-marshalled so a single
// unmarshal path handles everything.
func normalizeJSON(raw interface{}, field string) ([]byte, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case []byte:
		if len(v) == 0 {
			return nil, nil
		}
		return v, nil
	case string:
		if v == "" {
			return nil, nil
		}
		return []byte(v), nil
	case []interface{}:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("re-encode %s: %w", field, err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported %s value of type %T", field, raw)
	}
}
