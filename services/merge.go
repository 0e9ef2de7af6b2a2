package services

import (
	"encoding/json"
	"maps"
	"slices"
)

// Patch is a JSON object of field values sent by a client for create or update.
type Patch map[string]json.RawMessage

type fieldSetter[T any] func(rec *T, raw json.RawMessage) error

// allowList maps the json names a resource accepts onto its fields.
// Keys that are not listed are ignored, never rejected.
type allowList[T any] map[string]fieldSetter[T]

func field[T, V any](ref func(*T) *V) fieldSetter[T] {
	return func(rec *T, raw json.RawMessage) error {
		return json.Unmarshal(raw, ref(rec))
	}
}

// apply merges the recognized keys of patch into rec. A recognized key whose
// value does not decode into the field type is a validation error.
func (a allowList[T]) apply(rec *T, patch Patch) error {
	for _, key := range slices.Sorted(maps.Keys(patch)) {
		set, ok := a[key]
		if !ok {
			continue
		}
		if err := set(rec, patch[key]); err != nil {
			return newValidationError(key, "has the wrong type")
		}
	}
	return nil
}
