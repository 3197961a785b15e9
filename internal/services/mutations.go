package services

import (
	"bytes"
	"encoding/json"
	"fmt"

	"arabyprompts/internal/models"
)

// Direction is the way MoveAdjacent shifts an element.
type Direction string

const (
	DirectionUp   Direction = "up"   // toward index 0
	DirectionDown Direction = "down" // toward the end
)

// UpdateByID returns a copy of items where the element with the given id has
// been replaced by fn(element). An unmatched id leaves the copy unchanged.
func UpdateByID[T models.Entity](items []T, id string, fn func(T) T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		if item.GetID() == id {
			out[i] = fn(item)
			continue
		}
		out[i] = item
	}
	return out
}

// UpdateField sets one named field of the element with the given id. The
// field/value pair is decoded into the kind's typed patch P, so an unknown
// field or a value of the wrong type is rejected with ErrInvalidField.
// An unmatched id is a silent no-op.
func UpdateField[T models.Entity, P models.Patch[T]](items []T, id, field string, value any) ([]T, error) {
	patch, err := decodeFieldPatch[P](field, value)
	if err != nil {
		return items, err
	}
	return UpdateByID(items, id, patch.Apply), nil
}

func decodeFieldPatch[P any](field string, value any) (P, error) {
	var patch P
	raw, err := json.Marshal(map[string]any{field: value})
	if err != nil {
		return patch, fmt.Errorf("%w: %s: %v", ErrInvalidField, field, err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&patch); err != nil {
		return patch, fmt.Errorf("%w: %s: %v", ErrInvalidField, field, err)
	}
	return patch, nil
}

// DeleteByID returns a copy of items without the element with the given id.
func DeleteByID[T models.Entity](items []T, id string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item.GetID() != id {
			out = append(out, item)
		}
	}
	return out
}

// MoveAdjacent swaps the element at index with its neighbour in direction.
// Moves that would leave the slice, and unknown directions, return an
// unchanged copy.
func MoveAdjacent[T any](items []T, index int, direction Direction) []T {
	out := make([]T, len(items))
	copy(out, items)
	if index < 0 || index >= len(out) {
		return out
	}

	var target int
	switch direction {
	case DirectionUp:
		target = index - 1
	case DirectionDown:
		target = index + 1
	default:
		return out
	}
	if target < 0 || target >= len(out) {
		return out
	}
	out[index], out[target] = out[target], out[index]
	return out
}

func sameOrder[T models.Entity](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].GetID() != b[i].GetID() {
			return false
		}
	}
	return true
}
