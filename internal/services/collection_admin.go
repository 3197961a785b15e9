package services

import (
	"fmt"

	"arabyprompts/internal/models"
	"arabyprompts/internal/repositories"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func validateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

// CollectionAdmin is the admin surface of one collection: typed patches,
// field edits, add-with-defaults and delete, all expressed as
// compute-then-replace on the underlying repository.
type CollectionAdmin[T models.Entity, P models.Patch[T]] struct {
	name  string
	repo  repositories.Repository[T]
	newFn func() T
}

// NewCollectionAdmin wraps repo. newFn may be nil when the kind cannot be added.
func NewCollectionAdmin[T models.Entity, P models.Patch[T]](name string, repo repositories.Repository[T], newFn func() T) *CollectionAdmin[T, P] {
	return &CollectionAdmin[T, P]{name: name, repo: repo, newFn: newFn}
}

func (c *CollectionAdmin[T, P]) Name() string { return c.name }

func (c *CollectionAdmin[T, P]) List() []T { return c.repo.List() }

// Get returns the element with the given id.
func (c *CollectionAdmin[T, P]) Get(id string) (T, bool) {
	for _, item := range c.repo.List() {
		if item.GetID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Replace validates every element and installs all as the new collection.
func (c *CollectionAdmin[T, P]) Replace(all []T) error {
	for i := range all {
		if err := validateStruct(all[i]); err != nil {
			return fmt.Errorf("%s[%d]: %w", c.name, i, err)
		}
	}
	c.repo.Replace(all)
	return nil
}

// Patch applies p to the element with the given id. A patch that would leave
// the element invalid is rejected and nothing changes. Unknown ids are a no-op.
func (c *CollectionAdmin[T, P]) Patch(id string, p P) ([]T, error) {
	return c.apply(id, p.Apply)
}

// UpdateField applies a single named field edit.
func (c *CollectionAdmin[T, P]) UpdateField(id, field string, value any) ([]T, error) {
	patch, err := decodeFieldPatch[P](field, value)
	if err != nil {
		return c.repo.List(), err
	}
	return c.apply(id, patch.Apply)
}

// apply installs a new snapshot only when id matched and the result is valid.
func (c *CollectionAdmin[T, P]) apply(id string, fn func(T) T) ([]T, error) {
	var applyErr error
	out := c.repo.UpdateIf(func(current []T) ([]T, bool) {
		matched := false
		next := UpdateByID(current, id, func(item T) T {
			matched = true
			updated := fn(item)
			if err := validateStruct(updated); err != nil {
				applyErr = err
				return item
			}
			return updated
		})
		if !matched || applyErr != nil {
			return current, false
		}
		return next, true
	})
	return out, applyErr
}

// Add appends a new element with default values and returns it.
func (c *CollectionAdmin[T, P]) Add() (T, error) {
	if c.newFn == nil {
		var zero T
		return zero, fmt.Errorf("%w: %s", ErrAddNotSupported, c.name)
	}
	item := c.newFn()
	c.repo.Update(func(current []T) []T {
		return append(current, item)
	})
	return item, nil
}

// Delete removes the element with the given id. Callers go through
// Confirmations; this is the action run once a ticket is confirmed.
func (c *CollectionAdmin[T, P]) Delete(id string) []T {
	return c.repo.UpdateIf(func(current []T) ([]T, bool) {
		next := DeleteByID(current, id)
		return next, len(next) != len(current)
	})
}
