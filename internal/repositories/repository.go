package repositories

import "time"

// Repository is the read/replace contract of one ordered collection.
// Replace is the only write primitive; Update and UpdateIf are
// compute-then-replace performed under the collection lock.
type Repository[T any] interface {
	List() []T
	Replace(all []T)
	Update(fn func(current []T) []T) []T
	UpdateIf(fn func(current []T) (next []T, changed bool)) []T
}

// ChangeEvent describes a freshly installed snapshot.
type ChangeEvent struct {
	Collection string    `json:"collection"`
	Size       int       `json:"size"`
	Version    uint64    `json:"version"`
	At         time.Time `json:"at"`
}

// ChangeListener observes snapshot replacement.
type ChangeListener func(ChangeEvent)
