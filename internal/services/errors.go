package services

import "errors"

var (
	// ErrInvalidField is returned when a field edit names an unknown field or
	// carries a value of the wrong type.
	ErrInvalidField = errors.New("invalid field")
	// ErrUnknownCollection is returned for a collection name the admin surface does not manage.
	ErrUnknownCollection = errors.New("unknown collection")
	// ErrNotSignedIn is returned by self-service operations without a current user.
	ErrNotSignedIn = errors.New("not signed in")
	// ErrValidation wraps struct validation failures.
	ErrValidation = errors.New("validation failed")
)

// ErrAddNotSupported is returned by Add on collections without a default constructor.
var ErrAddNotSupported = errors.New("add not supported")
