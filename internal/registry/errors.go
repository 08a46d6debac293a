package registry

import "errors"

var (
	ErrInvalidInput    = errors.New("title and description are required")
	ErrNotFound        = errors.New("proposal not found")
	ErrForbidden       = errors.New("forbidden")
	ErrAlreadyVoted    = errors.New("user already voted")
	ErrUnauthenticated = errors.New("caller identity required")
)
