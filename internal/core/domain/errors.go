package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("insufficient permissions")
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrConflict           = errors.New("conflict")
	ErrDuplicateID        = errors.New("duplicate identifier")
)

// ErrEmailTaken is the Conflict raised by a second registration with the same email.
var ErrEmailTaken = fmt.Errorf("%w: email already registered", ErrConflict)

// ValidationError carries field-level reasons and matches ErrInvalidInput.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// NotFoundError names the resource that was missing and matches ErrNotFound.
type NotFoundError struct {
	Tag string
	ID  string
}

func (e *NotFoundError) Error() string { return e.Tag + " not found" }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
