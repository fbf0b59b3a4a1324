// Package patch provides tri-state field wrappers for JSON merge-patch bodies.
//
// A field decoded from a request body is in one of three states:
//
//	absent        → the key was not sent; the stored value is kept
//	present-null  → the key was sent as null; the stored value is cleared
//	present-value → the key was sent with a value; the stored value is replaced
//
// Value rejects present-null and is meant for fields the record cannot leave empty.
// Nullable accepts all three states and is meant for optional record fields.
package patch

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrNullNotAllowed is returned when a non-nullable field is sent as null.
var ErrNullNotAllowed = errors.New("null is not allowed for this field")

var null = []byte("null")

// Value is a patch field that is either absent or carries a value.
type Value[T any] struct {
	val T
	set bool
}

// Of returns a present Value.
func Of[T any](v T) Value[T] {
	return Value[T]{val: v, set: true}
}

// UnmarshalJSON is only invoked by encoding/json when the key is present.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), null) {
		return ErrNullNotAllowed
	}
	if err := json.Unmarshal(data, &v.val); err != nil {
		return err
	}
	v.set = true
	return nil
}

// MarshalJSON renders absent fields as null so the type can round-trip in tests and logs.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.set {
		return null, nil
	}
	return json.Marshal(v.val)
}

// IsSet reports whether the field was present in the body.
func (v Value[T]) IsSet() bool { return v.set }

// Get returns the carried value and whether it was present.
func (v Value[T]) Get() (T, bool) { return v.val, v.set }

// ApplyTo overwrites *dst when the field was present.
func (v Value[T]) ApplyTo(dst *T) {
	if v.set {
		*dst = v.val
	}
}

// ValidationValue exposes the inner value to go-playground/validator.
// Absent fields yield nil so "omitempty" rules skip them.
func (v Value[T]) ValidationValue() any {
	if !v.set {
		return nil
	}
	return v.val
}

// Nullable is a patch field that is absent, explicitly null, or carries a value.
type Nullable[T any] struct {
	val   T
	set   bool
	valid bool
}

// Null returns a present-null Nullable.
func Null[T any]() Nullable[T] {
	return Nullable[T]{set: true}
}

// Some returns a present Nullable carrying v.
func Some[T any](v T) Nullable[T] {
	return Nullable[T]{val: v, set: true, valid: true}
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.set = true
	if bytes.Equal(bytes.TrimSpace(data), null) {
		var zero T
		n.val, n.valid = zero, false
		return nil
	}
	if err := json.Unmarshal(data, &n.val); err != nil {
		return err
	}
	n.valid = true
	return nil
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.valid {
		return null, nil
	}
	return json.Marshal(n.val)
}

// IsSet reports whether the field was present in the body (null included).
func (n Nullable[T]) IsSet() bool { return n.set }

// IsNull reports whether the field was present and explicitly null.
func (n Nullable[T]) IsNull() bool { return n.set && !n.valid }

// ApplyTo updates *dst when the field was present: nil for null, a fresh pointer otherwise.
func (n Nullable[T]) ApplyTo(dst **T) {
	if !n.set {
		return
	}
	if !n.valid {
		*dst = nil
		return
	}
	v := n.val
	*dst = &v
}

// ValidationValue yields nil for absent and null fields.
func (n Nullable[T]) ValidationValue() any {
	if !n.valid {
		return nil
	}
	return n.val
}

// Validatable is implemented by both wrappers.
type Validatable interface {
	ValidationValue() any
}
