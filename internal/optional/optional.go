// Package optional contains a type that explicitly tracks whether a value
// was supplied, independently of the value itself.
//
// A Value holding the zero value of T is still "some": presence and value
// are orthogonal, which is what the path builder needs to decide whether a
// segment is emitted at all.
package optional

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Value is an optional value. The zero value is None.
type Value[T any] struct {
	indirect *T
}

// None constructs an empty Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Some constructs a Value holding v.
func Some[T any](v T) Value[T] {
	return Value[T]{indirect: &v}
}

// IsNone returns whether the value is empty.
func (v Value[T]) IsNone() bool {
	return v.indirect == nil
}

// IsSome returns whether the value was supplied.
func (v Value[T]) IsSome() bool {
	return v.indirect != nil
}

// ErrNoValue is the panic value used by Unwrap on an empty Value.
var ErrNoValue = errors.New("optional: unwrapping an empty value")

// Unwrap returns the underlying value or panics when empty.
func (v Value[T]) Unwrap() T {
	if v.indirect == nil {
		panic(ErrNoValue)
	}
	return *v.indirect
}

// UnwrapOr returns the underlying value or fallback when empty.
func (v Value[T]) UnwrapOr(fallback T) T {
	if v.indirect == nil {
		return fallback
	}
	return *v.indirect
}

// Get returns the underlying value and whether it is present.
func (v Value[T]) Get() (T, bool) {
	if v.indirect == nil {
		var zero T
		return zero, false
	}
	return *v.indirect, true
}

// MarshalJSON implements json.Marshaler. An empty Value is encoded as null.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if v.indirect == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*v.indirect)
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null yields None.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		v.indirect = nil
		return nil
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	v.indirect = &value
	return nil
}
