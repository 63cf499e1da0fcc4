// Package patch provides optional request fields for partial updates.
//
// A Field records whether the key appeared in the JSON body at all, and if it did,
// whether it carried an explicit null. Absent and null are therefore distinguishable,
// which nullable pointers cannot express.
package patch

import (
	"bytes"
	"encoding/json"
)

var nullLiteral = []byte("null")

// Field is an optional value decoded from a JSON object member.
// The zero value means "not provided".
type Field[T any] struct {
	Set   bool // key was present in the body
	Null  bool // key was present with a null value
	Value T
}

// Of returns a provided, non-null field. Mostly useful in tests and internal callers.
func Of[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// UnmarshalJSON is only invoked by encoding/json when the key exists,
// so reaching it means the field was provided.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), nullLiteral) {
		f.Null = true
		var zero T
		f.Value = zero
		return nil
	}
	f.Null = false
	return json.Unmarshal(data, &f.Value)
}

// MarshalJSON writes null for absent or null fields.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Set || f.Null {
		return nullLiteral, nil
	}
	return json.Marshal(f.Value)
}

// Present reports whether the field carries a usable (non-null) value.
func (f Field[T]) Present() bool {
	return f.Set && !f.Null
}

// Apply overwrites *dst when the field is present and leaves it untouched otherwise.
func (f Field[T]) Apply(dst *T) {
	if f.Present() {
		*dst = f.Value
	}
}

// Get returns the value and whether it is present.
func (f Field[T]) Get() (T, bool) {
	return f.Value, f.Present()
}
