package entity

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

// Optional carries a partial-update field. Set is false when the key was absent
// from the payload; Null is true when it was sent as an explicit null.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// Null returns an Optional that clears the field.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// UnmarshalJSON is only invoked when the key is present, which is what makes
// absent and null distinguishable.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		o.Null = true
		var zero T
		o.Value = zero

		return nil
	}
	o.Null = false

	return json.Unmarshal(data, &o.Value)
}

// MarshalJSON renders unset and null values as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return jsonNull, nil
	}

	return json.Marshal(o.Value)
}

// Present reports whether the field carries a non-null value.
func (o Optional[T]) Present() bool {
	return o.Set && !o.Null
}

// ValueOrNil returns the value as any, or nil for an explicit null.
func (o Optional[T]) ValueOrNil() any {
	if o.Null {
		return nil
	}

	return o.Value
}
