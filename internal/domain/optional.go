package domain

import "encoding/json"

// Optional wraps a value in a partial-update payload so that handlers can
// tell apart three states the standard pointer-field pattern collapses:
// the field was absent, the field was explicitly null, or the field carries
// a value. A field that is absent from the request body never has
// UnmarshalJSON called on it, so Set stays false.
type Optional[T any] struct {
	// Set is true when the field appeared in the payload at all.
	Set bool
	// Null is true when the field appeared with an explicit JSON null.
	Null bool
	// Value holds the decoded value when Set && !Null.
	Value T
}

// Some creates an Optional carrying a value. Primarily useful in tests.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// Null creates an Optional representing an explicit null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// MarshalJSON implements json.Marshaler. Absent and null both encode as
// null; Optional fields only appear in request payloads, so this exists for
// test fixtures rather than API responses.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
