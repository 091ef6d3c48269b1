package port

import "encoding/json"

// Optional is a tri-state JSON field: absent, explicit null, or a value.
// Decoding never fails the surrounding unmarshal; a wrong JSON type is
// recorded and reported through Malformed so validation can answer with a
// field-specific message instead of a generic parse error.
type Optional[T any] struct {
	Present bool
	Null    bool
	Value   T

	err error
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true
	if string(data) == "null" {
		o.Null = true
		return nil
	}
	o.err = json.Unmarshal(data, &o.Value)
	return nil
}

// Valid reports whether a usable value was supplied.
func (o Optional[T]) Valid() bool {
	return o.Present && !o.Null && o.err == nil
}

// Malformed reports whether the field was supplied with the wrong JSON type.
func (o Optional[T]) Malformed() bool {
	return o.err != nil
}
