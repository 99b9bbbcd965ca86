package vkapi

//
// Raw response values
//

import (
	"encoding/json"
	"errors"

	"github.com/tidwall/gjson"
)

// Value is the raw JSON of a response payload.
type Value json.RawMessage

var (
	_ json.Marshaler   = Value(nil)
	_ json.Unmarshaler = (*Value)(nil)
)

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	return v, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	if v == nil {
		return errors.New("vkapi: UnmarshalJSON on nil pointer")
	}
	*v = append((*v)[0:0], data...)
	return nil
}

// String returns the raw JSON as a string.
func (v Value) String() string {
	return string(v)
}

// Get returns the value at the given gjson path (e.g., "items.0.id"
// or "items.#.id"). Use [gjson.Result.Exists] to check for presence.
func (v Value) Get(path string) gjson.Result {
	return gjson.GetBytes(v, path)
}

// Decode decodes the value into out with the rules of [Decode].
func (v Value) Decode(out any) error {
	return decodeInto(v, out)
}
