package vkapi

//
// Typed decode
//

import (
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// ErrIsNil indicates that a JSON null was found where a value is required.
var ErrIsNil = errors.New("vkapi: null where a value is required")

// MissingFieldError indicates that a required field is missing from
// the JSON object being decoded.
type MissingFieldError struct {
	// Path is the dotted path of the field (e.g., "items[0].id").
	Path string
}

// Error implements error.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("vkapi: missing field %q", e.Path)
}

// Decode converts a raw response payload into a value of type T.
//
// The decoding is strict: every struct field that is neither a pointer nor
// tagged with omitempty must be present in the JSON, recursively. Extra JSON
// fields are ignored. A JSON null is rejected with [ErrIsNil] unless it is
// decoded into a pointer, an interface, an omitempty field, or a type with
// its own UnmarshalJSON. All failures are wrapped by [*DecodeError].
func Decode[T any](v Value) (T, error) {
	var output T
	if err := decodeInto(v, &output); err != nil {
		return zeroValue[T](), err
	}
	if err := nilSafetyErrorIfNil(output); err != nil {
		return zeroValue[T](), NewDecodeError(err)
	}
	return output, nil
}

func zeroValue[T any]() T {
	return *new(T)
}

// nilSafetyErrorIfNil returns [ErrIsNil] iff value is a nil map, pointer, or slice.
func nilSafetyErrorIfNil(value any) error {
	switch rv := reflect.ValueOf(value); rv.Kind() {
	case reflect.Map, reflect.Pointer, reflect.Slice:
		if rv.IsNil() {
			return ErrIsNil
		}
	}
	return nil
}

func decodeInto(v Value, out any) error {
	if err := json.Unmarshal(v, out); err != nil {
		return NewDecodeError(err)
	}
	// json.Unmarshal guarantees that out is a non-nil pointer here
	if err := checkRequired(json.RawMessage(v), reflect.TypeOf(out).Elem(), ""); err != nil {
		return NewDecodeError(err)
	}
	return nil
}

var (
	jsonUnmarshalerType = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// selfDecoding returns whether t owns its own JSON decoding.
func selfDecoding(t reflect.Type) bool {
	ptr := reflect.PointerTo(t)
	return t.Implements(jsonUnmarshalerType) || ptr.Implements(jsonUnmarshalerType) ||
		t.Implements(textUnmarshalerType) || ptr.Implements(textUnmarshalerType)
}

// checkRequired walks raw alongside t and fails on the first missing
// required struct field or null required value. The raw JSON is known
// to be valid for t.
func checkRequired(raw json.RawMessage, t reflect.Type, path string) error {
	if selfDecoding(t) {
		return nil
	}
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface:
		// null is a valid value for these
	default:
		if isJSONNull(raw) {
			return fmt.Errorf("%w: %s", ErrIsNil, displayPath(path))
		}
	}
	switch t.Kind() {
	case reflect.Pointer:
		if isJSONNull(raw) {
			return nil
		}
		return checkRequired(raw, t.Elem(), path)

	case reflect.Struct:
		var object map[string]json.RawMessage
		if err := json.Unmarshal(raw, &object); err != nil {
			return err
		}
		return checkStructFields(object, t, path)

	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return nil
		}
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return err
		}
		for idx, item := range items {
			if err := checkRequired(item, t.Elem(), fmt.Sprintf("%s[%d]", path, idx)); err != nil {
				return err
			}
		}

	case reflect.Map:
		var object map[string]json.RawMessage
		if err := json.Unmarshal(raw, &object); err != nil {
			return err
		}
		keys := make([]string, 0, len(object))
		for key := range object {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if err := checkRequired(object[key], t.Elem(), joinFieldPath(path, key)); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkStructFields(object map[string]json.RawMessage, t reflect.Type, path string) error {
	for idx := 0; idx < t.NumField(); idx++ {
		field := t.Field(idx)
		name, omitempty, skip := jsonFieldName(field)
		if skip {
			continue
		}

		// fields of embedded structs are promoted into the parent object
		if field.Anonymous && name == "" {
			if field.Type.Kind() == reflect.Struct {
				if err := checkStructFields(object, field.Type, path); err != nil {
					return err
				}
			}
			continue
		}
		if !field.IsExported() {
			continue
		}
		if name == "" {
			name = field.Name
		}

		raw, found := lookupJSONField(object, name)
		if !found {
			if omitempty || field.Type.Kind() == reflect.Pointer {
				continue
			}
			return &MissingFieldError{Path: joinFieldPath(path, name)}
		}
		if omitempty && isJSONNull(raw) {
			continue
		}
		if err := checkRequired(raw, field.Type, joinFieldPath(path, name)); err != nil {
			return err
		}
	}
	return nil
}

// jsonFieldName parses the json struct tag. The name is empty when
// the tag does not specify it.
func jsonFieldName(field reflect.StructField) (name string, omitempty, skip bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}
	name, opts, _ := strings.Cut(tag, ",")
	for _, opt := range strings.Split(opts, ",") {
		if opt == "omitempty" {
			omitempty = true
		}
	}
	return name, omitempty, false
}

// lookupJSONField mimics encoding/json, which prefers an exact
// match but also accepts a case-insensitive one.
func lookupJSONField(object map[string]json.RawMessage, name string) (json.RawMessage, bool) {
	if raw, found := object[name]; found {
		return raw, true
	}
	for key, raw := range object {
		if strings.EqualFold(key, name) {
			return raw, true
		}
	}
	return nil, false
}

func joinFieldPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func displayPath(path string) string {
	if path == "" {
		return "(root)"
	}
	return path
}
