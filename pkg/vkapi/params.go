package vkapi

//
// Parameter bag
//

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Pair is a parameter name and its textual wire form.
type Pair struct {
	Name  string
	Value string
}

// Params is the ordered set of parameters of a method call.
//
// Setting an existing name replaces its value in place, so the last
// write wins and the order of first insertion is preserved. The read
// methods and Del treat a nil *Params as an empty bag, while Set requires
// a bag created with [NewParams]. Params is not safe for concurrent
// mutation and should be built per call.
type Params struct {
	pairs []Pair
	index map[string]int
	err   error
}

// NewParams creates a new empty [*Params].
func NewParams() *Params {
	return &Params{}
}

// ErrUnsupportedParamValue indicates that a parameter value has no
// textual wire form.
var ErrUnsupportedParamValue = errors.New("vkapi: unsupported parameter value")

// Set sets the parameter name to the wire form of value and returns
// the receiver to allow chaining. Supported values are strings, booleans
// (sent as 1 or 0), integers, floats, [fmt.Stringer], pointers to those,
// and slices or arrays of those (comma-joined). Other values are not
// added and the first such failure is returned by [*Params.Err].
func (p *Params) Set(name string, value any) *Params {
	text, err := formatParamValue(value)
	if err != nil {
		if p.err == nil {
			p.err = fmt.Errorf("%w: %s: %T", ErrUnsupportedParamValue, name, value)
		}
		return p
	}
	if p.index == nil {
		p.index = make(map[string]int)
	}
	if idx, found := p.index[name]; found {
		p.pairs[idx].Value = text
		return p
	}
	p.index[name] = len(p.pairs)
	p.pairs = append(p.pairs, Pair{Name: name, Value: text})
	return p
}

// Get returns the wire form of the given parameter.
func (p *Params) Get(name string) (string, bool) {
	if p == nil {
		return "", false
	}
	idx, found := p.index[name]
	if !found {
		return "", false
	}
	return p.pairs[idx].Value, true
}

// Has returns whether the given parameter is set.
func (p *Params) Has(name string) bool {
	_, found := p.Get(name)
	return found
}

// Del removes the given parameter, if present.
func (p *Params) Del(name string) {
	if p == nil {
		return
	}
	idx, found := p.index[name]
	if !found {
		return
	}
	p.pairs = append(p.pairs[:idx], p.pairs[idx+1:]...)
	delete(p.index, name)
	for i := idx; i < len(p.pairs); i++ {
		p.index[p.pairs[i].Name] = i
	}
}

// Len returns the number of parameters.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.pairs)
}

// Err returns the first error that occurred while setting parameters.
func (p *Params) Err() error {
	if p == nil {
		return nil
	}
	return p.err
}

// Clone returns a deep copy of p. Cloning a nil *Params returns
// a new empty bag.
func (p *Params) Clone() *Params {
	out := NewParams()
	if p == nil {
		return out
	}
	out.err = p.err
	out.pairs = append([]Pair{}, p.pairs...)
	out.index = make(map[string]int, len(p.index))
	for name, idx := range p.index {
		out.index[name] = idx
	}
	return out
}

// Pairs returns a copy of the parameters in insertion order.
func (p *Params) Pairs() []Pair {
	if p == nil {
		return []Pair{}
	}
	return append([]Pair{}, p.pairs...)
}

// Values materializes the parameters as [url.Values].
func (p *Params) Values() url.Values {
	out := url.Values{}
	for _, pair := range p.Pairs() {
		out.Set(pair.Name, pair.Value)
	}
	return out
}

var stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()

func formatParamValue(value any) (string, error) {
	if value == nil {
		return "", ErrUnsupportedParamValue
	}
	return formatParamReflectValue(reflect.ValueOf(value))
}

func formatParamReflectValue(rv reflect.Value) (string, error) {
	if rv.Type().Implements(stringerType) {
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return "", ErrUnsupportedParamValue
		}
		return rv.Interface().(fmt.Stringer).String(), nil
	}
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		if rv.Bool() {
			return "1", nil
		}
		return "0", nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "", ErrUnsupportedParamValue
		}
		return formatParamReflectValue(rv.Elem())
	case reflect.Slice, reflect.Array:
		items := make([]string, 0, rv.Len())
		for idx := 0; idx < rv.Len(); idx++ {
			elem := rv.Index(idx)
			if k := elem.Kind(); k == reflect.Slice || k == reflect.Array {
				return "", ErrUnsupportedParamValue
			}
			text, err := formatParamReflectValue(elem)
			if err != nil {
				return "", err
			}
			items = append(items, text)
		}
		return strings.Join(items, ","), nil
	default:
		return "", ErrUnsupportedParamValue
	}
}
