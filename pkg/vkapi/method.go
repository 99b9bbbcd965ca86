package vkapi

//
// Typed method calls
//

import "context"

// Call calls the given method and decodes the response payload
// into a value of type T using [Decode].
func Call[T any](ctx context.Context, c *Client, method string, params *Params) (T, error) {
	value, err := c.CallMethod(ctx, method, params)
	if err != nil {
		return zeroValue[T](), err
	}
	return Decode[T](value)
}

// Method is a VK method whose response payload decodes as T.
type Method[T any] struct {
	// Name is the VK method name (e.g., "users.get").
	Name string
}

// NewMethod creates a new [Method] with the given name.
func NewMethod[T any](name string) Method[T] {
	return Method[T]{Name: name}
}

// Call calls the method using the given client and params.
func (m Method[T]) Call(ctx context.Context, c *Client, params *Params) (T, error) {
	return Call[T](ctx, c, m.Name, params)
}

// String returns the method name.
func (m Method[T]) String() string {
	return m.Name
}
