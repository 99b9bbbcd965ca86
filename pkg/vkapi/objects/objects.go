// Package objects contains the shapes of VK API response objects.
//
// Fields that VK may omit are pointers; all the other fields are required
// and decoding fails with [vkapi.MissingFieldError] when they are missing.
package objects

import (
	"encoding/json"
	"fmt"
)

// Integer is the VK integer type.
type Integer = int64

// Boolean is a VK boolean, which VK usually encodes as 0 or 1.
type Boolean bool

// UnmarshalJSON implements json.Unmarshaler.
func (b *Boolean) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "1", "true":
		*b = true
		return nil
	case "0", "false":
		*b = false
		return nil
	default:
		return fmt.Errorf("objects: invalid Boolean: %s", string(data))
	}
}

// MarshalJSON implements json.Marshaler.
func (b Boolean) MarshalJSON() ([]byte, error) {
	if b {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

// ItemsResponse is the common {"count": N, "items": [...]} response.
type ItemsResponse[T any] struct {
	Count Integer `json:"count"`
	Items []T     `json:"items"`
}

// WallPostResponse is the response of wall.post.
type WallPostResponse struct {
	PostID Integer `json:"post_id"`
}

// LikesResponse is the response of likes.add and likes.delete.
type LikesResponse struct {
	Likes Integer `json:"likes"`
}

var (
	_ json.Marshaler   = Boolean(false)
	_ json.Unmarshaler = (*Boolean)(nil)
)
