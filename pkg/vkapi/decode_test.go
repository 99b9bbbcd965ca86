package vkapi

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type shortPost struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

type authorInfo struct {
	Name string `json:"name"`
}

type richPost struct {
	shortPost
	Author   authorInfo            `json:"author"`
	Editor   *authorInfo           `json:"editor"`
	Tags     []string              `json:"tags,omitempty"`
	Comments []authorInfo          `json:"comments"`
	ByLang   map[string]authorInfo `json:"by_lang"`
	Ignored  string                `json:"-"`
	internal string
}

func TestDecode(t *testing.T) {
	t.Run("decodes a struct", func(t *testing.T) {
		value, err := ParseEnvelope([]byte(`{"response":{"id":7,"text":"hi"}}`))
		if err != nil {
			t.Fatal(err)
		}
		post, err := Decode[shortPost](value)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(shortPost{ID: 7, Text: "hi"}, post); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("ignores unknown fields", func(t *testing.T) {
		post, err := Decode[*shortPost](Value(`{"id":7,"text":"hi","views":{"count":1}}`))
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(&shortPost{ID: 7, Text: "hi"}, post); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("decodes scalars", func(t *testing.T) {
		number, err := Decode[int64](Value(`42`))
		if err != nil {
			t.Fatal(err)
		}
		if number != 42 {
			t.Fatal("unexpected number", number)
		}
		ids, err := Decode[[]int64](Value(`[1,2,3]`))
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]int64{1, 2, 3}, ids); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("decodes nested and embedded structs", func(t *testing.T) {
		data := `{"id":1,"text":"x","author":{"name":"a"},"comments":[{"name":"b"}],
			"by_lang":{"en":{"name":"c"}},"-":"ignored","internal":"ignored"}`
		post, err := Decode[richPost](Value(data))
		if err != nil {
			t.Fatal(err)
		}
		expect := richPost{
			shortPost: shortPost{ID: 1, Text: "x"},
			Author:    authorInfo{Name: "a"},
			Comments:  []authorInfo{{Name: "b"}},
			ByLang:    map[string]authorInfo{"en": {Name: "c"}},
		}
		if diff := cmp.Diff(expect, post, cmp.AllowUnexported(richPost{})); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("uses case-insensitive matching like encoding/json", func(t *testing.T) {
		post, err := Decode[shortPost](Value(`{"ID":7,"Text":"hi"}`))
		if err != nil {
			t.Fatal(err)
		}
		if post.ID != 7 {
			t.Fatal("unexpected post", post)
		}
	})

	t.Run("decodes into a Value", func(t *testing.T) {
		value, err := Decode[Value](Value(`{"a":1}`))
		if err != nil {
			t.Fatal(err)
		}
		if value.String() != `{"a":1}` {
			t.Fatal("unexpected value", value)
		}
	})
}

func TestDecodeFailures(t *testing.T) {
	expectMissingField := func(t *testing.T, err error, path string) {
		t.Helper()
		if ErrorKindOf(err) != ErrorKindDecode {
			t.Fatal("expected a DecodeError, got", err)
		}
		var merr *MissingFieldError
		if !errors.As(err, &merr) {
			t.Fatal("not the error we expected", err)
		}
		if merr.Path != path {
			t.Fatal("unexpected path", merr.Path)
		}
	}

	t.Run("with a missing top-level field", func(t *testing.T) {
		value, err := ParseEnvelope([]byte(`{"response":{"text":"hi"}}`))
		if err != nil {
			t.Fatal(err)
		}
		post, err := Decode[shortPost](value)
		expectMissingField(t, err, "id")
		if err.Error() != `vkapi: missing field "id"` {
			t.Fatal("unexpected error message", err.Error())
		}
		if diff := cmp.Diff(shortPost{}, post); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("with a missing field of an embedded struct", func(t *testing.T) {
		_, err := Decode[richPost](Value(`{"text":"x","author":{"name":"a"},"comments":[],"by_lang":{}}`))
		expectMissingField(t, err, "id")
	})

	t.Run("with a missing nested field", func(t *testing.T) {
		_, err := Decode[richPost](Value(`{"id":1,"text":"x","author":{},"comments":[],"by_lang":{}}`))
		expectMissingField(t, err, "author.name")
	})

	t.Run("with a missing field inside an optional struct", func(t *testing.T) {
		_, err := Decode[richPost](Value(`{"id":1,"text":"x","author":{"name":"a"},"editor":{},
			"comments":[],"by_lang":{}}`))
		expectMissingField(t, err, "editor.name")
	})

	t.Run("with a missing field inside a slice element", func(t *testing.T) {
		_, err := Decode[richPost](Value(`{"id":1,"text":"x","author":{"name":"a"},
			"comments":[{"name":"b"},{}],"by_lang":{}}`))
		expectMissingField(t, err, "comments[1].name")
	})

	t.Run("with a missing field inside a map value", func(t *testing.T) {
		_, err := Decode[richPost](Value(`{"id":1,"text":"x","author":{"name":"a"},
			"comments":[],"by_lang":{"en":{"name":"c"},"ru":{}}}`))
		expectMissingField(t, err, "by_lang.ru.name")
	})

	t.Run("with a missing required slice", func(t *testing.T) {
		_, err := Decode[richPost](Value(`{"id":1,"text":"x","author":{"name":"a"},"by_lang":{}}`))
		expectMissingField(t, err, "comments")
	})

	t.Run("with a missing field inside a top-level slice", func(t *testing.T) {
		_, err := Decode[[]shortPost](Value(`[{"id":1,"text":"a"},{"text":"b"}]`))
		expectMissingField(t, err, "[1].id")
	})

	t.Run("with a type mismatch", func(t *testing.T) {
		_, err := Decode[shortPost](Value(`{"id":"seven","text":"hi"}`))
		var terr *json.UnmarshalTypeError
		if !errors.As(err, &terr) {
			t.Fatal("not the error we expected", err)
		}
		if ErrorKindOf(err) != ErrorKindDecode {
			t.Fatal("expected a DecodeError, got", err)
		}
	})

	t.Run("with null into a required struct field", func(t *testing.T) {
		_, err := Decode[richPost](Value(`{"id":1,"text":"x","author":null,"comments":[],"by_lang":{}}`))
		if !errors.Is(err, ErrIsNil) {
			t.Fatal("not the error we expected", err)
		}
	})

	t.Run("with null into required fields", func(t *testing.T) {
		type testcase struct {
			name   string
			decode func() error
			path   string
		}

		cases := []testcase{{
			name: "integer",
			decode: func() error {
				_, err := Decode[shortPost](Value(`{"id":null,"text":"hi"}`))
				return err
			},
			path: "id",
		}, {
			name: "string",
			decode: func() error {
				_, err := Decode[shortPost](Value(`{"id":1,"text":null}`))
				return err
			},
			path: "text",
		}, {
			name: "slice",
			decode: func() error {
				_, err := Decode[struct {
					Items []int64 `json:"items"`
				}](Value(`{"items":null}`))
				return err
			},
			path: "items",
		}, {
			name: "map",
			decode: func() error {
				_, err := Decode[richPost](Value(`{"id":1,"text":"x","author":{"name":"a"},
					"comments":[],"by_lang":null}`))
				return err
			},
			path: "by_lang",
		}, {
			name: "slice element",
			decode: func() error {
				_, err := Decode[[]int64](Value(`[1,null]`))
				return err
			},
			path: "[1]",
		}, {
			name: "top-level integer",
			decode: func() error {
				_, err := Decode[int64](Value(`null`))
				return err
			},
			path: "(root)",
		}}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				err := tc.decode()
				if !errors.Is(err, ErrIsNil) {
					t.Fatal("not the error we expected", err)
				}
				if ErrorKindOf(err) != ErrorKindDecode {
					t.Fatal("expected a DecodeError, got", err)
				}
				if !strings.HasSuffix(err.Error(), ": "+tc.path) {
					t.Fatal("unexpected error message", err.Error())
				}
			})
		}
	})

	t.Run("with null into optional fields", func(t *testing.T) {
		post, err := Decode[richPost](Value(`{"id":1,"text":"x","author":{"name":"a"},
			"editor":null,"tags":null,"comments":[],"by_lang":{}}`))
		if err != nil {
			t.Fatal(err)
		}
		if post.Editor != nil || post.Tags != nil {
			t.Fatal("expected nil optional fields")
		}
		var payload struct {
			Extra any `json:"extra"`
		}
		if err := Value(`{"extra":null}`).Decode(&payload); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("with a null payload", func(t *testing.T) {
		type testcase struct {
			name   string
			decode func() error
		}

		cases := []testcase{{
			name: "into a struct",
			decode: func() error {
				_, err := Decode[shortPost](Value(`null`))
				return err
			},
		}, {
			name: "into a struct pointer",
			decode: func() error {
				_, err := Decode[*shortPost](Value(`null`))
				return err
			},
		}, {
			name: "into a slice",
			decode: func() error {
				_, err := Decode[[]int64](Value(`null`))
				return err
			},
		}, {
			name: "into a map",
			decode: func() error {
				_, err := Decode[map[string]int64](Value(`null`))
				return err
			},
		}}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				err := tc.decode()
				if !errors.Is(err, ErrIsNil) {
					t.Fatal("not the error we expected", err)
				}
				if ErrorKindOf(err) != ErrorKindDecode {
					t.Fatal("expected a DecodeError, got", err)
				}
			})
		}
	})

	t.Run("with malformed JSON", func(t *testing.T) {
		_, err := Decode[shortPost](Value(`{"id":`))
		var serr *json.SyntaxError
		if !errors.As(err, &serr) {
			t.Fatal("not the error we expected", err)
		}
	})
}

func TestValueDecodeWithInvalidTarget(t *testing.T) {
	var post shortPost
	err := Value(`{"id":1,"text":"x"}`).Decode(post) // not a pointer
	var ierr *json.InvalidUnmarshalError
	if !errors.As(err, &ierr) {
		t.Fatal("not the error we expected", err)
	}
	if ErrorKindOf(err) != ErrorKindDecode {
		t.Fatal("expected a DecodeError, got", err)
	}
}
