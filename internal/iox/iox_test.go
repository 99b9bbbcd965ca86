package iox

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestReadAllContext(t *testing.T) {
	t.Run("common case", func(t *testing.T) {
		r := strings.NewReader(`{"response":1}`)
		out, err := ReadAllContext(context.Background(), r)
		if err != nil {
			t.Fatal(err)
		}
		if string(out) != `{"response":1}` {
			t.Fatal("unexpected body", string(out))
		}
	})

	t.Run("with read error", func(t *testing.T) {
		expected := errors.New("mocked error")
		r := &MockableReader{
			MockRead: func(b []byte) (int, error) {
				return 0, expected
			},
		}
		out, err := ReadAllContext(context.Background(), r)
		if !errors.Is(err, expected) {
			t.Fatal("not the error we expected", err)
		}
		if len(out) != 0 {
			t.Fatal("not the expected number of bytes")
		}
	})

	t.Run("with cancelled context", func(t *testing.T) {
		r := &MockableReader{
			MockRead: func(b []byte) (int, error) {
				time.Sleep(10 * time.Millisecond)
				return 0, errors.New("mocked error")
			},
		}
		ctx, cancel := context.WithCancel(context.Background())
		cancel() // fail immediately
		out, err := ReadAllContext(ctx, r)
		if !errors.Is(err, context.Canceled) {
			t.Fatal("not the error we expected", err)
		}
		if len(out) != 0 {
			t.Fatal("not the expected number of bytes")
		}
	})
}
