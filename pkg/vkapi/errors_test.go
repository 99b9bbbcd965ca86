package vkapi

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestErrorRendering(t *testing.T) {
	type testcase struct {
		name   string
		err    Error
		expect string
		kind   ErrorKind
	}

	cases := []testcase{{
		name:   "APIError",
		err:    NewAPIError(5, "Bad token"),
		expect: "APIError #5: Bad token",
		kind:   ErrorKindAPI,
	}, {
		name:   "TransportError delegates to the cause",
		err:    NewTransportError(errors.New("connection refused")),
		expect: "connection refused",
		kind:   ErrorKindTransport,
	}, {
		name:   "DecodeError delegates to the cause",
		err:    NewDecodeError(errors.New("unexpected end of JSON input")),
		expect: "unexpected end of JSON input",
		kind:   ErrorKindDecode,
	}, {
		name:   "OtherError renders its text",
		err:    NewOtherError("vkapi: %s", "empty method name"),
		expect: "vkapi: empty method name",
		kind:   ErrorKindOther,
	}}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.expect {
				t.Fatal("expected", tc.expect, "got", got)
			}
			if got := tc.err.Kind(); got != tc.kind {
				t.Fatal("expected", tc.kind, "got", got)
			}
			if got := ErrorKindOf(fmt.Errorf("wrapped: %w", tc.err)); got != tc.kind {
				t.Fatal("expected", tc.kind, "got", got)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	t.Run("TransportError", func(t *testing.T) {
		err := NewTransportError(context.DeadlineExceeded)
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Fatal("cannot unwrap the cause")
		}
	})

	t.Run("DecodeError", func(t *testing.T) {
		err := NewDecodeError(ErrMissingResponse)
		if !errors.Is(err, ErrMissingResponse) {
			t.Fatal("cannot unwrap the cause")
		}
	})

	t.Run("OtherError with a cause", func(t *testing.T) {
		err := NewOtherError("vkapi: %s: %w", "wall.get", ErrUnsupportedParamValue)
		if !errors.Is(err, ErrUnsupportedParamValue) {
			t.Fatal("cannot unwrap the cause")
		}
		if err.Error() != "vkapi: wall.get: vkapi: unsupported parameter value" {
			t.Fatal("unexpected message", err.Error())
		}
	})

	t.Run("OtherError without a cause", func(t *testing.T) {
		err := NewOtherError("vkapi: empty method name")
		if err.Unwrap() != nil {
			t.Fatal("expected no cause")
		}
	})
}

func TestErrorKindOfForeignErrors(t *testing.T) {
	if kind := ErrorKindOf(errors.New("mocked error")); kind != "" {
		t.Fatal("unexpected kind", kind)
	}
	if kind := ErrorKindOf(nil); kind != "" {
		t.Fatal("unexpected kind", kind)
	}
}

func TestIsAPIError(t *testing.T) {
	err := fmt.Errorf("users.get: %w", NewAPIError(ErrCodeAccessDenied, "Access denied"))
	if !IsAPIError(err, ErrCodeAccessDenied) {
		t.Fatal("expected true")
	}
	if IsAPIError(err, ErrCodeAuthFailed) {
		t.Fatal("expected false for a different code")
	}
	if IsAPIError(NewTransportError(errors.New("eof")), ErrCodeAccessDenied) {
		t.Fatal("expected false for a transport error")
	}
}
