package vkapi

//
// Normalized errors
//

import (
	"errors"
	"fmt"
)

// ErrorKind identifies the variant of an [Error].
type ErrorKind string

const (
	// ErrorKindAPI is the kind of [*APIError].
	ErrorKindAPI = ErrorKind("api")

	// ErrorKindTransport is the kind of [*TransportError].
	ErrorKindTransport = ErrorKind("transport")

	// ErrorKindDecode is the kind of [*DecodeError].
	ErrorKindDecode = ErrorKind("decode")

	// ErrorKindOther is the kind of [*OtherError].
	ErrorKindOther = ErrorKind("other")
)

// Error is the error returned by every call. The concrete type is
// one of [*APIError], [*TransportError], [*DecodeError], and [*OtherError].
type Error interface {
	error

	// Kind returns the variant of this error.
	Kind() ErrorKind
}

// RequestParam is a parameter echoed back by VK inside an error.
type RequestParam struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// APIError is an error reported by VK inside the response envelope.
type APIError struct {
	// Code is the VK error code (see the ErrCode constants).
	Code uint64

	// Msg is the VK error message.
	Msg string

	// RequestParams contains the request parameters echoed back
	// by VK, when available.
	RequestParams []RequestParam
}

// NewAPIError creates a new [*APIError].
func NewAPIError(code uint64, msg string) *APIError {
	return &APIError{Code: code, Msg: msg}
}

var _ Error = &APIError{}

// Error implements error.
func (e *APIError) Error() string {
	return fmt.Sprintf("APIError #%d: %s", e.Code, e.Msg)
}

// Kind implements Error.
func (e *APIError) Kind() ErrorKind {
	return ErrorKindAPI
}

// TransportError wraps a failure to send the request or to
// receive the whole response body.
type TransportError struct {
	Err error
}

// NewTransportError wraps err into a [*TransportError].
func NewTransportError(err error) *TransportError {
	return &TransportError{Err: err}
}

var _ Error = &TransportError{}

// Error implements error.
func (e *TransportError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Kind implements Error.
func (e *TransportError) Kind() ErrorKind {
	return ErrorKindTransport
}

// DecodeError wraps a failure to parse the response body or to
// convert the response payload into the requested type.
type DecodeError struct {
	Err error
}

// NewDecodeError wraps err into a [*DecodeError].
func NewDecodeError(err error) *DecodeError {
	return &DecodeError{Err: err}
}

var _ Error = &DecodeError{}

// Error implements error.
func (e *DecodeError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Kind implements Error.
func (e *DecodeError) Kind() ErrorKind {
	return ErrorKindDecode
}

// OtherError is a locally detected failure occurring before any
// network activity (e.g., an empty method name).
type OtherError struct {
	// Msg is the error message.
	Msg string

	// Err is the OPTIONAL underlying error.
	Err error
}

// NewOtherError creates a new [*OtherError] formatting the message like
// [fmt.Errorf]. When the format contains a single %w verb, the
// corresponding error becomes the underlying error.
func NewOtherError(format string, v ...any) *OtherError {
	err := fmt.Errorf(format, v...)
	return &OtherError{Msg: err.Error(), Err: errors.Unwrap(err)}
}

var _ Error = &OtherError{}

// Error implements error.
func (e *OtherError) Error() string {
	return e.Msg
}

// Unwrap returns the underlying error, if any.
func (e *OtherError) Unwrap() error {
	return e.Err
}

// Kind implements Error.
func (e *OtherError) Kind() ErrorKind {
	return ErrorKindOther
}

// ErrorKindOf returns the kind of the [Error] in err's chain or
// the empty string if there is no such error.
func ErrorKindOf(err error) ErrorKind {
	var verr Error
	if errors.As(err, &verr) {
		return verr.Kind()
	}
	return ""
}

// IsAPIError returns whether err's chain contains an [*APIError]
// with the given code.
func IsAPIError(err error, code uint64) bool {
	var aerr *APIError
	return errors.As(err, &aerr) && aerr.Code == code
}
