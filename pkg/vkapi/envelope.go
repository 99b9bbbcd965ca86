package vkapi

//
// Response envelope parsing
//

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrMissingResponse indicates that the envelope contains neither
// an error nor a response.
var ErrMissingResponse = errors.New("vkapi: envelope without response")

// ErrMalformedAPIError indicates that the envelope error object
// does not contain an error code.
var ErrMalformedAPIError = errors.New("vkapi: envelope error without error_code")

// apiErrorPayload is the wire format of an envelope error.
type apiErrorPayload struct {
	ErrorCode     *uint64        `json:"error_code"`
	ErrorMsg      string         `json:"error_msg"`
	RequestParams []RequestParam `json:"request_params"`
}

// ParseEnvelope interprets data as a VK response envelope and returns
// either the raw response payload or an [Error]. The error member takes
// priority over the response member when both are present.
func ParseEnvelope(data []byte) (Value, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, NewDecodeError(err)
	}

	if rawErr, found := envelope["error"]; found && !isJSONNull(rawErr) {
		var payload apiErrorPayload
		if err := json.Unmarshal(rawErr, &payload); err != nil {
			return nil, NewDecodeError(err)
		}
		if payload.ErrorCode == nil {
			return nil, NewDecodeError(ErrMalformedAPIError)
		}
		return nil, &APIError{
			Code:          *payload.ErrorCode,
			Msg:           payload.ErrorMsg,
			RequestParams: payload.RequestParams,
		}
	}

	response, found := envelope["response"]
	if !found {
		return nil, NewDecodeError(ErrMissingResponse)
	}
	return Value(response), nil
}

func isJSONNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
