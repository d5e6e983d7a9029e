package api

import (
	"encoding/json"
	"errors"
	"net/url"
	"strconv"

	"github.com/go-resty/resty/v2"
)

// Kind classifies a failed API call.
type Kind int

const (
	// KindServer means the server answered with a non-2xx status.
	KindServer Kind = iota + 1
	// KindNetwork means the request was sent but no response arrived.
	KindNetwork
	// KindRequest means the request could not even be built or sent.
	KindRequest
)

// Codes reported for failures that carry no HTTP status.
const (
	CodeNetworkError = "NETWORK_ERROR"
	CodeUnknownError = "UNKNOWN_ERROR"
)

const (
	msgServerError  = "Server error occurred"
	msgNetworkError = "Network error - please check your connection"
	msgUnknownError = "An unexpected error occurred"
)

// Error is the single error type leaving the transport layer. Every failure
// is normalized into exactly one Kind before it reaches callers.
type Error struct {
	Kind    Kind
	Message string
	// Code is the HTTP status as a string for server errors, or one of the
	// Code* constants otherwise.
	Code string
	// Status is the HTTP status for server errors, zero otherwise.
	Status int
	// Details is the raw response body of a server error.
	Details json.RawMessage
}

func (e *Error) Error() string { return e.Message }

// AsError unwraps err into *Error if the transport produced it.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

// IsServerError reports whether err is a server-responded failure, optionally
// narrowed to one of the given statuses.
func IsServerError(err error, statuses ...int) bool {
	apiErr, ok := AsError(err)
	if !ok || apiErr.Kind != KindServer {
		return false
	}
	if len(statuses) == 0 {
		return true
	}
	for _, s := range statuses {
		if apiErr.Status == s {
			return true
		}
	}
	return false
}

// IsNetworkError reports whether err is a sent-but-no-response failure.
func IsNetworkError(err error) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.Kind == KindNetwork
}

// IsRequestError reports whether err is a local request-construction failure.
func IsRequestError(err error) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.Kind == KindRequest
}

func newServerError(status int, body []byte) *Error {
	msg := msgServerError
	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Message != "" {
		msg = payload.Message
	}
	return &Error{
		Kind:    KindServer,
		Message: msg,
		Code:    strconv.Itoa(status),
		Status:  status,
		Details: json.RawMessage(body),
	}
}

func newNetworkError() *Error {
	return &Error{Kind: KindNetwork, Message: msgNetworkError, Code: CodeNetworkError}
}

func newRequestError(err error) *Error {
	msg := msgUnknownError
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return &Error{Kind: KindRequest, Message: msg, Code: CodeUnknownError}
}

// normalize folds a resty (response, error) pair into nil or exactly one
// *Error. A *url.Error from the underlying transport means the request left
// the client and no response came back; anything else that failed before the
// round trip is a request error.
func normalize(resp *resty.Response, err error) error {
	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) {
			return apiErr
		}
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return newNetworkError()
		}
		return newRequestError(err)
	}
	if resp != nil && resp.IsError() {
		return newServerError(resp.StatusCode(), resp.Body())
	}
	return nil
}
