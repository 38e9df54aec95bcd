// Package apperr holds the error kinds shared by both services and the single
// mapping from a kind to an HTTP status and error body.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindInvalidReference
	KindRemoteValidation
	KindMethodNotAllowed
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindInvalidReference:
		return "invalid_reference"
	case KindRemoteValidation:
		return "remote_validation"
	case KindMethodNotAllowed:
		return "method_not_allowed"
	default:
		return "internal"
	}
}

// Messages returned to clients when the real cause must not leak.
const (
	MsgInvalidInput = "Invalid input data provided"
	MsgInvalidParam = "Invalid parameter type"
	MsgUnexpected   = "An unexpected error occurred"
)

// Messages for requests that match no route.
const (
	MsgNoRoute          = "Resource not found"
	MsgMethodNotAllowed = "Method not allowed"
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) error {
	return &Error{Kind: KindValidation, Msg: msg}
}

func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func InvalidReference(format string, args ...any) error {
	return &Error{Kind: KindInvalidReference, Msg: fmt.Sprintf(format, args...)}
}

// RemoteValidation reports that a remote check could not be completed.
// It is distinct from InvalidReference, which means the remote side
// answered that the referenced entity does not exist.
func RemoteValidation(msg string, cause error) error {
	return &Error{Kind: KindRemoteValidation, Msg: msg, Err: cause}
}

// KindOf returns the kind of the outermost *Error in err's chain,
// or KindInternal when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func StatusOf(k Kind) int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case KindValidation, KindInvalidReference, KindRemoteValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Body is the uniform error payload of every 4xx/5xx response.
type Body struct {
	Error     string `json:"error"`
	Status    int    `json:"status"`
	Timestamp string `json:"timestamp"`
}

func NewBody(msg string, status int, now time.Time) Body {
	return Body{Error: msg, Status: status, Timestamp: now.UTC().Format(time.RFC3339)}
}

// Translate maps err to its status and body. Internal errors get a generic
// message; callers are expected to log the cause.
func Translate(err error, now time.Time) (int, Body) {
	var e *Error
	if !errors.As(err, &e) || e.Kind == KindInternal {
		return http.StatusInternalServerError, NewBody(MsgUnexpected, http.StatusInternalServerError, now)
	}
	status := StatusOf(e.Kind)
	return status, NewBody(e.Msg, status, now)
}
