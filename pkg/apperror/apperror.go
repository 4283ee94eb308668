// Package apperror defines the closed set of failure kinds the API reports
// and how each one is rendered over HTTP.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure. The set is closed; callers switch on it.
type Kind int

const (
	KindUnclassified Kind = iota
	KindCollaborator
	KindDecode
	KindConfigMissing
	KindAuth
	KindTransport
	KindBadRequest
)

func (k Kind) String() string {
	switch k {
	case KindCollaborator:
		return "collaborator_failure"
	case KindDecode:
		return "decode_failure"
	case KindConfigMissing:
		return "config_missing"
	case KindAuth:
		return "auth_failure"
	case KindTransport:
		return "transport_failure"
	case KindBadRequest:
		return "bad_request"
	default:
		return "unclassified"
	}
}

// HTTPStatus is the response status for the kind. Only input problems are 4xx.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindDecode, KindBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified failure with a caller-facing detail string.
type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	return e.Detail
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New returns an Error with no underlying cause.
func New(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

// Wrap classifies err, prefixing its message with prefix in the detail.
func Wrap(kind Kind, prefix string, err error) *Error {
	return &Error{
		Kind:   kind,
		Detail: fmt.Sprintf("%s: %v", prefix, err),
		Err:    err,
	}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnclassified
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
