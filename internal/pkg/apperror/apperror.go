// Package apperror defines the error kinds the HTTP layer knows how to map.
package apperror

import "errors"

// Kind classifies an error for the HTTP boundary.
type Kind int

const (
	// KindInternal is any failure that was not explicitly classified.
	KindInternal Kind = iota
	// KindNotFound means the referenced resource does not exist.
	KindNotFound
	// KindBadRequest means the request body could not be decoded.
	KindBadRequest
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindBadRequest:
		return "bad_request"
	default:
		return "internal"
	}
}

// Error is a classified error. Sentinel values are compared by identity,
// so errors.Is works on package-level variables built with NotFound.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound returns a KindNotFound error with the given message.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// BadRequest wraps err as a KindBadRequest error.
func BadRequest(message string, err error) *Error {
	return &Error{Kind: KindBadRequest, Message: message, Err: err}
}

// KindOf reports the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
