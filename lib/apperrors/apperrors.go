package apperrors

import (
	"github.com/pkg/errors"
)

// Kind classifies errors crossing the handler boundary.
// Controllers map kinds to HTTP statuses; everything else is a 500.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindPreconditionFailed
	KindAuthenticationRequired
	KindConflict
	KindUpstream
)

type Error struct {
	kind    Kind
	message string
	cause   error
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) Kind() Kind {
	return e.kind
}

func New(kind Kind, message string) error {
	return &Error{kind: kind, message: message}
}

func Wrap(kind Kind, cause error, message string) error {
	return &Error{kind: kind, message: message, cause: cause}
}

func Validation(message string) error {
	return New(KindValidation, message)
}

func NotFound(message string) error {
	return New(KindNotFound, message)
}

func PreconditionFailed(message string) error {
	return New(KindPreconditionFailed, message)
}

func AuthenticationRequired(message string) error {
	return New(KindAuthenticationRequired, message)
}

func Conflict(message string) error {
	return New(KindConflict, message)
}

func Upstream(cause error, message string) error {
	return Wrap(KindUpstream, cause, message)
}

// KindOf walks the chain and returns the kind of the first typed error, or 0.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.kind
	}
	return 0
}

func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
