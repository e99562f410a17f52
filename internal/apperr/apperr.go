// Package apperr defines the business error taxonomy shared by all services.
package apperr

import "errors"

// Kind classifies a business failure.
type Kind int

const (
	KindUnknown    Kind = iota
	KindValidation      // malformed or missing input
	KindNotFound        // entity absent or not owned by caller
	KindConflict        // uniqueness violation
	KindLimit           // quota exceeded
	KindPolicy          // business-rule violation
	KindAuth            // bad credentials or missing session
)

// Error carries a kind and a human-readable message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(k Kind, msg string) error {
	return &Error{Kind: k, Message: msg}
}

func Validation(msg string) error { return newError(KindValidation, msg) }
func NotFound(msg string) error   { return newError(KindNotFound, msg) }
func Conflict(msg string) error   { return newError(KindConflict, msg) }
func Limit(msg string) error      { return newError(KindLimit, msg) }
func Policy(msg string) error     { return newError(KindPolicy, msg) }
func Auth(msg string) error       { return newError(KindAuth, msg) }

// KindOf returns the kind of err, or KindUnknown for non-business errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Is reports whether err is a business error of the given kind.
func Is(err error, k Kind) bool {
	return KindOf(err) == k
}
