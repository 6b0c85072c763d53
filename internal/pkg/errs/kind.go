package errs

import (
	"errors"
	"fmt"

	cr "github.com/cockroachdb/errors"
)

// Kind classifies a failure so callers can branch on it without matching
// concrete error types.
type Kind string

const (
	// KindInvalidArgument is a caller contract violation detected before any I/O.
	KindInvalidArgument Kind = "INVALID_ARGUMENT"
	// KindInvalidEntity is a domain rule violation: bad fields, broken references
	// or an availability conflict.
	KindInvalidEntity Kind = "INVALID_ENTITY"
	// KindNotFound means the targeted id does not exist.
	KindNotFound Kind = "NOT_FOUND"
	// KindServiceFailure wraps a failure of the underlying store.
	KindServiceFailure Kind = "SERVICE_FAILURE"
	// KindInternal is an invariant breach that indicates corrupted data.
	KindInternal Kind = "INTERNAL"
	// KindConfiguration means a component was built without a required collaborator.
	KindConfiguration Kind = "CONFIGURATION"
)

type Error struct {
	Kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e *Error) Unwrap() error {
	return e.err
}

// Message returns the human readable reason without the kind prefix or cause.
func (e *Error) Message() string {
	return e.msg
}

func newKind(kind Kind, cause error, format string, args ...any) error {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	if cause != nil {
		cause = cr.WithStack(cause)
	}
	return &Error{Kind: kind, msg: msg, err: cause}
}

func InvalidArgument(format string, args ...any) error {
	return newKind(KindInvalidArgument, nil, format, args...)
}

func InvalidEntity(format string, args ...any) error {
	return newKind(KindInvalidEntity, nil, format, args...)
}

func InvalidEntityWrap(cause error, format string, args ...any) error {
	return newKind(KindInvalidEntity, cause, format, args...)
}

func NotFound(format string, args ...any) error {
	return newKind(KindNotFound, nil, format, args...)
}

func ServiceFailure(cause error, format string, args ...any) error {
	return newKind(KindServiceFailure, cause, format, args...)
}

func Internal(cause error, format string, args ...any) error {
	return newKind(KindInternal, cause, format, args...)
}

func Configuration(format string, args ...any) error {
	return newKind(KindConfiguration, nil, format, args...)
}

// KindOf returns the kind of the outermost *Error in the chain, or "" when the
// chain carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
