package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so callers and the HTTP layer can react
// uniformly: retry, surface, or ask the user to fix their input.
type Kind string

const (
	// KindValidation - malformed input, not retryable.
	KindValidation Kind = "validation"
	// KindNotFound - referenced record does not exist.
	KindNotFound Kind = "not_found"
	// KindUnavailable - dependency unreachable or timed out, retryable with backoff.
	KindUnavailable Kind = "unavailable"
	// KindTransformation - language-model output failed validation after retry.
	KindTransformation Kind = "transformation"
	// KindNoProgress - plan iteration produced no meaningful change.
	KindNoProgress Kind = "no_progress"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(format string, args ...interface{}) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Unavailable(message string, err error) error {
	return &Error{Kind: KindUnavailable, Message: message, Err: err}
}

func Transformation(message string, err error) error {
	return &Error{Kind: KindTransformation, Message: message, Err: err}
}

func NoProgress(message string) error {
	return &Error{Kind: KindNoProgress, Message: message}
}

// IsKind reports whether err (or anything it wraps) carries the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// KindOf returns the kind of err, or "" for untyped errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}
