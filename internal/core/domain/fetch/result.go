package fetch

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind classifies why a provider call did not produce a value.
type ErrorKind string

const (
	NetworkFailure ErrorKind = "network_failure"
	ParseFailure   ErrorKind = "parse_failure"
	NotFound       ErrorKind = "not_found"
	InvalidInput   ErrorKind = "invalid_input"
)

// Error is the error value carried by a failed Result.
type Error struct {
	Kind    ErrorKind
	Message string
	// StatusCode is the last upstream HTTP status, 0 when none was received.
	StatusCode int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Errorf builds an *Error of the given kind.
func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf reports the kind of err when it wraps an *Error.
func KindOf(err error) (ErrorKind, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return "", false
}

// IsKind reports whether err wraps an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// RawJSON is an undecoded provider payload.
type RawJSON []byte

// Result is either a value with the time it was retrieved, or an error.
// Fields are unexported so a Result is never partially populated.
type Result[T any] struct {
	value       T
	retrievedAt time.Time
	err         *Error
}

// Ok wraps a successfully retrieved value.
func Ok[T any](value T, retrievedAt time.Time) Result[T] {
	return Result[T]{value: value, retrievedAt: retrievedAt}
}

// Fail wraps an error. A nil error is recorded as an unknown network failure.
func Fail[T any](err *Error) Result[T] {
	if err == nil {
		err = Errorf(NetworkFailure, "unknown failure")
	}
	return Result[T]{err: err}
}

// FailWith is shorthand for Fail(Errorf(kind, ...)).
func FailWith[T any](kind ErrorKind, format string, args ...any) Result[T] {
	return Fail[T](Errorf(kind, format, args...))
}

func (r Result[T]) IsOk() bool { return r.err == nil }

// Value returns the value and its retrieval time. Both are zero for a failed Result.
func (r Result[T]) Value() (T, time.Time) {
	return r.value, r.retrievedAt
}

// Err returns the failure, or nil for a successful Result.
func (r Result[T]) Err() *Error { return r.err }

// Map converts the value of a successful Result. Errors returned by fn that
// are not already an *Error are reported as ParseFailure.
func Map[T, U any](r Result[T], fn func(T) (U, error)) Result[U] {
	if r.err != nil {
		return Fail[U](r.err)
	}
	out, err := fn(r.value)
	if err != nil {
		var fe *Error
		if errors.As(err, &fe) {
			return Fail[U](fe)
		}
		return FailWith[U](ParseFailure, "%v", err)
	}
	return Ok(out, r.retrievedAt)
}
