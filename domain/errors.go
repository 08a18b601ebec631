package domain

import (
	"errors"
	"fmt"
)

// Error kinds reported to API clients alongside the human-readable message.
const (
	KindMalformedInput   = "malformed_input"
	KindValidationFailed = "validation_failed"
	KindMissingField     = "missing_field"
	KindNotFound         = "not_found"
	KindConflict         = "conflict"
	KindUnknownSortField = "unknown_sort_field"
	KindStoreUnavailable = "store_unavailable"
	KindInternal         = "internal"
)

// ErrMalformedInput marks a request body that could not be parsed at all.
var ErrMalformedInput = errors.New("request body is not valid JSON")

// ErrStoreUnavailable wraps infrastructure-level store faults so they are
// surfaced as retryable instead of leaking driver errors to clients.
var ErrStoreUnavailable = errors.New("store unavailable")

// ValidationError reports the first field that failed its format or enum
// rule, the format that was expected and the value that was received.
type ValidationError struct {
	Field    string
	Expect   string
	Received string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value for %s: expected %s, received %q", e.Field, e.Expect, e.Received)
}

type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.Key)
}

type ConflictError struct {
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %s already exists", e.Field, e.Value)
}

type UnknownSortFieldError struct {
	Entity string
	Field  string
}

func (e *UnknownSortFieldError) Error() string {
	return fmt.Sprintf("%s is not a sortable attribute of %s", e.Field, e.Entity)
}

// ErrorKind classifies any error produced by the validation, repository or
// delivery layers into one of the machine-readable kinds above.
func ErrorKind(err error) string {
	var (
		validationErr *ValidationError
		missingErr    *MissingFieldError
		notFoundErr   *NotFoundError
		conflictErr   *ConflictError
		sortErr       *UnknownSortFieldError
	)
	switch {
	case errors.As(err, &validationErr):
		return KindValidationFailed
	case errors.As(err, &missingErr):
		return KindMissingField
	case errors.As(err, &notFoundErr):
		return KindNotFound
	case errors.As(err, &conflictErr):
		return KindConflict
	case errors.As(err, &sortErr):
		return KindUnknownSortField
	case errors.Is(err, ErrMalformedInput):
		return KindMalformedInput
	case errors.Is(err, ErrStoreUnavailable):
		return KindStoreUnavailable
	default:
		return KindInternal
	}
}
