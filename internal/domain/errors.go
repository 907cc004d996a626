package domain

import (
	"errors"
	"strings"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrUnauthenticated = errors.New("authentication credentials were not provided")
	ErrForbidden       = errors.New("you do not have permission to perform this action")
)

type ErrorKind string

const (
	KindInvalidRoute    ErrorKind = "InvalidRoute"
	KindDuplicateCrew   ErrorKind = "DuplicateCrew"
	KindInvalidSchedule ErrorKind = "InvalidSchedule"
	KindSeatOutOfRange  ErrorKind = "SeatOutOfRange"
	KindSeatTaken       ErrorKind = "SeatTaken"
	KindRequired        ErrorKind = "Required"
	KindInvalid         ErrorKind = "Invalid"
)

// NonFieldErrors is the field name used for errors that span several fields.
const NonFieldErrors = "non_field_errors"

type ValidationError struct {
	Kind    ErrorKind
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func NewValidationError(kind ErrorKind, field, message string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Message: message}
}

func Required(field string) *ValidationError {
	return NewValidationError(KindRequired, field, "This field is required.")
}

// ValidationErrors collects field errors so a single response can report all of them.
type ValidationErrors []*ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

func (v *ValidationErrors) Add(err *ValidationError) {
	*v = append(*v, err)
}

// Err returns nil when nothing was collected.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// FieldPath joins a nested field name onto its parent prefix.
func FieldPath(prefix, field string) string {
	if prefix == "" {
		return field
	}
	return prefix + "." + field
}
