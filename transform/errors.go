package transform

import (
	"errors"
	"strings"
)

// ErrNilTarget is returned when a strategy receives a nil target.
var ErrNilTarget = errors.New("transform target cannot be nil")

// FieldError describes a single failed constraint.
type FieldError struct {
	// Field is the plain-object field name.
	Field string

	// Constraint is the rule that failed (validator tag syntax).
	Constraint string

	// Value is the offending value.
	Value any
}

// ValidationError aggregates every failing field of a transformation. The
// message enumerates all of them; transformation is all-or-nothing, so a
// ValidationError means the target was left untouched.
type ValidationError struct {
	Fields []FieldError
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed")
	for i, fe := range e.Fields {
		if i == 0 {
			sb.WriteString(": ")
		} else {
			sb.WriteString("; ")
		}
		sb.WriteString(fe.Field)
		sb.WriteString(": ")
		sb.WriteString(fe.Constraint)
	}
	return sb.String()
}

// Has reports whether a field is among the failures.
func (e *ValidationError) Has(field string) bool {
	for _, fe := range e.Fields {
		if fe.Field == field {
			return true
		}
	}
	return false
}
