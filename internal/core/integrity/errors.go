package integrity

import (
	"errors"
	"fmt"
)

// Sentinels matched with errors.Is by callers of the repositories and services.
var (
	ErrValidation = errors.New("validation failed")
	ErrUniqueness = errors.New("uniqueness violation")
	ErrForeignKey = errors.New("foreign key violation")
	ErrNotFound   = errors.New("record not found")
)

// ValidationError reports a missing required field, a string longer than its
// column allows, or an invalid enum value.
type ValidationError struct {
	Entity string
	Field  string
	Rule   string
	Param  string
}

func (e *ValidationError) Error() string {
	switch e.Rule {
	case "required":
		return fmt.Sprintf("%s.%s is required", e.Entity, e.Field)
	case "max":
		return fmt.Sprintf("%s.%s is longer than %s characters", e.Entity, e.Field, e.Param)
	default:
		return fmt.Sprintf("%s.%s is invalid (%s)", e.Entity, e.Field, e.Rule)
	}
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// UniquenessViolation reports a value already taken by another row.
type UniquenessViolation struct {
	Entity string
	Field  string
	Value  any
}

func (e *UniquenessViolation) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: unique constraint violated", e.Entity)
	}
	if e.Value == nil {
		return fmt.Sprintf("%s.%s already exists", e.Entity, e.Field)
	}
	return fmt.Sprintf("%s.%s %v already exists", e.Entity, e.Field, e.Value)
}

func (e *UniquenessViolation) Unwrap() error { return ErrUniqueness }

// ForeignKeyViolation reports either a reference to a missing row, or (when
// Restrict is set) a delete blocked by a row that still references the target.
type ForeignKeyViolation struct {
	Entity     string
	Field      string
	References string
	ID         uint
	Restrict   bool
}

func (e *ForeignKeyViolation) Error() string {
	if e.Restrict {
		return fmt.Sprintf("%s %d is still referenced by %s.%s", e.References, e.ID, e.Entity, e.Field)
	}
	if e.Field == "" {
		return fmt.Sprintf("%s: foreign key constraint violated", e.Entity)
	}
	if e.ID == 0 {
		return fmt.Sprintf("%s.%s does not reference an existing %s", e.Entity, e.Field, e.References)
	}
	return fmt.Sprintf("%s.%s=%d does not reference an existing %s", e.Entity, e.Field, e.ID, e.References)
}

func (e *ForeignKeyViolation) Unwrap() error { return ErrForeignKey }
