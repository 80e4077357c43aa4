package project

import (
	"fmt"

	oerrors "github.com/opmodel/scaffold/internal/errors"
)

// Reason classifies a validation failure.
type Reason string

const (
	UnsupportedOption Reason = "unsupported option"
	InvalidEnumValue  Reason = "invalid enum value"
	InvalidValue      Reason = "invalid value"
	DuplicateOption   Reason = "duplicate option"
	InvalidName       Reason = "invalid name"
	UnknownKind       Reason = "unknown kind"
)

// ValidationError reports a request that cannot be scaffolded as given.
type ValidationError struct {
	Reason Reason

	// Kind is the project kind being validated, if known.
	Kind Kind

	// Field is the offending flag, or "name"/"kind".
	Field string

	// Value is the rejected value rendered as text.
	Value string

	// Detail explains what was wrong with Value.
	Detail string

	// Allowed lists the accepted values or flags, when the domain is finite.
	Allowed []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	switch e.Reason {
	case UnsupportedOption:
		return fmt.Sprintf("%s: %q is not an option for %s projects", e.Reason, e.Field, e.Kind)
	case InvalidEnumValue:
		return fmt.Sprintf("%s: %s=%q (allowed: %v)", e.Reason, e.Field, e.Value, e.Allowed)
	case InvalidName:
		return fmt.Sprintf("%s %q: %s", e.Reason, e.Value, e.Detail)
	case UnknownKind:
		return fmt.Sprintf("%s %q (allowed: %v)", e.Reason, e.Value, e.Allowed)
	default:
		if e.Detail != "" {
			return fmt.Sprintf("%s: %s=%q: %s", e.Reason, e.Field, e.Value, e.Detail)
		}
		return fmt.Sprintf("%s: %s=%q", e.Reason, e.Field, e.Value)
	}
}

// Unwrap returns the validation sentinel.
func (e *ValidationError) Unwrap() error {
	return oerrors.ErrValidation
}
