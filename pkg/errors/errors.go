package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrUnknownToken is wrapped by every TokenError so callers can test for the
// whole category with errors.Is.
var ErrUnknownToken = stdErrors.New("unknown token")

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures layout document validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// TokenError reports a value outside a closed token enumeration. Token tables
// are exhaustive, so this is never defaulted away.
type TokenError struct {
	Category string
	Value    string
}

// NewTokenError constructs a TokenError for the given token category.
func NewTokenError(category, value string) error {
	return &TokenError{Category: category, Value: value}
}

func (e *TokenError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unknown %s token %q", e.Category, e.Value)
}

// Unwrap exposes ErrUnknownToken.
func (e *TokenError) Unwrap() error {
	if e == nil {
		return nil
	}
	return ErrUnknownToken
}

// ResolveError attaches the offending property name to a resolution failure.
type ResolveError struct {
	Property string
	Err      error
}

// NewResolveError constructs a ResolveError for a property.
func NewResolveError(property string, err error) error {
	return &ResolveError{Property: property, Err: err}
}

func (e *ResolveError) Error() string {
	if e == nil {
		return ""
	}
	if e.Property != "" {
		return fmt.Sprintf("resolve error: %s: %v", e.Property, e.Err)
	}
	return fmt.Sprintf("resolve error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *ResolveError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
