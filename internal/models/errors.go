package models

import "fmt"

// ValidationError means caller-supplied parameters are malformed. It is fatal
// to the call that raised it and must never be silently dropped.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// ParseError means one raw block could not be turned into a journey. It is
// fatal to that block only; batch processing drops the block and continues.
type ParseError struct {
	Stage  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse failed at %s: %s", e.Stage, e.Reason)
}

func NewParseError(stage, format string, args ...interface{}) *ParseError {
	return &ParseError{Stage: stage, Reason: fmt.Sprintf(format, args...)}
}

// AirportNotFoundError means a code resolved to no coordinates, even via the
// compound-code fallback. Distances cannot be approximated without them.
type AirportNotFoundError struct {
	Code string
}

func (e *AirportNotFoundError) Error() string {
	return fmt.Sprintf("airport %q not found in coordinate table", e.Code)
}
