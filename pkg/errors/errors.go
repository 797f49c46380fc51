package errors

import (
	"fmt"
)

// SchemaError reports a malformed variant schema. It is an authoring bug and
// is raised while the schema is constructed.
type SchemaError struct {
	Axis    string
	Option  string
	Message string
}

// NewSchemaError constructs a SchemaError.
func NewSchemaError(axis, option, message string) error {
	return &SchemaError{Axis: axis, Option: option, Message: message}
}

func (e *SchemaError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Axis != "" && e.Option != "":
		return fmt.Sprintf("schema error: axis %q option %q: %s", e.Axis, e.Option, e.Message)
	case e.Axis != "":
		return fmt.Sprintf("schema error: axis %q: %s", e.Axis, e.Message)
	default:
		return fmt.Sprintf("schema error: %s", e.Message)
	}
}

// ConfigError reports a default selection that references an axis or option
// missing from the schema.
type ConfigError struct {
	Axis   string
	Option string
}

// NewConfigError constructs a ConfigError.
func NewConfigError(axis, option string) error {
	return &ConfigError{Axis: axis, Option: option}
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("config error: default %q for axis %q does not exist", e.Option, e.Axis)
}

// SelectionError reports a caller-supplied option that is not a member of
// the axis. Callers may recover by falling back to defaults.
type SelectionError struct {
	Axis   string
	Option string
}

// NewSelectionError constructs a SelectionError.
func NewSelectionError(axis, option string) error {
	return &SelectionError{Axis: axis, Option: option}
}

func (e *SelectionError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("selection error: option %q is not defined for axis %q", e.Option, e.Axis)
}

// ParseError represents a schema document parsing failure with optional line metadata.
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

// ValidationError captures schema document validation issues.
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
