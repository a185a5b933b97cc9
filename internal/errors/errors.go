// Package errors provides the structured error type used by the
// draftml CLI and its supporting packages: a stable code, a category,
// and an optional suggestion for the user, formatted for terminals.
package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryConfig  Category = "config"
	CategoryBuild   Category = "build"
	CategoryPublish Category = "publish"
	CategoryServe   Category = "serve"
)

// Error is a structured error with a stable code and fix suggestion.
type Error struct {
	// Code is a unique error identifier (e.g. "C001").
	Code string

	// Category is the error type (config, build, publish, serve).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// New creates a structured error.
func New(code string, category Category, message string) *Error {
	return &Error{Code: code, Category: category, Message: message}
}

// Newf creates a structured error with a formatted message.
func Newf(code string, category Category, format string, args ...any) *Error {
	return New(code, category, fmt.Sprintf(format, args...))
}

// Wrap creates a structured error around an underlying one.
func Wrap(err error, code string, category Category, message string) *Error {
	return &Error{Code: code, Category: category, Message: message, Wrapped: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// WithDetail adds a longer explanation to the error.
func (e *Error) WithDetail(d string) *Error {
	e.Detail = d
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *Error) WithSuggestion(s string) *Error {
	e.Suggestion = s
	return e
}
