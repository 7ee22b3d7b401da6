package errors

import (
	stderrors "errors"
	"fmt"
	"log/slog"
)

// Category represents the type of error.
type Category string

const (
	CategoryRuntime  Category = "runtime"
	CategoryProtocol Category = "protocol"
	CategoryConfig   Category = "config"
	CategoryRender   Category = "render"
)

// DashError is a structured error with a code, explanation and suggestion.
type DashError struct {
	// Code is a unique error identifier (e.g., "D001").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of this occurrence.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *DashError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *DashError) Unwrap() error {
	return e.Wrapped
}

// Is matches another DashError with the same code.
func (e *DashError) Is(target error) bool {
	t, ok := target.(*DashError)
	if !ok || t.Code == "" {
		return false
	}
	return t.Code == e.Code
}

// LogValue implements slog.LogValuer.
func (e *DashError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("code", e.Code),
		slog.String("message", e.Message),
	}
	if e.Detail != "" {
		attrs = append(attrs, slog.String("detail", e.Detail))
	}
	if e.Wrapped != nil {
		attrs = append(attrs, slog.String("cause", e.Wrapped.Error()))
	}
	return slog.GroupValue(attrs...)
}

// WithSuggestion adds a fix suggestion to the error.
func (e *DashError) WithSuggestion(s string) *DashError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *DashError) WithDetail(d string) *DashError {
	e.Detail = d
	return e
}

// WithDetailf adds a formatted explanation to the error.
func (e *DashError) WithDetailf(format string, args ...any) *DashError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// Wrap wraps another error.
func (e *DashError) Wrap(err error) *DashError {
	e.Wrapped = err
	return e
}

// New creates a DashError from a registered error code.
func New(code string) *DashError {
	template, ok := registry[code]
	if !ok {
		return &DashError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &DashError{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Suggestion: template.Suggestion,
	}
}

// Newf creates a new DashError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *DashError {
	return &DashError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a DashError. A DashError anywhere in
// err's chain is returned as is.
func FromError(err error, code string) *DashError {
	if err == nil {
		return nil
	}
	var de *DashError
	if stderrors.As(err, &de) {
		return de
	}
	return New(code).Wrap(err)
}

// CodeOf returns the code of the first DashError in err's chain, or "".
func CodeOf(err error) string {
	var de *DashError
	if stderrors.As(err, &de) {
		return de.Code
	}
	return ""
}
