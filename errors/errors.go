package errors

import (
	stderrs "errors"
	"fmt"
	"strings"
)

// Sentinels for errors.Is matching against the concrete error types below.
var (
	ErrConfiguration   = stderrs.New("configuration error")
	ErrArgument        = stderrs.New("argument error")
	ErrUndefinedMethod = stderrs.New("undefined method")
)

// ConfigurationError represents an invalid field declaration or factory option.
type ConfigurationError struct{ Msg string }

func (e ConfigurationError) Error() string { return "configuration error: " + e.Msg }

func (e ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// ArgumentError indicates the arguments given to a constructor or dispatcher
// do not fit the declared fields.
type ArgumentError struct {
	Msg        string
	Missing    []string
	Unexpected []string
}

func (e ArgumentError) Error() string {
	var b strings.Builder
	b.WriteString("argument error: ")
	b.WriteString(e.Msg)
	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, " (missing: %s)", strings.Join(e.Missing, ", "))
	}
	if len(e.Unexpected) > 0 {
		fmt.Fprintf(&b, " (unexpected: %s)", strings.Join(e.Unexpected, ", "))
	}
	return b.String()
}

func (e ArgumentError) Is(target error) bool { return target == ErrArgument }

// UndefinedMethodError indicates a class cannot respond to the named method.
type UndefinedMethodError struct{ Class, Method string }

func (e UndefinedMethodError) Error() string {
	return fmt.Sprintf("undefined method %q for %s", e.Method, e.Class)
}

func (e UndefinedMethodError) Is(target error) bool { return target == ErrUndefinedMethod }

// Helper constructors
func NewConfiguration(format string, args ...any) error {
	return ConfigurationError{Msg: fmt.Sprintf(format, args...)}
}
func NewArity(want, got int) error {
	return ArgumentError{Msg: fmt.Sprintf("wrong number of arguments (given %d, expected %d)", got, want)}
}
func NewKeyMismatch(missing, unexpected []string) error {
	return ArgumentError{Msg: "mapping keys do not match declared fields", Missing: missing, Unexpected: unexpected}
}
func NewUndefinedMethod(class, method string) error {
	return UndefinedMethodError{Class: class, Method: method}
}
