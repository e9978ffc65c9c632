// Package clierr holds the user-facing error kinds returned by commands and
// the mapping from those errors to process exit codes.
package clierr

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ExitOK is returned when the command succeeded
	ExitOK = 0
	// ExitFailure is returned for runtime failures
	ExitFailure = 1
	// ExitUsage is returned when the command line itself was wrong
	ExitUsage = 2
)

// UsageError reports a problem with how the command was invoked.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// NewUsageError formats a UsageError.
func NewUsageError(format string, args ...interface{}) *UsageError {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// RequiredChoiceError reports a value that must be one of an enumerated set.
// Choices is preformatted, one choice per line.
type RequiredChoiceError struct {
	Message string
	Choices string
}

func (e *RequiredChoiceError) Error() string {
	return fmt.Sprintf("%s\nChoose from:\n%s", e.Message, e.Choices)
}

// NewRequiredChoiceError builds a RequiredChoiceError whose choices are
// indented by one space and separated by newlines.
func NewRequiredChoiceError(message string, choices []string) *RequiredChoiceError {
	return &RequiredChoiceError{
		Message: message,
		Choices: FormatChoices(choices),
	}
}

// FormatChoices renders choices the way RequiredChoiceError lists them.
func FormatChoices(choices []string) string {
	if len(choices) == 0 {
		return ""
	}
	return " " + strings.Join(choices, "\n ")
}

// IsUsage reports whether err, or an error it wraps, is a usage error.
func IsUsage(err error) bool {
	var usage *UsageError
	var choice *RequiredChoiceError
	return errors.As(err, &usage) || errors.As(err, &choice)
}

// ExitCode maps err to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case IsUsage(err):
		return ExitUsage
	default:
		return ExitFailure
	}
}
