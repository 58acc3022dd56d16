package core

import (
	"errors"
	"fmt"
)

var (
	ErrValidation    = errors.New("validation error")
	ErrConfiguration = errors.New("configuration error")
)

// ValidationError reports input that can not be simulated: bad process
// counts, negative bursts or a missing quantum.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrValidation, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ConfigurationError reports an algorithm name nothing knows how to run.
type ConfigurationError struct {
	Value string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: unknown scheduling algorithm %q", ErrConfiguration, e.Value)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

// Invalid builds a ValidationError with a formatted reason.
func Invalid(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
