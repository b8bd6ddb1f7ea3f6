// Package errors provides standardized error handling for the pipeline
// resolution runtime. It includes error classification, standard error
// variables, typed domain errors carrying the precise offending
// identifiers, and helper functions for consistent error wrapping.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorClass represents the classification of errors for handling purposes
type ErrorClass int

const (
	// ErrorInvalid represents errors due to invalid input or configuration
	ErrorInvalid ErrorClass = iota
	// ErrorFatal represents unrecoverable errors that should stop processing
	ErrorFatal
	// ErrorContract represents component contract violations (programming defects)
	ErrorContract
)

// String returns the string representation of ErrorClass
func (ec ErrorClass) String() string {
	switch ec {
	case ErrorInvalid:
		return "invalid"
	case ErrorFatal:
		return "fatal"
	case ErrorContract:
		return "contract"
	default:
		return "unknown"
	}
}

// Standard error variables for common conditions
var (
	// Registry and builder errors
	ErrUnknownComponent  = errors.New("unknown component name")
	ErrDuplicateName     = errors.New("component name already registered")
	ErrMissingArgument   = errors.New("missing required arguments")
	ErrMissingDependency = errors.New("missing required packages")
	ErrContractViolation = errors.New("component contract violation")
	ErrManifestRead      = errors.New("requirements manifest unreadable")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrMissingConfig = errors.New("missing required configuration")

	// Template errors
	ErrInvalidTemplate = errors.New("invalid pipeline template")
)

// ClassifiedError wraps an error with its classification
type ClassifiedError struct {
	Class     ErrorClass
	Err       error
	Message   string
	Component string
	Operation string
}

// Error implements the error interface
func (ce *ClassifiedError) Error() string {
	if ce.Message != "" {
		return ce.Message
	}
	return ce.Err.Error()
}

// Unwrap returns the underlying error
func (ce *ClassifiedError) Unwrap() error {
	return ce.Err
}

// IsInvalid checks if an error is due to invalid input or configuration
func IsInvalid(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorInvalid
	}

	return errors.Is(err, ErrUnknownComponent) ||
		errors.Is(err, ErrMissingArgument) ||
		errors.Is(err, ErrMissingDependency) ||
		errors.Is(err, ErrInvalidConfig) ||
		errors.Is(err, ErrInvalidTemplate)
}

// IsFatal checks if an error is fatal and should stop processing
func IsFatal(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorFatal
	}

	return errors.Is(err, ErrDuplicateName) ||
		errors.Is(err, ErrMissingConfig)
}

// IsContractViolation checks if an error is a component contract violation
func IsContractViolation(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorContract
	}

	return errors.Is(err, ErrContractViolation)
}

// newClassified creates a new classified error
// This is an internal helper - use WrapInvalid(), WrapFatal(), or WrapContract() instead.
func newClassified(class ErrorClass, err error, component, operation, message string) *ClassifiedError {
	return &ClassifiedError{
		Class:     class,
		Err:       err,
		Message:   message,
		Component: component,
		Operation: operation,
	}
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// WrapInvalid wraps an error as invalid with context
func WrapInvalid(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorInvalid, wrappedErr, component, method, wrappedErr.Error())
}

// WrapFatal wraps an error as fatal with context
func WrapFatal(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorFatal, wrappedErr, component, method, wrappedErr.Error())
}

// WrapContract wraps an error as a contract violation with context
func WrapContract(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorContract, wrappedErr, component, method, wrappedErr.Error())
}

// UnknownComponentError reports a component name that does not resolve in the
// registry. Suggestions holds the closest registered names, if any.
type UnknownComponentError struct {
	Name        string
	Suggestions []string
}

// Error implements the error interface
func (e *UnknownComponentError) Error() string {
	msg := fmt.Sprintf("Unknown component name '%s'", e.Name)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean: %s)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

// Unwrap returns the underlying sentinel error
func (e *UnknownComponentError) Unwrap() error {
	return ErrUnknownComponent
}

// MissingArgumentError reports lifecycle method parameters that could not be
// satisfied from either the pipeline context or the configuration. Names
// contains exactly the unsatisfiable parameter names, in declaration order.
type MissingArgumentError struct {
	Names []string
}

// Error implements the error interface
func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("Missing arguments: %s", strings.Join(e.Names, ", "))
}

// Unwrap returns the underlying sentinel error
func (e *MissingArgumentError) Unwrap() error {
	return ErrMissingArgument
}

// MissingDependencyError reports external packages required by a component
// that are unavailable in the current environment. Installable maps a missing
// package to the installable package names parsed from the requirements
// manifest, when known.
type MissingDependencyError struct {
	Component   string
	Packages    []string
	Installable map[string][]string
}

// Error implements the error interface
func (e *MissingDependencyError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "component '%s' requires unavailable packages: %s",
		e.Component, strings.Join(e.Packages, ", "))
	for _, pkg := range e.Packages {
		if installs, ok := e.Installable[pkg]; ok && len(installs) > 0 {
			fmt.Fprintf(&sb, "; install %s via: %s", pkg, strings.Join(installs, ", "))
		}
	}
	return sb.String()
}

// Unwrap returns the underlying sentinel error
func (e *MissingDependencyError) Unwrap() error {
	return ErrMissingDependency
}

// ContractViolationError reports a component that failed to provide a context
// key it declared for a lifecycle stage. This is a defect in the component,
// not a configuration problem.
type ContractViolationError struct {
	Component string
	Stage     string
	Missing   []string
}

// Error implements the error interface
func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("component '%s' did not provide declared context keys for stage '%s': %s",
		e.Component, e.Stage, strings.Join(e.Missing, ", "))
}

// Unwrap returns the underlying sentinel error
func (e *ContractViolationError) Unwrap() error {
	return ErrContractViolation
}

// ManifestReadError reports a requirements manifest that could not be read or
// parsed.
type ManifestReadError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *ManifestReadError) Error() string {
	return fmt.Sprintf("failed to read requirements manifest '%s': %v", e.Path, e.Err)
}

// Unwrap returns the sentinel and the underlying cause, so callers can
// match both the manifest-read class and the concrete I/O failure.
func (e *ManifestReadError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrManifestRead}
	}
	return []error{ErrManifestRead, e.Err}
}
