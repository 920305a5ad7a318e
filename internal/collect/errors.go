package collect

import (
	"errors"
	"fmt"
)

// ErrorKind represents the category of error raised by a collection operation
type ErrorKind string

const (
	// KindNoBuilder indicates a collector was invoked before a builder was installed
	KindNoBuilder ErrorKind = "no_builder_installed"
	// KindBackendUnavailable indicates the backend session could not be created or reached
	KindBackendUnavailable ErrorKind = "backend_unavailable"
	// KindAttributeUnavailable indicates the requested operation is not supported for a subject
	KindAttributeUnavailable ErrorKind = "attribute_unavailable"
	// KindUnknownSubject indicates the backend could not resolve a requested subject
	KindUnknownSubject ErrorKind = "unknown_subject"
)

// Error represents a structured error from a collection operation
type Error struct {
	Kind    ErrorKind
	Op      string
	Subject string
	Message string
	Cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	switch {
	case e.Op != "" && e.Subject != "":
		return fmt.Sprintf("%s: %s %q for subject %q", e.Kind, e.Message, e.Op, e.Subject)
	case e.Subject != "":
		return fmt.Sprintf("%s: %s for subject %q", e.Kind, e.Message, e.Subject)
	case e.Op != "":
		return fmt.Sprintf("%s: %s %q", e.Kind, e.Message, e.Op)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewNoBuilderError reports a forwarding call on an unconfigured collector
func NewNoBuilderError(op string) *Error {
	return &Error{
		Kind:    KindNoBuilder,
		Op:      op,
		Message: "no builder installed for operation",
	}
}

// NewBackendUnavailableError reports a backend session that cannot be created or reached
func NewBackendUnavailableError(subject string, cause error) *Error {
	return &Error{
		Kind:    KindBackendUnavailable,
		Subject: subject,
		Message: "backend unreachable",
		Cause:   cause,
	}
}

// NewAttributeUnavailableError reports an operation the backend does not support
func NewAttributeUnavailableError(op, subject string) *Error {
	return &Error{
		Kind:    KindAttributeUnavailable,
		Op:      op,
		Subject: subject,
		Message: "unsupported operation",
	}
}

// NewUnknownSubjectError reports a subject the backend cannot resolve
func NewUnknownSubjectError(subject string) *Error {
	return &Error{
		Kind:    KindUnknownSubject,
		Subject: subject,
		Message: "subject not resolvable",
	}
}

// KindOf returns the ErrorKind carried by err, or the empty string when err is
// not a collection Error.
func KindOf(err error) ErrorKind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}
