package jobscan

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// The fetch codes (EUNREACHABLE, ETIMEOUT, EBLOCKED, ENOTHTML) classify why
// a page could not be retrieved. ENOCONTENT means every extraction stage,
// including the guaranteed fallback, produced text below the usable minimum.
const (
	EINVALID     = "invalid"
	EINTERNAL    = "internal"
	ENOTFOUND    = "not_found"
	EUNREACHABLE = "unreachable"
	ETIMEOUT     = "timeout"
	EBLOCKED     = "blocked"
	ENOTHTML     = "non_html"
	ENOCONTENT   = "no_content"
)

// Error represents an application-specific error. Application errors carry
// a machine-readable code and a human-readable message.
type Error struct {
	// Code is one of the application error codes above.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("jobscan error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
