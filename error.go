package urlsum

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINVALID  = "invalid"
	ENOTFOUND = "not_found"
	EINTERNAL = "internal"

	// EFETCH means the page could not be retrieved.
	EFETCH = "fetch"

	// ENOCONTENT means the page was retrieved but had no paragraph text.
	ENOCONTENT = "no_content"

	// ESUMMARIZE means a single chunk could not be summarized.
	// It is reported but does not stop the run.
	ESUMMARIZE = "summarize"

	// EEMPTYSUMMARY means every chunk failed and nothing was summarized.
	EEMPTYSUMMARY = "empty_summary"

	// ENOTIFY means the rating notification could not be delivered.
	ENOTIFY = "notify"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("urlsum error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
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
