package noveltrans

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// The codes form a closed set so that retryability can be decided by an
// exhaustive switch instead of inspecting error text. Collaborators at
// the transport boundary (HTTP fetcher, generation client) are required
// to translate their native failures into these codes.
const (
	EINVALID      = "invalid"      // malformed input or request
	ENOTFOUND     = "not_found"    // requested entity does not exist
	EUNAUTHORIZED = "unauthorized" // invalid or missing credentials
	EBLOCKED      = "blocked"      // content refused by safety policy or unsupported location
	ETRUNCATED    = "truncated"    // output cut short by length limits
	EINSUFFICIENT = "insufficient" // extraction produced too little content
	EEXHAUSTED    = "exhausted"    // retry budget spent; retrying again is pointless
	ERATELIMITED  = "rate_limited" // upstream rate limit (429)
	EUNAVAILABLE  = "unavailable"  // upstream overload, timeout or transport failure
	EINTERNAL     = "internal"     // unexpected internal error
)

// Error represents an application error with a machine-readable code,
// a human-readable message, and an optional wrapped cause.
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("noveltrans error: code=%s message=%s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("noveltrans error: code=%s message=%s", e.Code, e.Message)
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapErrorf is like Errorf but records err as the wrapped cause.
func WrapErrorf(err error, code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
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
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error"
}

// IsRetryable reports whether an operation that failed with err may
// succeed if attempted again. The decision is an exhaustive switch over
// the closed code set; unclassified errors map to EINTERNAL and are
// treated as retryable to favor availability.
func IsRetryable(err error) bool {
	switch ErrorCode(err) {
	case ERATELIMITED, EUNAVAILABLE, EINTERNAL:
		return true
	case EINVALID, ENOTFOUND, EUNAUTHORIZED, EBLOCKED, ETRUNCATED, EINSUFFICIENT, EEXHAUSTED:
		return false
	default:
		return false
	}
}
