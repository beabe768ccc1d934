// Package errors provides a structured error type with wrapping and metadata
package errors

// Always import the project errors package as perr (platform/errors)

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies every failure the service can surface
// Values are stable for wire compatibility; add sparingly
type ErrorCode uint16

const (
	// ErrorCodeUnexpected is for unclassified store or internal failures
	ErrorCodeUnexpected ErrorCode = iota

	// ErrorCodePanic is for panics recovered by middleware
	ErrorCodePanic

	// ErrorCodeNotFound is for missing resources on a by-id fetch
	ErrorCodeNotFound

	// ErrorCodeConflict is for uniqueness-constraint violations
	ErrorCodeConflict

	// ErrorCodeInvalidRequest is for adapter-layer decode and validation failures
	ErrorCodeInvalidRequest
)

// HTTPStatusCode turns an ErrorCode into an http status code
func HTTPStatusCode(c ErrorCode) int {
	switch c {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeConflict, ErrorCodeInvalidRequest:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// TypeOf returns the stable wire discriminant for an ErrorCode
// clients branch on this string, never on detail text
func TypeOf(c ErrorCode) string {
	switch c {
	case ErrorCodeNotFound:
		return "NotFound"
	case ErrorCodeConflict:
		return "Conflict"
	case ErrorCodeInvalidRequest:
		return "UnprocessableEntity"
	default:
		return "Unexpected"
	}
}

// TitleOf returns the short human label for an ErrorCode
func TitleOf(c ErrorCode) string {
	switch c {
	case ErrorCodeNotFound:
		return "Resource not found"
	case ErrorCodeConflict:
		return "Unprocessable entity"
	case ErrorCodeInvalidRequest:
		return "Invalid request payload"
	default:
		return "Internal Server Error"
	}
}

// ErrNotFound is a sentinel not found error for convenience
var ErrNotFound = New(ErrorCodeNotFound, "not found")

// Error is the structured error type with wrapping and metadata
// msg is human/developer facing; code is machine facing
// resource and id are set on not-found errors; field is optional
// (the column behind a constraint); op is an optional operation tag
type Error struct {
	orig     error
	msg      string
	code     ErrorCode
	resource string
	id       int64
	field    string
	op       string
}

// Problem is the JSON error body returned by the API
// detail is diagnostic text only; type is the programmatic discriminant
type Problem struct {
	Status int    `json:"status"`
	Type   string `json:"type"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

// Unwrap returns the wrapped error, if any
func (e *Error) Unwrap() error { return e.orig }

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Resource returns the resource kind on a not-found error, if any
func (e *Error) Resource() string { return e.resource }

// ID returns the resource id on a not-found error
func (e *Error) ID() int64 { return e.id }

// Field returns the offending field, if any
func (e *Error) Field() string { return e.field }

// Op returns the operation label, if set
func (e *Error) Op() string { return e.op }

// ToProblem converts an *Error to its wire form.
// Unexpected and panic details are hidden so store internals never leak
func (e *Error) ToProblem() Problem {
	status := HTTPStatusCode(e.code)
	detail := e.msg
	switch e.code {
	case ErrorCodeUnexpected, ErrorCodePanic:
		detail = "Unexpected error"
	case ErrorCodeNotFound:
		if e.resource != "" {
			detail = fmt.Sprintf("Resource '%s' with id %d not found", e.resource, e.id)
		}
	case ErrorCodeConflict:
		detail = fmt.Sprintf("Conflict due to %s", e.msg)
	}
	return Problem{
		Status: status,
		Type:   TypeOf(e.code),
		Title:  TitleOf(e.code),
		Detail: detail,
	}
}

// ProblemFrom converts any error into a Problem with best-effort mapping
// Foreign errors are treated as unexpected and their text is not exposed
func ProblemFrom(err error) Problem {
	if e, ok := As(err); ok {
		return e.ToProblem()
	}
	return Problem{
		Status: http.StatusInternalServerError,
		Type:   TypeOf(ErrorCodeUnexpected),
		Title:  TitleOf(ErrorCodeUnexpected),
		Detail: "Unexpected error",
	}
}

// Root returns the deepest wrapped cause
func Root(err error) error {
	for err != nil {
		u := stderrs.Unwrap(err)
		if u == nil {
			return err
		}
		err = u
	}
	return nil
}

// CodeOf extracts an ErrorCode from any error, defaulting to Unexpected
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnexpected
}

// IsCode reports whether err has the given code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// HTTPStatus returns the mapped HTTP status for any error
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return HTTPStatusCode(CodeOf(err))
}

// As unwraps and returns (*Error, true) if err is one of ours
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Mutators (copy-on-write)

// WithField attaches a field to an *Error (copy-on-write). If err isn't *Error, returns err unchanged
func WithField(err error, field string) error {
	if e, ok := As(err); ok {
		c := *e
		c.field = field
		return &c
	}
	return err
}

// WithOp attaches an operation label to an *Error (copy-on-write). If err isn't *Error, returns err unchanged
func WithOp(err error, op string) error {
	if e, ok := As(err); ok {
		c := *e
		c.op = op
		return &c
	}
	return err
}

// Constructors

// New returns a new *Error with the given code and message
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf returns a new *Error with code and formatted message
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap returns a new *Error that wraps orig with code and message
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

// Wrapf returns a new *Error that wraps orig with code and formatted message
func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), orig: orig}
}

// WrapIf wraps only when err != nil (helper for 1-liners)
func WrapIf(err error, code ErrorCode, msg string) error {
	if err == nil {
		return nil
	}
	return Wrap(err, code, msg)
}

// Sugar

// NotFoundID returns a not found error carrying the resource kind and the id searched
func NotFoundID(resource string, id int64) error {
	return &Error{
		code:     ErrorCodeNotFound,
		msg:      fmt.Sprintf("%s %d not found", resource, id),
		resource: resource,
		id:       id,
	}
}

// Conflictf returns a conflict error; the message is the business reason
func Conflictf(format string, a ...any) error { return Newf(ErrorCodeConflict, format, a...) }

// InvalidRequestf returns an invalid request error
func InvalidRequestf(format string, a ...any) error {
	return Newf(ErrorCodeInvalidRequest, format, a...)
}

// Unexpectedf returns an unexpected error
func Unexpectedf(format string, a ...any) error { return Newf(ErrorCodeUnexpected, format, a...) }

// PanicErrf returns a panic error
func PanicErrf(format string, a ...any) error { return Newf(ErrorCodePanic, format, a...) }

// HTTP bundles status + problem in one shot (nice for handlers)
func HTTP(err error) (int, Problem) {
	p := ProblemFrom(err)
	return p.Status, p
}
