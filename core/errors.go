// Package core provides error codes and user-facing error wrapping for the
// bdf module. All errors surfacing from the public API carry one of the
// codes below, plus a message suitable for display to end users.
package core

import (
	"errors"
	"fmt"
	"os"
)

// General error codes
const (
	NOERROR   int = 0
	EMISSING  int = 122 // entry or resource does not exist
	EINVALID  int = 123 // input failed validation
	EINTERNAL int = 125 // internal inconsistency
)

func errorText(ecode int) string {
	switch ecode {
	case NOERROR:
		return "OK"
	case EMISSING:
		return "not found"
	case EINVALID:
		return "invalid"
	case EINTERNAL:
		return "internal error"
	}
	return "undefined error"
}

// AppError is an error with an associated error code and a user-message.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

type appError struct {
	error
	code int
	msg  string
}

var _ AppError = appError{}

func (e appError) Unwrap() error { return e.error }

func (e appError) Error() string {
	return fmt.Sprintf("[%d] %v", e.code, e.error)
}

func (e appError) ErrorCode() int { return e.code }

func (e appError) UserMessage() string { return e.msg }

// Error creates an error with an error code and a user-message.
func Error(code int, format string, v ...interface{}) error {
	return appError{
		errors.New(errorText(code)),
		code,
		fmt.Sprintf(format, v...),
	}
}

// WrapError wraps err in an AppError, attaching an error code and a user
// message. err stays reachable for errors.Is / errors.As.
// A nil err is replaced by the code's generic error text.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	return appError{err, code, fmt.Sprintf(format, v...)}
}

// Code returns the error code associated with an error, EINTERNAL if the
// error chain carries none, NOERROR for a nil error.
func Code(err error) int {
	if err == nil {
		return NOERROR
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user message associated with an error, falling
// back to the generic text for the error's code.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.UserMessage()
	}
	return errorText(Code(err))
}

// UserError prints a user-friendly account of err to stderr.
func UserError(err error) {
	if e := AppError(nil); errors.As(err, &e) {
		fmt.Fprintf(os.Stderr, "[%d] %s\n", e.ErrorCode(), e.UserMessage())
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
}
