package http

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is an error that knows its HTTP status.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// WithError attaches the cause. It is logged, never sent to the client.
func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

func NotFoundError(message string) *AppError {
	return &AppError{Code: "ERR_NOT_FOUND", Message: message, Status: http.StatusNotFound}
}

func BadRequestError(message string) *AppError {
	return &AppError{Code: "ERR_BAD_REQUEST", Message: message, Status: http.StatusBadRequest}
}

func TooManyRequestsError(message string) *AppError {
	return &AppError{Code: "ERR_RATE_LIMITED", Message: message, Status: http.StatusTooManyRequests}
}

func InternalError(message string) *AppError {
	return &AppError{Code: "ERR_INTERNAL", Message: message, Status: http.StatusInternalServerError}
}

// ErrorRule maps a sentinel error onto an AppError constructor.
type ErrorRule struct {
	Target error
	New    func(message string) *AppError
	// Message is sent instead of the error text when set.
	Message string
}

// MapError returns the AppError of the first rule whose Target matches err,
// or nil when no rule matches.
func MapError(err error, rules ...ErrorRule) *AppError {
	for _, r := range rules {
		if !errors.Is(err, r.Target) {
			continue
		}
		msg := r.Message
		if msg == "" {
			msg = err.Error()
		}
		return r.New(msg).WithError(err)
	}
	return nil
}
