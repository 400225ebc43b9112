package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode identifies a class of application error
type ErrorCode string

const (
	ErrorCode_INTERNAL                ErrorCode = "INTERNAL"
	ErrorCode_INVALID_PAYLOAD         ErrorCode = "INVALID_PAYLOAD"
	ErrorCode_TRANSCRIPT_FETCH_FAILED ErrorCode = "TRANSCRIPT_FETCH_FAILED"
	ErrorCode_CALL_START_FAILED       ErrorCode = "CALL_START_FAILED"
	ErrorCode_CALL_END_FAILED         ErrorCode = "CALL_END_FAILED"
	ErrorCode_CALL_LIST_FAILED        ErrorCode = "CALL_LIST_FAILED"
	ErrorCode_NO_COMPLETED_CALLS      ErrorCode = "NO_COMPLETED_CALLS"
	ErrorCode_EXTERNAL_API_FAILED     ErrorCode = "EXTERNAL_API_FAILED"
)

// String returns the code as a string
func (c ErrorCode) String() string {
	return string(c)
}

// AppError is the custom error type for the application
type AppError struct {
	Raw      error
	HTTPCode int
	Code     ErrorCode
	Message  string
	Details  map[string]string
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidPayload() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid payload",
	}
}

// ErrTranscriptFetchFailed wraps any failure to retrieve a transcript from the
// call platform. Lookup and network failures are not distinguished; callers
// only get the call id and the upstream message.
func ErrTranscriptFetchFailed(callID string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_TRANSCRIPT_FETCH_FAILED,
		Message:  fmt.Sprintf("Failed to fetch transcript from Vapi for call %s", callID),
	}.WithDetail("call_id", callID)
}

func ErrCallStartFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_CALL_START_FAILED,
		Message:  "Failed to start call",
	}
}

func ErrCallEndFailed(callID string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_CALL_END_FAILED,
		Message:  "Failed to end call",
	}.WithDetail("call_id", callID)
}

func ErrCallListFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_CALL_LIST_FAILED,
		Message:  "Failed to list calls",
	}
}

func ErrNoCompletedCalls() AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NO_COMPLETED_CALLS,
		Message:  "No completed calls found",
	}
}

func ErrExternalAPIFailed(service string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_EXTERNAL_API_FAILED,
		Message:  fmt.Sprintf("External API call failed: %s", service),
	}
}
