package handler

import (
	stdErrors "errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/interviewdeck/interview-analyzer/errors"
)

// errorText flattens an error into the short descriptive text surfaced to
// callers: the application message plus the upstream message, without the
// internal code tag.
func errorText(err error) string {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		if appErr.Raw != nil {
			return appErr.Message + ": " + appErr.Raw.Error()
		}
		return appErr.Message
	}
	return err.Error()
}

// errorStatus picks the HTTP status for a request-level failure
func errorStatus(err error) int {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) && appErr.HTTPCode != 0 {
		return appErr.HTTPCode
	}
	return 500
}

// logError records a request-level failure with its route context
func logError(logger *zap.Logger, c echo.Context, err error) {
	if logger == nil {
		return
	}
	logger.Error("http.response.error",
		zap.String("path", c.Path()),
		zap.Error(err),
	)
}
