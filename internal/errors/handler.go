package errors

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const genericServerMessage = "An unexpected error occurred. Please try again later."

// HTTPErrorHandler returns an echo error handler that serializes every error
// into the uniform envelope. It is the only place responses for failures are
// built; handlers and middleware just return errors.
func HTTPErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		path := c.Request().URL.Path
		status := http.StatusInternalServerError
		message := genericServerMessage
		var fields map[string]string

		switch e := err.(type) {
		case *echo.HTTPError:
			status = e.Code
			if m, ok := e.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(status)
			}
			// The filter and handlers wrap domain errors in echo.HTTPError
			// via Internal; prefer their message when present.
			if fe, ok := e.Internal.(validator.ValidationErrors); ok {
				status = http.StatusBadRequest
				message = "Validation failed"
				fields = FieldErrors(fe)
			}
		case validator.ValidationErrors:
			status = http.StatusBadRequest
			message = "Validation failed"
			fields = FieldErrors(e)
		default:
			status = StatusFor(err)
			if status != http.StatusInternalServerError {
				message = err.Error()
			}
		}

		if status == http.StatusInternalServerError {
			log.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", path),
				zap.Error(err),
			)
		}

		resp := NewErrorResponse(status, message, path, fields)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, resp)
	}
}
