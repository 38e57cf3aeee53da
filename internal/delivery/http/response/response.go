package response

import (
	"net/http"

	domainerrors "streetbite/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Response unified API response structure
type Response struct {
	Success bool                    `json:"success"`
	Code    int                     `json:"code"`    // HTTP status code
	Message string                  `json:"message"` // User-friendly message
	Data    any                     `json:"data,omitempty"`
	Error   *domainerrors.ErrorInfo `json:"error,omitempty"`
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// OK is a 200 Success with the default message.
func OK(c echo.Context, data any) error {
	return Success(c, http.StatusOK, data, "")
}

// AppError renders a classified error. Details are withheld for 5xx answers.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	info := domainerrors.NewErrorInfo(appErr)
	if appErr.HTTPCode() >= http.StatusInternalServerError {
		info.Details = ""
	}

	return c.JSON(appErr.HTTPCode(), Response{
		Success: false,
		Code:    appErr.HTTPCode(),
		Message: appErr.Message(),
		Error:   info,
	})
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &domainerrors.ErrorInfo{
			Code:      errorCode,
			Kind:      kindForStatus(statusCode),
			Retryable: kindForStatus(statusCode).Retryable(),
			Details:   details,
		},
	})
}

// BindingError is a 400 for bodies or parameters that cannot be decoded.
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message, "")
}

func kindForStatus(statusCode int) domainerrors.Kind {
	switch {
	case statusCode == http.StatusUnauthorized, statusCode == http.StatusForbidden:
		return domainerrors.KindUnauthorized
	case statusCode == http.StatusNotFound:
		return domainerrors.KindNotFound
	case statusCode < http.StatusInternalServerError:
		return domainerrors.KindValidationFailed
	default:
		return domainerrors.KindServer
	}
}
