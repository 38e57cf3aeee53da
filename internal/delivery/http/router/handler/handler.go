// Package handler contains the HTTP handlers of the gateway.
package handler

import (
	"net/http"
	"strconv"
	"strings"

	"streetbite/internal/delivery/http/response"
	"streetbite/internal/domain/entity"
	domainerrors "streetbite/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// bindAndValidate decodes the request into req and runs the validator. A
// decoding failure is answered directly; ok is false in both failure cases.
func bindAndValidate(c echo.Context, req any) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "Invalid request input")
	}
	if err := c.Validate(req); err != nil {
		return false, err
	}

	return true, nil
}

// pathID reads a non-empty id path parameter.
func pathID(c echo.Context, name string) (entity.ID, error) {
	id := strings.TrimSpace(c.Param(name))
	if id == "" {
		return "", domainerrors.ErrValidationFailed.WithFields(domainerrors.FieldErrors{name: "is required"})
	}

	return entity.ID(id), nil
}

// queryFloat parses an optional float query parameter.
func queryFloat(c echo.Context, name string) (*float64, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithFields(domainerrors.FieldErrors{name: "must be a number"})
	}

	return &f, nil
}

// queryInt parses an integer query parameter, falling back to def when absent.
func queryInt(c echo.Context, name string, def int) (int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return def, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithFields(domainerrors.FieldErrors{name: "must be an integer"})
	}

	return n, nil
}

// queryBool parses an optional boolean query parameter.
func queryBool(c echo.Context, name string, def bool) (bool, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return def, nil
	}

	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, domainerrors.ErrValidationFailed.WithFields(domainerrors.FieldErrors{name: "must be true or false"})
	}

	return b, nil
}
