package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "localhire/internal/errors"
)

// pathID parses the :id path parameter as a UUID.
func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, badRequest("invalid id", "INVALID_UUID")
	}
	return id, nil
}

// queryID parses an optional UUID query parameter. ok is false when the
// parameter is absent.
func queryID(c echo.Context, name string) (id uuid.UUID, ok bool, err error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return uuid.Nil, false, nil
	}
	id, parseErr := uuid.Parse(raw)
	if parseErr != nil {
		return uuid.Nil, false, badRequest("invalid "+name, "INVALID_UUID")
	}
	return id, true, nil
}

// bind decodes and validates the request body, converting validator failures
// into the per-field error shape the frontend renders.
func bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Message: "invalid request body",
			Code:    "INVALID_BODY",
		})
	}
	if err := c.Validate(req); err != nil {
		return validationError(err)
	}
	return nil
}

func validationError(err error) error {
	resp := apperrors.ErrorResponse{
		Message: "Validation error",
		Code:    "VALIDATION_ERROR",
	}
	var fieldErrs validator.ValidationErrors
	if ve, ok := err.(validator.ValidationErrors); ok {
		fieldErrs = ve
	}
	for _, fe := range fieldErrs {
		resp.Errors = append(resp.Errors, apperrors.FieldError{
			Field:   fe.Field(),
			Message: fe.Tag(),
		})
	}
	return echo.NewHTTPError(http.StatusBadRequest, resp)
}

// domainError maps a service error onto the JSON error shape.
func domainError(err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// badRequest is for request-shape problems outside the validator's reach,
// like missing query parameters.
func badRequest(message, code string) error {
	return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
		Message: message,
		Code:    code,
	})
}
