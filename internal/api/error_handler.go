package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/credibank/credit-system/internal/api/metrics"
	"github.com/credibank/credit-system/internal/core/domain"
)

// fieldViolation mirrors domain.FieldViolation on the wire.
type fieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// errorResponse is the canonical error envelope for all API errors.
// Violations is populated only for validation failures.
type errorResponse struct {
	Error      string           `json:"error"`
	Violations []fieldViolation `json:"violations,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Reports every violated field on validation failures, not just the first.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *domain.ValidationErrors
		if errors.As(err, &ve) {
			metrics.ValidationFailuresTotal.Inc()
			violations := make([]fieldViolation, len(ve.Violations))
			for i, v := range ve.Violations {
				violations[i] = fieldViolation{Field: v.Field, Message: v.Message}
			}
			_ = c.JSON(http.StatusBadRequest, errorResponse{
				Error:      "validation failed",
				Violations: violations,
			})
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Typed domain errors carry messages that are part of the API contract.
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return http.StatusNotFound, nf.Error()
	}
	var be *domain.BusinessError
	if errors.As(err, &be) {
		return http.StatusBadRequest, be.Error()
	}

	// Sentinel domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrCustomerNotFound):
		return http.StatusNotFound, "customer not found"
	case errors.Is(err, domain.ErrCreditNotFound):
		return http.StatusNotFound, "credit not found"
	case errors.Is(err, domain.ErrCustomerExists):
		return http.StatusConflict, "customer with this cpf or email already exists"
	case errors.Is(err, domain.ErrCreditCodeExists):
		return http.StatusConflict, "credit code already exists"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
