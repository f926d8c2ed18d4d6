package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"leasing-service/internal/converter"
	"leasing-service/internal/identity"
	"leasing-service/internal/repository"
	"leasing-service/internal/service"
	"leasing-service/prometheus"
)

// parseID reads a numeric path parameter.
func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// respondError maps domain errors to HTTP responses. Everything in the
// error taxonomy is a correctable client error; only infrastructure
// failures surface as 500s.
func respondError(c echo.Context, log *zap.Logger, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		prometheus.RecordOperationError("not_found")
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, converter.ErrReferenceNotFound):
		prometheus.RecordOperationError("reference_not_found")
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	case errors.Is(err, identity.ErrDuplicateEmail):
		prometheus.RecordOperationError("duplicate_email")
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrHasDependents):
		prometheus.RecordOperationError("has_dependents")
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case errors.Is(err, identity.ErrInvalidCredentials):
		prometheus.RecordOperationError("invalid_credentials")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	default:
		log.Error("Operation failed", zap.Error(err))
		prometheus.RecordOperationError("db_error")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "operation failed"})
	}
}
