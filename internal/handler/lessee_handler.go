package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"leasing-service/internal/identity"
	"leasing-service/internal/lookup"
	"leasing-service/internal/service"
	"leasing-service/pkg/logger"
	"leasing-service/prometheus"
)

// LesseeHandler exposes the lessee lifecycle and the lessee lookup list.
type LesseeHandler struct {
	lessees *service.LesseeService
	lookups *lookup.Service
}

func NewLesseeHandler(lessees *service.LesseeService, lookups *lookup.Service) *LesseeHandler {
	return &LesseeHandler{lessees: lessees, lookups: lookups}
}

// List retrieves all lessees with their user records.
func (h *LesseeHandler) List(c echo.Context) error {
	log := logger.FromEcho(c)

	lessees, err := h.lessees.List()
	if err != nil {
		log.Error("Failed to retrieve lessees", zap.Error(err))
		return respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, lessees)
}

// Options returns the lessee selection list used by contract forms.
func (h *LesseeHandler) Options(c echo.Context) error {
	log := logger.FromEcho(c)

	options, err := h.lookups.LesseeOptions()
	if err != nil {
		log.Error("Failed to build lessee options", zap.Error(err))
		return respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, options)
}

// Details retrieves a lessee with its user record.
func (h *LesseeHandler) Details(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := parseID(c, "id")
	if err != nil {
		log.Error("Invalid lessee ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid lessee ID"})
	}

	lessee, err := h.lessees.Details(id)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, lessee)
}

// Register creates a new lessee together with its user record.
func (h *LesseeHandler) Register(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.LesseeRegisterCounter.Inc()

	var req service.RegisterLesseeInput
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse lessee registration request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	if req.Email == "" || req.Password == "" {
		log.Error("Invalid lessee registration data", zap.String("email", req.Email))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password are required"})
	}

	lessee, err := h.lessees.Register(req)
	if err != nil {
		log.Warn("Lessee registration failed", zap.String("email", req.Email), zap.Error(err))
		return respondError(c, log, err)
	}

	prometheus.RecordOperation("lessee", "create")
	log.Info("Lessee registered",
		zap.Uint("id", lessee.ID),
		zap.String("email", lessee.User.Email))

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Lessee registered successfully",
		"lessee":  lessee,
	})
}

// Edit overwrites the mutable fields of the lessee's user record.
func (h *LesseeHandler) Edit(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := parseID(c, "id")
	if err != nil {
		log.Error("Invalid lessee ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid lessee ID"})
	}

	var req identity.UserFields
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse lessee edit request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	lessee, err := h.lessees.Edit(id, req)
	if err != nil {
		return respondError(c, log, err)
	}

	prometheus.RecordOperation("lessee", "update")
	log.Info("Lessee updated", zap.Uint("id", lessee.ID))
	return c.JSON(http.StatusOK, lessee)
}

// Delete removes the lessee and its user record unless contracts exist.
func (h *LesseeHandler) Delete(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := parseID(c, "id")
	if err != nil {
		log.Error("Invalid lessee ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid lessee ID"})
	}

	if err := h.lessees.Delete(id); err != nil {
		log.Warn("Lessee deletion rejected", zap.Uint("id", id), zap.Error(err))
		return respondError(c, log, err)
	}

	prometheus.RecordOperation("lessee", "delete")
	log.Info("Lessee deleted", zap.Uint("id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Lessee deleted successfully"})
}
