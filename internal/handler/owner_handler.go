package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"leasing-service/internal/identity"
	"leasing-service/internal/service"
	"leasing-service/pkg/logger"
	"leasing-service/prometheus"
)

// OwnerHandler exposes the owner lifecycle.
type OwnerHandler struct {
	owners *service.OwnerService
}

func NewOwnerHandler(owners *service.OwnerService) *OwnerHandler {
	return &OwnerHandler{owners: owners}
}

// List retrieves all owners with their users, properties and contracts.
func (h *OwnerHandler) List(c echo.Context) error {
	log := logger.FromEcho(c)

	owners, err := h.owners.List()
	if err != nil {
		log.Error("Failed to retrieve owners", zap.Error(err))
		return respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, owners)
}

// Details retrieves an owner with its full relation set.
func (h *OwnerHandler) Details(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := parseID(c, "id")
	if err != nil {
		log.Error("Invalid owner ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid owner ID"})
	}

	owner, err := h.owners.Details(id)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, owner)
}

// Register creates a new owner together with its user record.
func (h *OwnerHandler) Register(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.OwnerRegisterCounter.Inc()

	var req service.RegisterOwnerInput
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse owner registration request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	if req.Email == "" || req.Password == "" {
		log.Error("Invalid owner registration data", zap.String("email", req.Email))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password are required"})
	}

	owner, err := h.owners.Register(req)
	if err != nil {
		log.Warn("Owner registration failed", zap.String("email", req.Email), zap.Error(err))
		return respondError(c, log, err)
	}

	prometheus.RecordOperation("owner", "create")
	log.Info("Owner registered",
		zap.Uint("id", owner.ID),
		zap.String("email", owner.User.Email))

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Owner registered successfully",
		"owner":   owner,
	})
}

// Edit overwrites the mutable fields of the owner's user record.
func (h *OwnerHandler) Edit(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := parseID(c, "id")
	if err != nil {
		log.Error("Invalid owner ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid owner ID"})
	}

	var req identity.UserFields
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse owner edit request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	owner, err := h.owners.Edit(id, req)
	if err != nil {
		return respondError(c, log, err)
	}

	prometheus.RecordOperation("owner", "update")
	log.Info("Owner updated", zap.Uint("id", owner.ID))
	return c.JSON(http.StatusOK, owner)
}

// Delete removes the owner and its user record unless dependents exist.
func (h *OwnerHandler) Delete(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := parseID(c, "id")
	if err != nil {
		log.Error("Invalid owner ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid owner ID"})
	}

	if err := h.owners.Delete(id); err != nil {
		log.Warn("Owner deletion rejected", zap.Uint("id", id), zap.Error(err))
		return respondError(c, log, err)
	}

	prometheus.RecordOperation("owner", "delete")
	log.Info("Owner deleted", zap.Uint("id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Owner deleted successfully"})
}
