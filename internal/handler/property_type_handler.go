package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"leasing-service/internal/lookup"
	"leasing-service/internal/service"
	"leasing-service/pkg/logger"
	"leasing-service/prometheus"
)

// PropertyTypeRequest defines the structure for property type
// creation/update requests
type PropertyTypeRequest struct {
	Name string `json:"name"`
}

// PropertyTypeHandler exposes property type management and the type lookup
// list.
type PropertyTypeHandler struct {
	types   *service.PropertyTypeService
	lookups *lookup.Service
}

func NewPropertyTypeHandler(types *service.PropertyTypeService, lookups *lookup.Service) *PropertyTypeHandler {
	return &PropertyTypeHandler{types: types, lookups: lookups}
}

// List retrieves all property types.
func (h *PropertyTypeHandler) List(c echo.Context) error {
	log := logger.FromEcho(c)

	types, err := h.types.List()
	if err != nil {
		log.Error("Failed to retrieve property types", zap.Error(err))
		return respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, types)
}

// Options returns the property type selection list used by property forms.
func (h *PropertyTypeHandler) Options(c echo.Context) error {
	log := logger.FromEcho(c)

	options, err := h.lookups.PropertyTypeOptions()
	if err != nil {
		log.Error("Failed to build property type options", zap.Error(err))
		return respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, options)
}

// Add creates a new property type.
func (h *PropertyTypeHandler) Add(c echo.Context) error {
	log := logger.FromEcho(c)

	var req PropertyTypeRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse property type request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	if req.Name == "" {
		log.Error("Invalid property type data")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	propertyType, err := h.types.Add(req.Name)
	if err != nil {
		return respondError(c, log, err)
	}

	prometheus.RecordOperation("property_type", "create")
	log.Info("Property type created",
		zap.Uint("id", propertyType.ID),
		zap.String("name", propertyType.Name))

	return c.JSON(http.StatusCreated, propertyType)
}

// Edit renames a property type.
func (h *PropertyTypeHandler) Edit(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := parseID(c, "id")
	if err != nil {
		log.Error("Invalid property type ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid property type ID"})
	}

	var req PropertyTypeRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse property type request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	if req.Name == "" {
		log.Error("Invalid property type data")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	propertyType, err := h.types.Edit(id, req.Name)
	if err != nil {
		return respondError(c, log, err)
	}

	prometheus.RecordOperation("property_type", "update")
	log.Info("Property type updated", zap.Uint("id", propertyType.ID))
	return c.JSON(http.StatusOK, propertyType)
}

// Delete removes a property type unless properties reference it.
func (h *PropertyTypeHandler) Delete(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := parseID(c, "id")
	if err != nil {
		log.Error("Invalid property type ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid property type ID"})
	}

	if err := h.types.Delete(id); err != nil {
		log.Warn("Property type deletion rejected", zap.Uint("id", id), zap.Error(err))
		return respondError(c, log, err)
	}

	prometheus.RecordOperation("property_type", "delete")
	log.Info("Property type deleted", zap.Uint("id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Property type deleted successfully"})
}
