package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"leasing-service/internal/converter"
	"leasing-service/internal/service"
	"leasing-service/pkg/logger"
	"leasing-service/prometheus"
)

// PropertyHandler exposes the property lifecycle including images.
type PropertyHandler struct {
	properties *service.PropertyService
}

func NewPropertyHandler(properties *service.PropertyService) *PropertyHandler {
	return &PropertyHandler{properties: properties}
}

// Add creates a new property for the owner named in the input.
func (h *PropertyHandler) Add(c echo.Context) error {
	log := logger.FromEcho(c)

	var req converter.PropertyInput
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse property request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	property, err := h.properties.Add(req)
	if err != nil {
		log.Warn("Property creation failed",
			zap.Uint("owner_id", req.OwnerID),
			zap.Uint("property_type_id", req.PropertyTypeID),
			zap.Error(err))
		return respondError(c, log, err)
	}

	prometheus.RecordOperation("property", "create")
	log.Info("Property created",
		zap.Uint("id", property.ID),
		zap.Uint("owner_id", property.OwnerID))

	return c.JSON(http.StatusCreated, property)
}

// Edit performs a full replace of the property.
func (h *PropertyHandler) Edit(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := parseID(c, "id")
	if err != nil {
		log.Error("Invalid property ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid property ID"})
	}

	var req converter.PropertyInput
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse property request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	req.ID = id

	property, err := h.properties.Edit(req)
	if err != nil {
		return respondError(c, log, err)
	}

	prometheus.RecordOperation("property", "update")
	log.Info("Property updated", zap.Uint("id", property.ID))
	return c.JSON(http.StatusOK, property)
}

// Details retrieves the property with its full relation set.
func (h *PropertyHandler) Details(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := parseID(c, "id")
	if err != nil {
		log.Error("Invalid property ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid property ID"})
	}

	property, err := h.properties.Details(id)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, property)
}

// View returns the flat edit-form representation with property type
// choices.
func (h *PropertyHandler) View(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := parseID(c, "id")
	if err != nil {
		log.Error("Invalid property ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid property ID"})
	}

	view, err := h.properties.View(id)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, view)
}

// Delete removes the property and its images unless contracts exist.
func (h *PropertyHandler) Delete(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := parseID(c, "id")
	if err != nil {
		log.Error("Invalid property ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid property ID"})
	}

	if err := h.properties.Delete(id); err != nil {
		log.Warn("Property deletion rejected", zap.Uint("id", id), zap.Error(err))
		return respondError(c, log, err)
	}

	prometheus.RecordOperation("property", "delete")
	log.Info("Property deleted", zap.Uint("id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Property deleted successfully"})
}

// AddImage attaches an uploaded image to the property. The file part is
// optional; an absent or empty file is stored with an empty URL.
func (h *PropertyHandler) AddImage(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := parseID(c, "id")
	if err != nil {
		log.Error("Invalid property ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid property ID"})
	}

	var data []byte
	fileHeader, err := c.FormFile("image")
	if err != nil && !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
		log.Error("Failed to read image file", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid image file"})
	}
	if fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			log.Error("Failed to open image file", zap.Error(err))
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid image file"})
		}
		defer file.Close()

		data, err = io.ReadAll(file)
		if err != nil {
			log.Error("Failed to read image file", zap.Error(err))
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid image file"})
		}
	}

	image, err := h.properties.AddImage(c.Request().Context(), id, data)
	if err != nil {
		return respondError(c, log, err)
	}

	prometheus.RecordOperation("image", "create")
	log.Info("Property image added",
		zap.Uint("id", image.ID),
		zap.Uint("property_id", image.PropertyID),
		zap.String("image_url", image.ImageURL))

	return c.JSON(http.StatusCreated, image)
}

// DeleteImage removes a single property image.
func (h *PropertyHandler) DeleteImage(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := parseID(c, "id")
	if err != nil {
		log.Error("Invalid image ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid image ID"})
	}

	image, err := h.properties.DeleteImage(id)
	if err != nil {
		return respondError(c, log, err)
	}

	prometheus.RecordOperation("image", "delete")
	log.Info("Property image deleted",
		zap.Uint("id", image.ID),
		zap.Uint("property_id", image.PropertyID))

	return c.JSON(http.StatusOK, echo.Map{"message": "Image deleted successfully"})
}
