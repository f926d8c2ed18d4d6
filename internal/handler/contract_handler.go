package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"leasing-service/internal/converter"
	"leasing-service/internal/service"
	"leasing-service/pkg/logger"
	"leasing-service/prometheus"
)

// ContractHandler exposes the contract lifecycle.
type ContractHandler struct {
	contracts *service.ContractService
}

func NewContractHandler(contracts *service.ContractService) *ContractHandler {
	return &ContractHandler{contracts: contracts}
}

// List retrieves all contracts with their relation sets.
func (h *ContractHandler) List(c echo.Context) error {
	log := logger.FromEcho(c)

	contracts, err := h.contracts.List()
	if err != nil {
		log.Error("Failed to retrieve contracts", zap.Error(err))
		return respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, contracts)
}

// NewForm returns a prefilled creation form for a contract on the given
// property.
func (h *ContractHandler) NewForm(c echo.Context) error {
	log := logger.FromEcho(c)

	propertyID, err := parseID(c, "id")
	if err != nil {
		log.Error("Invalid property ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid property ID"})
	}

	view, err := h.contracts.NewForm(propertyID)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, view)
}

// Add creates a contract on the given property.
func (h *ContractHandler) Add(c echo.Context) error {
	log := logger.FromEcho(c)

	propertyID, err := parseID(c, "id")
	if err != nil {
		log.Error("Invalid property ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid property ID"})
	}

	var req converter.ContractInput
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse contract request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	contract, err := h.contracts.Add(propertyID, req)
	if err != nil {
		log.Warn("Contract creation failed",
			zap.Uint("property_id", propertyID),
			zap.Uint("lessee_id", req.LesseeID),
			zap.Error(err))
		return respondError(c, log, err)
	}

	prometheus.RecordOperation("contract", "create")
	log.Info("Contract created",
		zap.Uint("id", contract.ID),
		zap.Uint("property_id", contract.PropertyID),
		zap.Uint("lessee_id", contract.LesseeID))

	return c.JSON(http.StatusCreated, contract)
}

// Edit performs a full replace of the contract's mutable fields.
func (h *ContractHandler) Edit(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := parseID(c, "id")
	if err != nil {
		log.Error("Invalid contract ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid contract ID"})
	}

	var req converter.ContractInput
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse contract request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	contract, err := h.contracts.Edit(id, req)
	if err != nil {
		return respondError(c, log, err)
	}

	prometheus.RecordOperation("contract", "update")
	log.Info("Contract updated", zap.Uint("id", contract.ID))
	return c.JSON(http.StatusOK, contract)
}

// Details retrieves the contract with user records and the property type.
func (h *ContractHandler) Details(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := parseID(c, "id")
	if err != nil {
		log.Error("Invalid contract ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid contract ID"})
	}

	contract, err := h.contracts.Details(id)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, contract)
}

// View returns the flat edit-form representation with lessee choices.
func (h *ContractHandler) View(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := parseID(c, "id")
	if err != nil {
		log.Error("Invalid contract ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid contract ID"})
	}

	view, err := h.contracts.View(id)
	if err != nil {
		return respondError(c, log, err)
	}

	return c.JSON(http.StatusOK, view)
}

// Delete removes the contract.
func (h *ContractHandler) Delete(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := parseID(c, "id")
	if err != nil {
		log.Error("Invalid contract ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid contract ID"})
	}

	contract, err := h.contracts.Delete(id)
	if err != nil {
		return respondError(c, log, err)
	}

	prometheus.RecordOperation("contract", "delete")
	log.Info("Contract deleted",
		zap.Uint("id", contract.ID),
		zap.Uint("property_id", contract.PropertyID))

	return c.JSON(http.StatusOK, echo.Map{"message": "Contract deleted successfully"})
}
