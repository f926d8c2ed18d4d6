package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"leasing-service/internal/identity"
	"leasing-service/pkg/logger"
	"leasing-service/prometheus"
)

// AuthHandler exposes login and logout on top of the identity provider.
type AuthHandler struct {
	identity identity.Provider
}

func NewAuthHandler(provider identity.Provider) *AuthHandler {
	return &AuthHandler{identity: provider}
}

// Login verifies credentials and returns a session token.
func (h *AuthHandler) Login(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.LoginCounter.Inc()

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse login request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	token, err := h.identity.Login(req.Email, req.Password)
	if err != nil {
		log.Warn("Login failed", zap.String("email", req.Email))
		return respondError(c, log, err)
	}

	log.Info("User logged in", zap.String("email", req.Email))
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}

// Logout ends the session. Tokens are stateless, so the server side only
// acknowledges; the client discards the token.
func (h *AuthHandler) Logout(c echo.Context) error {
	log := logger.FromEcho(c)
	log.Info("User logged out")
	return c.JSON(http.StatusOK, echo.Map{"message": "logged out"})
}
