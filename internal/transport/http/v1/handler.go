// Package v1 provides the HTTP handlers for the chat server.
package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ai-chatbott/server/internal/service"
)

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
}

// NewHandler creates a new handler.
func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Chat widget API
	e.POST("/v1/chat", h.Chat)
	e.GET("/v1/history", h.GetHistory)
	e.GET("/v1/tenants/:tenant_id/profile", h.GetTenantProfile)

	// Administrative API
	e.POST("/v1/tenants/:tenant_id/reload", h.ReloadTenant)

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "0.1.0",
	})
}
