package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetTenantProfile retrieves the display metadata for a tenant. Unknown
// identifiers get the default record, never an error.
// GET /v1/tenants/:tenant_id/profile
func (h *Handler) GetTenantProfile(c echo.Context) error {
	tenantID := c.Param("tenant_id")
	return c.JSON(http.StatusOK, h.service.Profile(tenantID))
}

// ReloadTenant drops the cached system instruction for a tenant.
// POST /v1/tenants/:tenant_id/reload
func (h *Handler) ReloadTenant(c echo.Context) error {
	tenantID := c.Param("tenant_id")
	reloaded := h.service.ReloadTenant(tenantID)
	return c.JSON(http.StatusOK, map[string]string{"reloaded": reloaded})
}
