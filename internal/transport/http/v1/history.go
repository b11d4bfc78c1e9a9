package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetHistory retrieves the full history for a session, oldest first.
// GET /v1/history?session_id=...&business_id=...
func (h *Handler) GetHistory(c echo.Context) error {
	sessionID := c.QueryParam("session_id")
	if sessionID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "session_id is required"})
	}
	businessID := c.QueryParam("business_id")

	ctx := c.Request().Context()

	entries, err := h.service.History(ctx, sessionID, businessID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"messages": entries,
	})
}
