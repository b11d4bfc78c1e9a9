package v1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ai-chatbott/server/internal/domain"
	"github.com/ai-chatbott/server/internal/service"
)

// Chat handles one conversation turn.
// POST /v1/chat
func (h *Handler) Chat(c echo.Context) error {
	var req domain.ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	ctx := c.Request().Context()

	resp, err := h.service.Chat(ctx, req)
	if err != nil {
		// Missing required fields are the caller's fault; anything else is
		// a storage fault and its detail stays in the server log.
		if errors.Is(err, service.ErrMissingSessionID) || errors.Is(err, service.ErrMissingText) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}

	return c.JSON(http.StatusOK, resp)
}
