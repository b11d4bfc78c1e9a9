package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/ai-chatbott/server/internal/domain"
)

func TestGetHistory(t *testing.T) {
	e := echo.New()
	h, db := newTestHandler(t)
	ctx := context.Background()

	if _, err := db.GetOrCreateSession(ctx, "acme:s1", ""); err != nil {
		t.Fatalf("GetOrCreateSession failed: %v", err)
	}
	if _, err := db.AppendMessage(ctx, "acme:s1", domain.RoleUser, "hello"); err != nil {
		t.Fatalf("AppendMessage failed: %v", err)
	}
	if _, err := db.AppendMessage(ctx, "acme:s1", domain.RoleAssistant, "hi"); err != nil {
		t.Fatalf("AppendMessage failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/history?session_id=s1&business_id=acme", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.GetHistory(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Messages []domain.HistoryEntry `json:"messages"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Messages) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(resp.Messages))
	}
	if resp.Messages[0].Role != domain.RoleUser || resp.Messages[1].Role != domain.RoleAssistant {
		t.Fatalf("unexpected entries: %+v", resp.Messages)
	}
}

func TestGetHistoryMissingSession(t *testing.T) {
	e := echo.New()
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/history", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.GetHistory(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetHistoryEmptySession(t *testing.T) {
	e := echo.New()
	h, _ := newTestHandler(t)

	// An unknown session is just an empty history, not an error.
	req := httptest.NewRequest(http.MethodGet, "/v1/history?session_id=never-seen", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.GetHistory(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Messages []domain.HistoryEntry `json:"messages"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Messages) != 0 {
		t.Fatalf("expected empty history, got %+v", resp.Messages)
	}
}
