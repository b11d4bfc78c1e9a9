package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/ai-chatbott/server/internal/adapter/llm"
	"github.com/ai-chatbott/server/internal/config"
	"github.com/ai-chatbott/server/internal/domain"
	store "github.com/ai-chatbott/server/internal/repository"
	"github.com/ai-chatbott/server/internal/service"
	"github.com/ai-chatbott/server/internal/tenant"
	"github.com/ai-chatbott/server/tests/helpers"
)

func newTestHandler(t *testing.T) (*Handler, store.Store) {
	t.Helper()
	cfg := &config.Config{
		LLMModel:      "test-model",
		DefaultTenant: "default",
		HistoryWindow: 12,
	}
	db := helpers.NewTestSQLiteStore(t)
	tenants := tenant.NewLoader(t.TempDir())
	svc := service.New(db, tenants, llm.NewMockClient(), cfg)
	return NewHandler(svc), db
}

func TestChatTurn(t *testing.T) {
	e := echo.New()
	h, db := newTestHandler(t)

	reqBody, _ := json.Marshal(domain.ChatRequest{
		SessionID:  "s1",
		BusinessID: "acme",
		Text:       "Hello",
	})
	req := httptest.NewRequest(http.MethodPost, "/v1/chat", bytes.NewReader(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Chat(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.ChatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	assert.NotEmpty(t, resp.Reply)

	// The reply field equals the stored assistant message content.
	messages, err := db.ListMessages(context.Background(), "acme:s1")
	assert.NoError(t, err)
	if assert.Len(t, messages, 2) {
		assert.Equal(t, domain.RoleUser, messages[0].Role)
		assert.Equal(t, "Hello", messages[0].Content)
		assert.Equal(t, domain.RoleAssistant, messages[1].Role)
		assert.Equal(t, resp.Reply, messages[1].Content)
	}
}

func TestChatValidation(t *testing.T) {
	e := echo.New()
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/chat", bytes.NewBufferString(`{"text":"hi"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Chat(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestChatStoreFailure(t *testing.T) {
	e := echo.New()
	h, db := newTestHandler(t)

	// A closed store makes session creation fail; that is a server fault,
	// not a caller error, and the internal detail must not be echoed.
	if err := db.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reqBody, _ := json.Marshal(domain.ChatRequest{SessionID: "s1", Text: "Hello"})
	req := httptest.NewRequest(http.MethodPost, "/v1/chat", bytes.NewReader(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Chat(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "database")
	assert.NotContains(t, rec.Body.String(), "sql")
}

func TestChatMalformedBody(t *testing.T) {
	e := echo.New()
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/chat", bytes.NewBufferString(`{not json`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Chat(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	e := echo.New()
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Health(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
