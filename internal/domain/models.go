// Package domain defines the core domain models for the chat backend.
package domain

import "time"

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Session represents one conversation thread, scoped to a tenant.
// The ID is the composite "tenant:session" key.
type Session struct {
	ID        string    `json:"id"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Message represents a single message in a session. ID is assigned by the
// store and is monotonically increasing in insertion order.
type Message struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// TenantProfile holds the structured display metadata for one tenant.
// Every field is independently defaulted when the backing resource is
// missing or malformed.
type TenantProfile struct {
	BusinessName  string            `json:"businessName"`
	AssistantName string            `json:"assistantName"`
	Phone         string            `json:"phone"`
	Links         map[string]string `json:"links"`
}

// ChatRequest is the inbound chat turn.
type ChatRequest struct {
	SessionID  string `json:"session_id"`
	Text       string `json:"text"`
	BusinessID string `json:"business_id,omitempty"`
	Name       string `json:"name,omitempty"`
}

// ChatResponse carries the generated reply back to the caller.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// HistoryEntry is one {role, content} pair in the history response.
type HistoryEntry struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// SessionKey builds the composite session identity from a normalized
// tenant identifier and a caller-supplied session identifier.
func SessionKey(tenant, sessionID string) string {
	return tenant + ":" + sessionID
}
