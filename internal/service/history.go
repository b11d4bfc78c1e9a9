package service

import (
	"context"
	"fmt"

	"github.com/ai-chatbott/server/internal/domain"
)

// History returns the full ordered history for a session as {role, content}
// pairs, oldest first.
func (s *Service) History(ctx context.Context, sessionID, businessID string) ([]domain.HistoryEntry, error) {
	tenantID := s.resolveTenant(businessID)
	sessionKey := domain.SessionKey(tenantID, sessionID)

	messages, err := s.store.ListMessages(ctx, sessionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}

	entries := make([]domain.HistoryEntry, 0, len(messages))
	for _, m := range messages {
		entries = append(entries, domain.HistoryEntry{Role: m.Role, Content: m.Content})
	}
	return entries, nil
}
