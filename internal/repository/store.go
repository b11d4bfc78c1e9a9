// Package store defines the storage interface and implementations.
package store

import (
	"context"

	"github.com/ai-chatbott/server/internal/domain"
)

// Store defines the interface for data persistence.
type Store interface {
	// Session operations
	GetSession(ctx context.Context, key string) (*domain.Session, error)
	GetOrCreateSession(ctx context.Context, key, name string) (*domain.Session, error)

	// Message operations
	AppendMessage(ctx context.Context, sessionKey string, role domain.Role, content string) (*domain.Message, error)
	RecentMessages(ctx context.Context, sessionKey string, limit int) ([]domain.Message, error)
	ListMessages(ctx context.Context, sessionKey string) ([]domain.Message, error)

	Close() error
}
