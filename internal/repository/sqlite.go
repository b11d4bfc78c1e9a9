package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ai-chatbott/server/internal/domain"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// For in-memory SQLite, multiple connections create separate databases.
	// Keep a single connection to avoid schema/data disappearing across goroutines.
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// migrate runs database migrations.
func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS chat_sessions (
			id TEXT PRIMARY KEY,
			name TEXT,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS chat_messages (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			role TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (session_id) REFERENCES chat_sessions(id) ON DELETE CASCADE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_chat_messages_session_id ON chat_messages(session_id, id)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\n%s", err, m)
		}
	}

	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// GetSession retrieves a session by its composite key.
func (s *SQLiteStore) GetSession(ctx context.Context, key string) (*domain.Session, error) {
	var session domain.Session
	var name sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM chat_sessions WHERE id = ?`,
		key).Scan(&session.ID, &name, &session.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if name.Valid {
		session.Name = name.String
	}
	return &session, nil
}

// GetOrCreateSession gets an existing session or creates a new one.
// The name is set on create, or backfilled exactly once if the existing
// session has no name yet. An existing name is never overwritten.
func (s *SQLiteStore) GetOrCreateSession(ctx context.Context, key, name string) (*domain.Session, error) {
	session, err := s.GetSession(ctx, key)
	if err != nil {
		return nil, err
	}
	if session != nil {
		if session.Name == "" && name != "" {
			_, err := s.db.ExecContext(ctx,
				`UPDATE chat_sessions SET name = ? WHERE id = ? AND (name IS NULL OR name = '')`,
				name, key)
			if err != nil {
				return nil, err
			}
			session.Name = name
		}
		return session, nil
	}

	// Create new session
	var nameVal sql.NullString
	if name != "" {
		nameVal = sql.NullString{String: name, Valid: true}
	}
	session = &domain.Session{ID: key, Name: name}
	err = s.db.QueryRowContext(ctx,
		`INSERT INTO chat_sessions (id, name) VALUES (?, ?) RETURNING created_at`,
		key, nameVal).Scan(&session.CreatedAt)
	if err != nil {
		return nil, err
	}
	return session, nil
}

// AppendMessage inserts a message and returns it with its assigned id.
func (s *SQLiteStore) AppendMessage(ctx context.Context, sessionKey string, role domain.Role, content string) (*domain.Message, error) {
	msg := &domain.Message{
		SessionID: sessionKey,
		Role:      role,
		Content:   content,
	}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO chat_messages (session_id, role, content) VALUES (?, ?, ?) RETURNING id, created_at`,
		sessionKey, role, content).Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		return nil, err
	}
	return msg, nil
}

// RecentMessages returns up to limit most recent messages for a session in
// chronological order. The query walks the (session_id, id) index backwards
// for the newest page, then the page is reversed in memory to restore
// oldest-first order. The prompt is sensitive to message order, so the
// reversal is load-bearing.
func (s *SQLiteStore) RecentMessages(ctx context.Context, sessionKey string, limit int) ([]domain.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, role, content, created_at
		 FROM chat_messages WHERE session_id = ?
		 ORDER BY id DESC LIMIT ?`,
		sessionKey, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages, err := scanMessages(rows)
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// ListMessages returns the full history for a session, oldest first.
func (s *SQLiteStore) ListMessages(ctx context.Context, sessionKey string) ([]domain.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, role, content, created_at
		 FROM chat_messages WHERE session_id = ?
		 ORDER BY id ASC`,
		sessionKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMessages(rows)
}

func scanMessages(rows *sql.Rows) ([]domain.Message, error) {
	var messages []domain.Message
	for rows.Next() {
		var msg domain.Message
		if err := rows.Scan(&msg.ID, &msg.SessionID, &msg.Role, &msg.Content, &msg.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

// Ensure SQLiteStore implements Store at compile time.
var _ Store = (*SQLiteStore)(nil)
