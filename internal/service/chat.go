package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/ai-chatbott/server/internal/adapter/llm"
	"github.com/ai-chatbott/server/internal/domain"
	"github.com/ai-chatbott/server/internal/prompt"
)

// Validation errors for a chat turn. Anything else out of Chat is a
// storage fault.
var (
	ErrMissingSessionID = errors.New("session_id is required")
	ErrMissingText      = errors.New("text is required")
)

// Fixed user-facing replies for the failure modes of a turn. The chat
// surface always answers with something; failures are only visible in logs.
const (
	ReplyUnavailable = "Sorry, something went wrong on our side. Please try again in a moment."
	ReplyBusy        = "We're handling a lot of messages right now. Please try again shortly."
	ReplyEmpty       = "Sorry, I couldn't come up with an answer to that. Could you rephrase it?"
)

// Chat handles one conversation turn.
func (s *Service) Chat(ctx context.Context, req domain.ChatRequest) (*domain.ChatResponse, error) {
	// Validate required fields
	if req.SessionID == "" {
		return nil, ErrMissingSessionID
	}
	if req.Text == "" {
		return nil, ErrMissingText
	}

	turnID := "turn_" + uuid.New().String()[:8]
	tenantID := s.resolveTenant(req.BusinessID)
	sessionKey := domain.SessionKey(tenantID, req.SessionID)

	// Get or create session; the name is backfilled at most once, so the
	// returned session carries the name from whichever turn first set it.
	session, err := s.store.GetOrCreateSession(ctx, sessionKey, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to get/create session: %w", err)
	}

	// Save the inbound user message. Storage failure is logged and the turn
	// continues, so the caller still gets a reply.
	userMsg, err := s.store.AppendMessage(ctx, sessionKey, domain.RoleUser, req.Text)
	if err != nil {
		log.Printf("ERROR: [%s] failed to save user message: %v", turnID, err)
	}

	// Load the conversation window, newest page in chronological order.
	window, err := s.store.RecentMessages(ctx, sessionKey, s.config.HistoryWindow)
	if err != nil {
		log.Printf("WARN: [%s] failed to load history: %v", turnID, err)
		window = nil
	}
	if userMsg == nil {
		// The inbound write failed, so the window is missing this turn's
		// text; include it in memory so the model still sees the question.
		window = append(window, domain.Message{Role: domain.RoleUser, Content: req.Text})
	}

	system := s.tenants.SystemInstruction(tenantID)
	rendered := prompt.Build(system, session.Name, window)

	reply := s.generate(ctx, turnID, rendered)

	// Save the generated reply, same log-and-continue contract as the
	// inbound write.
	if _, err := s.store.AppendMessage(ctx, sessionKey, domain.RoleAssistant, reply); err != nil {
		log.Printf("ERROR: [%s] failed to save assistant message: %v", turnID, err)
	}

	return &domain.ChatResponse{Reply: reply}, nil
}

// generate calls the generation API and collapses every failure kind to a
// fixed reply, each with its own log signal.
func (s *Service) generate(ctx context.Context, turnID, rendered string) string {
	reply, err := s.llmClient.Complete(ctx, s.config.LLMModel, rendered)
	if err == nil {
		return reply
	}

	switch llm.KindOf(err) {
	case llm.KindRateLimited:
		log.Printf("WARN: [%s] generation rate limited: %v", turnID, err)
		return ReplyBusy
	case llm.KindEmpty:
		log.Printf("WARN: [%s] generation returned empty completion: %v", turnID, err)
		return ReplyEmpty
	case llm.KindTransport:
		log.Printf("ERROR: [%s] generation transport failure: %v", turnID, err)
		return ReplyUnavailable
	default:
		log.Printf("ERROR: [%s] generation API failure: %v", turnID, err)
		return ReplyUnavailable
	}
}
