// Package service implements the chat turn orchestration.
package service

import (
	"github.com/ai-chatbott/server/internal/adapter/llm"
	"github.com/ai-chatbott/server/internal/config"
	store "github.com/ai-chatbott/server/internal/repository"
	"github.com/ai-chatbott/server/internal/tenant"
)

type Service struct {
	store     store.Store
	tenants   *tenant.Loader
	llmClient llm.LLMClient
	config    *config.Config
}

func New(store store.Store, tenants *tenant.Loader, llmClient llm.LLMClient, cfg *config.Config) *Service {
	return &Service{
		store:     store,
		tenants:   tenants,
		llmClient: llmClient,
		config:    cfg,
	}
}

// resolveTenant normalizes a caller-supplied business identifier, applying
// the configured default when the field is absent.
func (s *Service) resolveTenant(businessID string) string {
	if businessID == "" {
		businessID = s.config.DefaultTenant
	}
	return tenant.NormalizeID(businessID)
}
