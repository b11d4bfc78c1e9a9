package service

import (
	"log"

	"github.com/ai-chatbott/server/internal/domain"
)

// Profile returns the display metadata for a tenant. Unknown identifiers
// resolve to the default record, never an error.
func (s *Service) Profile(businessID string) domain.TenantProfile {
	return s.tenants.Profile(s.resolveTenant(businessID))
}

// ReloadTenant drops the cached system instruction for a tenant so the
// next turn re-reads its knowledge files. Returns the normalized id.
func (s *Service) ReloadTenant(businessID string) string {
	tenantID := s.resolveTenant(businessID)
	s.tenants.Invalidate(tenantID)
	log.Printf("tenant %s cache invalidated", tenantID)
	return tenantID
}
