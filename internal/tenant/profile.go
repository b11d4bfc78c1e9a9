package tenant

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ai-chatbott/server/internal/domain"
)

// Default display fields used when a tenant profile is missing a value.
const (
	DefaultBusinessName  = "Our Business"
	DefaultAssistantName = "Assistant"
)

// Profile returns the structured display metadata for a normalized tenant
// identifier, read from <dir>/<id>.json. A missing or malformed file
// degrades to the default record, and every field is defaulted
// independently, so a partial file still yields a complete profile.
func (l *Loader) Profile(id string) domain.TenantProfile {
	profile := domain.TenantProfile{
		BusinessName:  DefaultBusinessName,
		AssistantName: DefaultAssistantName,
		Links:         map[string]string{},
	}

	data, err := os.ReadFile(filepath.Join(l.dir, id+".json"))
	if err != nil {
		return profile
	}

	var raw struct {
		BusinessName  string            `json:"businessName"`
		AssistantName string            `json:"assistantName"`
		Phone         string            `json:"phone"`
		Links         map[string]string `json:"links"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return profile
	}

	if raw.BusinessName != "" {
		profile.BusinessName = raw.BusinessName
	}
	if raw.AssistantName != "" {
		profile.AssistantName = raw.AssistantName
	}
	profile.Phone = raw.Phone
	if raw.Links != nil {
		profile.Links = raw.Links
	}
	return profile
}
