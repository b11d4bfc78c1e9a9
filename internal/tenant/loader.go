package tenant

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// PlaceholderKnowledge is returned when neither the tenant file nor the
// shared default file exists.
const PlaceholderKnowledge = "business info is not available"

const instructionHeader = `You are a helpful customer support assistant for the business described below.
Answer only using the business information provided. Be brief and friendly.
If the information needed to answer is not available, say so and suggest
contacting the business directly.

Business information:
`

// Loader resolves per-tenant knowledge files and memoizes the rendered
// system instruction per normalized tenant identifier. Entries live until
// explicitly invalidated, so edits to the underlying files are not picked
// up on their own.
type Loader struct {
	dir string

	mu    sync.Mutex
	cache map[string]string
}

// NewLoader creates a loader reading tenant resources from dir.
func NewLoader(dir string) *Loader {
	return &Loader{
		dir:   dir,
		cache: make(map[string]string),
	}
}

// Knowledge returns the free-text knowledge blob for a normalized tenant
// identifier. A missing tenant file falls back to the shared default file,
// and a missing default falls back to a fixed placeholder. It never fails.
func (l *Loader) Knowledge(id string) string {
	for _, name := range []string{id + ".txt", DefaultID + ".txt"} {
		data, err := os.ReadFile(filepath.Join(l.dir, name))
		if err == nil {
			return strings.TrimSpace(string(data))
		}
	}
	return PlaceholderKnowledge
}

// SystemInstruction returns the rendered system instruction for a tenant,
// computing it on first touch and serving the memoized copy afterwards.
func (l *Loader) SystemInstruction(id string) string {
	l.mu.Lock()
	defer l.mu.Unlock()

	if cached, ok := l.cache[id]; ok {
		return cached
	}
	rendered := instructionHeader + l.Knowledge(id)
	l.cache[id] = rendered
	return rendered
}

// Invalidate drops the cached instruction for a tenant so the next request
// re-reads the underlying files. Invalidating an uncached tenant is a no-op.
func (l *Loader) Invalidate(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.cache, id)
}
