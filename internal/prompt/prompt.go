// Package prompt renders the text block sent to the generation backend.
package prompt

import (
	"strings"

	"github.com/ai-chatbott/server/internal/domain"
)

// GuestName is used when the caller never supplied a display name.
const GuestName = "Guest"

// Build assembles the full generation prompt from the tenant system
// instruction, the user's display name, and the chronological message
// window. Each history message becomes a "ROLE: content" line and the
// trailing "ASSISTANT:" cue tells the model where to continue. Only the
// window length is bounded; individual messages are rendered whole.
func Build(system, userName string, history []domain.Message) string {
	if userName == "" {
		userName = GuestName
	}

	var b strings.Builder
	b.WriteString(system)
	b.WriteString("\n\nUSER NAME: ")
	b.WriteString(userName)
	b.WriteString("\n\nConversation so far:\n")
	for _, m := range history {
		b.WriteString(strings.ToUpper(string(m.Role)))
		b.WriteString(": ")
		b.WriteString(m.Content)
		b.WriteString("\n")
	}
	b.WriteString("ASSISTANT:")
	return b.String()
}
