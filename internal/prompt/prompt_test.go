package prompt

import (
	"strings"
	"testing"

	"github.com/ai-chatbott/server/internal/domain"
)

func TestBuildFormat(t *testing.T) {
	history := []domain.Message{
		{Role: domain.RoleUser, Content: "Hello"},
		{Role: domain.RoleAssistant, Content: "Hi, how can I help?"},
		{Role: domain.RoleUser, Content: "When do you open?"},
	}

	got := Build("You are the Acme assistant.", "Alice", history)

	want := "You are the Acme assistant.\n\n" +
		"USER NAME: Alice\n\n" +
		"Conversation so far:\n" +
		"USER: Hello\n" +
		"ASSISTANT: Hi, how can I help?\n" +
		"USER: When do you open?\n" +
		"ASSISTANT:"
	if got != want {
		t.Fatalf("unexpected prompt:\n%q\nwant:\n%q", got, want)
	}
}

func TestBuildGuestFallback(t *testing.T) {
	got := Build("system", "", nil)
	if !strings.Contains(got, "USER NAME: Guest") {
		t.Fatalf("expected guest placeholder, got:\n%s", got)
	}
	if !strings.HasSuffix(got, "ASSISTANT:") {
		t.Fatalf("expected trailing cue, got:\n%s", got)
	}
}

func TestBuildKeepsLongMessagesWhole(t *testing.T) {
	long := strings.Repeat("x", 10000)
	got := Build("system", "Alice", []domain.Message{{Role: domain.RoleUser, Content: long}})
	if !strings.Contains(got, long) {
		t.Fatalf("long message was truncated")
	}
}
