package chat

import (
	"strings"
	"testing"

	"kelly/internal/reply"
)

func TestSessionAppendOrder(t *testing.T) {
	session := NewSession()
	if session.ID() == "" {
		t.Fatal("expected a session id")
	}
	session.AppendUser("first question")
	session.AppendAssistant(reply.Result{Text: "first answer", Source: reply.SourceRemote})
	session.AppendUser("second question")

	turns := session.Turns()
	if len(turns) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(turns))
	}
	if turns[0].Role != RoleUser || turns[1].Role != RoleAssistant || turns[2].Role != RoleUser {
		t.Fatalf("unexpected role order %+v", turns)
	}
	if turns[1].Content != "first answer" {
		t.Fatalf("remote result must render verbatim, got %q", turns[1].Content)
	}
}

func TestSessionIgnoresBlankUserTurns(t *testing.T) {
	session := NewSession()
	session.AppendUser("")
	session.AppendUser("   \t")
	if session.Len() != 0 {
		t.Fatalf("expected blank submissions to be ignored, got %d turns", session.Len())
	}
}

func TestSessionClear(t *testing.T) {
	session := NewSession()
	id := session.ID()
	session.AppendUser("hello")
	session.Clear()
	if session.Len() != 0 {
		t.Fatalf("expected empty transcript after clear, got %d turns", session.Len())
	}
	if session.ID() != id {
		t.Fatal("clear must retain the session id")
	}
}

func TestSessionTurnsReturnsCopy(t *testing.T) {
	session := NewSession()
	session.AppendUser("hello")
	turns := session.Turns()
	turns[0].Content = "mutated"
	if session.Turns()[0].Content != "hello" {
		t.Fatal("Turns must return a defensive copy")
	}
}

func TestRenderResultAppendsFallbackNotice(t *testing.T) {
	rendered := RenderResult(reply.Result{Text: "a local poem", Source: reply.SourceFallback})
	if !strings.HasPrefix(rendered, "a local poem\n\n") {
		t.Fatalf("expected two newlines before the notice, got %q", rendered)
	}
	if !strings.HasSuffix(rendered, FallbackNotice) {
		t.Fatalf("expected fallback notice suffix, got %q", rendered)
	}

	remote := RenderResult(reply.Result{Text: "a remote poem", Source: reply.SourceRemote})
	if remote != "a remote poem" {
		t.Fatalf("remote results must not carry the notice, got %q", remote)
	}
}
