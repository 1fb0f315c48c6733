package chat

import (
	"strings"

	"github.com/google/uuid"

	"kelly/internal/reply"
)

// Role identifies who produced a transcript turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one entry in the transcript.
type Turn struct {
	Role    Role
	Content string
}

// FallbackNotice is the disclosure appended to every fallback-tagged reply
// before display.
const FallbackNotice = "(Kelly note: the model returned no text; showing a local analytical fallback.)"

// RenderResult produces the displayable assistant text for a reply result,
// appending the fallback disclosure when the text was synthesized locally.
func RenderResult(res reply.Result) string {
	if res.Source == reply.SourceFallback {
		return res.Text + "\n\n" + FallbackNotice
	}
	return res.Text
}

// Session is the append-only transcript of one user session. It lives in
// memory for the lifetime of the running UI process; turns are removed only
// by an explicit Clear.
type Session struct {
	id    string
	turns []Turn
}

// NewSession creates an empty transcript with a fresh session identifier.
func NewSession() *Session {
	return &Session{id: uuid.NewString()}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// AppendUser records a user turn. Blank submissions are ignored.
func (s *Session) AppendUser(content string) {
	if strings.TrimSpace(content) == "" {
		return
	}
	s.turns = append(s.turns, Turn{Role: RoleUser, Content: content})
}

// AppendAssistant records the rendered assistant text for a reply result.
func (s *Session) AppendAssistant(res reply.Result) {
	s.turns = append(s.turns, Turn{Role: RoleAssistant, Content: RenderResult(res)})
}

// Turns returns a copy of the transcript in order.
func (s *Session) Turns() []Turn {
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Len reports the number of turns recorded so far.
func (s *Session) Len() int {
	return len(s.turns)
}

// Clear empties the transcript. The session identifier is retained.
func (s *Session) Clear() {
	s.turns = nil
}
