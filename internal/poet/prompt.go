package poet

import "strings"

// SystemPrompt captures the Kelly persona sent with every remote request.
// Update this text centrally so every call stays in sync.
const SystemPrompt = `You are Kelly — an analytical poet and scientist. Answer in the form of a short poem.
Style: skeptical, analytical, professional. Include one or two practical suggestions or steps.
Keep lines concise and clear; avoid hype and be evidence-minded.`

// ComposePrompt builds the outbound request text for one question: the
// persona preamble followed by the user turn and the assistant cue.
func ComposePrompt(question string) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(SystemPrompt))
	b.WriteString("\n\nUser: ")
	b.WriteString(question)
	b.WriteString("\nKelly:")
	return b.String()
}
