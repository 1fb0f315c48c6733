package poet

import (
	"html"
	"strings"
)

// shortPromptTokenLimit is the token count at or below which the fallback
// poem is truncated to its opening stanza.
const shortPromptTokenLimit = 3

var fillerPhrases = []string{"pipeline of", "Explain", "explain"}

// FallbackPoem deterministically synthesizes a short analytical poem from
// the user's prompt. It is the unconditional availability guarantee of the
// system: a pure function of the prompt string that never fails and always
// returns non-empty multi-line text, whatever the input looks like.
func FallbackPoem(prompt string) string {
	unescaped := strings.TrimSpace(html.UnescapeString(prompt))

	topic := unescaped
	for _, filler := range fillerPhrases {
		topic = strings.ReplaceAll(topic, filler, "")
	}
	// Filler removal leaves the surrounding spaces behind; collapse runs so
	// the topic reads naturally in line 1.
	topic = strings.Join(strings.Fields(topic), " ")
	if topic == "" {
		topic = "this topic"
	}

	lines := []string{
		"In careful lines I study " + topic + ",",
		"A generator dreams, a critic critiques;",
		"Adversarial rhythm tunes model feats,",
		"Yet metrics warn where shortcuts meet.",
		"Practical: validate with held-out sets,",
		"Audit samples, and record your bets.",
	}
	if len(strings.Fields(unescaped)) <= shortPromptTokenLimit {
		lines = lines[:4]
	}
	return strings.Join(lines, "\n")
}
