package gemini

import "strings"

// ExtractText pulls displayable text out of a generateContent response by
// walking candidates -> content -> parts. Every non-empty trimmed part is
// collected in order and joined with newlines. Absence at any level (nil
// response, no candidates, nil content, empty parts) contributes nothing;
// ok is false when no text survived.
func ExtractText(resp *GenerateResponse) (string, bool) {
	if resp == nil {
		return "", false
	}
	var collected []string
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if trimmed := strings.TrimSpace(part.Text); trimmed != "" {
				collected = append(collected, trimmed)
			}
		}
	}
	if len(collected) == 0 {
		return "", false
	}
	return strings.Join(collected, "\n"), true
}

// FirstFinishReason returns the first candidate's finish reason, or the
// empty value when the response carries no candidates.
func FirstFinishReason(resp *GenerateResponse) FinishReason {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	return resp.Candidates[0].FinishReason
}
