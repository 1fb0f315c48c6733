package gemini

import "testing"

func TestExtractTextJoinsAllParts(t *testing.T) {
	resp := &GenerateResponse{
		Candidates: []Candidate{
			{
				Content: &Content{Parts: []Part{
					{Text: "  first line  "},
					{Text: ""},
					{Text: "second line"},
				}},
			},
			{
				Content: &Content{Parts: []Part{{Text: "third line\n"}}},
			},
		},
	}
	text, ok := ExtractText(resp)
	if !ok {
		t.Fatal("expected text to be extracted")
	}
	if text != "first line\nsecond line\nthird line" {
		t.Fatalf("unexpected join result %q", text)
	}
}

func TestExtractTextEmptyCases(t *testing.T) {
	cases := map[string]*GenerateResponse{
		"nil response":    nil,
		"zero candidates": {},
		"nil content":     {Candidates: []Candidate{{FinishReason: FinishReasonSafety}}},
		"empty parts":     {Candidates: []Candidate{{Content: &Content{}}}},
		"blank text": {Candidates: []Candidate{{
			Content: &Content{Parts: []Part{{Text: "   "}, {Text: "\n\t"}}},
		}}},
	}
	for name, resp := range cases {
		if text, ok := ExtractText(resp); ok || text != "" {
			t.Fatalf("%s: expected no text, got %q ok=%v", name, text, ok)
		}
	}
}

func TestFirstFinishReason(t *testing.T) {
	if got := FirstFinishReason(nil); got != "" {
		t.Fatalf("expected empty reason for nil response, got %q", got)
	}
	if got := FirstFinishReason(&GenerateResponse{}); got != "" {
		t.Fatalf("expected empty reason without candidates, got %q", got)
	}
	resp := &GenerateResponse{Candidates: []Candidate{
		{FinishReason: FinishReasonSafety},
		{FinishReason: FinishReasonStop},
	}}
	if got := FirstFinishReason(resp); got != FinishReasonSafety {
		t.Fatalf("expected first candidate reason, got %q", got)
	}
}
