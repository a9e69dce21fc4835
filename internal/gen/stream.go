package gen

import (
	"io"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
)

// Stream is a consumable, non-restartable sequence of text fragments.
// Next returns the next fragment, io.EOF on clean completion, or the
// stream's error. A Stream cannot be rewound or aborted early.
type Stream interface {
	Next() (string, error)
}

// respStream adapts the genai response iterator to Stream, flattening each
// response's text parts into one fragment.
type respStream struct {
	it *genai.GenerateContentResponseIterator
}

func (s *respStream) Next() (string, error) {
	resp, err := s.it.Next()
	if err == iterator.Done {
		return "", io.EOF
	}
	if err != nil {
		return "", err
	}
	return joinTextParts(resp), nil
}

func joinTextParts(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return b.String()
}
