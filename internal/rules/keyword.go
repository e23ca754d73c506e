package rules

import (
	"errors"
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// KeywordMatcher reports which of a fixed phrase list appear in the text.
// Each phrase is reported at most once per analysis.
type KeywordMatcher struct {
	matcher *ahocorasick.Matcher
	phrases []string
}

func NewKeywordMatcher(phrases []string) (*KeywordMatcher, error) {
	lowered := make([]string, 0, len(phrases))
	for _, phrase := range phrases {
		phrase = strings.ToLower(strings.TrimSpace(phrase))
		if phrase == "" {
			continue
		}
		lowered = append(lowered, phrase)
	}
	if len(lowered) == 0 {
		return nil, errors.New("at least one keyword is required")
	}

	return &KeywordMatcher{
		matcher: ahocorasick.NewStringMatcher(lowered),
		phrases: lowered,
	}, nil
}

func (m *KeywordMatcher) FindAll(text string) ([]string, error) {
	hits := m.matcher.Match([]byte(text))
	if len(hits) == 0 {
		return nil, nil
	}

	out := make([]string, 0, len(hits))
	for _, hit := range hits {
		out = append(out, m.phrases[hit])
	}
	return out, nil
}

func (m *KeywordMatcher) Source() string {
	return strings.Join(m.phrases, "|")
}
