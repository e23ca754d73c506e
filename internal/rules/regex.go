package rules

import "regexp"

type RegexMatcher struct {
	re *regexp.Regexp
}

func NewRegexMatcher(pattern string) (*RegexMatcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &RegexMatcher{re: re}, nil
}

func (m *RegexMatcher) FindAll(text string) ([]string, error) {
	return m.re.FindAllString(text, -1), nil
}

func (m *RegexMatcher) Source() string {
	return m.re.String()
}
