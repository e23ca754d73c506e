package normalize

import (
	"strings"
	"unicode"
)

type Options struct {
	Lowercase          bool
	CollapseWhitespace bool
	StripControl       bool
}

// Apply canonicalises document text. StripControl removes control runes and
// decoder replacement characters but keeps newlines and tabs; CollapseWhitespace
// folds whitespace runs into single spaces and trims the ends.
func Apply(input string, opts Options) string {
	out := input

	if opts.StripControl {
		out = strings.Map(stripControlRune, out)
	}
	if opts.CollapseWhitespace {
		out = strings.Join(strings.Fields(out), " ")
	}
	if opts.Lowercase {
		out = strings.ToLower(out)
	}

	return out
}

func stripControlRune(r rune) rune {
	if r == '\n' || r == '\t' {
		return r
	}
	if unicode.IsControl(r) || r == unicode.ReplacementChar {
		return -1
	}
	return r
}
