package rules

import (
	"github.com/scamshield/scamshield/internal/normalize"
	"go.uber.org/zap"
)

const (
	maxExamples = 5
	sampleRunes = 200
)

// Engine evaluates the fixed rule table against free-form text. It holds no
// mutable state, so one engine serves concurrent requests without locking.
type Engine struct {
	rules     []Rule
	threshold int
	log       *zap.Logger
}

func NewEngine(table []Rule, threshold int, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{rules: table, threshold: threshold, log: log}
}

// Analyze scores the text against every rule and returns the per-request
// report. A rule that fails to evaluate is skipped; the rest still run.
func (e *Engine) Analyze(text string) Report {
	lowered := normalize.Apply(text, normalize.Options{Lowercase: true})

	warnings := make([]string, 0, len(e.rules))
	examples := make([]string, 0, maxExamples)
	penalty := 0

	for _, rule := range e.rules {
		fragments, err := rule.Matcher.FindAll(lowered)
		if err != nil {
			e.log.Warn("rule evaluation failed",
				zap.String("rule", rule.Name), zap.Error(err))
			continue
		}
		if len(fragments) == 0 {
			continue
		}

		// Each rule penalises once no matter how often it matches.
		warnings = append(warnings, rule.Name)
		penalty += rule.Weight
		examples = append(examples, fragments...)
	}

	score := 100 - penalty
	if score < 0 {
		score = 0
	}

	if len(examples) > maxExamples {
		examples = examples[:maxExamples]
	}

	return Report{
		IsLegit:    score > e.threshold,
		Score:      score,
		Warnings:   warnings,
		Examples:   examples,
		TextSample: sample(text),
	}
}

// Patterns returns rule name to pattern source, for the patterns endpoint.
func (e *Engine) Patterns() map[string]string {
	out := make(map[string]string, len(e.rules))
	for _, rule := range e.rules {
		out[rule.Name] = rule.Matcher.Source()
	}
	return out
}

// Rules returns the table in declaration order.
func (e *Engine) Rules() []Rule {
	return e.rules
}

// sample keeps the first 200 runes of the original-case text, marking
// truncation. Runes, not bytes: inputs are full of multi-byte currency signs.
func sample(text string) string {
	runes := []rune(text)
	if len(runes) <= sampleRunes {
		return text
	}
	return string(runes[:sampleRunes]) + "..."
}
