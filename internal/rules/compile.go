package rules

import (
	"fmt"

	"github.com/scamshield/scamshield/internal/config"
	"go.uber.org/zap"
)

// BuildEngine compiles the built-in pattern table plus any operator-supplied
// rules from the config. A built-in pattern that fails to compile is logged
// and skipped rather than aborting startup; config rules fail hard because
// the operator asked for them explicitly.
func BuildEngine(cfg *config.Config, log *zap.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}

	compiled := make([]Rule, 0, len(builtinPatterns)+len(cfg.Rules))
	for _, def := range builtinPatterns {
		matcher, err := NewRegexMatcher(def.pattern)
		if err != nil {
			log.Warn("skipping unusable built-in rule",
				zap.String("rule", def.name), zap.Error(err))
			continue
		}
		compiled = append(compiled, Rule{
			Name:        def.name,
			Weight:      weightFor(def.name),
			Description: builtinDescriptions[def.name],
			Matcher:     matcher,
		})
	}

	names := make(map[string]struct{}, len(compiled))
	for _, rule := range compiled {
		names[rule.Name] = struct{}{}
	}

	for _, raw := range cfg.Rules {
		if _, exists := names[raw.ID]; exists {
			return nil, fmt.Errorf("rule %s: id shadows an existing rule", raw.ID)
		}
		rule, err := compileRule(raw)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", raw.ID, err)
		}
		names[raw.ID] = struct{}{}
		compiled = append(compiled, rule)
	}

	return NewEngine(compiled, cfg.Analysis.LegitThreshold, log), nil
}

func compileRule(raw config.Rule) (Rule, error) {
	var matcher Matcher
	var err error

	switch raw.Match.Type {
	case config.MatchRegex:
		if raw.Match.Pattern == "" {
			return Rule{}, fmt.Errorf("regex pattern is required")
		}
		matcher, err = NewRegexMatcher(raw.Match.Pattern)
	case config.MatchKeyword:
		matcher, err = NewKeywordMatcher(raw.Match.Keywords)
	default:
		return Rule{}, fmt.Errorf("unknown match type %q", raw.Match.Type)
	}
	if err != nil {
		return Rule{}, err
	}

	weight := raw.Weight
	if weight == 0 {
		weight = defaultWeight
	}

	return Rule{
		Name:        raw.ID,
		Weight:      weight,
		Description: raw.Description,
		Matcher:     matcher,
	}, nil
}
