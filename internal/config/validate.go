package config

import (
	"errors"
	"fmt"
	"net"
	"regexp"
	"sort"
	"strings"
)

type ValidationError struct {
	Problems []string
}

func (v *ValidationError) Add(format string, args ...any) {
	v.Problems = append(v.Problems, fmt.Sprintf(format, args...))
}

func (v *ValidationError) Error() string {
	return fmt.Sprintf("%d validation error(s)", len(v.Problems))
}

func (c *Config) Validate() error {
	v := &ValidationError{}

	if c.ConfigVersion != 1 {
		v.Add("configVersion must be 1")
	}

	if err := validateListen(c.Server.Listen); err != nil {
		v.Add("server.listen invalid: %v", err)
	}

	if c.Limits.MaxUploadBytes <= 0 {
		v.Add("limits.maxUploadBytes must be > 0")
	}

	if c.Analysis.LegitThreshold < 0 || c.Analysis.LegitThreshold > 100 {
		v.Add("analysis.legitThreshold must be in [0,100]")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		v.Add("logging.level must be debug|info|warn|error")
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		v.Add("logging.format must be console|json")
	}

	if c.Metrics.Enabled {
		if err := validateListen(c.Metrics.Listen); err != nil {
			v.Add("metrics.listen invalid: %v", err)
		}
	}

	ruleIDs := map[string]struct{}{}
	for i, rule := range c.Rules {
		if rule.ID == "" {
			v.Add("rules[%d].id is required", i)
		} else if _, exists := ruleIDs[rule.ID]; exists {
			v.Add("rules[%d].id %q is duplicated", i, rule.ID)
		} else {
			ruleIDs[rule.ID] = struct{}{}
		}

		if rule.Weight < 0 || rule.Weight > 100 {
			v.Add("rules[%d].weight must be in [0,100]", i)
		}

		switch rule.Match.Type {
		case MatchRegex:
			if rule.Match.Pattern == "" {
				v.Add("rules[%d].match.pattern is required for regex", i)
			} else if _, err := regexp.Compile(rule.Match.Pattern); err != nil {
				v.Add("rules[%d].match.pattern invalid: %v", i, err)
			}
		case MatchKeyword:
			if len(nonEmptyKeywords(rule.Match.Keywords)) == 0 {
				v.Add("rules[%d].match.keywords must have at least one entry", i)
			}
		case "":
			v.Add("rules[%d].match.type is required", i)
		default:
			v.Add("rules[%d].match.type must be regex|keyword", i)
		}
	}

	if len(v.Problems) > 0 {
		sort.Strings(v.Problems)
		return v
	}
	return nil
}

func nonEmptyKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if strings.TrimSpace(k) != "" {
			out = append(out, k)
		}
	}
	return out
}

func validateListen(addr string) error {
	if strings.TrimSpace(addr) == "" {
		return errors.New("address is required")
	}
	if _, err := net.ResolveTCPAddr("tcp", addr); err != nil {
		return err
	}
	return nil
}
