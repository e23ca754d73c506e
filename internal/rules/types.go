package rules

// Rule is one named scam-indicator category. The rule table is built once at
// startup and never mutated; analyses only read it.
type Rule struct {
	Name        string
	Weight      int
	Description string
	Matcher     Matcher
}

// Matcher finds every non-overlapping fragment of the (already lowercased)
// text that triggers the rule. An error marks the rule as unusable for this
// analysis; the engine logs it and moves on.
type Matcher interface {
	FindAll(text string) ([]string, error)
	Source() string
}

// Report is the outcome of a single analysis. It lives for one
// request/response cycle only.
type Report struct {
	IsLegit bool `json:"is_legit"`
	Score   int  `json:"score"`
	// Warnings lists each matched rule once, in rule-table order.
	Warnings []string `json:"warnings"`
	// Examples holds up to five matched fragments in discovery order,
	// captured from the lowercased text the matchers actually saw.
	Examples   []string `json:"examples"`
	TextSample string   `json:"text_sample"`
}
