package rules

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/scamshield/scamshield/internal/config"
)

func defaultEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := BuildEngine(config.Default(), nil)
	if err != nil {
		t.Fatalf("BuildEngine error: %v", err)
	}
	return engine
}

func TestAnalyzeLegitInterview(t *testing.T) {
	engine := defaultEngine(t)

	report := engine.Analyze("Interview invitation from TCS for Python developer role on March 15th. No fees required.")
	if len(report.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", report.Warnings)
	}
	if report.Score != 100 {
		t.Fatalf("expected score 100, got %d", report.Score)
	}
	if !report.IsLegit {
		t.Fatal("expected legit verdict")
	}
}

func TestAnalyzePaymentWithoutInterview(t *testing.T) {
	engine := defaultEngine(t)

	report := engine.Analyze("Pay ₹1500 to get your Amazon job offer letter today! No interview needed!")
	expected := []string{"no_interview", "payment_request"}
	if !reflect.DeepEqual(report.Warnings, expected) {
		t.Fatalf("expected warnings %v, got %v", expected, report.Warnings)
	}
	if report.Score != 60 {
		t.Fatalf("expected score 60, got %d", report.Score)
	}
	if report.IsLegit {
		t.Fatal("expected scam verdict")
	}
}

func TestAnalyzeWorkFromHomeScam(t *testing.T) {
	engine := defaultEngine(t)

	report := engine.Analyze("Earn ₹50,000/month from home! Just share your Aadhaar and pay ₹999 registration.")
	for _, want := range []string{"high_income", "registration_fee", "payment_request"} {
		if !containsString(report.Warnings, want) {
			t.Fatalf("expected warning %q in %v", want, report.Warnings)
		}
	}
	if report.Score > 25 {
		t.Fatalf("expected penalty of at least 75, got score %d", report.Score)
	}
	if report.IsLegit {
		t.Fatal("expected scam verdict")
	}
}

func TestScoreAtThresholdIsNotLegit(t *testing.T) {
	engine := defaultEngine(t)

	report := engine.Analyze("Please pay ₹500 now.")
	if !reflect.DeepEqual(report.Warnings, []string{"payment_request"}) {
		t.Fatalf("expected only payment_request, got %v", report.Warnings)
	}
	if report.Score != 70 {
		t.Fatalf("expected score 70, got %d", report.Score)
	}
	if report.IsLegit {
		t.Fatal("score of exactly 70 must not be legit")
	}
}

func TestScoreFloorsAtZero(t *testing.T) {
	engine := defaultEngine(t)

	report := engine.Analyze("No interview! Pay ₹999 deposit via GPay, urgent hiring, earn ₹90,000/month, share your Aadhaar now.")
	if report.Score != 0 {
		t.Fatalf("expected floor of 0, got %d", report.Score)
	}
	if report.IsLegit {
		t.Fatal("expected scam verdict")
	}
}

func TestRepeatedPhrasePenalisesOnce(t *testing.T) {
	engine := defaultEngine(t)

	once := engine.Analyze("Pay via gpay.")
	thrice := engine.Analyze("gpay gpay gpay")
	if once.Score != thrice.Score {
		t.Fatalf("repeats must not change the score: %d vs %d", once.Score, thrice.Score)
	}
	if !reflect.DeepEqual(once.Warnings, thrice.Warnings) {
		t.Fatalf("repeats must not change warnings: %v vs %v", once.Warnings, thrice.Warnings)
	}
	if len(thrice.Examples) != 3 {
		t.Fatalf("expected 3 example fragments, got %v", thrice.Examples)
	}
}

func TestExamplesCappedAtFive(t *testing.T) {
	engine := defaultEngine(t)

	report := engine.Analyze(strings.Repeat("gpay ", 9))
	if len(report.Examples) != 5 {
		t.Fatalf("expected 5 examples, got %d", len(report.Examples))
	}
	// The cap must not hide the rule from scoring.
	if report.Score != 70 {
		t.Fatalf("expected score 70, got %d", report.Score)
	}
}

func TestExamplesAreLowercased(t *testing.T) {
	engine := defaultEngine(t)

	report := engine.Analyze("Pay via GPay today.")
	if !reflect.DeepEqual(report.Examples, []string{"gpay"}) {
		t.Fatalf("expected lowercased fragment, got %v", report.Examples)
	}
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	engine := defaultEngine(t)

	input := "Urgent hiring! Pay ₹999 registration via PhonePe. No interview needed."
	first := engine.Analyze(input)
	second := engine.Analyze(input)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical reports, got %+v vs %+v", first, second)
	}
}

func TestScoreAlwaysInRange(t *testing.T) {
	engine := defaultEngine(t)

	inputs := []string{
		"",
		"plain text with nothing suspicious",
		"pay ₹1 pay ₹2 pay ₹3 deposit gpay paytm urgent hiring no interview",
		strings.Repeat("registration fee ", 50),
	}
	for _, input := range inputs {
		report := engine.Analyze(input)
		if report.Score < 0 || report.Score > 100 {
			t.Fatalf("score out of range for %q: %d", input, report.Score)
		}
		if report.IsLegit != (report.Score > 70) {
			t.Fatalf("verdict must derive from score for %q", input)
		}
	}
}

func TestTextSampleTruncation(t *testing.T) {
	engine := defaultEngine(t)

	short := strings.Repeat("a", 200)
	if got := engine.Analyze(short).TextSample; got != short {
		t.Fatalf("expected untouched sample for 200 chars, got %d chars", len(got))
	}

	long := strings.Repeat("₹", 201)
	got := engine.Analyze(long).TextSample
	want := strings.Repeat("₹", 200) + "..."
	if got != want {
		t.Fatalf("expected 200-rune sample with marker, got %d bytes", len(got))
	}
}

func TestTextSampleKeepsOriginalCase(t *testing.T) {
	engine := defaultEngine(t)

	report := engine.Analyze("Pay ₹999 NOW")
	if report.TextSample != "Pay ₹999 NOW" {
		t.Fatalf("expected original-case sample, got %q", report.TextSample)
	}
}

type failingMatcher struct{}

func (failingMatcher) FindAll(string) ([]string, error) { return nil, errors.New("boom") }
func (failingMatcher) Source() string                   { return "boom" }

func TestFailingRuleIsSkipped(t *testing.T) {
	good, err := NewRegexMatcher(`gpay`)
	if err != nil {
		t.Fatalf("regex compile: %v", err)
	}

	engine := NewEngine([]Rule{
		{Name: "broken", Weight: 50, Matcher: failingMatcher{}},
		{Name: "payment_request", Weight: 30, Matcher: good},
	}, 70, nil)

	report := engine.Analyze("send it via gpay")
	if !reflect.DeepEqual(report.Warnings, []string{"payment_request"}) {
		t.Fatalf("expected remaining rules to run, got %v", report.Warnings)
	}
	if report.Score != 70 {
		t.Fatalf("broken rule must not penalise, got score %d", report.Score)
	}
}

func TestBuildEngineCompilesKeywordRules(t *testing.T) {
	cfg := config.Default()
	cfg.Rules = []config.Rule{{
		ID:          "crypto_salary",
		Weight:      20,
		Description: "Salary paid in cryptocurrency",
		Match:       config.RuleMatch{Type: config.MatchKeyword, Keywords: []string{"Paid In Bitcoin", "usdt salary"}},
	}}

	engine, err := BuildEngine(cfg, nil)
	if err != nil {
		t.Fatalf("BuildEngine error: %v", err)
	}

	report := engine.Analyze("Great role, salary paid in bitcoin every Friday.")
	if !containsString(report.Warnings, "crypto_salary") {
		t.Fatalf("expected keyword rule to match, got %v", report.Warnings)
	}
	if report.Score != 80 {
		t.Fatalf("expected score 80, got %d", report.Score)
	}
}

func TestBuildEngineRejectsShadowedRuleID(t *testing.T) {
	cfg := config.Default()
	cfg.Rules = []config.Rule{{
		ID:    "payment_request",
		Match: config.RuleMatch{Type: config.MatchRegex, Pattern: "x"},
	}}

	if _, err := BuildEngine(cfg, nil); err == nil {
		t.Fatal("expected duplicate rule id to be rejected")
	}
}

func TestPatternsExposeEveryRule(t *testing.T) {
	engine := defaultEngine(t)

	patterns := engine.Patterns()
	if len(patterns) != len(engine.Rules()) {
		t.Fatalf("expected %d patterns, got %d", len(engine.Rules()), len(patterns))
	}
	if patterns["payment_request"] == "" {
		t.Fatal("expected payment_request pattern source")
	}
}

func containsString(list []string, want string) bool {
	for _, item := range list {
		if item == want {
			return true
		}
	}
	return false
}
