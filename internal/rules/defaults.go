package rules

// Built-in job-offer scam indicators. Order matters: warnings surface in this
// order and the first five matched fragments come from earlier rules first.
//
// Patterns run against lowercased text. Amount patterns accept comma-grouped
// figures ("₹50,000") and a bare "registration" mention counts as a fee ask.
var builtinPatterns = []struct {
	name    string
	pattern string
}{
	{"registration_fee", `(registration(\s+fee)?|deposit|upfront\s+payment|investment|security\s+deposit|token\s+security|processing\s+charge|verification\s+fee|document\s+charge)`},
	{"high_income", `(earn\s+(₹|\$|€|rs\.?)\s?\d[\d,]{3,}\s*(per|/)\s*(month|week|day|hour)|make\s+\d[\d,]{3,}\s+from\s+home)`},
	{"no_interview", `(no\s+interview|immediate\s+join(ing)?|direct\s+hiring|instant\s+(job|offer)|guaranteed\s+job)`},
	{"urgency", `(limited\s+seats|only\s+today|offer\s+expires|join\s+now|urgent\s+hiring|apply\s+immediately|few\s+positions\s+left|block\s+your\s+slot)`},
	{"payment_request", `(pay\s+(₹|\$|€|rs\.?)\s?\d+|send\s+money|pay\s+(first|advance|now)|wallet\s+transfer|bank\s+details|payment\s+required|gpay|phonepe|paytm)`},
	{"document_request", `((send|share)\s+(your\s+)?(pan|aadhaar|id\s+proof)|upload\s+documents\s+first|share\s+personal\s+details)`},
}

// severityWeights is the score penalty per matched category. Categories
// absent here cost defaultWeight. The sum may exceed 100; scores floor at 0.
var severityWeights = map[string]int{
	"payment_request":  30,
	"registration_fee": 25,
	"high_income":      20,
	"urgency":          15,
	"no_interview":     10,
}

const defaultWeight = 10

var builtinDescriptions = map[string]string{
	"registration_fee": "Upfront fees disguised as registration or deposits",
	"high_income":      "Unrealistic income promises",
	"no_interview":     "Job offered without any hiring process",
	"urgency":          "Pressure to act immediately",
	"payment_request":  "Direct requests for money or payment details",
	"document_request": "Premature requests for identity documents",
}

// categoryDescriptions is the human-readable category legend served by
// /get-scam-patterns.
var categoryDescriptions = map[string]string{
	"payment":     "Payment Requests (requests for money)",
	"urgency":     "Urgency Tactics (pressure to act fast)",
	"no_process":  "No Proper Hiring Process",
	"documents":   "Suspicious Document Requests",
	"unrealistic": "Unrealistic Offers",
}

// CategoryDescriptions returns the static category legend.
func CategoryDescriptions() map[string]string {
	out := make(map[string]string, len(categoryDescriptions))
	for k, v := range categoryDescriptions {
		out[k] = v
	}
	return out
}

func weightFor(name string) int {
	if w, ok := severityWeights[name]; ok {
		return w
	}
	return defaultWeight
}
