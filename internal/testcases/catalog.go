// Package testcases holds the fixed demonstration corpus served by
// /test-cases so clients can exercise the classifier.
package testcases

// The catalog order is part of the API: indices 0-6 are legitimate messages,
// 7-15 known scams, 16-22 tricky borderline cases.
var catalog = []string{
	"Interview invitation from TCS for Python developer role on March 15th. No fees required.",
	"Infosys hiring process: Technical round scheduled for next week. Bring your government ID.",
	"Hi Ravi, we reviewed your profile on LinkedIn. We'd like to invite you to a TCS interview next week. Please confirm availability.",
	"Your resume impressed us! Join Infosys Bangalore for an in-person round on Monday. No fees involved.",
	"This is from Accenture HR. You are invited to a virtual assessment. Bring ID and resume. No charges.",
	"Dear Priya, you are selected for Capgemini hiring challenge. Login to the portal using your email and appear for the test.",
	"Your profile is shortlisted for Data Analyst role at Deloitte. Interview will be conducted over MS Teams this Friday.",

	"Pay ₹1500 to get your Amazon job offer letter today! No interview needed!",
	"Earn ₹50,000/month from home! Just share your Aadhaar and pay ₹999 registration.",
	"Congratulations! You got a job at Amazon. Pay ₹999 for offer letter and verification.",
	"Want to earn ₹50,000/month from home? No skills needed. Immediate joining. ₹499 registration required.",
	"Get your Wipro job card after paying ₹800 via GPay. Instant offer.",
	"No interview needed! Pay now and start working with Flipkart remote jobs. Just ₹999 for ID creation.",
	"You have been shortlisted for a government job. Pay document verification fee to proceed further.",
	"Join Google support team. Pay ₹1000 refundable fee for background check.",
	"Hi! We offer freelance roles in IBM. Please send PAN + Aadhaar and ₹599 to begin onboarding.",

	"Microsoft requires ₹2999 refundable deposit for onboarding. Submit via PhonePe.",
	"We are scheduling your interview for HCL Technologies. Before that, a security deposit of ₹1200 is needed to block your slot.",
	"You have been pre-selected by Cognizant. For quick onboarding, pay ₹699 as token security.",
	"Your resume was shortlisted by Microsoft India. Just pay refundable ₹899 processing charge to receive offer letter.",
	"Swiggy delivery partner openings. Earn ₹25,000/month. Registration closes today, apply immediately.",
	"Genuine work from home data entry with Tech Mahindra. Security deposit refundable after 3 months.",
	"HR from Byju's here. Your offer letter is ready, complete the document verification fee of ₹350 to release it.",
}

const (
	legitEnd = 7
	scamEnd  = 16
)

func Legit() []string {
	return clone(catalog[:legitEnd])
}

func Scams() []string {
	return clone(catalog[legitEnd:scamEnd])
}

func Tricky() []string {
	return clone(catalog[scamEnd:])
}

func All() []string {
	return clone(catalog)
}

func clone(messages []string) []string {
	return append([]string(nil), messages...)
}
