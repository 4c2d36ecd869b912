package coldemail

import "context"

// Email is a drafted outreach email.
type Email struct {
	Subject string `json:"email_subject"`
	Body    string `json:"email_body"`
}

// SenderInfo describes the party on whose behalf emails are drafted.
type SenderInfo struct {
	Name           string `json:"name"`
	Company        string `json:"company"`
	Specialization string `json:"specialization"`
	Phone          string `json:"phone"`
	Website        string `json:"website"`
}

// EmailGenerator drafts a personalized cold email from a company profile.
//
// Implementations must tolerate an all-empty profile gracefully (the
// scraper is best-effort) and must return a deterministic fallback draft
// rather than an error when the upstream language model is unavailable.
type EmailGenerator interface {
	Generate(ctx context.Context, profile *CompanyProfile, sender SenderInfo) (*Email, error)
}
