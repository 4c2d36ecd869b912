package coldemail

import "context"

// Message is an outgoing email.
type Message struct {
	To       string   `json:"to_email"`
	Subject  string   `json:"subject"`
	Body     string   `json:"body"`
	FromName string   `json:"from_name,omitempty"`
	CC       []string `json:"cc,omitempty"`
	BCC      []string `json:"bcc,omitempty"`
}

// SendResult reports the outcome of a delivery attempt.
type SendResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MailSender delivers email through a mail provider.
type MailSender interface {
	// Send delivers msg. Delivery failures are reported in the result
	// with a human-readable message; the error is reserved for invalid
	// input (EINVALID).
	Send(ctx context.Context, msg Message) (*SendResult, error)
}
