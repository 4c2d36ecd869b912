// Package gmail implements coldemail.MailSender on top of the Gmail API.
package gmail

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	coldemail "github.com/thakurdishanttt/cold-email-gen"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// Ensure Sender implements coldemail.MailSender at compile time.
var _ coldemail.MailSender = (*Sender)(nil)

// Sender delivers email through the authenticated Gmail account.
type Sender struct {
	svc  *gmail.Service
	from string
}

// NewSender creates a Sender for the given from address. Credentials are
// resolved by the Google API client (application default credentials or
// the provided client options).
func NewSender(ctx context.Context, from string, opts ...option.ClientOption) (*Sender, error) {
	if from == "" {
		return nil, coldemail.Errorf(coldemail.EINVALID, "from address required")
	}
	svc, err := gmail.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create gmail service: %w", err)
	}
	return &Sender{svc: svc, from: from}, nil
}

// Send delivers msg through Gmail. Delivery failures are reported in the
// result rather than as errors; only invalid input errors.
func (s *Sender) Send(ctx context.Context, msg coldemail.Message) (*coldemail.SendResult, error) {
	if msg.To == "" {
		return nil, coldemail.Errorf(coldemail.EINVALID, "recipient address required")
	}
	if msg.Subject == "" {
		return nil, coldemail.Errorf(coldemail.EINVALID, "subject required")
	}

	raw := base64.URLEncoding.EncodeToString([]byte(BuildRFC822(s.from, msg)))
	_, err := s.svc.Users.Messages.Send("me", &gmail.Message{Raw: raw}).Context(ctx).Do()
	if err != nil {
		return &coldemail.SendResult{
			Success: false,
			Message: fmt.Sprintf("Failed to send email to %s: %v", msg.To, err),
		}, nil
	}

	return &coldemail.SendResult{
		Success: true,
		Message: fmt.Sprintf("Email sent successfully to %s", msg.To),
	}, nil
}

// BuildRFC822 assembles the raw RFC 2822 message Gmail expects.
func BuildRFC822(from string, msg coldemail.Message) string {
	var sb strings.Builder

	if msg.FromName != "" {
		fmt.Fprintf(&sb, "From: %s <%s>\r\n", msg.FromName, from)
	} else {
		fmt.Fprintf(&sb, "From: %s\r\n", from)
	}
	fmt.Fprintf(&sb, "To: %s\r\n", msg.To)
	if len(msg.CC) > 0 {
		fmt.Fprintf(&sb, "Cc: %s\r\n", strings.Join(msg.CC, ", "))
	}
	if len(msg.BCC) > 0 {
		fmt.Fprintf(&sb, "Bcc: %s\r\n", strings.Join(msg.BCC, ", "))
	}
	fmt.Fprintf(&sb, "Subject: %s\r\n", msg.Subject)
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(msg.Body)

	return sb.String()
}
