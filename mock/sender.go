package mock

import (
	"context"

	coldemail "github.com/thakurdishanttt/cold-email-gen"
)

var _ coldemail.MailSender = (*MailSender)(nil)

// MailSender is a mock implementation of coldemail.MailSender.
type MailSender struct {
	SendFn func(ctx context.Context, msg coldemail.Message) (*coldemail.SendResult, error)
}

func (s *MailSender) Send(ctx context.Context, msg coldemail.Message) (*coldemail.SendResult, error) {
	return s.SendFn(ctx, msg)
}
