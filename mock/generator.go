package mock

import (
	"context"

	coldemail "github.com/thakurdishanttt/cold-email-gen"
)

var _ coldemail.EmailGenerator = (*EmailGenerator)(nil)

// EmailGenerator is a mock implementation of coldemail.EmailGenerator.
type EmailGenerator struct {
	GenerateFn func(ctx context.Context, profile *coldemail.CompanyProfile, sender coldemail.SenderInfo) (*coldemail.Email, error)
}

func (g *EmailGenerator) Generate(ctx context.Context, profile *coldemail.CompanyProfile, sender coldemail.SenderInfo) (*coldemail.Email, error) {
	return g.GenerateFn(ctx, profile, sender)
}
