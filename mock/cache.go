package mock

import (
	"context"

	coldemail "github.com/thakurdishanttt/cold-email-gen"
)

var _ coldemail.ProfileCache = (*ProfileCache)(nil)

// ProfileCache is a mock implementation of coldemail.ProfileCache.
type ProfileCache struct {
	GetFn func(ctx context.Context, key string) (*coldemail.CompanyProfile, error)
	SetFn func(ctx context.Context, key string, profile *coldemail.CompanyProfile) error
}

func (c *ProfileCache) Get(ctx context.Context, key string) (*coldemail.CompanyProfile, error) {
	return c.GetFn(ctx, key)
}

func (c *ProfileCache) Set(ctx context.Context, key string, profile *coldemail.CompanyProfile) error {
	return c.SetFn(ctx, key, profile)
}
