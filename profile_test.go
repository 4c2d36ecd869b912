package coldemail_test

import (
	"testing"

	coldemail "github.com/thakurdishanttt/cold-email-gen"

	"github.com/stretchr/testify/assert"
)

func TestNewCompanyProfile(t *testing.T) {
	t.Parallel()

	p := coldemail.NewCompanyProfile()

	assert.Empty(t, p.Name)
	assert.Empty(t, p.Description)
	assert.Empty(t, p.About)
	assert.Empty(t, p.Contact)
	assert.Empty(t, p.Industry)
	assert.NotNil(t, p.ProductsServices)
	assert.NotNil(t, p.Values)
	assert.NotNil(t, p.Team)
	assert.NotNil(t, p.Clients)
}

func TestCompanyProfile_AddService(t *testing.T) {
	t.Parallel()

	t.Run("deduplicates by exact text", func(t *testing.T) {
		t.Parallel()

		p := coldemail.NewCompanyProfile()

		assert.True(t, p.AddService("Cloud Migration"))
		assert.False(t, p.AddService("Cloud Migration"))
		assert.True(t, p.AddService("cloud migration")) // case-sensitive

		assert.Equal(t, []string{"Cloud Migration", "cloud migration"}, p.ProductsServices)
	})

	t.Run("rejects empty entries", func(t *testing.T) {
		t.Parallel()

		p := coldemail.NewCompanyProfile()

		assert.False(t, p.AddService(""))
		assert.Empty(t, p.ProductsServices)
	})
}

func TestCompanyProfile_AddValue(t *testing.T) {
	t.Parallel()

	p := coldemail.NewCompanyProfile()

	assert.True(t, p.AddValue("Integrity"))
	assert.False(t, p.AddValue("Integrity"))
	assert.True(t, p.AddValue("Innovation"))

	assert.Equal(t, []string{"Integrity", "Innovation"}, p.Values)
}

func TestCompanyProfile_Clone(t *testing.T) {
	t.Parallel()

	t.Run("mutating the clone leaves the original untouched", func(t *testing.T) {
		t.Parallel()

		p := coldemail.NewCompanyProfile()
		p.Name = "Acme"
		p.ProductsServices = []string{"Hosting"}
		p.Values = []string{"Integrity"}

		clone := p.Clone()
		clone.Name = "Other"
		clone.ProductsServices[0] = "Consulting"
		clone.Values = append(clone.Values, "Innovation")

		assert.Equal(t, "Acme", p.Name)
		assert.Equal(t, []string{"Hosting"}, p.ProductsServices)
		assert.Equal(t, []string{"Integrity"}, p.Values)
	})

	t.Run("slices stay non-nil on an empty profile", func(t *testing.T) {
		t.Parallel()

		clone := coldemail.NewCompanyProfile().Clone()

		assert.NotNil(t, clone.ProductsServices)
		assert.NotNil(t, clone.Values)
		assert.NotNil(t, clone.Team)
		assert.NotNil(t, clone.Clients)
	})
}

func TestCompanyProfile_Corpus(t *testing.T) {
	t.Parallel()

	p := coldemail.NewCompanyProfile()
	p.Name = "Acme"
	p.Description = "We build Rockets"
	p.ProductsServices = []string{"Launch Services"}
	p.Values = []string{"Safety"}

	corpus := p.Corpus()

	assert.Contains(t, corpus, "acme")
	assert.Contains(t, corpus, "we build rockets")
	assert.Contains(t, corpus, "launch services")
	assert.Contains(t, corpus, "safety")
	assert.Equal(t, corpus, p.Corpus(), "corpus must be deterministic")
}
