package gemini_test

import (
	"testing"

	coldemail "github.com/thakurdishanttt/cold-email-gen"
	"github.com/thakurdishanttt/cold-email-gen/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	t.Run("includes company and sender details", func(t *testing.T) {
		t.Parallel()

		profile := coldemail.NewCompanyProfile()
		profile.Name = "Acme Corp"
		profile.Industry = "Technology"
		profile.ProductsServices = []string{"Cloud Hosting", "Consulting"}
		profile.Values = []string{"Integrity"}

		sender := coldemail.SenderInfo{
			Name:           "Jordan Lee",
			Company:        "Scogo Networks",
			Specialization: "AI-powered IT support",
			Phone:          "+1 555 0100",
			Website:        "https://scogo.ai",
		}

		prompt := gemini.BuildPrompt(profile, sender)

		assert.Contains(t, prompt, "Name: Acme Corp")
		assert.Contains(t, prompt, "Industry: Technology")
		assert.Contains(t, prompt, "Products/Services: Cloud Hosting, Consulting")
		assert.Contains(t, prompt, "Values: Integrity")
		assert.Contains(t, prompt, "Name: Jordan Lee")
		assert.Contains(t, prompt, "Company: Scogo Networks")
		assert.Contains(t, prompt, "Phone: +1 555 0100")
		assert.Contains(t, prompt, "Website: https://scogo.ai")
		assert.Contains(t, prompt, "Subject: [email subject]")
	})

	t.Run("empty fields degrade to neutral phrases", func(t *testing.T) {
		t.Parallel()

		prompt := gemini.BuildPrompt(coldemail.NewCompanyProfile(), coldemail.SenderInfo{})

		assert.Contains(t, prompt, "Name: the company")
		assert.Contains(t, prompt, "Industry: your industry")
		assert.Contains(t, prompt, "Name: Our Team")
		assert.Contains(t, prompt, "Phone: [Phone Number]")
		assert.Contains(t, prompt, "Website: [Website]")
	})
}

func TestParseEmail(t *testing.T) {
	t.Parallel()

	t.Run("splits on the subject line", func(t *testing.T) {
		t.Parallel()

		email := gemini.ParseEmail("Subject: Better widgets for Acme\n\nHi there,\n\nBody text.")

		assert.Equal(t, "Better widgets for Acme", email.Subject)
		assert.Equal(t, "Hi there,\n\nBody text.", email.Body)
	})

	t.Run("subject matching is case-insensitive", func(t *testing.T) {
		t.Parallel()

		email := gemini.ParseEmail("SUBJECT: Hello\nBody.")

		assert.Equal(t, "Hello", email.Subject)
		assert.Equal(t, "Body.", email.Body)
	})

	t.Run("without a subject line the first line is the subject", func(t *testing.T) {
		t.Parallel()

		email := gemini.ParseEmail("A quick idea for Acme\nHere is the body.")

		assert.Equal(t, "A quick idea for Acme", email.Subject)
		assert.Equal(t, "Here is the body.", email.Body)
	})

	t.Run("empty input yields an empty email", func(t *testing.T) {
		t.Parallel()

		email := gemini.ParseEmail("")

		assert.Empty(t, email.Subject)
		assert.Empty(t, email.Body)
	})
}

func TestFallbackEmail(t *testing.T) {
	t.Parallel()

	t.Run("is deterministic and personalized", func(t *testing.T) {
		t.Parallel()

		profile := coldemail.NewCompanyProfile()
		profile.Name = "Acme Corp"
		profile.Industry = "Technology"

		sender := coldemail.SenderInfo{
			Name:    "Jordan Lee",
			Company: "Scogo Networks",
			Phone:   "+1 555 0100",
			Website: "https://scogo.ai",
		}

		first := gemini.FallbackEmail(profile, sender)
		second := gemini.FallbackEmail(profile, sender)

		require.Equal(t, first, second)
		assert.Equal(t, "AI Solutions for Acme Corp", first.Subject)
		assert.Contains(t, first.Body, "Dear Acme Corp Team,")
		assert.Contains(t, first.Body, "Technology space")
		assert.Contains(t, first.Body, "Jordan Lee")
		assert.Contains(t, first.Body, "+1 555 0100")
		assert.Contains(t, first.Body, "https://scogo.ai")
	})

	t.Run("an empty profile still yields a usable draft", func(t *testing.T) {
		t.Parallel()

		email := gemini.FallbackEmail(coldemail.NewCompanyProfile(), coldemail.SenderInfo{})

		assert.Equal(t, "AI Solutions for the company", email.Subject)
		assert.Contains(t, email.Body, "the company Team")
		assert.Contains(t, email.Body, "your industry space")
		assert.NotContains(t, email.Body, "[Phone Number]")
	})
}
