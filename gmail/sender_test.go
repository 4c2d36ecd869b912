package gmail_test

import (
	"testing"

	coldemail "github.com/thakurdishanttt/cold-email-gen"
	"github.com/thakurdishanttt/cold-email-gen/gmail"
	"github.com/stretchr/testify/assert"
)

func TestBuildRFC822(t *testing.T) {
	t.Parallel()

	t.Run("builds a minimal plain-text message", func(t *testing.T) {
		t.Parallel()

		raw := gmail.BuildRFC822("me@scogo.ai", coldemail.Message{
			To:      "you@acme.com",
			Subject: "Hello",
			Body:    "Body text.",
		})

		assert.Equal(t,
			"From: me@scogo.ai\r\n"+
				"To: you@acme.com\r\n"+
				"Subject: Hello\r\n"+
				"MIME-Version: 1.0\r\n"+
				"Content-Type: text/plain; charset=\"UTF-8\"\r\n"+
				"\r\n"+
				"Body text.",
			raw)
	})

	t.Run("includes a display name when given", func(t *testing.T) {
		t.Parallel()

		raw := gmail.BuildRFC822("me@scogo.ai", coldemail.Message{
			To:       "you@acme.com",
			Subject:  "Hello",
			FromName: "Jordan Lee",
		})

		assert.Contains(t, raw, "From: Jordan Lee <me@scogo.ai>\r\n")
	})

	t.Run("includes cc and bcc headers when given", func(t *testing.T) {
		t.Parallel()

		raw := gmail.BuildRFC822("me@scogo.ai", coldemail.Message{
			To:      "you@acme.com",
			Subject: "Hello",
			CC:      []string{"a@acme.com", "b@acme.com"},
			BCC:     []string{"c@acme.com"},
		})

		assert.Contains(t, raw, "Cc: a@acme.com, b@acme.com\r\n")
		assert.Contains(t, raw, "Bcc: c@acme.com\r\n")
	})

	t.Run("omits cc and bcc headers when empty", func(t *testing.T) {
		t.Parallel()

		raw := gmail.BuildRFC822("me@scogo.ai", coldemail.Message{
			To:      "you@acme.com",
			Subject: "Hello",
		})

		assert.NotContains(t, raw, "Cc:")
		assert.NotContains(t, raw, "Bcc:")
	})
}
