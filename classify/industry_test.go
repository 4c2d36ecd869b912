package classify_test

import (
	"testing"

	coldemail "github.com/thakurdishanttt/cold-email-gen"
	"github.com/thakurdishanttt/cold-email-gen/classify"
	"github.com/stretchr/testify/assert"
)

func TestInfer(t *testing.T) {
	t.Parallel()

	t.Run("classifies a software company as Technology", func(t *testing.T) {
		t.Parallel()

		profile := coldemail.NewCompanyProfile()
		profile.Name = "Acme Software"
		profile.Description = "We build cloud software for developers."
		profile.About = "Our platform automates software delivery."

		assert.Equal(t, "Technology", classify.Infer(profile))
	})

	t.Run("classifies a clinic as Healthcare", func(t *testing.T) {
		t.Parallel()

		profile := coldemail.NewCompanyProfile()
		profile.Name = "Lakeside Clinic"
		profile.About = "Our doctors provide patient care and wellness therapy."

		assert.Equal(t, "Healthcare", classify.Infer(profile))
	})

	t.Run("returns empty for a profile with no signal", func(t *testing.T) {
		t.Parallel()

		profile := coldemail.NewCompanyProfile()
		profile.Name = "Qwxz"
		profile.About = "Xyzzy plugh thud."

		assert.Empty(t, classify.Infer(profile))
	})

	t.Run("returns empty for an empty profile", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, classify.Infer(coldemail.NewCompanyProfile()))
	})

	t.Run("keyword in the name outweighs a plain corpus mention", func(t *testing.T) {
		t.Parallel()

		// "banking" in the name scores the bonus on top of the corpus
		// count; the lone healthcare mention cannot catch up.
		profile := coldemail.NewCompanyProfile()
		profile.Name = "Meridian Banking"
		profile.About = "We also sponsor a local wellness program."

		assert.Equal(t, "Finance", classify.Infer(profile))
	})

	t.Run("ties resolve to the earlier category", func(t *testing.T) {
		t.Parallel()

		// One keyword hit each for Healthcare ("doctor") and Finance
		// ("loan"); Healthcare is listed first.
		profile := coldemail.NewCompanyProfile()
		profile.About = "One doctor and one loan office."

		assert.Equal(t, "Healthcare", classify.Infer(profile))
	})

	t.Run("is deterministic across calls", func(t *testing.T) {
		t.Parallel()

		profile := coldemail.NewCompanyProfile()
		profile.Name = "Northwind Logistics"
		profile.About = "Freight, shipping, and warehouse distribution."

		first := classify.Infer(profile)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, classify.Infer(profile))
		}
	})

	t.Run("repeated keywords hit the per-keyword cap", func(t *testing.T) {
		t.Parallel()

		// "software" ten times still caps at three, so two distinct
		// finance keywords plus a name bonus win.
		profile := coldemail.NewCompanyProfile()
		profile.Name = "Wealth Fund"
		profile.About = "software software software software software " +
			"software software software software software"

		assert.Equal(t, "Finance", classify.Infer(profile))
	})
}

func TestDefaultServices(t *testing.T) {
	t.Parallel()

	t.Run("known industry has a curated list", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t,
			[]string{"Financial Services", "Investment Management", "Banking Solutions"},
			classify.DefaultServices("Finance"))
	})

	t.Run("unknown industry gets a derived generic list", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t,
			[]string{"Retail Services", "Consulting", "Professional Solutions"},
			classify.DefaultServices("Retail"))
	})

	t.Run("empty industry yields nil", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, classify.DefaultServices(""))
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		t.Parallel()

		first := classify.DefaultServices("Technology")
		first[0] = "mutated"

		assert.Equal(t, "Software Development", classify.DefaultServices("Technology")[0])
	})
}

func TestDefaultValues(t *testing.T) {
	t.Parallel()

	t.Run("known industry has a curated list", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t,
			[]string{"Integrity", "Trust", "Excellence"},
			classify.DefaultValues("Finance"))
	})

	t.Run("unknown industry gets the generic list", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t,
			[]string{"Excellence", "Integrity", "Client Focus"},
			classify.DefaultValues("Legal"))
	})

	t.Run("empty industry yields nil", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, classify.DefaultValues(""))
	})
}
