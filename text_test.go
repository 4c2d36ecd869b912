package coldemail_test

import (
	"testing"
	"time"
	"unicode/utf8"

	coldemail "github.com/thakurdishanttt/cold-email-gen"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "collapses whitespace", input: "hello   world\n\ttest", want: "hello world test"},
		{name: "strips special characters", input: "hello © world™", want: "hello  world"},
		{name: "keeps punctuation", input: "Hi, there: ok (fine)!", want: "Hi, there: ok (fine)!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, coldemail.CleanText(tt.input))
		})
	}
}

func TestValidateURL(t *testing.T) {
	t.Parallel()

	assert.True(t, coldemail.ValidateURL("https://example.com"))
	assert.True(t, coldemail.ValidateURL("http://example.com/path"))
	assert.False(t, coldemail.ValidateURL("example.com"))
	assert.False(t, coldemail.ValidateURL("/relative/path"))
	assert.False(t, coldemail.ValidateURL(""))
}

func TestDomain(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "example.com", coldemail.Domain("https://www.example.com/about"))
	assert.Equal(t, "example.com", coldemail.Domain("https://example.com"))
	assert.Equal(t, "sub.example.com", coldemail.Domain("https://sub.example.com"))
	assert.Empty(t, coldemail.Domain("://bad"))
}

func TestFormatCompanyName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{input: "Acme, Inc.", want: "Acme"},
		{input: "Acme Inc", want: "Acme"},
		{input: "Globex Corporation", want: "Globex"},
		{input: "Initech LLC", want: "Initech"},
		{input: "Acme", want: "Acme"},
		{input: "", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, coldemail.FormatCompanyName(tt.input), "input=%q", tt.input)
	}
}

func TestTruncateText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", coldemail.TruncateText("short", 100))
	assert.Equal(t, "hello...", coldemail.TruncateText("hello world again", 8))
	assert.Empty(t, coldemail.TruncateText("", 10))

	// A cut landing inside a multi-byte rune backs up to the rune start
	// instead of emitting an invalid byte sequence.
	got := coldemail.TruncateText("naïveté", 3) // byte 3 is the tail of "ï"
	assert.True(t, utf8.ValidString(got), "got %q", got)
	assert.Equal(t, "na...", got)
}

func TestCacheKey(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	key := coldemail.CacheKey("example.com", now)

	assert.Equal(t, "example.com_20240", key)

	// Same day yields the same key, the next day a different one.
	assert.Equal(t, key, coldemail.CacheKey("example.com", now.Add(6*time.Hour)))
	assert.NotEqual(t, key, coldemail.CacheKey("example.com", now.Add(24*time.Hour)))
}
