// Package gemini implements coldemail.EmailGenerator using Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	coldemail "github.com/thakurdishanttt/cold-email-gen"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Placeholders the model is asked to use when sender details are missing;
// substituted after generation.
const (
	phonePlaceholder   = "[Phone Number]"
	websitePlaceholder = "[Website]"
)

// Ensure Generator implements coldemail.EmailGenerator at compile time.
var _ coldemail.EmailGenerator = (*Generator)(nil)

// Generator drafts personalized cold emails with Gemini. When the API
// call fails it falls back to a deterministic template so the caller
// always receives a usable draft.
type Generator struct {
	client *genai.Client
}

// NewGenerator creates a new Generator.
func NewGenerator(client *genai.Client) *Generator {
	return &Generator{client: client}
}

// Generate drafts an email for the scraped company profile.
// An all-empty profile is acceptable; placeholders like "the company"
// keep the prompt and the fallback coherent.
func (g *Generator) Generate(ctx context.Context, profile *coldemail.CompanyProfile, sender coldemail.SenderInfo) (*coldemail.Email, error) {
	if profile == nil {
		return nil, coldemail.Errorf(coldemail.EINVALID, "company profile required")
	}

	prompt := BuildPrompt(profile, sender)

	result, err := g.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil || result == nil {
		return FallbackEmail(profile, sender), nil
	}

	email := ParseEmail(result.Text())
	if email.Subject == "" && email.Body == "" {
		return FallbackEmail(profile, sender), nil
	}

	email.Body = strings.ReplaceAll(email.Body, phonePlaceholder, sender.Phone)
	email.Body = strings.ReplaceAll(email.Body, websitePlaceholder, sender.Website)
	return email, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.7)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are an expert cold email writer for an AI company. You write concise, personalized outreach that sounds like a thoughtful human wrote it.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildPrompt assembles the generation prompt from the scraped profile
// and sender details. Empty profile fields degrade to neutral phrases so
// the model never sees raw blanks.
func BuildPrompt(profile *coldemail.CompanyProfile, sender coldemail.SenderInfo) string {
	companyName := orDefault(profile.Name, "the company")
	industry := orDefault(profile.Industry, "your industry")

	senderName := orDefault(sender.Name, "Our Team")
	senderCompany := orDefault(sender.Company, "Our AI Company")
	specialization := orDefault(sender.Specialization, "AI solutions for businesses")
	senderPhone := orDefault(sender.Phone, phonePlaceholder)
	senderWebsite := orDefault(sender.Website, websitePlaceholder)

	var sb strings.Builder
	sb.WriteString("Using the company information below, create a personalized, concise, and compelling cold email that offers AI solutions tailored to their specific business needs.\n\n")

	sb.WriteString("COMPANY INFORMATION:\n")
	fmt.Fprintf(&sb, "Name: %s\n", companyName)
	fmt.Fprintf(&sb, "Description: %s\n", profile.Description)
	fmt.Fprintf(&sb, "About: %s\n", profile.About)
	fmt.Fprintf(&sb, "Products/Services: %s\n", strings.Join(profile.ProductsServices, ", "))
	fmt.Fprintf(&sb, "Industry: %s\n", industry)
	fmt.Fprintf(&sb, "Values: %s\n\n", strings.Join(profile.Values, ", "))

	sb.WriteString("SENDER INFORMATION:\n")
	fmt.Fprintf(&sb, "Name: %s\n", senderName)
	fmt.Fprintf(&sb, "Company: %s\n", senderCompany)
	fmt.Fprintf(&sb, "Specialization: %s\n", specialization)
	fmt.Fprintf(&sb, "Phone: %s\n", senderPhone)
	fmt.Fprintf(&sb, "Website: %s\n\n", senderWebsite)

	sb.WriteString(`REQUIREMENTS:
1. Keep the email under 200 words
2. Include a personalized subject line that mentions the company name and a specific benefit
3. Demonstrate understanding of their business and industry challenges
4. Mention 2-3 SPECIFIC ways your AI solutions could help their business needs based on their products/services
5. EMPHASIZE how you can be VERY HELPFUL to their business with concrete examples
6. Create a sense of NEED for your services by highlighting problems they might be facing that your AI can solve
7. Include a clear but non-pushy call to action (like scheduling a brief call)
8. Avoid generic language, spam-like phrases, and excessive formality
9. Make it sound like it's written by a thoughtful human, not AI
10. Do not mention that you scraped their website
11. If the company has specific values, subtly align with them
12. Use a professional but conversational tone
13. Include the sender's name, company, phone number, and website in the signature

FORMAT YOUR RESPONSE AS:
Subject: [email subject]

[email body with appropriate greeting and signature]`)

	return sb.String()
}

// ParseEmail splits a model response into subject and body. It looks for
// a "Subject:" line; when none exists, the first line becomes the subject
// as a best guess.
func ParseEmail(text string) *coldemail.Email {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) == 0 || (len(lines) == 1 && lines[0] == "") {
		return &coldemail.Email{}
	}

	for i, line := range lines {
		if strings.HasPrefix(strings.ToLower(line), "subject:") {
			return &coldemail.Email{
				Subject: strings.TrimSpace(line[len("subject:"):]),
				Body:    strings.TrimSpace(strings.Join(lines[i+1:], "\n")),
			}
		}
	}

	return &coldemail.Email{
		Subject: strings.TrimSpace(lines[0]),
		Body:    strings.TrimSpace(strings.Join(lines[1:], "\n")),
	}
}

// FallbackEmail returns a deterministic draft used when generation fails.
func FallbackEmail(profile *coldemail.CompanyProfile, sender coldemail.SenderInfo) *coldemail.Email {
	companyName := orDefault(profile.Name, "the company")
	industry := orDefault(profile.Industry, "your industry")
	senderName := orDefault(sender.Name, "Our Team")
	senderCompany := orDefault(sender.Company, "Our AI Company")

	body := fmt.Sprintf(
		"Dear %s Team,\n\nI recently came across your company and was impressed by what you're doing in the %s space. I believe our AI solutions at %s could help enhance your operations.\n\nWould you be open to a brief conversation about how we might be able to support your goals?\n\nBest regards,\n%s\n%s",
		companyName, industry, senderCompany, senderName, senderCompany,
	)
	if sender.Phone != "" {
		body += "\n" + sender.Phone
	}
	if sender.Website != "" {
		body += "\n" + sender.Website
	}

	return &coldemail.Email{
		Subject: fmt.Sprintf("AI Solutions for %s", companyName),
		Body:    body,
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
