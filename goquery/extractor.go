package goquery

import (
	coldemail "github.com/thakurdishanttt/cold-email-gen"
)

// Ensure Extractor implements coldemail.Extractor at compile time.
var _ coldemail.Extractor = (*Extractor)(nil)

// Extractor runs every field extraction heuristic against a fetched page.
// It is stateless; all accumulated state lives in the profile.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses html once and applies the field extractors in a fixed
// order: name, description, about, products/services, contact, values.
// Missing page elements are not errors; they simply yield no fields.
func (e *Extractor) Extract(html string, pageURL string, profile *coldemail.CompanyProfile) error {
	p, err := NewPage(html, pageURL)
	if err != nil {
		return err
	}
	ExtractName(p, profile)
	ExtractDescription(p, profile)
	ExtractAbout(p, profile)
	ExtractServices(p, profile)
	ExtractContact(p, profile)
	ExtractValues(p, profile)
	return nil
}
