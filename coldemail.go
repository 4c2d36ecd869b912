// Package coldemail provides a cold-email generation service built around
// a heuristic company-website scraper. It crawls a handful of pages from a
// company site, assembles a structured company profile (name, description,
// products/services, industry, values, contact details), and feeds that
// profile to an LLM to draft a personalized outreach email, which can then
// be delivered through a mail provider.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, gmail/, redis/).
package coldemail

// Version is the service version reported by the health endpoint.
const Version = "1.0.0"
