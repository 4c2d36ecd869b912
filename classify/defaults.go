package classify

// Industry-derived defaults used by post-processing to backfill profiles
// that yielded nothing extractable. Industries without an explicit entry
// get a generic fallback derived from the industry name.

var defaultServices = map[string][]string{
	"Technology":            {"Software Development", "Cloud Solutions", "Digital Transformation"},
	"Healthcare":            {"Patient Care", "Medical Services", "Healthcare Solutions"},
	"Finance":               {"Financial Services", "Investment Management", "Banking Solutions"},
	"Professional Services": {"Consulting", "Advisory Services", "Business Solutions"},
	"Consulting":            {"Strategy Consulting", "Management Consulting", "Business Advisory"},
}

var defaultValues = map[string][]string{
	"Technology":            {"Innovation", "Excellence", "Customer-Centric"},
	"Healthcare":            {"Patient-Focused", "Quality Care", "Compassion"},
	"Finance":               {"Integrity", "Trust", "Excellence"},
	"Professional Services": {"Client Success", "Excellence", "Integrity"},
	"Consulting":            {"Client Value", "Expertise", "Collaboration"},
}

// DefaultServices returns the default products/services list for an
// industry. Returns nil for an empty industry.
func DefaultServices(industry string) []string {
	if industry == "" {
		return nil
	}
	if services, ok := defaultServices[industry]; ok {
		return append([]string(nil), services...)
	}
	return []string{industry + " Services", "Consulting", "Professional Solutions"}
}

// DefaultValues returns the default company values for an industry.
// Returns nil for an empty industry.
func DefaultValues(industry string) []string {
	if industry == "" {
		return nil
	}
	if values, ok := defaultValues[industry]; ok {
		return append([]string(nil), values...)
	}
	return []string{"Excellence", "Integrity", "Client Focus"}
}
