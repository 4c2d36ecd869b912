package goquery

// A strategy inspects a page and produces a candidate value for a profile
// field. ok is false when the strategy found nothing acceptable.
type strategy func(p *Page) (value string, ok bool)

// firstMatch evaluates strategies in order and returns the first
// qualifying result. Keeping each field's fallback order as a flat list
// makes the chain auditable and testable in isolation.
func firstMatch(p *Page, strategies ...strategy) (string, bool) {
	for _, s := range strategies {
		if v, ok := s(p); ok {
			return v, true
		}
	}
	return "", false
}
