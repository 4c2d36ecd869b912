package coldemail

import "strings"

// CompanyProfile is the structured company record assembled during a scrape.
// One instance is created per scrape, mutated in place across all crawled
// pages, and finalized by industry inference and post-processing before
// being returned. It is never reused across scrapes.
//
// Scalar fields are write-once: the first page that yields a qualifying
// value wins and later pages never overwrite it. ProductsServices and
// Values accumulate across pages and are deduplicated by exact text.
// Team and Clients are reserved; no extractor populates them yet.
type CompanyProfile struct {
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	ProductsServices []string `json:"products_services"`
	About            string   `json:"about"`
	Contact          string   `json:"contact"`
	Industry         string   `json:"industry"`
	Values           []string `json:"values"`
	Team             []string `json:"team"`
	Clients          []string `json:"clients"`
}

// NewCompanyProfile returns an empty profile. All scalar fields are empty
// strings and all sequence fields are non-nil empty slices so downstream
// consumers never see null.
func NewCompanyProfile() *CompanyProfile {
	return &CompanyProfile{
		ProductsServices: []string{},
		Values:           []string{},
		Team:             []string{},
		Clients:          []string{},
	}
}

// AddService appends a product/service entry unless it is already present.
// Returns true if the entry was added.
func (p *CompanyProfile) AddService(name string) bool {
	if name == "" || p.HasService(name) {
		return false
	}
	p.ProductsServices = append(p.ProductsServices, name)
	return true
}

// HasService reports whether an exact entry exists in ProductsServices.
func (p *CompanyProfile) HasService(name string) bool {
	for _, s := range p.ProductsServices {
		if s == name {
			return true
		}
	}
	return false
}

// AddValue appends a company value unless it is already present.
// Returns true if the entry was added.
func (p *CompanyProfile) AddValue(v string) bool {
	if v == "" || p.HasValue(v) {
		return false
	}
	p.Values = append(p.Values, v)
	return true
}

// HasValue reports whether an exact entry exists in Values.
func (p *CompanyProfile) HasValue(v string) bool {
	for _, existing := range p.Values {
		if existing == v {
			return true
		}
	}
	return false
}

// Clone returns a copy of the profile with its own slices, safe to
// mutate without affecting the receiver. Callers holding a profile from
// a shared store must clone before writing.
func (p *CompanyProfile) Clone() *CompanyProfile {
	clone := *p
	clone.ProductsServices = append([]string{}, p.ProductsServices...)
	clone.Values = append([]string{}, p.Values...)
	clone.Team = append([]string{}, p.Team...)
	clone.Clients = append([]string{}, p.Clients...)
	return &clone
}

// Corpus returns the lower-cased concatenation of all text collected so
// far. Industry inference scores keywords against this.
func (p *CompanyProfile) Corpus() string {
	return strings.ToLower(strings.Join([]string{
		p.Name,
		p.Description,
		p.About,
		strings.Join(p.ProductsServices, " "),
		strings.Join(p.Values, " "),
	}, " "))
}
