package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	coldemail "github.com/thakurdishanttt/cold-email-gen"
)

var (
	serviceContainerRe = regexp.MustCompile(`(?i)service|product|solution|feature|offering|capability|what-we-do`)
	serviceHeadingRe   = regexp.MustCompile(`(?i)service|product|solution|offering|capability|what we do`)
	serviceLinkRe      = regexp.MustCompile(`service|solution|offering|capability|industry`)
	navClassRe         = regexp.MustCompile(`(?i)nav|menu|main-menu`)
)

const (
	// maxServiceLen rejects entries that are clearly running text rather
	// than a product or service name.
	maxServiceLen = 100

	// maxNavServiceLen is the tighter cap for entries harvested from
	// navigation menus.
	maxNavServiceLen = 50

	// navFallbackThreshold: navigation links are only harvested while the
	// list holds fewer entries than this.
	navFallbackThreshold = 3
)

// ExtractServices accumulates products/services across pages: headings
// inside service-tagged containers first, then list items under service
// headings, then navigation links as a last resort. Entries are
// deduplicated by exact text.
func ExtractServices(p *Page, profile *coldemail.CompanyProfile) {
	servicesFromContainers(p, profile)
	if len(profile.ProductsServices) == 0 {
		servicesFromHeadingLists(p, profile)
	}
	if len(profile.ProductsServices) < navFallbackThreshold {
		servicesFromNavLinks(p, profile)
	}
}

func servicesFromContainers(p *Page, profile *coldemail.CompanyProfile) {
	for _, section := range p.findAttrMatch(serviceContainerRe, "div", "section", "article", "ul") {
		section.Find("h1, h2, h3, h4, h5").Each(func(_ int, heading *goquery.Selection) {
			name := normalizeSpace(heading.Text())
			if name != "" && len(name) < maxServiceLen {
				profile.AddService(name)
			}
		})
	}
}

// servicesFromHeadingLists finds service-related headings and harvests the
// list that follows each one.
func servicesFromHeadingLists(p *Page, profile *coldemail.CompanyProfile) {
	for _, heading := range p.findTextMatch(serviceHeadingRe, "h1", "h2", "h3") {
		list := nextMatching(heading, "ul, ol")
		if list == nil {
			continue
		}
		list.Find("li").Each(func(_ int, item *goquery.Selection) {
			name := normalizeSpace(item.Text())
			if name != "" && len(name) < maxServiceLen {
				profile.AddService(name)
			}
		})
	}
}

// servicesFromNavLinks harvests service-sounding anchor text from
// navigation menus. Menus often list service categories, but also a lot of
// noise, hence the tighter length cap; the post-processor prunes what
// still slips through.
func servicesFromNavLinks(p *Page, profile *coldemail.CompanyProfile) {
	for _, menu := range p.findAttrMatch(navClassRe, "nav", "ul") {
		menu.Find("a").Each(func(_ int, link *goquery.Selection) {
			text := normalizeSpace(link.Text())
			if text == "" || !serviceLinkRe.MatchString(strings.ToLower(text)) {
				return
			}
			if len(text) < maxNavServiceLen {
				profile.AddService(text)
			}
		})
	}
}
