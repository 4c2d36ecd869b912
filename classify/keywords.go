// Package classify infers a company's industry from the text collected
// during a scrape. The inference is deliberately lexical: fixed keyword
// tables and occurrence counting, no models.
package classify

// Industry pairs an industry label with its lexical cues.
type Industry struct {
	Name     string
	Keywords []string
}

// Industries is the fixed, ordered category list. Order matters: scoring
// ties resolve in favor of the earlier entry, so more specific categories
// come before catch-alls like Professional Services.
var Industries = []Industry{
	{
		Name: "Technology",
		Keywords: []string{
			"software", "tech", "digital", "app", "application", "cloud",
			"data", "ai", "artificial intelligence", "platform", "saas",
			"automation", "internet", "web", "mobile", "computer", "it",
			"information technology", "cyber", "security", "network",
			"programming", "developer", "code", "algorithm", "analytics",
		},
	},
	{
		Name: "Healthcare",
		Keywords: []string{
			"health", "medical", "healthcare", "patient", "hospital",
			"clinic", "doctor", "wellness", "pharma", "pharmaceutical",
			"biotech", "medicine", "therapy", "diagnostic", "treatment",
			"care", "nursing",
		},
	},
	{
		Name: "Finance",
		Keywords: []string{
			"finance", "financial", "banking", "investment", "insurance",
			"loan", "credit", "bank", "fintech", "payment", "transaction",
			"money", "capital", "fund", "asset", "wealth", "trading",
			"stock", "market",
		},
	},
	{
		Name: "Education",
		Keywords: []string{
			"education", "learning", "school", "university", "college",
			"student", "course", "training", "academic", "teaching",
			"classroom", "e-learning", "knowledge", "curriculum", "edtech",
		},
	},
	{
		Name: "Manufacturing",
		Keywords: []string{
			"manufacturing", "factory", "production", "industrial",
			"machinery", "equipment", "assembly", "fabrication",
			"processing", "engineering", "supply chain", "inventory",
			"quality control",
		},
	},
	{
		Name: "Retail",
		Keywords: []string{
			"retail", "shop", "store", "ecommerce", "product", "consumer",
			"customer", "shopping", "merchandise", "sales", "brand",
			"marketplace", "commerce", "purchase", "buyer", "seller",
		},
	},
	{
		Name: "Real Estate",
		Keywords: []string{
			"real estate", "property", "housing", "construction",
			"building", "apartment", "home", "commercial", "residential",
			"lease", "rent", "mortgage", "development", "architecture",
		},
	},
	{
		Name: "Marketing",
		Keywords: []string{
			"marketing", "advertising", "brand", "campaign", "media",
			"promotion", "content", "digital marketing", "seo", "ppc",
			"social media", "audience", "engagement", "lead generation",
		},
	},
	{
		Name: "Consulting",
		Keywords: []string{
			"consulting", "consultant", "advisory", "strategy", "solution",
			"business consulting", "management", "professional services",
			"expertise", "guidance", "recommendation", "analysis",
		},
	},
	{
		Name: "Legal",
		Keywords: []string{
			"legal", "law", "attorney", "lawyer", "compliance",
			"regulation", "litigation", "contract", "counsel", "firm",
			"practice", "legal services", "justice", "court",
		},
	},
	{
		Name: "Professional Services",
		Keywords: []string{
			"service", "professional", "business", "solution", "provider",
			"firm", "agency", "partner", "client", "expertise",
			"specialist", "advisor",
		},
	},
	{
		Name: "Entertainment & Media",
		Keywords: []string{
			"media", "entertainment", "content", "film", "video", "music",
			"game", "streaming", "publishing", "broadcast", "production",
			"creative", "studio",
		},
	},
	{
		Name: "Telecommunications",
		Keywords: []string{
			"telecom", "communication", "network", "mobile", "wireless",
			"broadband", "internet", "phone", "cellular", "data",
			"connectivity",
		},
	},
	{
		Name: "Energy & Utilities",
		Keywords: []string{
			"energy", "power", "utility", "electricity", "gas", "oil",
			"renewable", "solar", "wind", "sustainable", "grid", "resource",
		},
	},
	{
		Name: "Transportation & Logistics",
		Keywords: []string{
			"transport", "logistics", "shipping", "delivery", "freight",
			"supply chain", "warehouse", "distribution", "fleet", "cargo",
			"fulfillment",
		},
	},
}
