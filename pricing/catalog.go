package pricing

import "github.com/shopspring/decimal"

// Catalog holds the selectable options for every dimension of a quote.
// Each slice is ordered; display order follows slice order.
type Catalog struct {
	WebsiteTypes  []WebsiteType  `json:"websiteTypes"`
	AddOns        []AddOn        `json:"addOns"`
	HostingPlans  []HostingPlan  `json:"hostingPlans"`
	UrgencyLevels []UrgencyLevel `json:"urgencyLevels"`
	BuilderTypes  []BuilderType  `json:"builderTypes"`
}

// WebsiteType looks up a website type by id.
func (c Catalog) WebsiteType(id string) (WebsiteType, bool) {
	for _, w := range c.WebsiteTypes {
		if w.ID == id {
			return w, true
		}
	}
	return WebsiteType{}, false
}

// AddOn looks up an add-on by id.
func (c Catalog) AddOn(id string) (AddOn, bool) {
	for _, a := range c.AddOns {
		if a.ID == id {
			return a, true
		}
	}
	return AddOn{}, false
}

// HostingPlan looks up a hosting plan by id.
func (c Catalog) HostingPlan(id string) (HostingPlan, bool) {
	for _, h := range c.HostingPlans {
		if h.ID == id {
			return h, true
		}
	}
	return HostingPlan{}, false
}

// UrgencyLevel looks up an urgency level by id.
func (c Catalog) UrgencyLevel(id string) (UrgencyLevel, bool) {
	for _, u := range c.UrgencyLevels {
		if u.ID == id {
			return u, true
		}
	}
	return UrgencyLevel{}, false
}

// BuilderType looks up a builder type by id.
func (c Catalog) BuilderType(id string) (BuilderType, bool) {
	for _, b := range c.BuilderTypes {
		if b.ID == id {
			return b, true
		}
	}
	return BuilderType{}, false
}

// DefaultCatalog returns the stock catalog of the web studio.
func DefaultCatalog() Catalog {
	return Catalog{
		WebsiteTypes: []WebsiteType{
			{
				ID:        "landing",
				Name:      "Landing Page",
				BasePrice: decimal.NewFromInt(10000),
				Purpose:   "One-page site focused on a single goal (e.g. product, campaign, lead capture)",
				Includes: []string{
					"Clean single-scroll layout",
					"Hero section + CTA",
					"About / Services / Contact",
					"WhatsApp or form integration",
					"Mobile responsiveness",
				},
				ClientFit:         "Events, ad campaigns, product launches, personal portfolios",
				RecommendedAddOns: []string{"whatsapp", "seo", "logo"},
			},
			{
				ID:        "business",
				Name:      "Business Website",
				BasePrice: decimal.NewFromInt(20000),
				Purpose:   "Multi-page site showcasing a company or professional services",
				Includes: []string{
					"3-5 pages (Home, About, Services, Contact, etc)",
					"Contact form",
					"Basic SEO setup",
					"Responsive & professional layout",
				},
				ClientFit:         "Local businesses, freelancers, agencies, consultants",
				RecommendedAddOns: []string{"whatsapp", "logo", "seo", "social"},
			},
			{
				ID:        "ecommerce",
				Name:      "E-Commerce Website",
				BasePrice: decimal.NewFromInt(50000),
				Purpose:   "Online store to sell physical or digital products",
				Includes: []string{
					"Product catalog (10-20 items to start)",
					"Cart + Checkout",
					"Payment integration (MPesa, Paystack, etc.)",
					"Order management dashboard",
					"Inventory controls",
					"Responsive design",
				},
				ClientFit:         "Retailers, fashion shops, service sellers",
				RecommendedAddOns: []string{"payment", "whatsapp", "custom"},
				TechOptions:       "WooCommerce, Shopify, or custom Laravel/Node build",
			},
			{
				ID:        "blog",
				Name:      "Blog/Portfolio",
				BasePrice: decimal.NewFromInt(15000),
				Purpose:   "Showcase work, articles, photography, etc.",
				Includes: []string{
					"Blog or portfolio grid",
					"CMS backend or markdown-based system",
					"Author bio, social links",
					"Responsive & minimalist layout",
				},
				ClientFit:         "Writers, photographers, creatives",
				RecommendedAddOns: []string{"seo", "logo"},
			},
			{
				ID:        "lms",
				Name:      "LMS / Membership Site",
				BasePrice: decimal.NewFromInt(75000),
				Purpose:   "Deliver online courses, gated content, or community features",
				Includes: []string{
					"Course/module creation",
					"Member registration/login",
					"Payment integration",
					"Progress tracking (optional)",
					"Admin panel",
					"Responsive UI",
					"Video upload/embed support",
				},
				ClientFit:         "Coaches, schools, training centers",
				RecommendedAddOns: []string{"payment", "custom"},
				TechOptions:       "LearnDash (WordPress), Moodle, or custom Laravel/Vue solution",
			},
		},
		AddOns: []AddOn{
			{ID: "seo", Name: "SEO Optimization", Price: decimal.NewFromInt(3500), Description: "Improve your website's search engine rankings with keyword optimization, meta tags, and technical SEO"},
			{ID: "whatsapp", Name: "WhatsApp Chat", Price: decimal.NewFromInt(2000), Description: "Add a WhatsApp chat widget for instant customer communication and support"},
			{ID: "payment", Name: "Payment Integration", Price: decimal.NewFromInt(6000), Description: "Integrate M-Pesa, PayPal, Stripe and other payment gateways for online transactions"},
			{ID: "logo", Name: "Logo Design", Price: decimal.NewFromInt(3000), Description: "Professional logo design with multiple concepts, revisions, and brand guidelines"},
			{ID: "social", Name: "Social Media Setup", Price: decimal.NewFromInt(3500), Description: "Setup and optimize your social media profiles with consistent branding and linking"},
			{ID: "custom", Name: "Custom Feature", Price: decimal.NewFromInt(10000), Description: "Any custom functionality or integration specific to your business needs"},
		},
		HostingPlans: []HostingPlan{
			{ID: "none", Name: "None", Price: decimal.Zero},
			{ID: "standard", Name: "Standard Hosting Annual (Domain + Hosting)", Price: decimal.NewFromInt(6000)},
			{ID: "premium", Name: "Annual Premium (Hosting + Maintenance)", Price: decimal.NewFromInt(12000)},
		},
		UrgencyLevels: []UrgencyLevel{
			{ID: "flexible", Name: "Flexible (2-4 weeks)", Multiplier: decimal.NewFromInt(1)},
			{ID: "fast", Name: "Fast (1-2 weeks)", Multiplier: decimal.RequireFromString("1.2")},
			{ID: "urgent", Name: "Urgent (<7 days)", Multiplier: decimal.RequireFromString("1.5")},
		},
		BuilderTypes: []BuilderType{
			{ID: "freelancer", Name: "Freelancer", Multiplier: decimal.NewFromInt(1)},
			{ID: "agency", Name: "Agency", Multiplier: decimal.RequireFromString("1.3")},
		},
	}
}
