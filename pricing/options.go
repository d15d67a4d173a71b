// Package pricing turns catalog selections into an itemized website quote.
package pricing

import "github.com/shopspring/decimal"

// WebsiteType is the base product of a quote. Exactly one is selected.
type WebsiteType struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	BasePrice decimal.Decimal `json:"basePrice"`

	// Descriptive text shown next to the option; not used for pricing.
	Purpose           string   `json:"purpose,omitempty"`
	Includes          []string `json:"includes,omitempty"`
	ClientFit         string   `json:"clientFit,omitempty"`
	RecommendedAddOns []string `json:"recommendedAddOns,omitempty"`
	TechOptions       string   `json:"techOptions,omitempty"`
}

// AddOn is an optional extra. Zero or more are selected.
type AddOn struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}

// HostingPlan is the hosting tier. A zero-price "none" plan stands for no hosting.
type HostingPlan struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// UrgencyLevel marks up the subtotal for compressed timelines.
// A multiplier of 1 means no markup.
type UrgencyLevel struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Multiplier decimal.Decimal `json:"multiplier"`
}

// BuilderType marks up the post-urgency amount when an agency delivers the work.
type BuilderType struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Multiplier decimal.Decimal `json:"multiplier"`
}
