package pricing

// Dimension names a selectable part of a quote.
type Dimension string

const (
	DimensionWebsiteType Dimension = "websiteType"
	DimensionAddOns      Dimension = "addOns"
	DimensionHosting     Dimension = "hosting"
	DimensionUrgency     Dimension = "urgency"
	DimensionBuilder     Dimension = "builder"
)

// Selections is the user's current choice across all dimensions.
// It is owned by the caller; Calculate only reads it.
type Selections struct {
	WebsiteTypeID string   `json:"websiteTypeId" form:"websiteTypeId"`
	AddOnIDs      []string `json:"addOnIds" form:"addOnIds"`
	HostingID     string   `json:"hostingId" form:"hostingId"`
	UrgencyID     string   `json:"urgencyId" form:"urgencyId"`
	BuilderID     string   `json:"builderId" form:"builderId"`
}

// DefaultSelections is the state a fresh calculator starts in: every
// single-select dimension except the website type has a neutral choice.
func DefaultSelections() Selections {
	return Selections{
		HostingID: "none",
		UrgencyID: "flexible",
		BuilderID: "freelancer",
	}
}

// HasAddOn reports whether id is among the selected add-ons.
func (s Selections) HasAddOn(id string) bool {
	for _, a := range s.AddOnIDs {
		if a == id {
			return true
		}
	}
	return false
}

// Missing lists the required dimensions whose selection does not resolve
// against cat, in display order. An empty result means Calculate is Ready.
func (s Selections) Missing(cat Catalog) []Dimension {
	var missing []Dimension
	if _, ok := cat.WebsiteType(s.WebsiteTypeID); !ok {
		missing = append(missing, DimensionWebsiteType)
	}
	if _, ok := cat.HostingPlan(s.HostingID); !ok {
		missing = append(missing, DimensionHosting)
	}
	if _, ok := cat.UrgencyLevel(s.UrgencyID); !ok {
		missing = append(missing, DimensionUrgency)
	}
	if _, ok := cat.BuilderType(s.BuilderID); !ok {
		missing = append(missing, DimensionBuilder)
	}
	return missing
}
