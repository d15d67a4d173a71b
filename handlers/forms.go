package handlers

import (
	"net/http"
	"strings"
	"time"

	"webquote/pricing"
	"webquote/services"
	"webquote/templates"
)

// quoteForm is the request body shared by the calculator, quotation and
// export endpoints. It binds from both JSON and form posts.
type quoteForm struct {
	WebsiteTypeID string   `json:"websiteTypeId" form:"websiteTypeId"`
	AddOnIDs      []string `json:"addOnIds" form:"addOnIds"`
	HostingID     string   `json:"hostingId" form:"hostingId"`
	UrgencyID     string   `json:"urgencyId" form:"urgencyId"`
	BuilderID     string   `json:"builderId" form:"builderId"`

	FullName    string `json:"fullName" form:"fullName"`
	Email       string `json:"email" form:"email"`
	CompanyName string `json:"companyName" form:"companyName"`
	PhoneNumber string `json:"phoneNumber" form:"phoneNumber"`

	// Set by the export forms only.
	QuoteNumber string `json:"quoteNumber" form:"quoteNumber"`
	IssuedAt    string `json:"issuedAt" form:"issuedAt"`
}

func (f quoteForm) selections() pricing.Selections {
	return pricing.Selections{
		WebsiteTypeID: f.WebsiteTypeID,
		AddOnIDs:      f.AddOnIDs,
		HostingID:     f.HostingID,
		UrgencyID:     f.UrgencyID,
		BuilderID:     f.BuilderID,
	}
}

func (f quoteForm) client() services.ClientInfo {
	return services.ClientInfo{
		FullName:    f.FullName,
		Email:       f.Email,
		CompanyName: f.CompanyName,
		PhoneNumber: f.PhoneNumber,
	}
}

// hiddenFields is the inverse of quoteForm for an issued quotation: the
// values the export buttons post back.
func hiddenFields(q *services.Quotation) []templates.HiddenField {
	calc := q.Calculation
	hidden := func(name, value string) templates.HiddenField {
		return templates.HiddenField{Name: name, Value: value}
	}

	fields := []templates.HiddenField{hidden("websiteTypeId", calc.WebsiteType.ID)}
	for _, a := range calc.AddOns {
		fields = append(fields, hidden("addOnIds", a.ID))
	}
	return append(fields,
		hidden("hostingId", calc.HostingPlan.ID),
		hidden("urgencyId", calc.UrgencyLevel.ID),
		hidden("builderId", calc.BuilderType.ID),
		hidden("fullName", q.Client.FullName),
		hidden("email", q.Client.Email),
		hidden("companyName", q.Client.CompanyName),
		hidden("phoneNumber", q.Client.PhoneNumber),
		hidden("quoteNumber", q.QuoteNumber),
		hidden("issuedAt", q.IssuedAt.Format(time.RFC3339)),
	)
}

var dimensionLabels = map[pricing.Dimension]string{
	pricing.DimensionWebsiteType: "website type",
	pricing.DimensionAddOns:      "add-ons",
	pricing.DimensionHosting:     "hosting",
	pricing.DimensionUrgency:     "timeline",
	pricing.DimensionBuilder:     "service type",
}

func missingLabels(missing []pricing.Dimension) []string {
	labels := make([]string, 0, len(missing))
	for _, d := range missing {
		labels = append(labels, dimensionLabels[d])
	}
	return labels
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}
