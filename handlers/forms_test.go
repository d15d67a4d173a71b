package handlers

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"webquote/config"
	"webquote/pricing"
	"webquote/services"
)

func TestHiddenFields_RoundTrip(t *testing.T) {
	sel := pricing.Selections{
		WebsiteTypeID: "business",
		AddOnIDs:      []string{"logo", "whatsapp"},
		HostingID:     "standard",
		UrgencyID:     "fast",
		BuilderID:     "freelancer",
	}
	calc, ok := pricing.Calculate(pricing.DefaultCatalog(), sel).Calculation()
	if !ok {
		t.Fatal("not ready")
	}
	issued := time.Date(2025, time.March, 3, 9, 30, 0, 0, time.UTC)
	q, err := services.RestoreQuotation(calc, services.ClientInfo{FullName: "Otieno", PhoneNumber: "0712 345 678"}, "UW-20250303-042", issued, config.Default().Quote)
	if err != nil {
		t.Fatal(err)
	}

	var form quoteForm
	for _, f := range hiddenFields(q) {
		switch f.Name {
		case "websiteTypeId":
			form.WebsiteTypeID = f.Value
		case "addOnIds":
			form.AddOnIDs = append(form.AddOnIDs, f.Value)
		case "hostingId":
			form.HostingID = f.Value
		case "urgencyId":
			form.UrgencyID = f.Value
		case "builderId":
			form.BuilderID = f.Value
		case "fullName":
			form.FullName = f.Value
		case "phoneNumber":
			form.PhoneNumber = f.Value
		case "quoteNumber":
			form.QuoteNumber = f.Value
		case "issuedAt":
			form.IssuedAt = f.Value
		}
	}

	// Add-ons come back in catalog order.
	want := sel
	want.AddOnIDs = []string{"whatsapp", "logo"}
	if got := form.selections(); !reflect.DeepEqual(got, want) {
		t.Errorf("selections = %+v, want %+v", got, want)
	}
	if form.client().PhoneNumber != "0712 345 678" || form.QuoteNumber != q.QuoteNumber {
		t.Errorf("form = %+v", form)
	}
	if form.IssuedAt != "2025-03-03T09:30:00Z" {
		t.Errorf("issuedAt = %q", form.IssuedAt)
	}
}

func TestMissingLabels(t *testing.T) {
	got := missingLabels([]pricing.Dimension{pricing.DimensionWebsiteType, pricing.DimensionUrgency, pricing.DimensionBuilder})
	want := []string{"website type", "timeline", "service type"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("missingLabels = %v, want %v", got, want)
	}
}

func TestRequestKind(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/quotes", nil)
	if isHTMX(req) || wantsJSON(req) {
		t.Error("plain request detected as HTMX or JSON")
	}
	req.Header.Set("HX-Request", "true")
	req.Header.Set("Accept", "application/json, text/plain")
	if !isHTMX(req) || !wantsJSON(req) {
		t.Error("headers not detected")
	}
}
