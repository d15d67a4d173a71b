package services

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase/core"

	"webquote/collections"
	"webquote/pricing"
	"webquote/testhelpers"
)

func TestLoadCatalog_Seeded(t *testing.T) {
	app := testhelpers.NewSeededTestApp(t)

	cat, err := LoadCatalog(app)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	want := pricing.DefaultCatalog()
	if len(cat.WebsiteTypes) != len(want.WebsiteTypes) || len(cat.AddOns) != len(want.AddOns) {
		t.Fatalf("got %d website types, %d add-ons", len(cat.WebsiteTypes), len(cat.AddOns))
	}
	for i, w := range want.WebsiteTypes {
		got := cat.WebsiteTypes[i]
		if got.ID != w.ID || !got.BasePrice.Equal(w.BasePrice) {
			t.Errorf("website type %d = %s/%s, want %s/%s", i, got.ID, got.BasePrice, w.ID, w.BasePrice)
		}
		if len(got.Includes) != len(w.Includes) {
			t.Errorf("%s includes = %v", w.ID, got.Includes)
		}
	}
	fast, ok := cat.UrgencyLevel("fast")
	if !ok || fast.Multiplier.String() != "1.2" {
		t.Errorf("fast multiplier = %s", fast.Multiplier)
	}

	calc, ok := pricing.Calculate(cat, pricing.Selections{
		WebsiteTypeID: "business",
		AddOnIDs:      []string{"logo", "whatsapp"},
		HostingID:     "standard",
		UrgencyID:     "fast",
		BuilderID:     "freelancer",
	}).Calculation()
	if !ok {
		t.Fatal("calculation not ready")
	}
	if calc.Total.String() != "37200" {
		t.Errorf("total = %s, want 37200", calc.Total)
	}
}

func TestLoadCatalog_SortOrder(t *testing.T) {
	app := testhelpers.NewSeededTestApp(t)

	lms, err := app.FindFirstRecordByData(collections.WebsiteTypes, "option_id", "lms")
	if err != nil {
		t.Fatalf("find lms: %v", err)
	}
	lms.Set("sort_order", 0)
	if err := app.Save(lms); err != nil {
		t.Fatalf("save: %v", err)
	}

	cat, err := LoadCatalog(app)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if cat.WebsiteTypes[0].ID != "lms" {
		t.Errorf("first website type = %s, want lms", cat.WebsiteTypes[0].ID)
	}
}

func TestLoadCatalog_Invalid(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	col, err := app.FindCollectionByNameOrId(collections.WebsiteTypes)
	if err != nil {
		t.Fatal(err)
	}
	r := core.NewRecord(col)
	r.Set("option_id", "landing")
	r.Set("name", "Landing Page")
	r.Set("price", 10000)
	if err := app.Save(r); err != nil {
		t.Fatal(err)
	}

	_, err = LoadCatalog(app)
	if err == nil {
		t.Fatal("expected error for catalog without hosting plans")
	}
	if !strings.Contains(err.Error(), "hostingPlans") {
		t.Errorf("error = %v", err)
	}
}
