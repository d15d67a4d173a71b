package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"webquote/collections"
	"webquote/pricing"
	"webquote/testhelpers"
)

func TestGetCatalog_FromContext(t *testing.T) {
	expected := pricing.DefaultCatalog()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), CatalogKey, expected))

	got, ok := GetCatalog(req)
	if !ok {
		t.Fatal("expected catalog in context")
	}
	if len(got.WebsiteTypes) != len(expected.WebsiteTypes) {
		t.Errorf("got %d website types, want %d", len(got.WebsiteTypes), len(expected.WebsiteTypes))
	}
}

func TestGetCatalog_NotInContext(t *testing.T) {
	if _, ok := GetCatalog(httptest.NewRequest(http.MethodGet, "/", nil)); ok {
		t.Error("expected no catalog")
	}
}

func TestCatalogFor_PrefersContextSnapshot(t *testing.T) {
	app := testhelpers.NewSeededTestApp(t)

	snapshot := pricing.DefaultCatalog()
	snapshot.WebsiteTypes = snapshot.WebsiteTypes[:1]
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), CatalogKey, snapshot))

	cat, err := catalogFor(app, newTestRequestEvent(app, req, httptest.NewRecorder()))
	if err != nil {
		t.Fatalf("catalogFor: %v", err)
	}
	if len(cat.WebsiteTypes) != 1 {
		t.Errorf("got %d website types, want the 1 from the snapshot", len(cat.WebsiteTypes))
	}
}

func TestCatalogFor_ReflectsAdminEdits(t *testing.T) {
	app := testhelpers.NewSeededTestApp(t)

	r, err := app.FindFirstRecordByData(collections.WebsiteTypes, "option_id", "landing")
	if err != nil {
		t.Fatal(err)
	}
	r.Set("price", 12500)
	if err := app.Save(r); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	cat, err := catalogFor(app, newTestRequestEvent(app, req, httptest.NewRecorder()))
	if err != nil {
		t.Fatalf("catalogFor: %v", err)
	}
	landing, _ := cat.WebsiteType("landing")
	if landing.BasePrice.String() != "12500" {
		t.Errorf("landing price = %s, want 12500", landing.BasePrice)
	}
}
