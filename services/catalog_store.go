package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase/core"
	"github.com/shopspring/decimal"

	"webquote/collections"
	"webquote/pricing"
)

// LoadCatalog reads the catalog collections into a validated catalog,
// each dimension ordered by sort_order.
func LoadCatalog(app core.App) (pricing.Catalog, error) {
	var cat pricing.Catalog

	records, err := findOptions(app, collections.WebsiteTypes)
	if err != nil {
		return cat, err
	}
	for _, r := range records {
		w := pricing.WebsiteType{
			ID:          r.GetString("option_id"),
			Name:        r.GetString("name"),
			BasePrice:   decimal.NewFromFloat(r.GetFloat("price")),
			Purpose:     r.GetString("purpose"),
			ClientFit:   r.GetString("client_fit"),
			TechOptions: r.GetString("tech_options"),
		}
		if err := unmarshalList(r, "includes", &w.Includes); err != nil {
			return cat, err
		}
		if err := unmarshalList(r, "recommended_add_ons", &w.RecommendedAddOns); err != nil {
			return cat, err
		}
		cat.WebsiteTypes = append(cat.WebsiteTypes, w)
	}

	if records, err = findOptions(app, collections.AddOns); err != nil {
		return cat, err
	}
	for _, r := range records {
		cat.AddOns = append(cat.AddOns, pricing.AddOn{
			ID:          r.GetString("option_id"),
			Name:        r.GetString("name"),
			Price:       decimal.NewFromFloat(r.GetFloat("price")),
			Description: r.GetString("description"),
		})
	}

	if records, err = findOptions(app, collections.HostingPlans); err != nil {
		return cat, err
	}
	for _, r := range records {
		cat.HostingPlans = append(cat.HostingPlans, pricing.HostingPlan{
			ID:    r.GetString("option_id"),
			Name:  r.GetString("name"),
			Price: decimal.NewFromFloat(r.GetFloat("price")),
		})
	}

	if records, err = findOptions(app, collections.UrgencyLevels); err != nil {
		return cat, err
	}
	for _, r := range records {
		cat.UrgencyLevels = append(cat.UrgencyLevels, pricing.UrgencyLevel{
			ID:         r.GetString("option_id"),
			Name:       r.GetString("name"),
			Multiplier: decimal.NewFromFloat(r.GetFloat("multiplier")),
		})
	}

	if records, err = findOptions(app, collections.BuilderTypes); err != nil {
		return cat, err
	}
	for _, r := range records {
		cat.BuilderTypes = append(cat.BuilderTypes, pricing.BuilderType{
			ID:         r.GetString("option_id"),
			Name:       r.GetString("name"),
			Multiplier: decimal.NewFromFloat(r.GetFloat("multiplier")),
		})
	}

	if err := cat.Validate(); err != nil {
		return pricing.Catalog{}, fmt.Errorf("stored catalog is invalid: %w", err)
	}
	return cat, nil
}

func findOptions(app core.App, collection string) ([]*core.Record, error) {
	records, err := app.FindRecordsByFilter(collection, "id != ''", "sort_order", 0, 0)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", collection, err)
	}
	return records, nil
}

func unmarshalList(r *core.Record, field string, dst *[]string) error {
	if r.GetString(field) == "" {
		return nil
	}
	if err := r.UnmarshalJSONField(field, dst); err != nil {
		return fmt.Errorf("%s %q: %s: %w", r.Collection().Name, r.GetString("option_id"), field, err)
	}
	return nil
}
