package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"webquote/logging"
	"webquote/pricing"
)

// Seed writes cat into the catalog collections. It is safe to call on every
// startup: when website_types already holds records the store is treated as
// owned by the admin UI and left alone.
func Seed(app *pocketbase.PocketBase, cat pricing.Catalog) error {
	existing, err := app.FindAllRecords(WebsiteTypes)
	if err != nil {
		return fmt.Errorf("seed: could not query %s: %w", WebsiteTypes, err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	logging.Info("seed: catalog collections are empty, inserting catalog",
		zap.Int("website_types", len(cat.WebsiteTypes)),
		zap.Int("add_ons", len(cat.AddOns)))

	return app.RunInTransaction(func(txApp core.App) error {
		save := func(collection string, sortOrder int, id, name string, set func(*core.Record)) error {
			col, err := txApp.FindCollectionByNameOrId(collection)
			if err != nil {
				return fmt.Errorf("seed: could not find %s collection: %w", collection, err)
			}
			r := core.NewRecord(col)
			r.Set("option_id", id)
			r.Set("name", name)
			r.Set("sort_order", sortOrder)
			set(r)
			if err := txApp.Save(r); err != nil {
				return fmt.Errorf("seed: save %s %q: %w", collection, id, err)
			}
			return nil
		}

		for i, w := range cat.WebsiteTypes {
			err := save(WebsiteTypes, i+1, w.ID, w.Name, func(r *core.Record) {
				r.Set("price", w.BasePrice.InexactFloat64())
				r.Set("purpose", w.Purpose)
				r.Set("includes", nonNil(w.Includes))
				r.Set("client_fit", w.ClientFit)
				r.Set("recommended_add_ons", nonNil(w.RecommendedAddOns))
				r.Set("tech_options", w.TechOptions)
			})
			if err != nil {
				return err
			}
		}
		for i, a := range cat.AddOns {
			err := save(AddOns, i+1, a.ID, a.Name, func(r *core.Record) {
				r.Set("price", a.Price.InexactFloat64())
				r.Set("description", a.Description)
			})
			if err != nil {
				return err
			}
		}
		for i, h := range cat.HostingPlans {
			err := save(HostingPlans, i+1, h.ID, h.Name, func(r *core.Record) {
				r.Set("price", h.Price.InexactFloat64())
			})
			if err != nil {
				return err
			}
		}
		for i, u := range cat.UrgencyLevels {
			err := save(UrgencyLevels, i+1, u.ID, u.Name, func(r *core.Record) {
				r.Set("multiplier", u.Multiplier.InexactFloat64())
			})
			if err != nil {
				return err
			}
		}
		for i, b := range cat.BuilderTypes {
			err := save(BuilderTypes, i+1, b.ID, b.Name, func(r *core.Record) {
				r.Set("multiplier", b.Multiplier.InexactFloat64())
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
