package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"webquote/logging"
)

// Catalog collection names.
const (
	WebsiteTypes  = "website_types"
	AddOns        = "add_ons"
	HostingPlans  = "hosting_plans"
	UrgencyLevels = "urgency_levels"
	BuilderTypes  = "builder_types"
)

// All lists the catalog collections in dimension order.
var All = []string{WebsiteTypes, AddOns, HostingPlans, UrgencyLevels, BuilderTypes}

// Setup programmatically creates/ensures the catalog collections exist.
// Every option carries its catalog id in option_id and its display
// position in sort_order.
func Setup(app *pocketbase.PocketBase) error {
	specs := []struct {
		name   string
		fields func(*core.Collection)
	}{
		{WebsiteTypes, func(c *core.Collection) {
			c.Fields.Add(&core.NumberField{Name: "price"})
			c.Fields.Add(&core.TextField{Name: "purpose"})
			c.Fields.Add(&core.JSONField{Name: "includes"})
			c.Fields.Add(&core.TextField{Name: "client_fit"})
			c.Fields.Add(&core.JSONField{Name: "recommended_add_ons"})
			c.Fields.Add(&core.TextField{Name: "tech_options"})
		}},
		{AddOns, func(c *core.Collection) {
			c.Fields.Add(&core.NumberField{Name: "price"})
			c.Fields.Add(&core.TextField{Name: "description"})
		}},
		{HostingPlans, func(c *core.Collection) {
			c.Fields.Add(&core.NumberField{Name: "price"})
		}},
		{UrgencyLevels, func(c *core.Collection) {
			c.Fields.Add(&core.NumberField{Name: "multiplier", Required: true})
		}},
		{BuilderTypes, func(c *core.Collection) {
			c.Fields.Add(&core.NumberField{Name: "multiplier", Required: true})
		}},
	}

	for _, s := range specs {
		if _, err := ensureCollection(app, s.name, optionFields(s.name, s.fields)); err != nil {
			return err
		}
	}
	return nil
}

// optionFields wraps the per-dimension fields with the ones every option has.
func optionFields(name string, extra func(*core.Collection)) func(*core.Collection) {
	return func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "option_id", Required: true})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.NumberField{Name: "sort_order"})
		extra(c)
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
		c.AddIndex("idx_"+name+"_option_id", true, "option_id", "")
	}
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) (*core.Collection, error) {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		logging.Debug("collections: already exists", zap.String("collection", name))
		return existing, nil
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		return nil, fmt.Errorf("create collection %q: %w", name, err)
	}

	logging.Info("collections: created", zap.String("collection", name), zap.String("id", collection.Id))
	return collection, nil
}
