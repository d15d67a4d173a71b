package pricing

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// Validate checks that the catalog is well formed: every single-select
// dimension has options, ids are present and unique per dimension, prices
// are non-negative and multipliers are at least 1. Calculate assumes a
// catalog that passed Validate.
func (c Catalog) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.WebsiteTypes, validation.Required, validation.By(uniqueIDs(func(i int) string { return c.WebsiteTypes[i].ID }))),
		validation.Field(&c.AddOns, validation.By(uniqueIDs(func(i int) string { return c.AddOns[i].ID }))),
		validation.Field(&c.HostingPlans, validation.Required, validation.By(uniqueIDs(func(i int) string { return c.HostingPlans[i].ID }))),
		validation.Field(&c.UrgencyLevels, validation.Required, validation.By(uniqueIDs(func(i int) string { return c.UrgencyLevels[i].ID }))),
		validation.Field(&c.BuilderTypes, validation.Required, validation.By(uniqueIDs(func(i int) string { return c.BuilderTypes[i].ID }))),
	)
}

func (w WebsiteType) Validate() error {
	return validation.ValidateStruct(&w,
		validation.Field(&w.ID, validation.Required),
		validation.Field(&w.Name, validation.Required),
		validation.Field(&w.BasePrice, validation.By(nonNegative)),
	)
}

func (a AddOn) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.ID, validation.Required),
		validation.Field(&a.Name, validation.Required),
		validation.Field(&a.Price, validation.By(nonNegative)),
	)
}

func (h HostingPlan) Validate() error {
	return validation.ValidateStruct(&h,
		validation.Field(&h.ID, validation.Required),
		validation.Field(&h.Name, validation.Required),
		validation.Field(&h.Price, validation.By(nonNegative)),
	)
}

func (u UrgencyLevel) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.ID, validation.Required),
		validation.Field(&u.Name, validation.Required),
		validation.Field(&u.Multiplier, validation.By(atLeastOne)),
	)
}

func (b BuilderType) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.ID, validation.Required),
		validation.Field(&b.Name, validation.Required),
		validation.Field(&b.Multiplier, validation.By(atLeastOne)),
	)
}

func nonNegative(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok {
		return errors.New("must be a decimal")
	}
	if d.IsNegative() {
		return errors.New("must not be negative")
	}
	return nil
}

func atLeastOne(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok {
		return errors.New("must be a decimal")
	}
	if d.LessThan(decimal.NewFromInt(1)) {
		return errors.New("must be at least 1")
	}
	return nil
}

// uniqueIDs builds a rule rejecting duplicate ids in a slice; id returns
// the id of the i-th element.
func uniqueIDs(id func(i int) string) validation.RuleFunc {
	return func(value interface{}) error {
		n := sliceLen(value)
		seen := make(map[string]bool, n)
		for i := 0; i < n; i++ {
			v := id(i)
			if v == "" {
				continue
			}
			if seen[v] {
				return fmt.Errorf("duplicate id %q", v)
			}
			seen[v] = true
		}
		return nil
	}
}

func sliceLen(value interface{}) int {
	switch v := value.(type) {
	case []WebsiteType:
		return len(v)
	case []AddOn:
		return len(v)
	case []HostingPlan:
		return len(v)
	case []UrgencyLevel:
		return len(v)
	case []BuilderType:
		return len(v)
	}
	return 0
}
