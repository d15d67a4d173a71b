package pricing

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
)

// catalogFile is the HCL shape of a catalog:
//
//	website_type "landing" {
//	  name  = "Landing Page"
//	  price = 10000
//	}
//	add_on "seo" { ... }
//	hosting_plan "none" { ... }
//	urgency_level "flexible" { multiplier = 1.0 ... }
//	builder_type "agency" { multiplier = 1.3 ... }
type catalogFile struct {
	WebsiteTypes []websiteTypeBlock `hcl:"website_type,block"`
	AddOns       []addOnBlock       `hcl:"add_on,block"`
	HostingPlans []priceBlock       `hcl:"hosting_plan,block"`
	Urgency      []multiplierBlock  `hcl:"urgency_level,block"`
	Builders     []multiplierBlock  `hcl:"builder_type,block"`
}

type websiteTypeBlock struct {
	ID                string   `hcl:"id,label"`
	Name              string   `hcl:"name"`
	Price             float64  `hcl:"price"`
	Purpose           string   `hcl:"purpose,optional"`
	Includes          []string `hcl:"includes,optional"`
	ClientFit         string   `hcl:"client_fit,optional"`
	RecommendedAddOns []string `hcl:"recommended_add_ons,optional"`
	TechOptions       string   `hcl:"tech_options,optional"`
}

type addOnBlock struct {
	ID          string  `hcl:"id,label"`
	Name        string  `hcl:"name"`
	Price       float64 `hcl:"price"`
	Description string  `hcl:"description,optional"`
}

type priceBlock struct {
	ID    string  `hcl:"id,label"`
	Name  string  `hcl:"name"`
	Price float64 `hcl:"price"`
}

type multiplierBlock struct {
	ID         string  `hcl:"id,label"`
	Name       string  `hcl:"name"`
	Multiplier float64 `hcl:"multiplier"`
}

// LoadCatalogFile reads, decodes and validates an HCL catalog file.
func LoadCatalogFile(path string) (Catalog, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(src, path)
}

// ParseCatalog decodes and validates an HCL catalog. filename is only used
// in diagnostics.
func ParseCatalog(src []byte, filename string) (Catalog, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return Catalog{}, fmt.Errorf("parse catalog: %s", formatDiagnostics(diags))
	}

	var raw catalogFile
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return Catalog{}, fmt.Errorf("decode catalog: %s", formatDiagnostics(diags))
	}

	cat := raw.catalog()
	if err := cat.Validate(); err != nil {
		return Catalog{}, fmt.Errorf("invalid catalog %s: %w", filename, err)
	}
	return cat, nil
}

func (f catalogFile) catalog() Catalog {
	var cat Catalog
	for _, w := range f.WebsiteTypes {
		cat.WebsiteTypes = append(cat.WebsiteTypes, WebsiteType{
			ID:                w.ID,
			Name:              w.Name,
			BasePrice:         decimal.NewFromFloat(w.Price),
			Purpose:           w.Purpose,
			Includes:          w.Includes,
			ClientFit:         w.ClientFit,
			RecommendedAddOns: w.RecommendedAddOns,
			TechOptions:       w.TechOptions,
		})
	}
	for _, a := range f.AddOns {
		cat.AddOns = append(cat.AddOns, AddOn{
			ID:          a.ID,
			Name:        a.Name,
			Price:       decimal.NewFromFloat(a.Price),
			Description: a.Description,
		})
	}
	for _, h := range f.HostingPlans {
		cat.HostingPlans = append(cat.HostingPlans, HostingPlan{
			ID:    h.ID,
			Name:  h.Name,
			Price: decimal.NewFromFloat(h.Price),
		})
	}
	for _, u := range f.Urgency {
		cat.UrgencyLevels = append(cat.UrgencyLevels, UrgencyLevel{
			ID:         u.ID,
			Name:       u.Name,
			Multiplier: decimal.NewFromFloat(u.Multiplier),
		})
	}
	for _, b := range f.Builders {
		cat.BuilderTypes = append(cat.BuilderTypes, BuilderType{
			ID:         b.ID,
			Name:       b.Name,
			Multiplier: decimal.NewFromFloat(b.Multiplier),
		})
	}
	return cat
}

func formatDiagnostics(diags hcl.Diagnostics) string {
	var msgs []string
	for _, d := range diags {
		if d.Severity != hcl.DiagError {
			continue
		}
		msg := d.Summary
		if d.Detail != "" {
			msg += ": " + d.Detail
		}
		if d.Subject != nil {
			msg = fmt.Sprintf("%s:%d: %s", d.Subject.Filename, d.Subject.Start.Line, msg)
		}
		msgs = append(msgs, msg)
	}
	return strings.Join(msgs, "; ")
}
