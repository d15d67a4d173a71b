package pricing

import "github.com/shopspring/decimal"

// CostBreakdown is the itemized decomposition of a quote total.
// Values are exact; rounding is a presentation concern.
type CostBreakdown struct {
	BasePrice     decimal.Decimal `json:"basePrice"`
	AddOnsTotal   decimal.Decimal `json:"addOnsTotal"`
	HostingCost   decimal.Decimal `json:"hostingCost"`
	UrgencyMarkup decimal.Decimal `json:"urgencyMarkup"`
	AgencyMarkup  decimal.Decimal `json:"agencyMarkup"`
}

// Subtotal is the pre-markup amount.
func (b CostBreakdown) Subtotal() decimal.Decimal {
	return b.BasePrice.Add(b.AddOnsTotal).Add(b.HostingCost)
}

// AfterUrgency is the subtotal with the urgency markup applied.
func (b CostBreakdown) AfterUrgency() decimal.Decimal {
	return b.Subtotal().Add(b.UrgencyMarkup)
}

// Sum adds every line of the breakdown.
func (b CostBreakdown) Sum() decimal.Decimal {
	return b.AfterUrgency().Add(b.AgencyMarkup)
}

// QuoteCalculation is the resolved selection with its price.
type QuoteCalculation struct {
	WebsiteType  WebsiteType     `json:"websiteType"`
	AddOns       []AddOn         `json:"addOns"`
	HostingPlan  HostingPlan     `json:"hostingPlan"`
	UrgencyLevel UrgencyLevel    `json:"urgencyLevel"`
	BuilderType  BuilderType     `json:"builderType"`
	Total        decimal.Decimal `json:"total"`
	Breakdown    CostBreakdown   `json:"breakdown"`
}

// Result is either Ready with a calculation or NotReady.
type Result struct {
	calc  QuoteCalculation
	ready bool
}

// NotReady is the result for a selection that is not complete yet.
var NotReady = Result{}

// Ready wraps a finished calculation.
func Ready(calc QuoteCalculation) Result {
	return Result{calc: calc, ready: true}
}

// IsReady reports whether the result carries a calculation.
func (r Result) IsReady() bool {
	return r.ready
}

// Calculation returns the calculation and true when the result is Ready.
func (r Result) Calculation() (QuoteCalculation, bool) {
	return r.calc, r.ready
}

// Calculate prices sel against cat.
//
// The urgency markup is taken on the subtotal and the agency markup on the
// post-urgency amount, so the two compound. Unknown add-on ids are ignored.
// If the website type, hosting plan, urgency level or builder type does not
// resolve the result is NotReady.
func Calculate(cat Catalog, sel Selections) Result {
	websiteType, ok := cat.WebsiteType(sel.WebsiteTypeID)
	if !ok {
		return NotReady
	}
	hostingPlan, ok := cat.HostingPlan(sel.HostingID)
	if !ok {
		return NotReady
	}
	urgencyLevel, ok := cat.UrgencyLevel(sel.UrgencyID)
	if !ok {
		return NotReady
	}
	builderType, ok := cat.BuilderType(sel.BuilderID)
	if !ok {
		return NotReady
	}

	// Catalog order, one entry per add-on.
	addOns := make([]AddOn, 0, len(sel.AddOnIDs))
	addOnsTotal := decimal.Zero
	for _, a := range cat.AddOns {
		if sel.HasAddOn(a.ID) {
			addOns = append(addOns, a)
			addOnsTotal = addOnsTotal.Add(a.Price)
		}
	}

	one := decimal.NewFromInt(1)
	basePrice := websiteType.BasePrice
	hostingCost := hostingPlan.Price
	subtotal := basePrice.Add(addOnsTotal).Add(hostingCost)
	urgencyMarkup := subtotal.Mul(urgencyLevel.Multiplier.Sub(one))
	afterUrgency := subtotal.Add(urgencyMarkup)
	agencyMarkup := afterUrgency.Mul(builderType.Multiplier.Sub(one))
	total := afterUrgency.Add(agencyMarkup)

	return Ready(QuoteCalculation{
		WebsiteType:  websiteType,
		AddOns:       addOns,
		HostingPlan:  hostingPlan,
		UrgencyLevel: urgencyLevel,
		BuilderType:  builderType,
		Total:        total,
		Breakdown: CostBreakdown{
			BasePrice:     basePrice,
			AddOnsTotal:   addOnsTotal,
			HostingCost:   hostingCost,
			UrgencyMarkup: urgencyMarkup,
			AgencyMarkup:  agencyMarkup,
		},
	})
}
