package handlers

import (
	"webquote/config"
	"webquote/pricing"
	"webquote/services"
	"webquote/templates"
)

func pageData(cfg *config.Config, title string) templates.PageData {
	return templates.PageData{
		Title:       title,
		CompanyName: cfg.Company.Name,
		Tagline:     cfg.Company.Tagline,
		Email:       cfg.Company.Email,
		Phone:       cfg.Company.Phone,
		Website:     cfg.Company.Website,
	}
}

// buildCalculatorData maps the catalog to option views, marking sel.
func buildCalculatorData(cat pricing.Catalog, sel pricing.Selections, cfg *config.Config) templates.CalculatorData {
	cur := cfg.Quote.Currency
	data := templates.CalculatorData{
		Page:      pageData(cfg, "Website Quote"),
		Breakdown: buildBreakdownData(cat, sel, cur),
	}
	for _, w := range cat.WebsiteTypes {
		data.WebsiteTypes = append(data.WebsiteTypes, templates.OptionView{
			ID: w.ID, Name: w.Name, Detail: services.FormatMoney(w.BasePrice, cur), Note: w.Purpose,
			Selected: w.ID == sel.WebsiteTypeID,
		})
	}
	for _, a := range cat.AddOns {
		data.AddOns = append(data.AddOns, templates.OptionView{
			ID: a.ID, Name: a.Name, Detail: services.FormatMarkup(a.Price, cur), Note: a.Description,
			Selected: sel.HasAddOn(a.ID),
		})
	}
	for _, h := range cat.HostingPlans {
		detail := services.FormatMoney(h.Price, cur)
		if h.Price.IsZero() {
			detail = ""
		}
		data.HostingPlans = append(data.HostingPlans, templates.OptionView{
			ID: h.ID, Name: h.Name, Detail: detail, Selected: h.ID == sel.HostingID,
		})
	}
	for _, u := range cat.UrgencyLevels {
		data.UrgencyLevels = append(data.UrgencyLevels, templates.OptionView{
			ID: u.ID, Name: u.Name, Detail: services.FormatMultiplier(u.Multiplier), Selected: u.ID == sel.UrgencyID,
		})
	}
	for _, b := range cat.BuilderTypes {
		data.BuilderTypes = append(data.BuilderTypes, templates.OptionView{
			ID: b.ID, Name: b.Name, Detail: services.FormatMultiplier(b.Multiplier), Selected: b.ID == sel.BuilderID,
		})
	}
	return data
}

func buildBreakdownData(cat pricing.Catalog, sel pricing.Selections, currency string) templates.BreakdownData {
	calc, ok := pricing.Calculate(cat, sel).Calculation()
	if !ok {
		return templates.BreakdownData{Missing: missingLabels(sel.Missing(cat))}
	}
	return templates.BreakdownData{
		Ready: true,
		Lines: breakdownLines(calc, currency),
		Total: services.FormatMoney(calc.Total, currency),
	}
}

func breakdownLines(calc pricing.QuoteCalculation, currency string) []templates.BreakdownLine {
	var lines []templates.BreakdownLine
	for _, l := range services.QuoteLines(calc) {
		markup := l.Kind == services.LineMarkup
		amount := services.FormatMoney(l.Amount, currency)
		if markup {
			amount = services.FormatMarkup(l.Amount, currency)
		}
		lines = append(lines, templates.BreakdownLine{Label: l.Label(), Amount: amount, Markup: markup})
	}
	return lines
}

func buildQuotationData(q *services.Quotation, docs *services.QuoteDocuments, cfg *config.Config) templates.QuotationData {
	d := docs.Data(q)
	return templates.QuotationData{
		Page:          pageData(cfg, "Quotation "+q.QuoteNumber),
		QuoteNumber:   q.QuoteNumber,
		Date:          d.Date,
		ValidUntil:    d.ValidUntil,
		ClientName:    q.Client.FullName,
		ClientEmail:   q.Client.Email,
		ClientCompany: q.Client.CompanyName,
		ClientPhone:   q.Client.PhoneNumber,
		Lines:         breakdownLines(q.Calculation, q.Currency),
		Total:         services.FormatMoney(d.Total, q.Currency),
		AmountInWords: d.AmountInWords,
		Terms:         d.Terms,
		Notes:         d.Notes,
		Hidden:        hiddenFields(q),
	}
}
