package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"webquote/config"
	"webquote/pricing"
)

// QuoteLineKind tells renderers how to style a line.
type QuoteLineKind int

const (
	LineBase QuoteLineKind = iota
	LineAddOn
	LineHosting
	LineMarkup
)

// QuoteExportLine is one priced line of a quotation document.
type QuoteExportLine struct {
	Kind   QuoteLineKind
	Name   string
	Detail string
	Amount decimal.Decimal
	// Multiplier is set on markup lines only.
	Multiplier decimal.Decimal
}

// Label is Name, with the multiplier appended on markup lines.
func (l QuoteExportLine) Label() string {
	if l.Kind == LineMarkup && !l.Multiplier.IsZero() {
		return l.Name + " (" + FormatMultiplier(l.Multiplier) + ")"
	}
	return l.Name
}

// QuoteExportFeature is an add-on as listed in the contract scope.
type QuoteExportFeature struct {
	Name        string
	Description string
}

// TermsSection is a numbered contract clause.
type TermsSection struct {
	Title string
	Items []string
}

// QuoteExportData holds all data needed to render quotation documents.
type QuoteExportData struct {
	Company  config.CompanyConfig
	Currency string

	QuoteNumber string
	Date        string
	ValidUntil  string

	Client ClientInfo

	Lines         []QuoteExportLine
	Subtotal      decimal.Decimal
	Total         decimal.Decimal
	AmountInWords string

	// Contract scope
	WebsiteType string
	Features    []QuoteExportFeature
	HostingPlan string // empty when no hosting was chosen
	Timeline    string
	ServiceType string

	// Contract payment split, in whole units
	DepositPercent int
	Deposit        int64
	FinalPayment   int64

	Terms         []string
	Notes         string
	ContractTerms []TermsSection
}

// BuildQuoteExportData flattens a quotation for the document renderers.
func BuildQuoteExportData(q *Quotation, company config.CompanyConfig, quoteCfg config.QuoteConfig) *QuoteExportData {
	calc := q.Calculation
	b := calc.Breakdown

	features := make([]QuoteExportFeature, 0, len(calc.AddOns))
	for _, a := range calc.AddOns {
		features = append(features, QuoteExportFeature{Name: a.Name, Description: a.Description})
	}
	hostingPlan := ""
	if b.HostingCost.IsPositive() {
		hostingPlan = calc.HostingPlan.Name
	}
	lines := QuoteLines(calc)

	total := q.RoundedTotal()
	deposit := decimal.NewFromInt(total).
		Mul(decimal.NewFromInt(int64(quoteCfg.DepositPercent))).
		Div(decimal.NewFromInt(100)).
		Round(0).IntPart()

	return &QuoteExportData{
		Company:  company,
		Currency: q.Currency,

		QuoteNumber: q.QuoteNumber,
		Date:        q.Date(),
		ValidUntil:  q.ValidUntilDate(),

		Client: q.Client,

		Lines:         lines,
		Subtotal:      b.Subtotal(),
		Total:         calc.Total,
		AmountInWords: AmountToWords(calc.Total, q.Currency),

		WebsiteType: calc.WebsiteType.Name,
		Features:    features,
		HostingPlan: hostingPlan,
		Timeline:    calc.UrgencyLevel.Name,
		ServiceType: calc.BuilderType.Name,

		DepositPercent: quoteCfg.DepositPercent,
		Deposit:        deposit,
		FinalPayment:   total - deposit,

		Terms: []string{
			fmt.Sprintf("%d%% deposit required to commence project", quoteCfg.DepositPercent),
			"Final payment due upon project completion",
			"Timeline subject to content and feedback provision",
			fmt.Sprintf("Quote valid for %d days from issue date", quoteCfg.ValidityDays),
			"Additional revisions may incur extra charges",
		},
		Notes: "This quotation is based on the specifications discussed. Any additional requirements " +
			"or changes to the scope may affect the final price. We appreciate your business and " +
			"look forward to working with you.",
		ContractTerms: contractTerms(company.Name, quoteCfg.DepositPercent),
	}
}

func contractTerms(provider string, depositPercent int) []TermsSection {
	return []TermsSection{
		{"Payment Terms", []string{
			fmt.Sprintf("%d%% deposit is required before project commencement", depositPercent),
			fmt.Sprintf("Remaining %d%% due upon project completion and client approval", 100-depositPercent),
			"All payments are non-refundable once work has commenced",
			"Late payments may incur additional charges",
		}},
		{"Project Delivery", []string{
			"Timeline is subject to client providing necessary content and feedback",
			"Project includes up to 3 rounds of revisions",
			"Additional revisions beyond scope may incur extra charges",
			"Client must provide all content, images, and materials required",
		}},
		{"Intellectual Property", []string{
			"Upon full payment, client owns the website and its content",
			provider + " retains the right to use project for portfolio purposes",
			"Third-party assets are subject to their respective licenses",
		}},
		{"Support and Maintenance", []string{
			"30 days of free technical support included",
			"Hosting and maintenance packages available separately",
			"Emergency support available at additional cost",
		}},
		{"Limitation of Liability", []string{
			provider + "'s liability is limited to the contract value",
			"Client is responsible for content accuracy and legality",
			"Force majeure events may affect delivery timelines",
		}},
		{"Termination", []string{
			"Either party may terminate with 7 days written notice",
			"Client pays for work completed up to termination date",
			"All deliverables remain property of " + provider + " until full payment",
		}},
	}
}

// QuoteLines itemizes a calculation: the website type and each add-on
// always, hosting and the two markups only when they are positive.
func QuoteLines(calc pricing.QuoteCalculation) []QuoteExportLine {
	b := calc.Breakdown

	lines := []QuoteExportLine{{
		Kind:   LineBase,
		Name:   calc.WebsiteType.Name,
		Detail: "Base website development",
		Amount: b.BasePrice,
	}}
	for _, a := range calc.AddOns {
		lines = append(lines, QuoteExportLine{Kind: LineAddOn, Name: a.Name, Detail: "Additional feature", Amount: a.Price})
	}
	if b.HostingCost.IsPositive() {
		lines = append(lines, QuoteExportLine{Kind: LineHosting, Name: calc.HostingPlan.Name, Detail: "Hosting and domain services", Amount: b.HostingCost})
	}
	if b.UrgencyMarkup.IsPositive() {
		lines = append(lines, QuoteExportLine{
			Kind: LineMarkup, Name: "Urgency Markup", Detail: calc.UrgencyLevel.Name,
			Amount: b.UrgencyMarkup, Multiplier: calc.UrgencyLevel.Multiplier,
		})
	}
	if b.AgencyMarkup.IsPositive() {
		lines = append(lines, QuoteExportLine{
			Kind: LineMarkup, Name: "Agency Service Fee", Detail: "Professional agency services",
			Amount: b.AgencyMarkup, Multiplier: calc.BuilderType.Multiplier,
		})
	}
	return lines
}

// QuoteDocuments renders the documents of a quotation for one company profile.
type QuoteDocuments struct {
	Company config.CompanyConfig
	Quote   config.QuoteConfig
}

// NewQuoteDocuments builds a renderer from the app configuration.
func NewQuoteDocuments(cfg *config.Config) *QuoteDocuments {
	return &QuoteDocuments{Company: cfg.Company, Quote: cfg.Quote}
}

// Data is BuildQuoteExportData with the renderer's configuration.
func (d *QuoteDocuments) Data(q *Quotation) *QuoteExportData {
	return BuildQuoteExportData(q, d.Company, d.Quote)
}

// QuotationPDF renders the quotation as PDF.
func (d *QuoteDocuments) QuotationPDF(q *Quotation) ([]byte, error) {
	return GenerateQuotationPDF(d.Data(q))
}

// ContractPDF renders the service agreement as PDF.
func (d *QuoteDocuments) ContractPDF(q *Quotation) ([]byte, error) {
	return GenerateContractPDF(d.Data(q))
}

// Workbook renders the quotation as an Excel workbook.
func (d *QuoteDocuments) Workbook(q *Quotation) ([]byte, error) {
	return GenerateQuotationExcel(d.Data(q))
}
