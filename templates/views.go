package templates

// PageData is shared by every full page.
type PageData struct {
	Title       string
	CompanyName string
	Tagline     string
	Email       string
	Phone       string
	Website     string
}

// OptionView is one selectable catalog option.
type OptionView struct {
	ID       string
	Name     string
	Detail   string // formatted price or multiplier
	Note     string
	Selected bool
}

// BreakdownLine is one row of the cost breakdown.
type BreakdownLine struct {
	Label  string
	Amount string
	Markup bool
}

// BreakdownData is the breakdown panel. When Ready is false Missing names
// the dimensions still to choose.
type BreakdownData struct {
	Ready   bool
	Missing []string
	Lines   []BreakdownLine
	Total   string
}

// CalculatorData drives the calculator page.
type CalculatorData struct {
	Page          PageData
	WebsiteTypes  []OptionView
	AddOns        []OptionView
	HostingPlans  []OptionView
	UrgencyLevels []OptionView
	BuilderTypes  []OptionView
	Breakdown     BreakdownData
}

// HiddenField is a name/value pair carried by the export forms.
type HiddenField struct {
	Name  string
	Value string
}

// QuotationData drives the quotation page.
type QuotationData struct {
	Page          PageData
	QuoteNumber   string
	Date          string
	ValidUntil    string
	ClientName    string
	ClientEmail   string
	ClientCompany string
	ClientPhone   string
	Lines         []BreakdownLine
	Total         string
	AmountInWords string
	Terms         []string
	Notes         string
	// Fields re-posted by the export buttons.
	Hidden []HiddenField
}
