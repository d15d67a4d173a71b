package services

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
)

// GenerateContractPDF creates the website development agreement for a
// quotation. The contract number is the quote number.
func GenerateContractPDF(data *QuoteExportData) ([]byte, error) {
	m := newDocument()

	addContractHeader(m, data)
	addContractParties(m, data)
	addContractScope(m, data)
	addContractFinancials(m, data)
	addContractTerms(m, data)
	addContractSignatures(m, data)
	addContractFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate contract PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func sectionTitle(m core.Maroto, title string) {
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(text.New(title, props.Text{
				Size:  9,
				Style: fontstyle.Bold,
				Align: align.Left,
				Color: colorInk,
			})).WithStyle(&props.Cell{BackgroundColor: &props.Color{Red: 245, Green: 243, Blue: 239}}),
		),
	)
}

func addContractHeader(m core.Maroto, data *QuoteExportData) {
	m.AddRows(
		row.New(10).Add(
			col.New(12).Add(text.New("WEBSITE DEVELOPMENT CONTRACT", props.Text{
				Size:  16,
				Style: fontstyle.Bold,
				Align: align.Center,
				Color: colorPrimary,
			})),
		),
	)
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(text.New(joinNonEmpty([]string{data.Company.Name, data.Company.Tagline}, " - "), props.Text{
				Size:  9,
				Align: align.Center,
				Color: colorMuted,
			})),
		),
	)
	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New("Contract #: "+data.QuoteNumber, props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Left})),
			col.New(6).Add(text.New("Date: "+data.Date, props.Text{Size: 8, Align: align.Right})),
		),
	)
	m.AddRows(row.New(4))
}

// addContractParties adds the provider and client side by side.
func addContractParties(m core.Maroto, data *QuoteExportData) {
	sectionTitle(m, "PARTIES TO THE AGREEMENT")

	label := props.Text{Size: 7, Style: fontstyle.Bold, Align: align.Left, Color: colorMuted}
	bold := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Left}
	value := props.Text{Size: 8, Align: align.Left}

	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New("SERVICE PROVIDER", label)),
			col.New(6).Add(text.New("CLIENT", label)),
		),
	)
	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New(data.Company.Name, bold)),
			col.New(6).Add(text.New(data.Client.FullName, bold)),
		),
	)

	provider := []string{data.Company.Tagline, fmtField("Email", data.Company.Email), fmtField("Phone", data.Company.Phone)}
	client := []string{data.Client.CompanyName, data.Client.Email, data.Client.PhoneNumber}
	for i := range provider {
		if provider[i] == "" && client[i] == "" {
			continue
		}
		m.AddRows(
			row.New(5).Add(
				col.New(6).Add(text.New(provider[i], value)),
				col.New(6).Add(text.New(client[i], value)),
			),
		)
	}
	m.AddRows(row.New(4))
}

// addContractScope lists what is being built.
func addContractScope(m core.Maroto, data *QuoteExportData) {
	sectionTitle(m, "PROJECT DETAILS")

	field := func(label, v string) {
		if v == "" {
			return
		}
		m.AddRows(
			row.New(6).Add(
				col.New(4).Add(text.New(label, props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Left})),
				col.New(8).Add(text.New(v, props.Text{Size: 8, Align: align.Left})),
			),
		)
	}

	field("Website Type:", data.WebsiteType)
	if len(data.Features) > 0 {
		field("Additional Features:", fmt.Sprintf("%d", len(data.Features)))
		for _, f := range data.Features {
			m.AddRows(
				row.New(6).Add(
					col.New(12).Add(text.New(fmt.Sprintf("• %s - %s", f.Name, f.Description), props.Text{
						Size:  8,
						Align: align.Left,
						Left:  6,
					})),
				),
			)
		}
	}
	field("Hosting Plan:", data.HostingPlan)
	field("Project Timeline:", data.Timeline)
	field("Service Type:", data.ServiceType)
	m.AddRows(row.New(4))
}

// addContractFinancials adds the total and the deposit / final payment split.
func addContractFinancials(m core.Maroto, data *QuoteExportData) {
	sectionTitle(m, "FINANCIAL TERMS")

	label := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Left}
	value := props.Text{Size: 8, Align: align.Right}
	summaryCell := &props.Cell{BackgroundColor: &props.Color{Red: 245, Green: 245, Blue: 245}}

	rows := []struct{ label, value string }{
		{"Total Project Cost:", FormatMoney(data.Total, data.Currency)},
		{fmt.Sprintf("Deposit Required (%d%%):", data.DepositPercent), FormatMoney(decimal.NewFromInt(data.Deposit), data.Currency)},
		{"Final Payment:", FormatMoney(decimal.NewFromInt(data.FinalPayment), data.Currency)},
	}
	for _, r := range rows {
		m.AddRows(
			row.New(7).Add(
				col.New(8).Add(text.New(r.label, label)).WithStyle(summaryCell),
				col.New(4).Add(text.New(r.value, value)).WithStyle(summaryCell),
			),
		)
	}
	m.AddRows(row.New(4))
}

func addContractTerms(m core.Maroto, data *QuoteExportData) {
	if len(data.ContractTerms) == 0 {
		return
	}
	sectionTitle(m, "TERMS AND CONDITIONS")

	for i, s := range data.ContractTerms {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(text.New(fmt.Sprintf("%d. %s", i+1, strings.ToUpper(s.Title)), props.Text{
					Size:  8,
					Style: fontstyle.Bold,
					Align: align.Left,
				})),
			),
		)
		for _, item := range s.Items {
			m.AddRows(
				row.New(5).Add(
					col.New(12).Add(text.New("• "+item, props.Text{Size: 8, Align: align.Left, Left: 4})),
				),
			)
		}
		m.AddRows(row.New(2))
	}
	m.AddRows(row.New(2))
}

func addContractSignatures(m core.Maroto, data *QuoteExportData) {
	sectionTitle(m, "AGREEMENT ACCEPTANCE")
	m.AddRows(row.New(10))

	line := props.Text{Size: 8, Align: align.Left, Color: colorMuted}
	label := props.Text{Size: 7, Style: fontstyle.Bold, Align: align.Left, Color: colorMuted}
	value := props.Text{Size: 8, Align: align.Left}

	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New("____________________________", line)),
			col.New(6).Add(text.New("____________________________", line)),
		),
	)
	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New("Client Signature", label)),
			col.New(6).Add(text.New(data.Company.Name+" Representative", label)),
		),
	)
	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New("Name: "+data.Client.FullName, value)),
			col.New(6).Add(text.New("Name: _________________", value)),
		),
	)
	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New("Date: _________________", value)),
			col.New(6).Add(text.New("Date: _________________", value)),
		),
	)
}

func addContractFooter(m core.Maroto, data *QuoteExportData) {
	footer := props.Text{Size: 7, Align: align.Center, Color: colorMuted}
	m.AddRows(row.New(8))
	if data.Company.Jurisdiction != "" {
		m.AddRows(row.New(5).Add(col.New(12).Add(text.New(
			fmt.Sprintf("This contract is governed by the laws of %s.", data.Company.Jurisdiction), footer))))
	}
	m.AddRows(row.New(5).Add(col.New(12).Add(text.New(
		"Any disputes shall be resolved through mediation or arbitration.", footer))))
	m.AddRows(row.New(5).Add(col.New(12).Add(text.New(
		fmt.Sprintf("%s | Contract #%s", joinNonEmpty([]string{data.Company.Name, data.Company.Tagline}, " - "), data.QuoteNumber), footer))))
}
