package services

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	colorMuted   = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorInk     = &props.Color{Red: 33, Green: 37, Blue: 41}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorPrimary = &props.Color{Red: 37, Green: 99, Blue: 235}
	colorMarkup  = &props.Color{Red: 234, Green: 88, Blue: 12}
)

// newDocument returns an A4 portrait maroto document with page numbers.
func newDocument() core.Maroto {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	return maroto.New(cfg)
}

// GenerateQuotationPDF creates the client-facing quotation using maroto/v2.
// It returns the raw PDF bytes or an error.
func GenerateQuotationPDF(data *QuoteExportData) ([]byte, error) {
	m := newDocument()

	addQuoteHeader(m, data)
	addQuoteClient(m, data)
	addQuoteLines(m, data)
	addQuoteTotal(m, data)
	addQuoteTerms(m, data)
	addQuoteFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quotation PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// addQuoteHeader adds the company block on the left and the quote metadata
// on the right.
func addQuoteHeader(m core.Maroto, data *QuoteExportData) {
	m.AddRows(
		row.New(10).Add(
			col.New(7).Add(
				text.New(data.Company.Name, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Left,
					Color: colorPrimary,
				}),
			),
			col.New(5).Add(
				text.New("QUOTATION", props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: colorInk,
				}),
			),
		),
	)

	small := props.Text{Size: 8, Align: align.Left, Color: colorMuted}
	right := props.Text{Size: 8, Align: align.Right}
	meta := []struct{ left, right string }{
		{data.Company.Tagline, "Quote #: " + data.QuoteNumber},
		{fmtField("Email", data.Company.Email), "Date: " + data.Date},
		{fmtField("Phone", data.Company.Phone), "Valid Until: " + data.ValidUntil},
		{fmtField("Website", data.Company.Website), ""},
	}
	for _, r := range meta {
		m.AddRows(
			row.New(5).Add(
				col.New(7).Add(text.New(r.left, small)),
				col.New(5).Add(text.New(r.right, right)),
			),
		)
	}

	m.AddRows(row.New(4))
}

// addQuoteClient adds the "Bill To" block.
func addQuoteClient(m core.Maroto, data *QuoteExportData) {
	label := props.Text{Size: 7, Style: fontstyle.Bold, Align: align.Left, Color: colorMuted}
	headerCell := &props.Cell{BackgroundColor: &props.Color{Red: 245, Green: 243, Blue: 239}}

	m.AddRows(row.New(7).Add(col.New(12).Add(text.New("BILL TO", label)).WithStyle(headerCell)))
	m.AddRows(row.New(6).Add(col.New(12).Add(text.New(data.Client.FullName, props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Left,
	}))))

	for _, v := range []string{data.Client.CompanyName, data.Client.Email, data.Client.PhoneNumber} {
		if v == "" {
			continue
		}
		m.AddRows(row.New(5).Add(col.New(12).Add(text.New(v, props.Text{Size: 8, Align: align.Left}))))
	}

	m.AddRows(row.New(4))
}

// addQuoteLines adds the services and pricing table.
func addQuoteLines(m core.Maroto, data *QuoteExportData) {
	headerText := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Left, Color: colorWhite}
	headerRight := headerText
	headerRight.Align = align.Right
	headerCell := &props.Cell{BackgroundColor: colorInk}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("#", headerText)).WithStyle(headerCell),
			col.New(8).Add(text.New("Service", headerText)).WithStyle(headerCell),
			col.New(3).Add(text.New("Amount", headerRight)).WithStyle(headerCell),
		),
	)

	altBg := &props.Color{Red: 248, Green: 249, Blue: 250}
	for i, line := range data.Lines {
		name := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Left}
		detail := props.Text{Size: 7, Align: align.Left, Color: colorMuted, Top: 4}
		amount := props.Text{Size: 8, Align: align.Right}

		value := FormatMoney(line.Amount, data.Currency)
		if line.Kind == LineMarkup {
			value = FormatMarkup(line.Amount, data.Currency)
			amount.Color = colorMarkup
		}

		cIndex := col.New(1).Add(text.New(fmt.Sprintf("%d", i+1), props.Text{Size: 8, Align: align.Left}))
		cName := col.New(8).Add(text.New(line.Name, name), text.New(line.Detail, detail))
		cAmount := col.New(3).Add(text.New(value, amount))
		if i%2 == 1 {
			style := &props.Cell{BackgroundColor: altBg}
			cIndex = cIndex.WithStyle(style)
			cName = cName.WithStyle(style)
			cAmount = cAmount.WithStyle(style)
		}

		m.AddRows(row.New(10).Add(cIndex, cName, cAmount))
	}

	m.AddRows(row.New(2))
}

// addQuoteTotal adds the rounded total and the amount in words.
func addQuoteTotal(m core.Maroto, data *QuoteExportData) {
	grandCell := &props.Cell{BackgroundColor: colorInk}
	white := props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right, Color: colorWhite}

	m.AddRows(
		row.New(9).Add(
			col.New(9).Add(text.New("Total Amount", white)).WithStyle(grandCell),
			col.New(3).Add(text.New(FormatMoney(data.Total, data.Currency), white)).WithStyle(grandCell),
		),
	)
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(text.New(fmt.Sprintf("All prices in %s", data.Currency), props.Text{
				Size:  7,
				Align: align.Right,
				Color: colorMuted,
			})),
		),
	)

	if data.AmountInWords != "" {
		m.AddRows(
			row.New(7).Add(
				col.New(12).Add(text.New("Amount in Words: "+data.AmountInWords, props.Text{
					Size:  8,
					Style: fontstyle.BoldItalic,
					Align: align.Left,
				})),
			),
		)
	}

	m.AddRows(row.New(4))
}

// addQuoteTerms adds the terms list and notes.
func addQuoteTerms(m core.Maroto, data *QuoteExportData) {
	section := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Left, Color: colorInk}
	body := props.Text{Size: 8, Align: align.Left}

	if len(data.Terms) > 0 {
		m.AddRows(row.New(7).Add(col.New(12).Add(text.New("TERMS & CONDITIONS", section))))
		for _, term := range data.Terms {
			m.AddRows(row.New(5).Add(col.New(12).Add(text.New("• "+term, body))))
		}
		m.AddRows(row.New(3))
	}

	if data.Notes != "" {
		m.AddRows(row.New(7).Add(col.New(12).Add(text.New("NOTES", section))))
		m.AddRows(row.New(12).Add(col.New(12).Add(text.New(data.Notes, body))))
	}
}

func addQuoteFooter(m core.Maroto, data *QuoteExportData) {
	m.AddRows(row.New(8))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(text.New(
				fmt.Sprintf("Thank you for choosing %s for your website development needs.", data.Company.Name),
				props.Text{Size: 8, Align: align.Center, Color: colorMuted},
			)),
		),
	)
}

// joinNonEmpty joins non-empty strings with the given separator.
func joinNonEmpty(parts []string, sep string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, sep)
}

// fmtField returns "label: value" if value is non-empty, otherwise empty string.
func fmtField(label, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf("%s: %s", label, value)
}
