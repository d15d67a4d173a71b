package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateQuotationExcel creates a workbook mirroring the quotation lines and
// returns the file contents as a byte slice. Amounts are written as numbers
// rounded to whole units so the sheet can be summed.
func GenerateQuotationExcel(data *QuoteExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Sheet names are limited to 31 chars and the quote number always fits.
	sheetName := data.QuoteNumber
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	if sheetName == "" {
		sheetName = "Quotation"
	}

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D"}
	lastCol := columns[len(columns)-1]

	widths := []float64{6, 36, 40, 18}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	lineStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create line style: %w", err)
	}

	// #,##0 is built-in number format 3.
	amountStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		NumFmt: 3,
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create amount style: %w", err)
	}

	markupStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10, Color: "#EA580C"},
		NumFmt: 3,
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create markup style: %w", err)
	}

	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	summaryValueStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		NumFmt: 3,
	})
	if err != nil {
		return nil, fmt.Errorf("create summary value style: %w", err)
	}

	// ── Header Rows (1-4) ───────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(data.Company.Name+" - Quotation"))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	subtitles := []string{
		"Quote #: " + data.QuoteNumber,
		"Date: " + data.Date + "    Valid Until: " + data.ValidUntil,
		"Client: " + joinNonEmpty([]string{data.Client.FullName, data.Client.CompanyName, data.Client.Email, data.Client.PhoneNumber}, " | "),
	}
	for i, s := range subtitles {
		r := fmt.Sprintf("%d", i+2)
		if err := f.MergeCell(sheetName, "A"+r, lastCol+r); err != nil {
			return nil, fmt.Errorf("merge subtitle: %w", err)
		}
		f.SetCellValue(sheetName, "A"+r, sanitizeExcelCell(s))
		f.SetCellStyle(sheetName, "A"+r, lastCol+r, subtitleStyle)
	}

	// ── Row 6: Column Headers ───────────────────────────────────────────

	headers := []string{"#", "Service", "Detail", "Amount (" + data.Currency + ")"}
	for i, h := range headers {
		f.SetCellValue(sheetName, columns[i]+"6", h)
	}
	f.SetCellStyle(sheetName, "A6", lastCol+"6", headerStyle)

	// ── Lines (starting row 7) ──────────────────────────────────────────

	row := 7
	for i, line := range data.Lines {
		rowStr := fmt.Sprintf("%d", row)

		f.SetCellValue(sheetName, "A"+rowStr, i+1)
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(line.Name))
		f.SetCellValue(sheetName, "C"+rowStr, sanitizeExcelCell(line.Detail))
		f.SetCellValue(sheetName, "D"+rowStr, RoundCurrency(line.Amount))

		f.SetCellStyle(sheetName, "A"+rowStr, "C"+rowStr, lineStyle)
		if line.Kind == LineMarkup {
			f.SetCellStyle(sheetName, "D"+rowStr, "D"+rowStr, markupStyle)
		} else {
			f.SetCellStyle(sheetName, "D"+rowStr, "D"+rowStr, amountStyle)
		}
		row++
	}

	// ── Summary Rows ────────────────────────────────────────────────────

	row++

	summaryRow := fmt.Sprintf("%d", row)
	f.SetCellValue(sheetName, "C"+summaryRow, "Total Amount:")
	f.SetCellStyle(sheetName, "C"+summaryRow, "C"+summaryRow, summaryLabelStyle)
	f.SetCellValue(sheetName, "D"+summaryRow, RoundCurrency(data.Total))
	f.SetCellStyle(sheetName, "D"+summaryRow, "D"+summaryRow, summaryValueStyle)
	row++

	if data.AmountInWords != "" {
		wordsRow := fmt.Sprintf("%d", row)
		if err := f.MergeCell(sheetName, "A"+wordsRow, lastCol+wordsRow); err != nil {
			return nil, fmt.Errorf("merge amount in words: %w", err)
		}
		f.SetCellValue(sheetName, "A"+wordsRow, "Amount in Words: "+data.AmountInWords)
		row++
	}

	// ── Terms ───────────────────────────────────────────────────────────

	if len(data.Terms) > 0 {
		row++
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Terms & Conditions")
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), summaryLabelStyle)
		row++
		for _, term := range data.Terms {
			f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), sanitizeExcelCell(term))
			row++
		}
	}

	// ── Write to buffer ─────────────────────────────────────────────────

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
