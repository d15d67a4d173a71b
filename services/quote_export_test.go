package services

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"webquote/config"
	"webquote/pricing"
)

func testQuotation(t *testing.T, calc pricing.QuoteCalculation, client ClientInfo) *Quotation {
	t.Helper()
	issued := time.Date(2025, time.March, 3, 9, 30, 0, 0, time.UTC)
	q, err := RestoreQuotation(calc, client, "UW-20250303-042", issued, config.Default().Quote)
	if err != nil {
		t.Fatalf("RestoreQuotation: %v", err)
	}
	return q
}

func testDocuments() *QuoteDocuments {
	return NewQuoteDocuments(config.Default())
}

func TestBuildQuoteExportData_ScenarioA(t *testing.T) {
	q := testQuotation(t, scenarioA(t), ClientInfo{FullName: "Otieno Odhiambo", Email: "otieno@example.com"})
	data := testDocuments().Data(q)

	wantLines := []struct {
		kind   QuoteLineKind
		name   string
		amount int64
	}{
		{LineBase, "Business Website", 20000},
		{LineAddOn, "WhatsApp Chat", 2000},
		{LineAddOn, "Logo Design", 3000},
		{LineHosting, "Standard Hosting Annual (Domain + Hosting)", 6000},
		{LineMarkup, "Urgency Markup", 6200},
	}
	if len(data.Lines) != len(wantLines) {
		t.Fatalf("got %d lines, want %d: %+v", len(data.Lines), len(wantLines), data.Lines)
	}
	for i, want := range wantLines {
		got := data.Lines[i]
		if got.Kind != want.kind || got.Name != want.name || !got.Amount.Equal(decimal.NewFromInt(want.amount)) {
			t.Errorf("line %d = {%d %q %s}, want {%d %q %d}", i, got.Kind, got.Name, got.Amount, want.kind, want.name, want.amount)
		}
	}

	if !data.Total.Equal(decimal.NewFromInt(37200)) {
		t.Errorf("Total = %s, want 37200", data.Total)
	}
	if data.AmountInWords != "Thirty Seven Thousand Two Hundred Kenya Shillings Only" {
		t.Errorf("AmountInWords = %q", data.AmountInWords)
	}
	if data.Deposit != 18600 || data.FinalPayment != 18600 {
		t.Errorf("Deposit/FinalPayment = %d/%d, want 18600/18600", data.Deposit, data.FinalPayment)
	}
	if data.ValidUntil != "March 17, 2025" {
		t.Errorf("ValidUntil = %q", data.ValidUntil)
	}
	if data.Timeline != "Fast (1-2 weeks)" || data.ServiceType != "Freelancer" {
		t.Errorf("Timeline/ServiceType = %q/%q", data.Timeline, data.ServiceType)
	}
}

func TestBuildQuoteExportData_ScenarioC(t *testing.T) {
	q := testQuotation(t, scenarioC(t), ClientInfo{FullName: "Amina"})
	data := testDocuments().Data(q)

	var markups []string
	for _, l := range data.Lines {
		if l.Kind == LineMarkup {
			markups = append(markups, l.Name+"="+l.Amount.String())
		}
	}
	want := []string{"Urgency Markup=11000", "Agency Service Fee=9900"}
	if strings.Join(markups, ",") != strings.Join(want, ",") {
		t.Errorf("markup lines = %v, want %v", markups, want)
	}
	if data.HostingPlan != "Annual Premium (Hosting + Maintenance)" {
		t.Errorf("HostingPlan = %q", data.HostingPlan)
	}
	if len(data.Features) != 0 {
		t.Errorf("Features = %v, want none", data.Features)
	}
}

func TestBuildQuoteExportData_HidesZeroLines(t *testing.T) {
	calc, _ := pricing.Calculate(pricing.DefaultCatalog(), pricing.Selections{
		WebsiteTypeID: "blog",
		HostingID:     "none",
		UrgencyID:     "flexible",
		BuilderID:     "freelancer",
	}).Calculation()
	data := testDocuments().Data(testQuotation(t, calc, ClientInfo{FullName: "Writer"}))

	if len(data.Lines) != 1 || data.Lines[0].Kind != LineBase {
		t.Errorf("Lines = %+v, want only the base line", data.Lines)
	}
	if data.HostingPlan != "" {
		t.Errorf("HostingPlan = %q, want empty for zero-cost hosting", data.HostingPlan)
	}
}

func TestBuildQuoteExportData_OddDepositSplitsExactly(t *testing.T) {
	calc := scenarioA(t)
	calc.Total = decimal.NewFromInt(37201)
	cfg := config.Default().Quote
	cfg.DepositPercent = 30

	data := BuildQuoteExportData(testQuotation(t, calc, ClientInfo{FullName: "X"}), config.Default().Company, cfg)
	if data.Deposit+data.FinalPayment != 37201 {
		t.Errorf("Deposit %d + FinalPayment %d != 37201", data.Deposit, data.FinalPayment)
	}
	if data.Deposit != 11160 {
		t.Errorf("Deposit = %d, want 11160", data.Deposit)
	}
	if !strings.Contains(data.ContractTerms[0].Items[1], "70%") {
		t.Errorf("payment terms = %v, want remaining 70%%", data.ContractTerms[0].Items)
	}
}

func TestGenerateQuotationPDF(t *testing.T) {
	q := testQuotation(t, scenarioC(t), ClientInfo{FullName: "Amina", CompanyName: "Amina Designs", Email: "amina@example.com", PhoneNumber: "+254 700 000 000"})

	result, err := testDocuments().QuotationPDF(q)
	if err != nil {
		t.Fatalf("QuotationPDF() error = %v", err)
	}
	if len(result) < 5 || string(result[:5]) != "%PDF-" {
		t.Errorf("result does not start with PDF header")
	}
}

func TestGenerateQuotationPDF_EmptyData(t *testing.T) {
	result, err := GenerateQuotationPDF(&QuoteExportData{Currency: "KES"})
	if err != nil {
		t.Fatalf("GenerateQuotationPDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateQuotationPDF() returned empty bytes")
	}
}

func TestGenerateContractPDF(t *testing.T) {
	q := testQuotation(t, scenarioA(t), ClientInfo{FullName: "Otieno Odhiambo"})

	result, err := testDocuments().ContractPDF(q)
	if err != nil {
		t.Fatalf("ContractPDF() error = %v", err)
	}
	if len(result) < 5 || string(result[:5]) != "%PDF-" {
		t.Errorf("result does not start with PDF header")
	}
}

func TestGenerateQuotationExcel(t *testing.T) {
	q := testQuotation(t, scenarioC(t), ClientInfo{FullName: "=HYPERLINK(\"http://evil\")"})

	result, err := testDocuments().Workbook(q)
	if err != nil {
		t.Fatalf("Workbook() error = %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 || sheets[0] != "UW-20250303-042" {
		t.Fatalf("expected sheet named after the quote, got %v", sheets)
	}
	sheet := sheets[0]

	title, _ := f.GetCellValue(sheet, "A1")
	if title != "Build IT - Quotation" {
		t.Errorf("A1 = %q", title)
	}

	client, _ := f.GetCellValue(sheet, "A4")
	if !strings.HasPrefix(client, "Client: =HYPERLINK") {
		t.Errorf("A4 = %q", client)
	}

	// landing page, premium hosting, urgency, agency
	wantAmounts := []string{"10,000", "12,000", "11,000", "9,900"}
	for i, want := range wantAmounts {
		cell := "D" + string(rune('7'+i))
		got, _ := f.GetCellValue(sheet, cell)
		if got != want {
			t.Errorf("%s = %q, want %q", cell, got, want)
		}
	}

	total, _ := f.GetCellValue(sheet, "D12")
	if total != "42,900" {
		t.Errorf("total D12 = %q, want 42,900", total)
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		input  string
		expect string
	}{
		{"", ""},
		{"Logo Design", "Logo Design"},
		{"=SUM(A1)", "'=SUM(A1)"},
		{"+254", "'+254"},
		{"-1", "'-1"},
		{"@cmd", "'@cmd"},
	}
	for _, tt := range tests {
		if got := sanitizeExcelCell(tt.input); got != tt.expect {
			t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.input, got, tt.expect)
		}
	}
}

func TestQuoteLines_Labels(t *testing.T) {
	tests := []struct {
		name   string
		calc   pricing.QuoteCalculation
		labels []string
	}{
		{"scenario A", scenarioA(t), []string{
			"Business Website", "WhatsApp Chat", "Logo Design",
			"Standard Hosting Annual (Domain + Hosting)", "Urgency Markup (×1.2)",
		}},
		{"scenario C", scenarioC(t), []string{
			"Landing Page", "Annual Premium (Hosting + Maintenance)",
			"Urgency Markup (×1.5)", "Agency Service Fee (×1.3)",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := QuoteLines(tt.calc)
			if len(lines) != len(tt.labels) {
				t.Fatalf("got %d lines, want %d", len(lines), len(tt.labels))
			}
			sum := decimal.Zero
			for i, l := range lines {
				if l.Label() != tt.labels[i] {
					t.Errorf("line %d label = %q, want %q", i, l.Label(), tt.labels[i])
				}
				sum = sum.Add(l.Amount)
			}
			if !sum.Equal(tt.calc.Total) {
				t.Errorf("lines sum to %s, total is %s", sum, tt.calc.Total)
			}
		})
	}
}
