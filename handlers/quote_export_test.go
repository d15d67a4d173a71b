package handlers

import (
	"bytes"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase/core"
	"github.com/xuri/excelize/v2"

	"webquote/testhelpers"
)

func exportForm() url.Values {
	form := scenarioCForm()
	form.Set("quoteNumber", "UW-20250303-042")
	form.Set("issuedAt", "2025-03-03T09:30:00Z")
	return form
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"quote number", "UW-20250303-042", "UW-20250303-042"},
		{"spaces to hyphens", "My Quote", "My-Quote"},
		{"slashes to hyphens", "UW/2025/001", "UW-2025-001"},
		{"backslashes", "UW\\001", "UW-001"},
		{"colons", "UW:001", "UW-001"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeFilename(tt.input); got != tt.want {
				t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestHandleQuoteExports(t *testing.T) {
	app := testhelpers.NewSeededTestApp(t)
	cfg := testConfig()

	cases := []struct {
		name        string
		handler     func(*core.RequestEvent) error
		contentType string
		filename    string
		magic       []byte
	}{
		{"pdf", HandleQuoteExportPDF(app, cfg), contentTypePDF, "Quotation_UW-20250303-042.pdf", []byte("%PDF")},
		{"contract", HandleQuoteExportContract(app, cfg), contentTypePDF, "Contract_UW-20250303-042.pdf", []byte("%PDF")},
		{"excel", HandleQuoteExportExcel(app, cfg), contentTypeXLSX, "Quotation_UW-20250303-042.xlsx", []byte("PK")},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, app, tt.handler, formRequest("/quotes/export/"+tt.name, exportForm()))

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
			}
			if got := rec.Header().Get("Content-Type"); got != tt.contentType {
				t.Errorf("Content-Type = %q", got)
			}
			if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, tt.filename) {
				t.Errorf("Content-Disposition = %q, want %s", got, tt.filename)
			}
			if !bytes.HasPrefix(rec.Body.Bytes(), tt.magic) {
				t.Errorf("body does not start with %q", tt.magic)
			}
		})
	}
}

func TestHandleQuoteExportExcel_Content(t *testing.T) {
	app := testhelpers.NewSeededTestApp(t)
	rec := serve(t, app, HandleQuoteExportExcel(app, testConfig()), formRequest("/quotes/export/excel", exportForm()))

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	total, err := f.GetCellValue("UW-20250303-042", "D12")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if total != "42,900" {
		t.Errorf("total cell = %q, want 42,900", total)
	}
}

func TestHandleQuoteExport_Errors(t *testing.T) {
	app := testhelpers.NewSeededTestApp(t)
	handler := HandleQuoteExportPDF(app, testConfig())

	tests := []struct {
		name     string
		mutate   func(url.Values)
		wantCode int
	}{
		{"missing quote number", func(f url.Values) { f.Del("quoteNumber") }, http.StatusBadRequest},
		{"malformed quote number", func(f url.Values) { f.Set("quoteNumber", "42") }, http.StatusBadRequest},
		{"bad issue date", func(f url.Values) { f.Set("issuedAt", "yesterday") }, http.StatusBadRequest},
		{"not ready", func(f url.Values) { f.Del("websiteTypeId") }, http.StatusUnprocessableEntity},
		{"invalid client", func(f url.Values) { f.Set("fullName", "") }, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := exportForm()
			tt.mutate(form)
			rec := serve(t, app, handler, formRequest("/quotes/export/pdf", form))
			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d (%s)", rec.Code, tt.wantCode, rec.Body)
			}
		})
	}
}
