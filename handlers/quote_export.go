package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"webquote/config"
	"webquote/logging"
	"webquote/services"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// HandleQuoteExportPDF downloads the quotation PDF.
func HandleQuoteExportPDF(app *pocketbase.PocketBase, cfg *config.Config) func(*core.RequestEvent) error {
	docs := services.NewQuoteDocuments(cfg)
	return handleQuoteExport(app, cfg, "quote_export_pdf", docs.QuotationPDF, contentTypePDF, "Quotation_%s.pdf")
}

// HandleQuoteExportContract downloads the service agreement PDF.
func HandleQuoteExportContract(app *pocketbase.PocketBase, cfg *config.Config) func(*core.RequestEvent) error {
	docs := services.NewQuoteDocuments(cfg)
	return handleQuoteExport(app, cfg, "quote_export_contract", docs.ContractPDF, contentTypePDF, "Contract_%s.pdf")
}

// HandleQuoteExportExcel downloads the quotation workbook.
func HandleQuoteExportExcel(app *pocketbase.PocketBase, cfg *config.Config) func(*core.RequestEvent) error {
	docs := services.NewQuoteDocuments(cfg)
	return handleQuoteExport(app, cfg, "quote_export_excel", docs.Workbook, contentTypeXLSX, "Quotation_%s.xlsx")
}

// handleQuoteExport rebuilds the quotation from the posted form (exports
// are stateless) and streams render's output as an attachment.
func handleQuoteExport(
	app *pocketbase.PocketBase,
	cfg *config.Config,
	name string,
	render func(*services.Quotation) ([]byte, error),
	contentType string,
	filenameFormat string,
) func(*core.RequestEvent) error {
	log := logging.Named(name)

	return func(e *core.RequestEvent) error {
		var form quoteForm
		if err := e.BindBody(&form); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid export request")
		}

		issuedAt, err := time.Parse(time.RFC3339, form.IssuedAt)
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid issue date")
		}

		cat, err := catalogFor(app, e)
		if err != nil {
			log.Error("could not load catalog", zap.Error(err))
			return ErrorToast(e, http.StatusInternalServerError, "Catalog unavailable")
		}

		calc, err := calculate(cat, form.selections())
		if err != nil {
			return ErrorToast(e, http.StatusUnprocessableEntity, err.Error())
		}

		q, err := services.RestoreQuotation(calc, form.client(), form.QuoteNumber, issuedAt, cfg.Quote)
		if errors.Is(err, services.ErrInvalidQuoteNumber) {
			return ErrorToast(e, http.StatusBadRequest, "Invalid quote number")
		}
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Please check your details: "+err.Error())
		}

		body, err := render(q)
		if err != nil {
			log.Error("failed to generate", logging.Quote(q.QuoteNumber), zap.Error(err))
			return e.String(http.StatusInternalServerError, "Failed to generate file")
		}

		filename := fmt.Sprintf(filenameFormat, sanitizeFilename(q.QuoteNumber))
		e.Response.Header().Set("Content-Type", contentType)
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		_, err = e.Response.Write(body)
		return err
	}
}
