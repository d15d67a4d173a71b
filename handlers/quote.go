package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"webquote/config"
	"webquote/logging"
	"webquote/pricing"
	"webquote/services"
	"webquote/templates"
)

// HandleQuoteSubmit issues a quotation for the posted selections and client
// details, hands it to the dispatcher and renders the quotation page (JSON
// when the client asks for it). Nothing is stored.
func HandleQuoteSubmit(app *pocketbase.PocketBase, cfg *config.Config, dispatcher *services.Dispatcher) func(*core.RequestEvent) error {
	docs := services.NewQuoteDocuments(cfg)

	return func(e *core.RequestEvent) error {
		var form quoteForm
		if err := e.BindBody(&form); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid quotation request")
		}

		cat, err := catalogFor(app, e)
		if err != nil {
			logging.Error("quote: could not load catalog", zap.Error(err))
			return ErrorToast(e, http.StatusInternalServerError, "Catalog unavailable")
		}

		calc, err := calculate(cat, form.selections())
		if err != nil {
			return ErrorToast(e, http.StatusUnprocessableEntity, err.Error())
		}

		q, err := services.NewQuotation(calc, form.client(), cfg.Quote, time.Now())
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Please check your details: "+err.Error())
		}

		logging.Info("quote: issued quotation",
			logging.Quote(q.QuoteNumber),
			zap.String("website_type", calc.WebsiteType.ID),
			zap.Int64("total", q.RoundedTotal()))
		dispatcher.Dispatch(q)

		if wantsJSON(e.Request) {
			return e.JSON(http.StatusOK, q)
		}
		component := templates.QuotationPage(buildQuotationData(q, docs, cfg))
		return component.Render(e.Request.Context(), e.Response)
	}
}

type notReadyError struct {
	missing []string
}

func (e notReadyError) Error() string {
	return "Please select " + strings.Join(e.missing, ", ")
}

// calculate is pricing.Calculate with NotReady turned into an error naming
// what is missing.
func calculate(cat pricing.Catalog, sel pricing.Selections) (pricing.QuoteCalculation, error) {
	calc, ok := pricing.Calculate(cat, sel).Calculation()
	if !ok {
		return pricing.QuoteCalculation{}, notReadyError{missing: missingLabels(sel.Missing(cat))}
	}
	return calc, nil
}
