package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"webquote/config"
	"webquote/logging"
	"webquote/pricing"
	"webquote/templates"
)

// HandleCalculator renders the calculator page with the default selections.
func HandleCalculator(app *pocketbase.PocketBase, cfg *config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		cat, err := catalogFor(app, e)
		if err != nil {
			logging.Error("calculator: could not load catalog", zap.Error(err))
			return e.String(http.StatusInternalServerError, "Catalog unavailable")
		}

		component := templates.CalculatorPage(buildCalculatorData(cat, pricing.DefaultSelections(), cfg))
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleCatalog returns the catalog as JSON.
func HandleCatalog(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		cat, err := catalogFor(app, e)
		if err != nil {
			logging.Error("catalog: could not load catalog", zap.Error(err))
			return e.String(http.StatusInternalServerError, "Catalog unavailable")
		}
		return e.JSON(http.StatusOK, cat)
	}
}

type calculateResponse struct {
	Ready       bool                      `json:"ready"`
	Missing     []pricing.Dimension       `json:"missing"`
	Calculation *pricing.QuoteCalculation `json:"calculation"`
}

// HandleCalculate prices the posted selections. HTMX requests get the
// breakdown panel; everything else gets JSON. An incomplete selection is
// not an error here: the response says what is missing.
func HandleCalculate(app *pocketbase.PocketBase, cfg *config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var form quoteForm
		if err := e.BindBody(&form); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid selection")
		}

		cat, err := catalogFor(app, e)
		if err != nil {
			logging.Error("calculate: could not load catalog", zap.Error(err))
			return ErrorToast(e, http.StatusInternalServerError, "Catalog unavailable")
		}
		sel := form.selections()

		if isHTMX(e.Request) {
			component := templates.BreakdownPanel(buildBreakdownData(cat, sel, cfg.Quote.Currency))
			return component.Render(e.Request.Context(), e.Response)
		}

		resp := calculateResponse{Missing: sel.Missing(cat)}
		if calc, ok := pricing.Calculate(cat, sel).Calculation(); ok {
			resp.Ready = true
			resp.Calculation = &calc
		}
		if resp.Missing == nil {
			resp.Missing = []pricing.Dimension{}
		}
		return e.JSON(http.StatusOK, resp)
	}
}
