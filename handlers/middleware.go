package handlers

import (
	"context"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"webquote/logging"
	"webquote/pricing"
	"webquote/services"
)

type contextKey string

const CatalogKey contextKey = "catalog"

// GetCatalog extracts the request's catalog snapshot from the context.
func GetCatalog(r *http.Request) (pricing.Catalog, bool) {
	cat, ok := r.Context().Value(CatalogKey).(pricing.Catalog)
	return cat, ok
}

// CatalogMiddleware loads the catalog collections once per request and
// stores the snapshot in the request context, so admin edits apply on the
// next request. A load failure is logged and left to the handlers.
func CatalogMiddleware(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		cat, err := services.LoadCatalog(app)
		if err != nil {
			logging.Warn("middleware: could not load catalog", zap.String("path", e.Request.URL.Path), zap.Error(err))
			return e.Next()
		}

		ctx := context.WithValue(e.Request.Context(), CatalogKey, cat)
		e.Request = e.Request.WithContext(ctx)
		return e.Next()
	}
}

// catalogFor returns the middleware's snapshot, loading the collections
// directly when the middleware did not run.
func catalogFor(app *pocketbase.PocketBase, e *core.RequestEvent) (pricing.Catalog, error) {
	if cat, ok := GetCatalog(e.Request); ok {
		return cat, nil
	}
	return services.LoadCatalog(app)
}
