package main

import (
	"fmt"
	"net/http"
	"net/mail"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"webquote/collections"
	"webquote/commands"
	"webquote/config"
	"webquote/handlers"
	"webquote/logging"
	"webquote/pricing"
	"webquote/services"
)

func main() {
	cfg, err := config.Load("webquote.hcl")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	defer logging.Sync()

	app := pocketbase.New()
	app.RootCmd.AddCommand(commands.NewQuoteCommand(cfg), commands.NewCatalogCommand())

	docs := services.NewQuoteDocuments(cfg)
	var dispatcher *services.Dispatcher

	// Create collections and seed the catalog on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		if err := collections.Setup(app); err != nil {
			return err
		}
		cat, err := seedCatalog(cfg)
		if err != nil {
			return err
		}
		if err := collections.Seed(app, cat); err != nil {
			logging.Warn("seed data failed", zap.Error(err))
		}
		dispatcher = newDispatcher(app, cfg, docs)
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		withCatalog := handlers.CatalogMiddleware(app)

		se.Router.GET("/", handlers.HandleCalculator(app, cfg)).BindFunc(withCatalog)
		se.Router.GET("/api/catalog", handlers.HandleCatalog(app)).BindFunc(withCatalog)
		se.Router.POST("/api/quotes/calculate", handlers.HandleCalculate(app, cfg)).BindFunc(withCatalog)

		se.Router.POST("/quotes", handlers.HandleQuoteSubmit(app, cfg, dispatcher)).BindFunc(withCatalog)
		se.Router.POST("/quotes/export/pdf", handlers.HandleQuoteExportPDF(app, cfg)).BindFunc(withCatalog)
		se.Router.POST("/quotes/export/contract", handlers.HandleQuoteExportContract(app, cfg)).BindFunc(withCatalog)
		se.Router.POST("/quotes/export/excel", handlers.HandleQuoteExportExcel(app, cfg)).BindFunc(withCatalog)

		se.Router.GET("/quotes", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/")
		})

		return se.Next()
	})

	// Let in-flight sheet pushes and emails finish
	app.OnTerminate().BindFunc(func(e *core.TerminateEvent) error {
		if dispatcher != nil {
			dispatcher.Wait()
		}
		return e.Next()
	})

	if err := app.Start(); err != nil {
		logging.Error("app stopped", zap.Error(err))
		logging.Sync()
		os.Exit(1)
	}
}

// seedCatalog is the catalog written into an empty store: the configured
// HCL file, or the built-in catalog.
func seedCatalog(cfg *config.Config) (pricing.Catalog, error) {
	if cfg.CatalogPath == "" {
		return pricing.DefaultCatalog(), nil
	}
	return pricing.LoadCatalogFile(cfg.CatalogPath)
}

func newDispatcher(app *pocketbase.PocketBase, cfg *config.Config, docs *services.QuoteDocuments) *services.Dispatcher {
	var pusher services.QuotePusher
	if cfg.Sheet.Endpoint != "" {
		pusher = services.NewSheetClient(cfg.Sheet.Endpoint, cfg.Sheet.Timeout, nil)
	}

	var sender services.QuoteSender
	if cfg.Mail.Enabled {
		meta := app.Settings().Meta
		from := mail.Address{Name: meta.SenderName, Address: meta.SenderAddress}
		if cfg.Mail.SenderName != "" {
			from.Name = cfg.Mail.SenderName
		}
		if cfg.Mail.SenderEmail != "" {
			from.Address = cfg.Mail.SenderEmail
		}
		sender = services.NewQuoteMailer(app, from, docs)
	}

	return services.NewDispatcher(pusher, sender, docs, 2*cfg.Sheet.Timeout)
}
