// Package commands provides the CLI commands attached to the PocketBase
// root command.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"webquote/config"
	"webquote/pricing"
	"webquote/services"
)

// NewQuoteCommand returns the "quote" command, which prices a selection
// and prints the itemized breakdown.
func NewQuoteCommand(cfg *config.Config) *cobra.Command {
	var (
		sel         pricing.Selections
		catalogPath string
		asJSON      bool
	)
	defaults := pricing.DefaultSelections()

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a website selection",
		Long: `Price a website selection against the catalog and print the breakdown.

Examples:
  webquote quote --type business --addon whatsapp --addon logo --hosting standard --urgency fast
  webquote quote --type ecommerce --builder agency --json
  webquote quote --type landing --catalog ./catalog.hcl`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}

			calc, ok := pricing.Calculate(cat, sel).Calculation()
			if !ok {
				return fmt.Errorf("selection is not complete: check %s", joinDimensions(sel.Missing(cat)))
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(calc)
			}
			return printBreakdown(cmd.OutOrStdout(), calc, cfg.Quote.Currency)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&sel.WebsiteTypeID, "type", "t", "", "website type id (required)")
	f.StringSliceVarP(&sel.AddOnIDs, "addon", "a", nil, "add-on id, repeatable")
	f.StringVar(&sel.HostingID, "hosting", defaults.HostingID, "hosting plan id")
	f.StringVar(&sel.UrgencyID, "urgency", defaults.UrgencyID, "urgency level id")
	f.StringVar(&sel.BuilderID, "builder", defaults.BuilderID, "builder type id")
	f.StringVar(&catalogPath, "catalog", cfg.CatalogPath, "HCL catalog file (default: built-in catalog)")
	f.BoolVar(&asJSON, "json", false, "print the calculation as JSON")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func loadCatalog(path string) (pricing.Catalog, error) {
	if path == "" {
		return pricing.DefaultCatalog(), nil
	}
	return pricing.LoadCatalogFile(path)
}

func printBreakdown(w io.Writer, calc pricing.QuoteCalculation, currency string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, l := range services.QuoteLines(calc) {
		amount := services.FormatMoney(l.Amount, currency)
		if l.Kind == services.LineMarkup {
			amount = services.FormatMarkup(l.Amount, currency)
		}
		fmt.Fprintf(tw, "%s\t%s\t\n", l.Label(), amount)
	}
	fmt.Fprintf(tw, "Total\t%s\t\n", services.FormatMoney(calc.Total, currency))
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, services.AmountToWords(calc.Total, currency))
	return err
}

func joinDimensions(ds []pricing.Dimension) string {
	s := make([]string, len(ds))
	for i, d := range ds {
		s[i] = string(d)
	}
	return strings.Join(s, ", ")
}
