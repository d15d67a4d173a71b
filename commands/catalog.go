package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"webquote/pricing"
)

// NewCatalogCommand returns the "catalog" command group.
func NewCatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect catalog files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newCatalogValidateCommand())
	return cmd
}

func newCatalogValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate an HCL catalog file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := pricing.LoadCatalogFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d website types, %d add-ons, %d hosting plans, %d urgency levels, %d builder types)\n",
				args[0], len(cat.WebsiteTypes), len(cat.AddOns), len(cat.HostingPlans), len(cat.UrgencyLevels), len(cat.BuilderTypes))
			return nil
		},
	}
}
