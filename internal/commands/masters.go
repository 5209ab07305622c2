package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/bizbooks-dev/bizbooks/internal/model"
	"github.com/bizbooks-dev/bizbooks/internal/taxmasters"
)

func newMastersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "masters",
		Short: "Manage item and tax masters",
	}

	cmd.AddCommand(newItemAddCommand())
	cmd.AddCommand(newItemListCommand())
	cmd.AddCommand(newTaxAddCommand())
	cmd.AddCommand(newTaxListCommand())

	return cmd
}

func newItemAddCommand() *cobra.Command {
	var dir string
	var name, unit, hsn string
	var rate, taxRate string

	cmd := &cobra.Command{
		Use:   "item-add",
		Short: "Register a stock item in the item master",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseDecimalFlag("rate", rate)
			if err != nil {
				return err
			}
			tr, err := parseDecimalFlag("tax-rate", taxRate)
			if err != nil {
				return err
			}

			b, err := openBooks(dir)
			if err != nil {
				return err
			}

			it, err := b.items.Create(name, unit, hsn, r, tr)
			if err != nil {
				return err
			}
			if err := b.items.Save(b.root); err != nil {
				return err
			}

			log.Info().Str("id", it.ID).Str("name", it.Name).Msg("item registered")
			fmt.Printf("Added item %s (%s)\n", it.Name, it.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "books", "C", ".", "books directory")
	cmd.Flags().StringVar(&name, "name", "", "item name")
	cmd.Flags().StringVar(&unit, "unit", "", "unit of measure")
	cmd.Flags().StringVar(&hsn, "hsn", "", "HSN code")
	cmd.Flags().StringVar(&rate, "rate", "0", "default unit rate")
	cmd.Flags().StringVar(&taxRate, "tax-rate", "0", "default GST rate percent")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newItemListCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "item-list",
		Short: "List the item master",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(dir)
			if err != nil {
				return err
			}

			for _, it := range b.items.All() {
				fmt.Printf("%s  %-24s %-6s rate %10s  gst %6s%%  hsn %s\n",
					it.ID, it.Name, it.Unit, it.Rate.StringFixed(2), it.TaxRate.StringFixed(2), it.HSNCode)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "books", "C", ".", "books directory")

	return cmd
}

func newTaxAddCommand() *cobra.Command {
	var dir string
	var name, component, classification, jurisdiction string
	var rate string

	cmd := &cobra.Command{
		Use:   "tax-add",
		Short: "Register a statutory tax master",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseDecimalFlag("rate", rate)
			if err != nil {
				return err
			}

			b, err := openBooks(dir)
			if err != nil {
				return err
			}

			m, err := b.taxes.Create(taxmasters.CreateParams{
				Name:           name,
				Rate:           r,
				Component:      model.TaxComponent(component),
				Classification: model.TaxClassification(classification),
				Jurisdiction:   model.Jurisdiction(jurisdiction),
			})
			if err != nil {
				return err
			}
			if err := b.taxes.Save(b.root); err != nil {
				return err
			}

			log.Info().Str("id", m.ID).Str("name", m.Name).Msg("tax master registered")
			fmt.Printf("Added tax master %s (%s)\n", m.Name, m.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "books", "C", ".", "books directory")
	cmd.Flags().StringVar(&name, "name", "", "tax master name")
	cmd.Flags().StringVar(&rate, "rate", "0", "GST rate percent")
	cmd.Flags().StringVar(&component, "component", string(model.ComponentOther), "CGST, SGST, IGST, or Other")
	cmd.Flags().StringVar(&classification, "classification", string(model.TaxOutput), "Input or Output")
	cmd.Flags().StringVar(&jurisdiction, "jurisdiction", string(model.JurisdictionLocal), "Local or Central")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newTaxListCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "tax-list",
		Short: "List the tax masters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(dir)
			if err != nil {
				return err
			}

			for _, m := range b.taxes.All() {
				fmt.Printf("%s  %-24s %6s%%  %-6s %-7s %s\n",
					m.ID, m.Name, m.Rate.StringFixed(2), m.Component, m.Classification, m.Jurisdiction)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "books", "C", ".", "books directory")

	return cmd
}

func parseDecimalFlag(flag, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid --%s %q: %w", flag, value, err)
	}
	return d, nil
}
