package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/bizbooks-dev/bizbooks/internal/model"
	"github.com/bizbooks-dev/bizbooks/internal/vouchers"
)

func newVouchersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vouchers",
		Short: "List and clone posted vouchers",
	}

	cmd.AddCommand(newVouchersListCommand())
	cmd.AddCommand(newVouchersCloneCommand())

	return cmd
}

func newVouchersListCommand() *cobra.Command {
	var dir string
	var typeFlag, from, to, text, minAmount, maxAmount string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List posted vouchers matching filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(dir)
			if err != nil {
				return err
			}

			q := vouchers.Query{Text: text, Type: model.VoucherType(typeFlag)}
			if q.From, err = parseDateFlag(from); err != nil {
				return err
			}
			if q.To, err = parseDateFlag(to); err != nil {
				return err
			}
			if q.MinAmount, err = parseAmountFlag(minAmount); err != nil {
				return err
			}
			if q.MaxAmount, err = parseAmountFlag(maxAmount); err != nil {
				return err
			}

			for _, v := range b.engine.Find(q) {
				cleared := " "
				if v.IsReconciled {
					cleared = "*"
				}
				fmt.Printf("%-16s %s %-16s %12s %s %s\n",
					v.ID, v.Date.Format("2006-01-02"), v.Type,
					v.Amount.StringFixed(2), cleared, v.Party)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "books", "C", ".", "books directory")
	cmd.Flags().StringVar(&typeFlag, "type", "", "voucher type")
	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&text, "text", "", "free text over party and voucher ID")
	cmd.Flags().StringVar(&minAmount, "min", "", "minimum amount")
	cmd.Flags().StringVar(&maxAmount, "max", "", "maximum amount")

	return cmd
}

func newVouchersCloneCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "clone <voucher-id>",
		Short: "Print an unsaved draft pre-filled from a posted voucher",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(dir)
			if err != nil {
				return err
			}

			draft, err := b.engine.Clone(args[0])
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(draft, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling draft: %w", err)
			}
			fmt.Println(string(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "books", "C", ".", "books directory")

	return cmd
}

func parseDateFlag(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return &t, nil
}

func parseAmountFlag(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return &d, nil
}
