package commands

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bizbooks-dev/bizbooks/internal/auditlog"
	"github.com/bizbooks-dev/bizbooks/internal/recon"
)

func newReconCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recon",
		Short: "Bank reconciliation",
	}

	cmd.AddCommand(newReconReportCommand())
	cmd.AddCommand(newReconClearCommand())

	return cmd
}

func newReconReportCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show book versus bank balance for the configured bank ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(dir)
			if err != nil {
				return err
			}

			ledgerID, err := b.bankLedger()
			if err != nil {
				return err
			}
			acct, _ := b.ledgers.Get(ledgerID)

			balances := recon.Reconcile(acct, b.engine.All())
			fmt.Printf("Ledger:       %s\n", acct.Name)
			fmt.Printf("Book balance: %s\n", balances.BookBalance.StringFixed(2))
			fmt.Printf("Bank balance: %s\n", balances.BankBalance.StringFixed(2))
			fmt.Printf("Uncleared:    %s\n", balances.Uncleared().StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "books", "C", ".", "books directory")

	return cmd
}

func newReconClearCommand() *cobra.Command {
	var dir string
	var bankDate string

	cmd := &cobra.Command{
		Use:   "clear <voucher-id>",
		Short: "Record (or erase) the bank statement date on a voucher",
		Long: "Record the bank statement date on a voucher, marking it reconciled.\n" +
			"An empty --date un-reconciles the voucher.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReconClear(dir, args[0], bankDate)
		},
	}

	cmd.Flags().StringVarP(&dir, "books", "C", ".", "books directory")
	cmd.Flags().StringVar(&bankDate, "date", "", "bank statement date (YYYY-MM-DD), empty to un-clear")

	return cmd
}

func runReconClear(dir, voucherID, bankDate string) error {
	if bankDate != "" {
		if _, err := time.Parse("2006-01-02", bankDate); err != nil {
			return fmt.Errorf("invalid bank date %q: %w", bankDate, err)
		}
	}

	b, err := openBooks(dir)
	if err != nil {
		return err
	}

	v, err := b.engine.MarkCleared(voucherID, bankDate)
	if err != nil {
		return err
	}

	action := auditlog.ActionClear
	details := "bank date " + bankDate
	if bankDate == "" {
		action = auditlog.ActionUnclear
		details = "bank date erased"
	}
	logEntry := auditlog.Entry{
		Timestamp: time.Now().UTC(),
		Actor:     b.cfg.Git.AuthorName,
		Action:    action,
		VoucherID: v.ID,
		Details:   details,
	}
	if err := auditlog.Append(b.root, []auditlog.Entry{logEntry}); err != nil {
		return err
	}

	if err := b.save(action + " " + v.ID); err != nil {
		return err
	}

	log.Info().Str("id", v.ID).Bool("reconciled", v.IsReconciled).Msg("reconciliation updated")
	return nil
}
