package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bizbooks-dev/bizbooks/internal/auditlog"
	"github.com/bizbooks-dev/bizbooks/internal/importer"
)

func newImportCommand() *cobra.Command {
	var dir string
	var apply bool

	cmd := &cobra.Command{
		Use:   "import <statement.csv>",
		Short: "Match a bank statement against uncleared vouchers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(dir, args[0], apply)
		},
	}

	cmd.Flags().StringVarP(&dir, "books", "C", ".", "books directory")
	cmd.Flags().BoolVar(&apply, "apply", false, "record matched statement dates on the vouchers")

	return cmd
}

func runImport(dir, statementPath string, apply bool) error {
	b, err := openBooks(dir)
	if err != nil {
		return err
	}
	ledgerID, err := b.bankLedger()
	if err != nil {
		return err
	}

	f, err := os.Open(statementPath)
	if err != nil {
		return fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	rows, err := importer.ParseStatement(f)
	if err != nil {
		return err
	}

	matches := importer.SuggestMatches(rows, ledgerID, b.engine.All())
	if len(matches) == 0 {
		fmt.Println("No matches found.")
		return nil
	}

	for _, m := range matches {
		fmt.Printf("%s  %s  %12s  %s\n",
			m.Voucher.ID, m.Row.Date.Format("2006-01-02"),
			m.Row.Amount.StringFixed(2), m.Row.Description)
	}
	if !apply {
		fmt.Printf("%d match(es). Re-run with --apply to record them.\n", len(matches))
		return nil
	}

	var entries []auditlog.Entry
	for _, m := range matches {
		bankDate := m.Row.Date.Format("2006-01-02")
		if _, err := b.engine.MarkCleared(m.Voucher.ID, bankDate); err != nil {
			return err
		}
		entries = append(entries, auditlog.Entry{
			Timestamp: time.Now().UTC(),
			Actor:     b.cfg.Git.AuthorName,
			Action:    auditlog.ActionClear,
			VoucherID: m.Voucher.ID,
			Details:   "bank date " + bankDate + " via statement import",
		})
	}
	if err := auditlog.Append(b.root, entries); err != nil {
		return err
	}
	if err := b.save(fmt.Sprintf("import: clear %d voucher(s)", len(matches))); err != nil {
		return err
	}

	log.Info().Int("cleared", len(matches)).Msg("statement import applied")
	return nil
}
