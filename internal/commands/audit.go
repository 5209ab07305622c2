package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bizbooks-dev/bizbooks/internal/auditlog"
)

func newAuditCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "audit [voucher-id]",
		Short: "Show the audit trail, optionally narrowed to one voucher",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			var entries []auditlog.Entry
			if len(args) == 1 {
				entries, err = auditlog.ForVoucher(root, args[0])
			} else {
				entries, err = auditlog.Read(root)
			}
			if err != nil {
				return err
			}

			for _, e := range entries {
				fmt.Printf("%s  %-8s %-12s %s  %s\n",
					e.Timestamp.Format("2006-01-02 15:04:05"), e.Action, e.VoucherID, e.Actor, e.Details)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "books", "C", ".", "books directory")

	return cmd
}
