package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bizbooks-dev/bizbooks/internal/gst"
)

func newGSTCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gst",
		Short: "GST reports",
	}

	cmd.AddCommand(newGSTReportCommand())

	return cmd
}

func newGSTReportCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the tax liability summary for the posted collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(dir)
			if err != nil {
				return err
			}

			l := gst.Aggregate(b.engine.All())
			fmt.Printf("Output  Local:   %12s\n", l.OutputLocal.StringFixed(2))
			fmt.Printf("Output  Central: %12s\n", l.OutputCentral.StringFixed(2))
			fmt.Printf("Input   Local:   %12s\n", l.InputLocal.StringFixed(2))
			fmt.Printf("Input   Central: %12s\n", l.InputCentral.StringFixed(2))
			fmt.Printf("Total Output:    %12s\n", l.TotalOutput().StringFixed(2))
			fmt.Printf("Total Input:     %12s\n", l.TotalInput().StringFixed(2))

			net := l.NetPayable()
			if net.IsNegative() {
				fmt.Printf("Refundable:      %12s\n", net.Neg().StringFixed(2))
			} else {
				fmt.Printf("Net Payable:     %12s\n", net.StringFixed(2))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "books", "C", ".", "books directory")

	return cmd
}
