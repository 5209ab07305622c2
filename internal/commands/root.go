package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bizbooks-dev/bizbooks/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "bizbooks",
		Short:   "Small business accounting and GST vouchers",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newPostCommand())
	rootCmd.AddCommand(newVouchersCommand())
	rootCmd.AddCommand(newReconCommand())
	rootCmd.AddCommand(newGSTCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newMastersCommand())
	rootCmd.AddCommand(newAuditCommand())

	return rootCmd
}
