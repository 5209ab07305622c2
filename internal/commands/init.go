package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bizbooks-dev/bizbooks/internal/config"
	"github.com/bizbooks-dev/bizbooks/internal/gitops"
	"github.com/bizbooks-dev/bizbooks/internal/ledgers"
)

func newInitCommand() *cobra.Command {
	var name string
	var fiscalYear string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new books directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name, fiscalYear)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&fiscalYear, "fiscal-year", "", "fiscal year, e.g. \"2023 - 2024\" (required)")
	_ = cmd.MarkFlagRequired("fiscal-year")

	return cmd
}

func runInit(dir, name, fiscalYear string) error {
	for _, d := range []string{"masters", "logs", "statements"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfg := config.Default(name, fiscalYear)
	if err := config.Save(filepath.Join(dir, configFile), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	chart := ledgers.NewService(ledgers.DefaultChart())
	if err := chart.Save(dir); err != nil {
		return fmt.Errorf("writing chart of ledgers: %w", err)
	}

	gitignore := "exports/\nstatements/\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	if err := gitops.InitRepo(dir); err != nil {
		return err
	}
	hash, err := gitops.Snapshot(dir, "init: "+name, cfg.Git.AuthorName, cfg.Git.AuthorEmail)
	if err != nil {
		return fmt.Errorf("initial snapshot: %w", err)
	}

	fmt.Printf("Initialized books for %s at %s (%s)\n", name, dir, hash)
	return nil
}
