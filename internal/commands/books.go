package commands

import (
	"fmt"
	"path/filepath"

	"github.com/bizbooks-dev/bizbooks/internal/config"
	"github.com/bizbooks-dev/bizbooks/internal/gitops"
	"github.com/bizbooks-dev/bizbooks/internal/items"
	"github.com/bizbooks-dev/bizbooks/internal/ledgers"
	"github.com/bizbooks-dev/bizbooks/internal/logger"
	"github.com/bizbooks-dev/bizbooks/internal/model"
	"github.com/bizbooks-dev/bizbooks/internal/taxmasters"
	"github.com/bizbooks-dev/bizbooks/internal/vouchers"
)

const configFile = "bizbooks.yaml"

// books bundles everything a command needs from an opened books directory.
type books struct {
	root    string
	cfg     *config.Config
	ledgers *ledgers.Service
	items   *items.Service
	taxes   *taxmasters.Service
	engine  *vouchers.Service
}

// openBooks loads the configuration, chart of ledgers, and posted voucher
// collection from a books directory, and wires the posting engine over them.
func openBooks(dir string) (*books, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(root, configFile))
	if err != nil {
		return nil, err
	}
	if err := logger.Setup(cfg.Log); err != nil {
		return nil, fmt.Errorf("configuring logger: %w", err)
	}

	chart, err := ledgers.Load(root)
	if err != nil {
		return nil, err
	}
	stock, err := items.Load(root)
	if err != nil {
		return nil, err
	}
	taxes, err := taxmasters.Load(root)
	if err != nil {
		return nil, err
	}
	posted, err := vouchers.LoadVouchers(root)
	if err != nil {
		return nil, err
	}

	return &books{
		root:    root,
		cfg:     cfg,
		ledgers: chart,
		items:   stock,
		taxes:   taxes,
		engine:  vouchers.NewService(posted, chart, cfg.Fiscal.Year, model.Jurisdiction(cfg.GST.DefaultJurisdiction)),
	}, nil
}

// save persists the voucher collection and, when enabled, snapshots the
// books directory in git.
func (b *books) save(snapshotMessage string) error {
	if err := b.engine.Save(b.root); err != nil {
		return err
	}
	if !b.cfg.Git.AutoSnapshot {
		return nil
	}
	if err := gitops.InitRepo(b.root); err != nil {
		return err
	}
	_, err := gitops.Snapshot(b.root, snapshotMessage, b.cfg.Git.AuthorName, b.cfg.Git.AuthorEmail)
	return err
}

// bankLedger resolves the configured reconciliation ledger.
func (b *books) bankLedger() (string, error) {
	name := b.cfg.Bank.LedgerName
	if name == "" {
		return "", fmt.Errorf("no bank ledger configured (bank.ledger_name)")
	}
	acct, ok := b.ledgers.GetByName(name)
	if !ok {
		return "", fmt.Errorf("bank ledger %q not found in chart of ledgers", name)
	}
	return acct.ID, nil
}
