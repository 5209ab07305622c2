// Package ledgers provides in-memory lookup over the chart of ledgers.
package ledgers

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizbooks-dev/bizbooks/internal/model"
)

// Service owns the ledger-account collection for a session.
type Service struct {
	ledgers []model.LedgerAccount
	byID    map[string]model.LedgerAccount
	byName  map[string]string // name -> id
}

// NewService creates a Service from a slice of ledger accounts.
func NewService(accounts []model.LedgerAccount) *Service {
	s := &Service{
		byID:   make(map[string]model.LedgerAccount, len(accounts)),
		byName: make(map[string]string, len(accounts)),
	}
	for _, a := range accounts {
		s.add(a)
	}
	return s
}

func (s *Service) add(a model.LedgerAccount) {
	s.ledgers = append(s.ledgers, a)
	s.byID[a.ID] = a
	s.byName[a.Name] = a.ID
}

// CreateParams holds the caller-supplied fields of a new ledger account.
type CreateParams struct {
	Name           string
	Group          string
	Nature         model.Nature
	OpeningBalance decimal.Decimal
	BalanceSide    model.BalanceSide
}

// Create registers a new ledger account with a generated ID. Names are
// unique within the chart.
func (s *Service) Create(p CreateParams) (model.LedgerAccount, error) {
	if p.Name == "" {
		return model.LedgerAccount{}, fmt.Errorf("ledger name is required")
	}
	if _, taken := s.byName[p.Name]; taken {
		return model.LedgerAccount{}, fmt.Errorf("ledger %q already exists", p.Name)
	}
	side := p.BalanceSide
	if side == "" {
		side = model.SideDebit
	}
	a := model.LedgerAccount{
		ID:             uuid.NewString(),
		Name:           p.Name,
		Group:          p.Group,
		Nature:         p.Nature,
		OpeningBalance: p.OpeningBalance,
		BalanceSide:    side,
	}
	s.add(a)
	return a, nil
}

// All returns all ledger accounts.
func (s *Service) All() []model.LedgerAccount {
	return s.ledgers
}

// Get returns a ledger account by ID.
func (s *Service) Get(id string) (model.LedgerAccount, bool) {
	a, ok := s.byID[id]
	return a, ok
}

// GetByName returns a ledger account by its unique name.
func (s *Service) GetByName(name string) (model.LedgerAccount, bool) {
	id, ok := s.byName[name]
	if !ok {
		return model.LedgerAccount{}, false
	}
	return s.byID[id], true
}

// Exists reports whether a ledger ID exists.
func (s *Service) Exists(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// ByNature returns all ledgers of the given nature.
func (s *Service) ByNature(n model.Nature) []model.LedgerAccount {
	var result []model.LedgerAccount
	for _, a := range s.ledgers {
		if a.Nature == n {
			result = append(result, a)
		}
	}
	return result
}
