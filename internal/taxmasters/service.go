// Package taxmasters provides in-memory lookup over statutory tax masters
// and tax groups.
package taxmasters

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizbooks-dev/bizbooks/internal/model"
	"github.com/bizbooks-dev/bizbooks/internal/tax"
)

// Service owns the tax master and tax group collections for a session.
type Service struct {
	masters []model.TaxMaster
	groups  []model.TaxGroup
	byID    map[string]model.TaxMaster
}

// NewService creates a Service from existing masters and groups.
func NewService(masters []model.TaxMaster, groups []model.TaxGroup) *Service {
	s := &Service{byID: make(map[string]model.TaxMaster, len(masters)), groups: groups}
	for _, m := range masters {
		s.masters = append(s.masters, m)
		s.byID[m.ID] = m
	}
	return s
}

// CreateParams holds the caller-supplied fields of a new tax master.
type CreateParams struct {
	Name           string
	Rate           decimal.Decimal
	Component      model.TaxComponent
	Classification model.TaxClassification
	Jurisdiction   model.Jurisdiction
	GroupID        string
}

// Create registers a new tax master with a generated ID. The rate is checked
// against the valid percentage range before anything is stored.
func (s *Service) Create(p CreateParams) (model.TaxMaster, error) {
	if p.Name == "" {
		return model.TaxMaster{}, fmt.Errorf("tax master name is required")
	}
	if _, err := tax.SplitTax(p.Rate, p.Jurisdiction); err != nil {
		return model.TaxMaster{}, err
	}
	m := model.TaxMaster{
		ID:             uuid.NewString(),
		Name:           p.Name,
		Rate:           p.Rate,
		Component:      p.Component,
		Classification: p.Classification,
		Jurisdiction:   p.Jurisdiction,
		GroupID:        p.GroupID,
	}
	s.masters = append(s.masters, m)
	s.byID[m.ID] = m
	return m, nil
}

// CreateGroup registers a named set of tax masters. Every member ID must
// reference an existing master.
func (s *Service) CreateGroup(name string, taxIDs []string) (model.TaxGroup, error) {
	if name == "" {
		return model.TaxGroup{}, fmt.Errorf("tax group name is required")
	}
	for _, id := range taxIDs {
		if _, ok := s.byID[id]; !ok {
			return model.TaxGroup{}, fmt.Errorf("tax group %q references unknown tax master %s", name, id)
		}
	}
	g := model.TaxGroup{ID: uuid.NewString(), Name: name, TaxIDs: taxIDs}
	s.groups = append(s.groups, g)
	return g, nil
}

// All returns all tax masters.
func (s *Service) All() []model.TaxMaster {
	return s.masters
}

// Groups returns all tax groups.
func (s *Service) Groups() []model.TaxGroup {
	return s.groups
}

// Get returns a tax master by ID.
func (s *Service) Get(id string) (model.TaxMaster, bool) {
	m, ok := s.byID[id]
	return m, ok
}

// ByClassification returns all masters with the given input/output
// classification.
func (s *Service) ByClassification(c model.TaxClassification) []model.TaxMaster {
	var result []model.TaxMaster
	for _, m := range s.masters {
		if m.Classification == c {
			result = append(result, m)
		}
	}
	return result
}
