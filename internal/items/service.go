// Package items provides in-memory lookup over the stock item master.
package items

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizbooks-dev/bizbooks/internal/model"
)

const itemsFile = "items.json"

// Service owns the item collection for a session.
type Service struct {
	items []model.Item
	byID  map[string]model.Item
}

// NewService creates a Service from a slice of items.
func NewService(items []model.Item) *Service {
	s := &Service{byID: make(map[string]model.Item, len(items))}
	for _, it := range items {
		s.items = append(s.items, it)
		s.byID[it.ID] = it
	}
	return s
}

// Create registers a new item with a generated ID.
func (s *Service) Create(name, unit, hsn string, rate, taxRate decimal.Decimal) (model.Item, error) {
	if name == "" {
		return model.Item{}, fmt.Errorf("item name is required")
	}
	it := model.Item{
		ID:      uuid.NewString(),
		Name:    name,
		Unit:    unit,
		Rate:    rate,
		TaxRate: taxRate,
		HSNCode: hsn,
	}
	s.items = append(s.items, it)
	s.byID[it.ID] = it
	return it, nil
}

// All returns all items.
func (s *Service) All() []model.Item {
	return s.items
}

// Get returns an item by ID.
func (s *Service) Get(id string) (model.Item, bool) {
	it, ok := s.byID[id]
	return it, ok
}

// Load reads items.json from a books root. A missing file yields an empty
// registry.
func Load(booksRoot string) (*Service, error) {
	path := filepath.Join(booksRoot, "masters", itemsFile)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewService(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening items: %w", err)
	}

	var its []model.Item
	if err := json.Unmarshal(data, &its); err != nil {
		return nil, fmt.Errorf("parsing items: %w", err)
	}
	return NewService(its), nil
}

// Save writes the item master to masters/items.json.
func (s *Service) Save(booksRoot string) error {
	dir := filepath.Join(booksRoot, "masters")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating masters dir: %w", err)
	}

	data, err := json.MarshalIndent(s.items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling items: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, itemsFile), data, 0o644); err != nil {
		return fmt.Errorf("writing items: %w", err)
	}
	return nil
}
