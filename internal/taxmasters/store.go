package taxmasters

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bizbooks-dev/bizbooks/internal/model"
)

const mastersFile = "tax-masters.json"

type storeFile struct {
	Masters []model.TaxMaster `json:"masters"`
	Groups  []model.TaxGroup  `json:"groups,omitempty"`
}

// Load reads tax-masters.json from a books root. A missing file yields an
// empty registry.
func Load(booksRoot string) (*Service, error) {
	path := filepath.Join(booksRoot, "masters", mastersFile)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewService(nil, nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening tax masters: %w", err)
	}

	var sf storeFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parsing tax masters: %w", err)
	}
	return NewService(sf.Masters, sf.Groups), nil
}

// Save writes the registry to masters/tax-masters.json.
func (s *Service) Save(booksRoot string) error {
	dir := filepath.Join(booksRoot, "masters")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating masters dir: %w", err)
	}

	data, err := json.MarshalIndent(storeFile{Masters: s.masters, Groups: s.groups}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling tax masters: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, mastersFile), data, 0o644); err != nil {
		return fmt.Errorf("writing tax masters: %w", err)
	}
	return nil
}
