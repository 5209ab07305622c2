package vouchers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bizbooks-dev/bizbooks/internal/model"
)

const vouchersFile = "vouchers.json"

// LoadVouchers reads the posted collection from a books root. A missing file
// yields an empty collection.
func LoadVouchers(booksRoot string) ([]model.Voucher, error) {
	path := filepath.Join(booksRoot, vouchersFile)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening vouchers: %w", err)
	}

	var vs []model.Voucher
	if err := json.Unmarshal(data, &vs); err != nil {
		return nil, fmt.Errorf("parsing vouchers: %w", err)
	}
	return vs, nil
}

// Save writes the posted collection to vouchers.json.
func (s *Service) Save(booksRoot string) error {
	if err := os.MkdirAll(booksRoot, 0o755); err != nil {
		return fmt.Errorf("creating books dir: %w", err)
	}

	data, err := json.MarshalIndent(s.vouchers, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling vouchers: %w", err)
	}
	if err := os.WriteFile(filepath.Join(booksRoot, vouchersFile), data, 0o644); err != nil {
		return fmt.Errorf("writing vouchers: %w", err)
	}
	return nil
}
