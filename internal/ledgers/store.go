package ledgers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bizbooks-dev/bizbooks/internal/model"
)

const chartFile = "ledgers.json"

// Load reads ledgers.json from a books root and returns a Service. A missing
// file yields an empty chart.
func Load(booksRoot string) (*Service, error) {
	path := filepath.Join(booksRoot, "masters", chartFile)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewService(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening chart of ledgers: %w", err)
	}

	var accounts []model.LedgerAccount
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("parsing chart of ledgers: %w", err)
	}
	return NewService(accounts), nil
}

// Save writes the chart of ledgers to masters/ledgers.json.
func (s *Service) Save(booksRoot string) error {
	dir := filepath.Join(booksRoot, "masters")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating masters dir: %w", err)
	}

	data, err := json.MarshalIndent(s.ledgers, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling chart of ledgers: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, chartFile), data, 0o644); err != nil {
		return fmt.Errorf("writing chart of ledgers: %w", err)
	}
	return nil
}
