package ledgers

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizbooks-dev/bizbooks/internal/model"
)

func TestNewService(t *testing.T) {
	chart := DefaultChart()
	svc := NewService(chart)

	assert.Len(t, svc.All(), len(chart))
}

func TestGetByName(t *testing.T) {
	svc := NewService(DefaultChart())

	cash, ok := svc.GetByName("Cash")
	require.True(t, ok)
	assert.Equal(t, model.NatureAssets, cash.Nature)
	assert.True(t, svc.Exists(cash.ID))

	_, ok = svc.GetByName("No Such Ledger")
	assert.False(t, ok)
}

func TestCreate(t *testing.T) {
	svc := NewService(nil)

	a, err := svc.Create(CreateParams{
		Name:           "Acme Traders",
		Group:          "Sundry Debtors",
		Nature:         model.NatureAssets,
		OpeningBalance: decimal.NewFromInt(5000),
		BalanceSide:    model.SideDebit,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)

	got, ok := svc.Get(a.ID)
	require.True(t, ok)
	assert.Equal(t, "Acme Traders", got.Name)
}

func TestCreate_RejectsDuplicateName(t *testing.T) {
	svc := NewService(nil)

	_, err := svc.Create(CreateParams{Name: "Cash", Nature: model.NatureAssets})
	require.NoError(t, err)

	_, err = svc.Create(CreateParams{Name: "Cash", Nature: model.NatureAssets})
	assert.ErrorContains(t, err, "already exists")
}

func TestCreate_RejectsEmptyName(t *testing.T) {
	svc := NewService(nil)
	_, err := svc.Create(CreateParams{})
	assert.Error(t, err)
}

func TestByNature(t *testing.T) {
	svc := NewService(DefaultChart())

	for _, a := range svc.ByNature(model.NatureLiabilities) {
		assert.Equal(t, model.NatureLiabilities, a.Nature)
	}
	assert.NotEmpty(t, svc.ByNature(model.NatureIncome))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	svc := NewService(DefaultChart())
	_, err := svc.Create(CreateParams{
		Name:           "Acme Traders",
		Group:          "Sundry Debtors",
		Nature:         model.NatureAssets,
		OpeningBalance: decimal.NewFromInt(1200),
	})
	require.NoError(t, err)
	require.NoError(t, svc.Save(dir))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Len(t, loaded.All(), len(svc.All()))

	acme, ok := loaded.GetByName("Acme Traders")
	require.True(t, ok)
	assert.True(t, acme.OpeningBalance.Equal(decimal.NewFromInt(1200)))

	// File lands under masters/.
	assert.FileExists(t, filepath.Join(dir, "masters", "ledgers.json"))
}

func TestLoad_MissingFileYieldsEmptyChart(t *testing.T) {
	svc, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, svc.All())
}
