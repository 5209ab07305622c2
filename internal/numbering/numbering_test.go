package numbering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizbooks-dev/bizbooks/internal/model"
)

func TestPrefix(t *testing.T) {
	assert.Equal(t, "SL", Prefix(model.TypeSales))
	assert.Equal(t, "PR", Prefix(model.TypePurchase))
	assert.Equal(t, "PY", Prefix(model.TypePayment))
	assert.Equal(t, "RC", Prefix(model.TypeReceipt))
	assert.Equal(t, "CN", Prefix(model.TypeContra))
	assert.Equal(t, "JR", Prefix(model.TypeJournal))
}

func TestPrefix_UnknownTypeFallsBack(t *testing.T) {
	assert.Equal(t, "VCH", Prefix(model.VoucherType("Stock Transfer")))
}

func TestYearToken(t *testing.T) {
	cases := map[string]string{
		"2023 - 2024": "23-24",
		"2023-2024":   "23-24",
		"2023-24":     "23-24",
		"2023":        "23-24",
		"1999 - 2000": "99-00",
	}
	for in, want := range cases {
		got, err := YearToken(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}
}

func TestYearToken_Invalid(t *testing.T) {
	_, err := YearToken("FY twenty-three")
	assert.Error(t, err)
}

func TestParseSerial(t *testing.T) {
	serial, err := ParseSerial("SL/23-24/00042")
	require.NoError(t, err)
	assert.Equal(t, 42, serial)
}

func TestParseSerial_Malformed(t *testing.T) {
	for _, id := range []string{"", "SL-2324-00042", "SL/23-24/", "SL/23-24/abc"} {
		_, err := ParseSerial(id)
		assert.Error(t, err, "id %q", id)
	}
}

func TestNextID_EmptyCollection(t *testing.T) {
	id, err := NextID(model.TypeSales, "2023 - 2024", nil)
	require.NoError(t, err)
	assert.Equal(t, "SL/23-24/00001", id)
}

func TestNextID_IncrementsFromMax(t *testing.T) {
	existing := []model.Voucher{
		{ID: "SL/23-24/00001", Type: model.TypeSales},
		{ID: "SL/23-24/00007", Type: model.TypeSales},
		{ID: "SL/23-24/00003", Type: model.TypeSales},
	}
	id, err := NextID(model.TypeSales, "2023 - 2024", existing)
	require.NoError(t, err)
	assert.Equal(t, "SL/23-24/00008", id)
}

func TestNextID_CountersIndependentPerType(t *testing.T) {
	existing := []model.Voucher{
		{ID: "SL/23-24/00005", Type: model.TypeSales},
	}
	id, err := NextID(model.TypePayment, "2023 - 2024", existing)
	require.NoError(t, err)
	assert.Equal(t, "PY/23-24/00001", id)
}

func TestNextID_CountersIndependentPerYear(t *testing.T) {
	existing := []model.Voucher{
		{ID: "SL/22-23/00009", Type: model.TypeSales},
		{ID: "SL/23-24/00002", Type: model.TypeSales},
	}
	id, err := NextID(model.TypeSales, "2023 - 2024", existing)
	require.NoError(t, err)
	assert.Equal(t, "SL/23-24/00003", id)
}

func TestNextID_SkipsUnparseableIDs(t *testing.T) {
	existing := []model.Voucher{
		{ID: "SL/23-24/legacy", Type: model.TypeSales},
		{ID: "SL/23-24/00004", Type: model.TypeSales},
	}
	id, err := NextID(model.TypeSales, "2023 - 2024", existing)
	require.NoError(t, err)
	assert.Equal(t, "SL/23-24/00005", id)
}

func TestNextID_MonotonicOverGrowingCollection(t *testing.T) {
	var vouchers []model.Voucher
	prev := 0
	for i := 0; i < 5; i++ {
		id, err := NextID(model.TypeReceipt, "2024 - 2025", vouchers)
		require.NoError(t, err)
		serial, err := ParseSerial(id)
		require.NoError(t, err)
		assert.Greater(t, serial, prev)
		prev = serial
		vouchers = append(vouchers, model.Voucher{ID: id, Type: model.TypeReceipt})
	}
}
