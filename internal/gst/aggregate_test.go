package gst

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bizbooks-dev/bizbooks/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func taxed(t model.VoucherType, taxTotal string, j model.Jurisdiction, c model.TaxClassification) model.Voucher {
	return model.Voucher{
		Type:              t,
		Status:            model.StatusPosted,
		TaxTotal:          dec(taxTotal),
		Jurisdiction:      j,
		GSTClassification: c,
	}
}

func TestAggregate_Buckets(t *testing.T) {
	l := Aggregate([]model.Voucher{
		taxed(model.TypeSales, "180", model.JurisdictionLocal, model.TaxOutput),
		taxed(model.TypeSales, "90", model.JurisdictionCentral, model.TaxOutput),
		taxed(model.TypePurchase, "50", model.JurisdictionLocal, model.TaxInput),
		taxed(model.TypePurchase, "30", model.JurisdictionCentral, model.TaxInput),
	})

	assert.True(t, l.OutputLocal.Equal(dec("180")))
	assert.True(t, l.OutputCentral.Equal(dec("90")))
	assert.True(t, l.InputLocal.Equal(dec("50")))
	assert.True(t, l.InputCentral.Equal(dec("30")))
	assert.True(t, l.TotalOutput().Equal(dec("270")))
	assert.True(t, l.TotalInput().Equal(dec("80")))
	assert.True(t, l.NetPayable().Equal(dec("190")))
}

func TestAggregate_SalesReturnReversesOutput(t *testing.T) {
	l := Aggregate([]model.Voucher{
		taxed(model.TypeSales, "180", model.JurisdictionLocal, model.TaxOutput),
		taxed(model.TypeSalesReturn, "180", model.JurisdictionLocal, model.TaxOutput),
	})
	assert.True(t, l.OutputLocal.IsZero(), "outputLocal = %s", l.OutputLocal)
}

func TestAggregate_PurchaseReturnReversesInput(t *testing.T) {
	l := Aggregate([]model.Voucher{
		taxed(model.TypePurchase, "120", model.JurisdictionCentral, model.TaxInput),
		taxed(model.TypePurchaseReturn, "45", model.JurisdictionCentral, model.TaxInput),
	})
	assert.True(t, l.InputCentral.Equal(dec("75")))
}

func TestAggregate_RefundableCredit(t *testing.T) {
	l := Aggregate([]model.Voucher{
		taxed(model.TypeSales, "50", model.JurisdictionLocal, model.TaxOutput),
		taxed(model.TypePurchase, "180", model.JurisdictionLocal, model.TaxInput),
	})
	assert.True(t, l.NetPayable().Equal(dec("-130")), "negative net is a credit")
}

func TestAggregate_SkipsUntaxedAndUnclassified(t *testing.T) {
	l := Aggregate([]model.Voucher{
		{Type: model.TypePayment, Amount: dec("500")}, // no tax total
		taxed(model.TypeJournal, "60", model.JurisdictionLocal, ""),
	})
	assert.True(t, l.TotalOutput().IsZero())
	assert.True(t, l.TotalInput().IsZero())
}

func TestAggregate_Empty(t *testing.T) {
	l := Aggregate(nil)
	assert.True(t, l.NetPayable().IsZero())
}
