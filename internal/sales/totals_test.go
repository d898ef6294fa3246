package sales

import (
	"testing"

	"ciftlik-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeOrderTotals(t *testing.T) {
	items := []models.OrderItem{
		{Quantity: 10, UnitPrice: decimal.NewFromInt(50), LineTotal: ComputeLineTotal(10, decimal.NewFromInt(50))},   // 500
		{Quantity: 3, UnitPrice: decimal.RequireFromString("33.5"), LineTotal: ComputeLineTotal(3, decimal.RequireFromString("33.5"))}, // 100.5
	}

	sub, vat, wht, total := ComputeOrderTotals(items, 18, 5)

	assert.True(t, sub.Equal(decimal.RequireFromString("600.5")))
	assert.True(t, vat.Equal(decimal.RequireFromString("108.09")))
	assert.True(t, wht.Equal(decimal.RequireFromString("30.03")), wht.String())

	// totalAmount = subTotal + vatAmount - whtAmount, birebir
	assert.True(t, total.Equal(sub.Add(vat).Sub(wht)))
}

func TestComputeOrderTotalsZeroRates(t *testing.T) {
	items := []models.OrderItem{
		{Quantity: 4, UnitPrice: decimal.NewFromInt(25), LineTotal: ComputeLineTotal(4, decimal.NewFromInt(25))},
	}

	sub, vat, wht, total := ComputeOrderTotals(items, 0, 0)

	assert.True(t, sub.Equal(decimal.NewFromInt(100)))
	assert.True(t, vat.IsZero())
	assert.True(t, wht.IsZero())
	assert.True(t, total.Equal(sub))
}

func TestApplyCustomerDelta(t *testing.T) {
	spent := decimal.NewFromInt(1000)

	// 300'lük sipariş 450'ye çıktı -> +150
	updated := ApplyCustomerDelta(spent, decimal.NewFromInt(300), decimal.NewFromInt(450))
	assert.True(t, updated.Equal(decimal.NewFromInt(1150)))

	// 300'lük sipariş 100'e indi -> -200
	updated = ApplyCustomerDelta(spent, decimal.NewFromInt(300), decimal.NewFromInt(100))
	assert.True(t, updated.Equal(decimal.NewFromInt(800)))

	// Sapmış veri: fark toplamı aşarsa 0'da kenetlenir
	updated = ApplyCustomerDelta(decimal.NewFromInt(50), decimal.NewFromInt(300), decimal.NewFromInt(100))
	assert.True(t, updated.IsZero())
}

func TestReverseCustomerTotals(t *testing.T) {
	orders, spent := ReverseCustomerTotals(5, decimal.NewFromInt(2000), decimal.NewFromInt(450))
	assert.Equal(t, 4, orders)
	assert.True(t, spent.Equal(decimal.NewFromInt(1550)))

	// 0'da kenetlenme
	orders, spent = ReverseCustomerTotals(0, decimal.NewFromInt(100), decimal.NewFromInt(450))
	assert.Equal(t, 0, orders)
	assert.True(t, spent.IsZero())
}
