package finance

import (
	"testing"
	"time"

	"ciftlik-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func incomeTx(amount string) models.Transaction {
	return models.Transaction{
		Type:   models.TransactionTypeIncome,
		Class:  models.AccountClassRevenue,
		Amount: decimal.RequireFromString(amount),
		Date:   time.Now(),
	}
}

func expenseTx(category, amount string) models.Transaction {
	return models.Transaction{
		Type:     models.TransactionTypeExpense,
		Category: category,
		Class:    models.ResolveAccountClass(models.TransactionTypeExpense, category),
		Amount:   decimal.RequireFromString(amount),
		Date:     time.Now(),
	}
}

func TestResolveAccountClass(t *testing.T) {
	assert.Equal(t, models.AccountClassRevenue,
		models.ResolveAccountClass(models.TransactionTypeIncome, "Yumurta Satışı"))

	// COGS kategorileri
	for _, cat := range []string{"Yem", "İlaç", "Civciv/Hayvan Alımı", "Ambalaj", "yem", "  Ambalaj  "} {
		assert.Equal(t, models.AccountClassCOGS,
			models.ResolveAccountClass(models.TransactionTypeExpense, cat), cat)
	}

	// Diğer her gider opex
	for _, cat := range []string{"Elektrik", "Kira", "Nakliye", "Bordro"} {
		assert.Equal(t, models.AccountClassOpex,
			models.ResolveAccountClass(models.TransactionTypeExpense, cat), cat)
	}
}

func TestProfitLossIdentities(t *testing.T) {
	txs := []models.Transaction{
		incomeTx("10000"),
		incomeTx("2500.50"),
		expenseTx("Yem", "3000"),
		expenseTx("İlaç", "500.25"),
		expenseTx("Elektrik", "1200"),
		expenseTx("Kira", "800"),
	}

	pnl := ProfitLoss(txs)

	require.True(t, pnl.Revenue.Equal(decimal.RequireFromString("12500.50")))
	require.True(t, pnl.COGS.Equal(decimal.RequireFromString("3500.25")))
	require.True(t, pnl.Opex.Equal(decimal.RequireFromString("2000")))

	// grossProfit = revenue - cogs, netProfit = gross - opex
	assert.True(t, pnl.GrossProfit.Equal(pnl.Revenue.Sub(pnl.COGS)))
	assert.True(t, pnl.NetProfit.Equal(pnl.Revenue.Sub(pnl.COGS).Sub(pnl.Opex)))
	assert.True(t, pnl.NetProfit.Equal(decimal.RequireFromString("7000.25")))

	// margin = net / revenue
	expectedMargin := pnl.NetProfit.Div(pnl.Revenue).Round(4)
	assert.True(t, pnl.Margin.Equal(expectedMargin))
}

func TestProfitLossZeroRevenueMargin(t *testing.T) {
	txs := []models.Transaction{
		expenseTx("Yem", "1000"),
		expenseTx("Elektrik", "300"),
	}

	pnl := ProfitLoss(txs)

	assert.True(t, pnl.Revenue.IsZero())
	assert.True(t, pnl.Margin.IsZero(), "ciro sıfırken margin 0 olmalı")
	assert.True(t, pnl.NetProfit.Equal(decimal.NewFromInt(-1300)))
}

func TestProfitLossEmpty(t *testing.T) {
	pnl := ProfitLoss(nil)
	assert.True(t, pnl.Revenue.IsZero())
	assert.True(t, pnl.NetProfit.IsZero())
	assert.True(t, pnl.Margin.IsZero())
}

func TestTaxPosition(t *testing.T) {
	txs := []models.Transaction{
		{Type: models.TransactionTypeIncome, VATAmount: decimal.NewFromInt(180), WHTAmount: decimal.NewFromInt(20)},
		{Type: models.TransactionTypeIncome, VATAmount: decimal.NewFromInt(90)},
		{Type: models.TransactionTypeExpense, VATAmount: decimal.NewFromInt(100), WHTAmount: decimal.NewFromInt(5)},
	}

	pos := TaxPosition(txs)

	assert.True(t, pos.VATCollected.Equal(decimal.NewFromInt(270)))
	assert.True(t, pos.VATPaid.Equal(decimal.NewFromInt(100)))
	assert.True(t, pos.NetVAT.Equal(decimal.NewFromInt(170)))
	assert.True(t, pos.WHTWithheld.Equal(decimal.NewFromInt(25)))
}

func TestBalanceSheet(t *testing.T) {
	txs := []models.Transaction{
		incomeTx("20000"),
		expenseTx("Yem", "5000"),
		expenseTx("Elektrik", "2000"),
	}

	items := []models.InventoryItem{
		{Quantity: 100, CostPerUnit: decimal.RequireFromString("12.5")}, // 1250
		{Quantity: 0, CostPerUnit: decimal.NewFromInt(999)},             // 0
	}

	flocks := []models.Flock{
		// 1000 hayvan 50000'e alındı, 800 kaldı -> 800 * 50 = 40000
		{Status: models.FlockStatusActive, InitialCount: 1000, CurrentCount: 800, AcquisitionCost: decimal.NewFromInt(50000)},
		// hasat edilmiş sürü bilançoya girmez
		{Status: models.FlockStatusHarvested, InitialCount: 500, CurrentCount: 0, AcquisitionCost: decimal.NewFromInt(20000)},
		// InitialCount 0 koruması
		{Status: models.FlockStatusActive, InitialCount: 0, CurrentCount: 0, AcquisitionCost: decimal.NewFromInt(100)},
	}

	orders := []models.SalesOrder{
		{Status: models.OrderStatusPending, TotalAmount: decimal.NewFromInt(3000)},
		{Status: models.OrderStatusDelivered, TotalAmount: decimal.NewFromInt(1500)},
		{Status: models.OrderStatusPaid, TotalAmount: decimal.NewFromInt(9999)},      // tahsil edilmiş
		{Status: models.OrderStatusCancelled, TotalAmount: decimal.NewFromInt(777)}, // iptal
	}

	bs := BalanceSheet(txs, items, flocks, orders)

	assert.True(t, bs.Cash.Equal(decimal.NewFromInt(13000)), "cash = 20000 - 5000 - 2000")
	assert.True(t, bs.InventoryValue.Equal(decimal.NewFromInt(1250)))
	assert.True(t, bs.BiologicalAssets.Equal(decimal.NewFromInt(40000)))
	assert.True(t, bs.Receivables.Equal(decimal.NewFromInt(4500)))
	assert.True(t, bs.TotalAssets.Equal(decimal.NewFromInt(58750)))
}
