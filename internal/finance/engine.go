package finance

import (
	"ciftlik-backend/internal/models"

	"github.com/shopspring/decimal"
)

// Saf hesap fonksiyonları: veritabanından çekilmiş dilimler üzerinde
// çalışır, hiçbir yan etkisi yoktur. Para hesapları decimal ile yapılır,
// float kayması rapora sızmaz.

type ProfitLossSummary struct {
	Revenue     decimal.Decimal `json:"revenue"`
	COGS        decimal.Decimal `json:"cogs"`
	Opex        decimal.Decimal `json:"opex"`
	GrossProfit decimal.Decimal `json:"gross_profit"` // Revenue - COGS
	NetProfit   decimal.Decimal `json:"net_profit"`   // GrossProfit - Opex
	Margin      decimal.Decimal `json:"margin"`       // NetProfit / Revenue (Revenue 0 ise 0)
}

// ProfitLoss: Gelir tablosu özeti. Sınıflandırma kayıt anında çözülmüş
// Class alanından okunur; kategori string'i burada tekrar eşleştirilmez.
func ProfitLoss(txs []models.Transaction) ProfitLossSummary {
	var revenue, cogs, opex decimal.Decimal

	for _, tx := range txs {
		switch tx.Class {
		case models.AccountClassRevenue:
			revenue = revenue.Add(tx.Amount)
		case models.AccountClassCOGS:
			cogs = cogs.Add(tx.Amount)
		case models.AccountClassOpex:
			opex = opex.Add(tx.Amount)
		}
	}

	gross := revenue.Sub(cogs)
	net := gross.Sub(opex)

	margin := decimal.Zero
	if revenue.IsPositive() {
		margin = net.Div(revenue).Round(4)
	}

	return ProfitLossSummary{
		Revenue:     revenue,
		COGS:        cogs,
		Opex:        opex,
		GrossProfit: gross,
		NetProfit:   net,
		Margin:      margin,
	}
}

type TaxPositionSummary struct {
	VATCollected decimal.Decimal `json:"vat_collected"` // satışlarda tahsil edilen KDV
	VATPaid      decimal.Decimal `json:"vat_paid"`      // alımlarda ödenen KDV
	NetVAT       decimal.Decimal `json:"net_vat"`       // ödenecek KDV (tahsil - ödenen)
	WHTWithheld  decimal.Decimal `json:"wht_withheld"`  // kesilen stopaj
}

func TaxPosition(txs []models.Transaction) TaxPositionSummary {
	var collected, paid, withheld decimal.Decimal

	for _, tx := range txs {
		switch tx.Type {
		case models.TransactionTypeIncome:
			collected = collected.Add(tx.VATAmount)
		case models.TransactionTypeExpense:
			paid = paid.Add(tx.VATAmount)
		}
		withheld = withheld.Add(tx.WHTAmount)
	}

	return TaxPositionSummary{
		VATCollected: collected,
		VATPaid:      paid,
		NetVAT:       collected.Sub(paid),
		WHTWithheld:  withheld,
	}
}

type BalanceSheetSummary struct {
	Cash             decimal.Decimal `json:"cash"`              // nakit tahmini (tüm zamanlar gelir - maliyet)
	InventoryValue   decimal.Decimal `json:"inventory_value"`   // Σ miktar × birim maliyet
	BiologicalAssets decimal.Decimal `json:"biological_assets"` // canlı hayvan değeri
	Receivables      decimal.Decimal `json:"receivables"`       // tahsil edilmemiş siparişler
	TotalAssets      decimal.Decimal `json:"total_assets"`
}

// BalanceSheet: Basitleştirilmiş bilanço fotoğrafı. Cash kalemi gerçek bir
// kasa/banka defterine bağlı değildir; tüm zamanların nakit bazlı
// gelir-gider farkıdır ve yaklaşık bir tahmin olarak okunmalıdır.
func BalanceSheet(txs []models.Transaction, items []models.InventoryItem, flocks []models.Flock, orders []models.SalesOrder) BalanceSheetSummary {
	pnl := ProfitLoss(txs)
	cash := pnl.Revenue.Sub(pnl.COGS).Sub(pnl.Opex)

	var inventoryValue decimal.Decimal
	for _, item := range items {
		inventoryValue = inventoryValue.Add(item.CostPerUnit.Mul(decimal.NewFromFloat(item.Quantity)))
	}

	// Canlı hayvan değeri: aktif/karantinadaki sürülerde hayvan başı alım
	// maliyeti × güncel sayı. InitialCount 0 ise sürü atlanır.
	var biological decimal.Decimal
	for _, flock := range flocks {
		if flock.Status != models.FlockStatusActive && flock.Status != models.FlockStatusQuarantine {
			continue
		}
		if flock.InitialCount <= 0 {
			continue
		}
		perBird := flock.AcquisitionCost.Div(decimal.NewFromInt(int64(flock.InitialCount)))
		biological = biological.Add(perBird.Mul(decimal.NewFromInt(int64(flock.CurrentCount))))
	}

	// Alacaklar: bekleyen veya teslim edilmiş ama ödenmemiş siparişler
	var receivables decimal.Decimal
	for _, order := range orders {
		if order.Status == models.OrderStatusPending || order.Status == models.OrderStatusDelivered {
			receivables = receivables.Add(order.TotalAmount)
		}
	}

	return BalanceSheetSummary{
		Cash:             cash,
		InventoryValue:   inventoryValue,
		BiologicalAssets: biological.Round(4),
		Receivables:      receivables,
		TotalAssets:      cash.Add(inventoryValue).Add(biological.Round(4)).Add(receivables),
	}
}
