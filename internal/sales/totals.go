package sales

import (
	"ciftlik-backend/internal/models"

	"github.com/shopspring/decimal"
)

// Sipariş tutar hesapları: handler'lardan ayrı saf fonksiyonlar.

// ComputeLineTotal: Satır toplamı = miktar × birim fiyat
func ComputeLineTotal(quantity float64, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromFloat(quantity)).Round(4)
}

// ComputeOrderTotals: Ara toplam, KDV, stopaj ve genel toplamı hesaplar.
// totalAmount = subTotal + vatAmount - whtAmount
func ComputeOrderTotals(items []models.OrderItem, vatRate, whtRate float64) (subTotal, vatAmount, whtAmount, totalAmount decimal.Decimal) {
	for _, item := range items {
		subTotal = subTotal.Add(item.LineTotal)
	}

	hundred := decimal.NewFromInt(100)
	vatAmount = subTotal.Mul(decimal.NewFromFloat(vatRate)).Div(hundred).Round(2)
	whtAmount = subTotal.Mul(decimal.NewFromFloat(whtRate)).Div(hundred).Round(2)
	totalAmount = subTotal.Add(vatAmount).Sub(whtAmount)
	return
}

// ApplyCustomerDelta: Sipariş düzenlemesinde müşteri toplam harcamasını
// eski/yeni tutar farkı kadar kaydırır, 0'ın altına düşürmez.
func ApplyCustomerDelta(totalSpent, oldAmount, newAmount decimal.Decimal) decimal.Decimal {
	updated := totalSpent.Sub(oldAmount).Add(newAmount)
	if updated.IsNegative() {
		return decimal.Zero
	}
	return updated
}

// ReverseCustomerTotals: Sipariş silinince müşteri istatistiklerini siparişin
// katkısı kadar geri alır; iki sayaç da 0'da kenetlenir.
func ReverseCustomerTotals(totalOrders int, totalSpent, orderAmount decimal.Decimal) (int, decimal.Decimal) {
	orders := totalOrders - 1
	if orders < 0 {
		orders = 0
	}
	spent := totalSpent.Sub(orderAmount)
	if spent.IsNegative() {
		spent = decimal.Zero
	}
	return orders, spent
}
