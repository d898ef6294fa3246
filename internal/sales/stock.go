package sales

// Stok düşüm/iade yardımcıları. Düşümler 0'da, sürü iadeleri
// InitialCount'ta kenetlenir; envanter miktarı asla negatif olmaz.

// DecrementStock: Envanter miktarından sipariş miktarını düşer, 0'da kenetler.
func DecrementStock(current, qty float64) float64 {
	remaining := current - qty
	if remaining < 0 {
		return 0
	}
	return remaining
}

// RestoreStock: Sipariş düzenleme/silmede envanter miktarını geri ekler.
func RestoreStock(current, qty float64) float64 {
	return current + qty
}

// DecrementFlockCount: Sürüden satılan hayvan sayısını düşer, 0'da kenetler.
func DecrementFlockCount(current, qty int) int {
	remaining := current - qty
	if remaining < 0 {
		return 0
	}
	return remaining
}

// RestoreFlockCount: Sürü sayısını geri ekler; InitialCount'un üstüne çıkamaz.
// Düşüm sırasında kenetlenme olduysa iade de aynı sınırda kenetlenir.
func RestoreFlockCount(current, qty, initial int) int {
	restored := current + qty
	if restored > initial {
		return initial
	}
	return restored
}

// DecrementTotalSold: TotalSold sayacını geri alır, 0'da kenetler.
func DecrementTotalSold(totalSold, qty int) int {
	remaining := totalSold - qty
	if remaining < 0 {
		return 0
	}
	return remaining
}
