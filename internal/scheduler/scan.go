package scheduler

import "ciftlik-backend/internal/models"

// Saf tarama kuralları; cron döngüsünden ayrı tutulur ki DB'siz test edilsin.

// isLowStock: miktar min seviyeye eşit veya altındaysa takviye gerekir.
func isLowStock(item *models.InventoryItem) bool {
	return item.Quantity <= item.MinLevel
}

// weeklyMortalityPct: son 7 günün ölüm toplamının mevcut sayıya oranı (%).
func weeklyMortalityPct(deaths int64, currentCount int) float64 {
	if currentCount <= 0 {
		return 0
	}
	return float64(deaths) / float64(currentCount) * 100
}

// isHighMortality: oran eşiği AŞARSA görev açılır; eşit olması yetmez.
func isHighMortality(deaths int64, currentCount int) bool {
	return weeklyMortalityPct(deaths, currentCount) > mortalityThresholdPct
}

// needsNewTask: aynı başlıkta bitmemiş görev varsa yenisi açılmaz.
func needsNewTask(unfinished int64) bool {
	return unfinished == 0
}
