package scheduler

import (
	"testing"

	"ciftlik-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestIsLowStock(t *testing.T) {
	assert.True(t, isLowStock(&models.InventoryItem{Quantity: 10, MinLevel: 50}))

	// eşik dahil: min seviyeye inen kalem de takviye ister
	assert.True(t, isLowStock(&models.InventoryItem{Quantity: 50, MinLevel: 50}))

	assert.False(t, isLowStock(&models.InventoryItem{Quantity: 50.5, MinLevel: 50}))
	assert.False(t, isLowStock(&models.InventoryItem{Quantity: 200, MinLevel: 50}))
}

func TestWeeklyMortalityPct(t *testing.T) {
	assert.InDelta(t, 2.5, weeklyMortalityPct(25, 1000), 0.0001)
	assert.InDelta(t, 2.0, weeklyMortalityPct(20, 1000), 0.0001)
	assert.InDelta(t, 0, weeklyMortalityPct(0, 1000), 0.0001)

	// boş sürüde oran tanımsız; sıfır kabul edilir
	assert.InDelta(t, 0, weeklyMortalityPct(5, 0), 0.0001)
}

func TestIsHighMortality(t *testing.T) {
	// %2 eşiği: aşan görev açar, tam eşit olan açmaz
	assert.True(t, isHighMortality(25, 1000))
	assert.True(t, isHighMortality(21, 1000))
	assert.False(t, isHighMortality(20, 1000))
	assert.False(t, isHighMortality(0, 1000))
	assert.False(t, isHighMortality(5, 0))
}

func TestNeedsNewTask(t *testing.T) {
	assert.True(t, needsNewTask(0))

	// aynı başlıkta bitmemiş görev varken yenisi açılmaz
	assert.False(t, needsNewTask(1))
	assert.False(t, needsNewTask(3))
}
