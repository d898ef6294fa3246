package sales

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecrementStockClampsAtZero(t *testing.T) {
	// 7 birimlik stoka 10 birimlik sipariş: stok 0'a iner, eksiye düşmez
	assert.Equal(t, 0.0, DecrementStock(7, 10))
	assert.Equal(t, 2.5, DecrementStock(10, 7.5))
	assert.Equal(t, 0.0, DecrementStock(0, 1))
}

func TestRestoreStock(t *testing.T) {
	assert.Equal(t, 17.0, RestoreStock(7, 10))
	assert.Equal(t, 10.0, RestoreStock(0, 10))
}

func TestDecrementFlockCount(t *testing.T) {
	assert.Equal(t, 90, DecrementFlockCount(100, 10))
	assert.Equal(t, 0, DecrementFlockCount(5, 10))
}

func TestRestoreFlockCountClampsAtInitial(t *testing.T) {
	assert.Equal(t, 100, DecrementFlockCount(110, 10))

	// Normal iade
	assert.Equal(t, 100, RestoreFlockCount(90, 10, 1000))

	// Düşümde kenetlenme olmuşsa iade InitialCount'u aşamaz
	assert.Equal(t, 1000, RestoreFlockCount(995, 10, 1000))
}

func TestDecrementTotalSold(t *testing.T) {
	assert.Equal(t, 40, DecrementTotalSold(50, 10))
	assert.Equal(t, 0, DecrementTotalSold(5, 10))
}
