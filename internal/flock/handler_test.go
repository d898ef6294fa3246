package flock

import (
	"testing"

	"ciftlik-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPostsAcquisitionOnActivation(t *testing.T) {
	cost := decimal.NewFromInt(5000)

	// planlıdan çıkışta ertelenen gider bir kez yazılır
	assert.True(t, postsAcquisitionOnActivation(models.FlockStatusPlanned, models.FlockStatusActive, cost))
	assert.True(t, postsAcquisitionOnActivation(models.FlockStatusPlanned, models.FlockStatusQuarantine, cost))

	// maliyetsiz planlı sürüde yazılacak bir şey yok
	assert.False(t, postsAcquisitionOnActivation(models.FlockStatusPlanned, models.FlockStatusActive, decimal.Zero))

	// aktif sürünün gideri oluşturma anında zaten yazılmıştı
	assert.False(t, postsAcquisitionOnActivation(models.FlockStatusActive, models.FlockStatusQuarantine, cost))
	assert.False(t, postsAcquisitionOnActivation(models.FlockStatusQuarantine, models.FlockStatusActive, cost))
	assert.False(t, postsAcquisitionOnActivation(models.FlockStatusActive, models.FlockStatusHarvested, cost))
}

func TestAcquisitionLedgerFields(t *testing.T) {
	f := models.Flock{
		ID:              7,
		Name:            "Mart Partisi",
		InitialCount:    500,
		AcquisitionCost: decimal.NewFromInt(12500),
		VATAmount:       decimal.NewFromInt(125),
	}

	ledger := acquisitionLedger(&f)

	assert.Equal(t, models.TransactionTypeExpense, ledger.Type)
	assert.Equal(t, models.AccountClassCOGS, ledger.Class)
	assert.True(t, ledger.Amount.Equal(f.AcquisitionCost))
	assert.True(t, ledger.VATAmount.Equal(f.VATAmount))
	if assert.NotNil(t, ledger.FlockID) {
		assert.Equal(t, uint(7), *ledger.FlockID)
	}
}
