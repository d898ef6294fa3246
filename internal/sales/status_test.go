package sales

import (
	"testing"

	"ciftlik-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionOrderStatusForward(t *testing.T) {
	assert.True(t, CanTransitionOrderStatus(models.OrderStatusPending, models.OrderStatusDelivered))
	assert.True(t, CanTransitionOrderStatus(models.OrderStatusDelivered, models.OrderStatusPaid))
	assert.True(t, CanTransitionOrderStatus(models.OrderStatusPending, models.OrderStatusPaid))
}

func TestCanTransitionOrderStatusNoBackwardMoves(t *testing.T) {
	// ödenmiş sipariş alacaklara geri dönmemeli
	assert.False(t, CanTransitionOrderStatus(models.OrderStatusPaid, models.OrderStatusDelivered))
	assert.False(t, CanTransitionOrderStatus(models.OrderStatusPaid, models.OrderStatusPending))
	assert.False(t, CanTransitionOrderStatus(models.OrderStatusDelivered, models.OrderStatusPending))
}

func TestCanTransitionOrderStatusCancel(t *testing.T) {
	// iptal her durumdan yapılabilir
	assert.True(t, CanTransitionOrderStatus(models.OrderStatusPending, models.OrderStatusCancelled))
	assert.True(t, CanTransitionOrderStatus(models.OrderStatusDelivered, models.OrderStatusCancelled))
	assert.True(t, CanTransitionOrderStatus(models.OrderStatusPaid, models.OrderStatusCancelled))

	// iptalden çıkış yok
	assert.False(t, CanTransitionOrderStatus(models.OrderStatusCancelled, models.OrderStatusPending))
	assert.False(t, CanTransitionOrderStatus(models.OrderStatusCancelled, models.OrderStatusPaid))
	assert.False(t, CanTransitionOrderStatus(models.OrderStatusCancelled, models.OrderStatusCancelled))
}
