package sales

import "ciftlik-backend/internal/models"

func orderStatusRank(s models.OrderStatus) int {
	switch s {
	case models.OrderStatusPending:
		return 0
	case models.OrderStatusDelivered:
		return 1
	case models.OrderStatusPaid:
		return 2
	}
	return -1
}

// CanTransitionOrderStatus: pending -> delivered -> paid ileri akışı.
// İptal her durumdan yapılabilir ama geri alınamaz. Geri adım da yok;
// ödenmiş sipariş tekrar alacak haline dönemez.
func CanTransitionOrderStatus(current, next models.OrderStatus) bool {
	if current == models.OrderStatusCancelled {
		return false
	}
	if next == models.OrderStatusCancelled {
		return true
	}
	return orderStatusRank(next) >= orderStatusRank(current)
}
