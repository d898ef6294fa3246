package sales

import (
	"fmt"
	"strings"
	"time"

	"ciftlik-backend/internal/database"
	"ciftlik-backend/internal/models"
	"ciftlik-backend/internal/settings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderItemRequest struct {
	Kind        string  `json:"kind"` // "inventory" / "flock"
	InventoryID *uint   `json:"inventory_id"`
	FlockID     *uint   `json:"flock_id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type CreateOrderRequest struct {
	CustomerID uint               `json:"customer_id"`
	Date       string             `json:"date"` // "2025-12-09"
	VATRate    *float64           `json:"vat_rate"` // boşsa çiftlik varsayılanı
	WHTRate    *float64           `json:"wht_rate"`
	Note       string             `json:"note"`
	Items      []OrderItemRequest `json:"items"`
}

type UpdateOrderRequest struct {
	Date    *string            `json:"date"`
	VATRate *float64           `json:"vat_rate"`
	WHTRate *float64           `json:"wht_rate"`
	Note    *string            `json:"note"`
	Items   []OrderItemRequest `json:"items"` // boş değilse kalemler komple değiştirilir
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type OrderItemResponse struct {
	ID          uint            `json:"id"`
	Kind        string          `json:"kind"`
	InventoryID *uint           `json:"inventory_id"`
	FlockID     *uint           `json:"flock_id"`
	Description string          `json:"description"`
	Quantity    float64         `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

type OrderResponse struct {
	ID           uint                `json:"id"`
	CustomerID   uint                `json:"customer_id"`
	CustomerName string              `json:"customer_name"`
	Date         string              `json:"date"`
	Status       string              `json:"status"`
	VATRate      float64             `json:"vat_rate"`
	WHTRate      float64             `json:"wht_rate"`
	SubTotal     decimal.Decimal     `json:"sub_total"`
	VATAmount    decimal.Decimal     `json:"vat_amount"`
	WHTAmount    decimal.Decimal     `json:"wht_amount"`
	TotalAmount  decimal.Decimal     `json:"total_amount"`
	Note         string              `json:"note"`
	Items        []OrderItemResponse `json:"items"`
}

func toOrderResponse(order *models.SalesOrder, customerName string) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ID:          item.ID,
			Kind:        string(item.Kind),
			InventoryID: item.InventoryID,
			FlockID:     item.FlockID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.LineTotal,
		})
	}
	return OrderResponse{
		ID:           order.ID,
		CustomerID:   order.CustomerID,
		CustomerName: customerName,
		Date:         order.Date.Format("2006-01-02"),
		Status:       string(order.Status),
		VATRate:      order.VATRate,
		WHTRate:      order.WHTRate,
		SubTotal:     order.SubTotal,
		VATAmount:    order.VATAmount,
		WHTAmount:    order.WHTAmount,
		TotalAmount:  order.TotalAmount,
		Note:         order.Note,
		Items:        items,
	}
}

// buildOrderItems: İstek kalemlerini doğrular ve model kalemlerine çevirir.
func buildOrderItems(reqItems []OrderItemRequest) ([]models.OrderItem, error) {
	if len(reqItems) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "En az bir sipariş kalemi gerekli")
	}

	items := make([]models.OrderItem, 0, len(reqItems))
	for i, ri := range reqItems {
		kind := models.OrderItemKind(strings.TrimSpace(ri.Kind))
		if kind != models.OrderItemKindInventory && kind != models.OrderItemKindFlock {
			return nil, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%d. kalem: kind 'inventory' veya 'flock' olmalı", i+1))
		}
		if kind == models.OrderItemKindInventory && ri.InventoryID == nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%d. kalem: inventory_id zorunlu", i+1))
		}
		if kind == models.OrderItemKindFlock && ri.FlockID == nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%d. kalem: flock_id zorunlu", i+1))
		}
		if ri.Quantity <= 0 {
			return nil, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%d. kalem: quantity > 0 olmalı", i+1))
		}
		if ri.UnitPrice < 0 {
			return nil, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%d. kalem: unit_price negatif olamaz", i+1))
		}

		unitPrice := decimal.NewFromFloat(ri.UnitPrice)
		item := models.OrderItem{
			Kind:        kind,
			Description: ri.Description,
			Quantity:    ri.Quantity,
			UnitPrice:   unitPrice,
			LineTotal:   ComputeLineTotal(ri.Quantity, unitPrice),
		}
		if kind == models.OrderItemKindInventory {
			item.InventoryID = ri.InventoryID
		} else {
			item.FlockID = ri.FlockID
		}
		items = append(items, item)
	}
	return items, nil
}

// applyStockForItems: Kalemlerin stok düşümünü uygular (0'da kenetli).
// Sipariş, stok ve gelir kaydıyla aynı DB transaction'ında çağrılır.
func applyStockForItems(tx *gorm.DB, items []models.OrderItem) error {
	for _, item := range items {
		switch item.Kind {
		case models.OrderItemKindInventory:
			var inv models.InventoryItem
			if err := tx.First(&inv, "id = ?", *item.InventoryID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Envanter kalemi bulunamadı")
			}
			inv.Quantity = DecrementStock(inv.Quantity, item.Quantity)
			if err := tx.Save(&inv).Error; err != nil {
				return err
			}
		case models.OrderItemKindFlock:
			var flock models.Flock
			if err := tx.First(&flock, "id = ?", *item.FlockID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Sürü bulunamadı")
			}
			qty := int(item.Quantity)
			flock.CurrentCount = DecrementFlockCount(flock.CurrentCount, qty)
			flock.TotalSold += qty
			if err := tx.Save(&flock).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// restoreStockForItems: Düzenleme/silme/iptalde stok düşümlerini geri alır.
func restoreStockForItems(tx *gorm.DB, items []models.OrderItem) error {
	for _, item := range items {
		switch item.Kind {
		case models.OrderItemKindInventory:
			var inv models.InventoryItem
			if err := tx.First(&inv, "id = ?", *item.InventoryID).Error; err != nil {
				// Kalem silinmişse iade atlanır
				continue
			}
			inv.Quantity = RestoreStock(inv.Quantity, item.Quantity)
			if err := tx.Save(&inv).Error; err != nil {
				return err
			}
		case models.OrderItemKindFlock:
			var flock models.Flock
			if err := tx.First(&flock, "id = ?", *item.FlockID).Error; err != nil {
				continue
			}
			qty := int(item.Quantity)
			flock.CurrentCount = RestoreFlockCount(flock.CurrentCount, qty, flock.InitialCount)
			flock.TotalSold = DecrementTotalSold(flock.TotalSold, qty)
			if err := tx.Save(&flock).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// POST /api/orders
// Sipariş + stok düşümü + gelir kaydı + müşteri istatistikleri tek DB
// transaction'ında işlenir; yarım kalmış sipariş oluşamaz.
func CreateOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateOrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.CustomerID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "customer_id zorunlu")
		}

		d, err := time.Parse("2006-01-02", body.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Tarih formatı 'YYYY-MM-DD' olmalı")
		}

		items, err := buildOrderItems(body.Items)
		if err != nil {
			return err
		}

		profile, err := settings.GetOrCreateProfile(database.DB)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ayarlar okunamadı")
		}

		vatRate := profile.DefaultVATRate
		if body.VATRate != nil {
			vatRate = *body.VATRate
		}
		whtRate := profile.DefaultWHTRate
		if body.WHTRate != nil {
			whtRate = *body.WHTRate
		}
		if vatRate < 0 || vatRate > 100 || whtRate < 0 || whtRate > 100 {
			return fiber.NewError(fiber.StatusBadRequest, "Vergi oranları 0-100 arasında olmalı")
		}

		subTotal, vatAmount, whtAmount, totalAmount := ComputeOrderTotals(items, vatRate, whtRate)

		var order models.SalesOrder
		txErr := database.DB.Transaction(func(tx *gorm.DB) error {
			var customer models.Customer
			if err := tx.First(&customer, "id = ?", body.CustomerID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Müşteri bulunamadı")
			}

			order = models.SalesOrder{
				CustomerID:  body.CustomerID,
				Date:        d,
				Status:      models.OrderStatusPending,
				VATRate:     vatRate,
				WHTRate:     whtRate,
				SubTotal:    subTotal,
				VATAmount:   vatAmount,
				WHTAmount:   whtAmount,
				TotalAmount: totalAmount,
				Note:        body.Note,
				Items:       items,
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}

			if err := applyStockForItems(tx, order.Items); err != nil {
				return err
			}

			ledger := models.Transaction{
				Type:        models.TransactionTypeIncome,
				Category:    "Satış",
				Class:       models.ResolveAccountClass(models.TransactionTypeIncome, "Satış"),
				Date:        d,
				Amount:      subTotal,
				VATAmount:   vatAmount,
				WHTAmount:   whtAmount,
				Description: fmt.Sprintf("Sipariş #%d - %s", order.ID, customer.Name),
				OrderID:     &order.ID,
			}
			if err := tx.Create(&ledger).Error; err != nil {
				return err
			}

			customer.TotalOrders++
			customer.TotalSpent = customer.TotalSpent.Add(totalAmount)
			return tx.Save(&customer).Error
		})
		if txErr != nil {
			if fe, ok := txErr.(*fiber.Error); ok {
				return fe
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Sipariş oluşturulamadı")
		}

		var customer models.Customer
		database.DB.First(&customer, "id = ?", order.CustomerID)
		return c.Status(fiber.StatusCreated).JSON(toOrderResponse(&order, customer.Name))
	}
}

// PUT /api/orders/:id
// Eski kalemlerin stok düşümü geri alınır, yeni kalemler uygulanır,
// müşteri toplamı tam delta kadar kaydırılır, bağlı gelir kaydı güncellenir.
func UpdateOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body UpdateOrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		var order models.SalesOrder
		if err := database.DB.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Sipariş bulunamadı")
		}
		if order.Status == models.OrderStatusCancelled {
			return fiber.NewError(fiber.StatusConflict, "İptal edilmiş sipariş düzenlenemez")
		}

		oldAmount := order.TotalAmount

		if body.Date != nil {
			d, err := time.Parse("2006-01-02", *body.Date)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Tarih formatı 'YYYY-MM-DD' olmalı")
			}
			order.Date = d
		}
		if body.VATRate != nil {
			if *body.VATRate < 0 || *body.VATRate > 100 {
				return fiber.NewError(fiber.StatusBadRequest, "KDV oranı 0-100 arasında olmalı")
			}
			order.VATRate = *body.VATRate
		}
		if body.WHTRate != nil {
			if *body.WHTRate < 0 || *body.WHTRate > 100 {
				return fiber.NewError(fiber.StatusBadRequest, "Stopaj oranı 0-100 arasında olmalı")
			}
			order.WHTRate = *body.WHTRate
		}
		if body.Note != nil {
			order.Note = *body.Note
		}

		var newItems []models.OrderItem
		replaceItems := len(body.Items) > 0
		if replaceItems {
			var err error
			newItems, err = buildOrderItems(body.Items)
			if err != nil {
				return err
			}
		}

		txErr := database.DB.Transaction(func(tx *gorm.DB) error {
			if replaceItems {
				// Eski kalemlerin düşümünü geri al, kayıtlarını sil
				if err := restoreStockForItems(tx, order.Items); err != nil {
					return err
				}
				if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
					return err
				}

				for i := range newItems {
					newItems[i].OrderID = order.ID
				}
				if err := tx.Create(&newItems).Error; err != nil {
					return err
				}
				if err := applyStockForItems(tx, newItems); err != nil {
					return err
				}
				order.Items = newItems
			}

			order.SubTotal, order.VATAmount, order.WHTAmount, order.TotalAmount =
				ComputeOrderTotals(order.Items, order.VATRate, order.WHTRate)

			if err := tx.Omit("Items").Save(&order).Error; err != nil {
				return err
			}

			// Bağlı gelir kaydını senkronla
			if err := tx.Model(&models.Transaction{}).Where("order_id = ?", order.ID).
				Updates(map[string]interface{}{
					"date":       order.Date,
					"amount":     order.SubTotal,
					"vat_amount": order.VATAmount,
					"wht_amount": order.WHTAmount,
				}).Error; err != nil {
				return err
			}

			// Müşteri toplamını eski/yeni farkı kadar kaydır
			var customer models.Customer
			if err := tx.First(&customer, "id = ?", order.CustomerID).Error; err != nil {
				return err
			}
			customer.TotalSpent = ApplyCustomerDelta(customer.TotalSpent, oldAmount, order.TotalAmount)
			return tx.Save(&customer).Error
		})
		if txErr != nil {
			if fe, ok := txErr.(*fiber.Error); ok {
				return fe
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Sipariş güncellenemedi")
		}

		var customer models.Customer
		database.DB.First(&customer, "id = ?", order.CustomerID)
		return c.JSON(toOrderResponse(&order, customer.Name))
	}
}

// cancelOrderEffects: Stok iadesi + müşteri istatistiği geri alma + gelir
// kaydı silme. Silme ve iptal aynı telafi adımlarını paylaşır.
func cancelOrderEffects(tx *gorm.DB, order *models.SalesOrder) error {
	if err := restoreStockForItems(tx, order.Items); err != nil {
		return err
	}

	var customer models.Customer
	if err := tx.First(&customer, "id = ?", order.CustomerID).Error; err == nil {
		customer.TotalOrders, customer.TotalSpent =
			ReverseCustomerTotals(customer.TotalOrders, customer.TotalSpent, order.TotalAmount)
		if err := tx.Save(&customer).Error; err != nil {
			return err
		}
	}

	return tx.Where("order_id = ?", order.ID).Delete(&models.Transaction{}).Error
}

// DELETE /api/orders/:id
func DeleteOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var order models.SalesOrder
		if err := database.DB.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Sipariş bulunamadı")
		}

		txErr := database.DB.Transaction(func(tx *gorm.DB) error {
			// İptal edilmiş siparişin etkileri zaten geri alınmış durumda
			if order.Status != models.OrderStatusCancelled {
				if err := cancelOrderEffects(tx, &order); err != nil {
					return err
				}
			}
			return tx.Select("Items").Delete(&order).Error
		})
		if txErr != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sipariş silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// PATCH /api/orders/:id/status
// pending -> delivered -> paid akışı; iptal her durumdan yapılabilir ama
// iptal geri alınamaz (stok ve istatistikler iade edilmiş olur).
func UpdateOrderStatusHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body UpdateOrderStatusRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		newStatus := models.OrderStatus(strings.TrimSpace(body.Status))
		switch newStatus {
		case models.OrderStatusPending, models.OrderStatusDelivered, models.OrderStatusPaid, models.OrderStatusCancelled:
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz sipariş durumu")
		}

		var order models.SalesOrder
		if err := database.DB.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Sipariş bulunamadı")
		}

		if order.Status == models.OrderStatusCancelled {
			return fiber.NewError(fiber.StatusConflict, "İptal edilmiş siparişin durumu değiştirilemez")
		}
		if order.Status == newStatus {
			var customer models.Customer
			database.DB.First(&customer, "id = ?", order.CustomerID)
			return c.JSON(toOrderResponse(&order, customer.Name))
		}
		if !CanTransitionOrderStatus(order.Status, newStatus) {
			return fiber.NewError(fiber.StatusConflict, "Sipariş durumu geri alınamaz")
		}

		txErr := database.DB.Transaction(func(tx *gorm.DB) error {
			if newStatus == models.OrderStatusCancelled {
				if err := cancelOrderEffects(tx, &order); err != nil {
					return err
				}
			}
			order.Status = newStatus
			return tx.Omit("Items").Save(&order).Error
		})
		if txErr != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Durum güncellenemedi")
		}

		var customer models.Customer
		database.DB.First(&customer, "id = ?", order.CustomerID)
		return c.JSON(toOrderResponse(&order, customer.Name))
	}
}

// GET /api/orders?from=...&to=...&customer_id=...&status=...
func ListOrdersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.SalesOrder{}).Preload("Items").Preload("Customer")

		if fromStr := c.Query("from"); fromStr != "" {
			from, err := time.Parse("2006-01-02", fromStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "from tarihi geçersiz")
			}
			dbq = dbq.Where("date >= ?", from)
		}
		if toStr := c.Query("to"); toStr != "" {
			to, err := time.Parse("2006-01-02", toStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "to tarihi geçersiz")
			}
			dbq = dbq.Where("date <= ?", to)
		}
		if customerID := c.QueryInt("customer_id"); customerID > 0 {
			dbq = dbq.Where("customer_id = ?", customerID)
		}
		if status := c.Query("status"); status != "" {
			dbq = dbq.Where("status = ?", status)
		}

		var orders []models.SalesOrder
		if err := dbq.Order("date DESC, id DESC").Find(&orders).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Siparişler listelenemedi")
		}

		resp := make([]OrderResponse, 0, len(orders))
		for i := range orders {
			resp = append(resp, toOrderResponse(&orders[i], orders[i].Customer.Name))
		}
		return c.JSON(resp)
	}
}

// GET /api/orders/:id
func GetOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var order models.SalesOrder
		if err := database.DB.Preload("Items").Preload("Customer").First(&order, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Sipariş bulunamadı")
		}

		return c.JSON(toOrderResponse(&order, order.Customer.Name))
	}
}
