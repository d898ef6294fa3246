package inventory

import (
	"strings"
	"time"

	"ciftlik-backend/internal/database"
	"ciftlik-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type CreateItemRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"` // feed / medicine / equipment / other
	Unit        string  `json:"unit"`
	Quantity    float64 `json:"quantity"`
	MinLevel    float64 `json:"min_level"`
	CostPerUnit float64 `json:"cost_per_unit"`
	VATRate     float64 `json:"vat_rate"`
	Supplier    string  `json:"supplier"`
	ExpiryDate  *string `json:"expiry_date"` // "2026-06-01"
}

type UpdateItemRequest struct {
	Name        *string  `json:"name"`
	Unit        *string  `json:"unit"`
	Quantity    *float64 `json:"quantity"`
	MinLevel    *float64 `json:"min_level"`
	CostPerUnit *float64 `json:"cost_per_unit"`
	VATRate     *float64 `json:"vat_rate"`
	Supplier    *string  `json:"supplier"`
	ExpiryDate  *string  `json:"expiry_date"`
}

type ItemResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Unit        string          `json:"unit"`
	Quantity    float64         `json:"quantity"`
	MinLevel    float64         `json:"min_level"`
	CostPerUnit decimal.Decimal `json:"cost_per_unit"`
	VATRate     float64         `json:"vat_rate"`
	Supplier    string          `json:"supplier"`
	ExpiryDate  *string         `json:"expiry_date"`
	LowStock    bool            `json:"low_stock"`
}

func toItemResponse(item *models.InventoryItem) ItemResponse {
	var expiry *string
	if item.ExpiryDate != nil {
		formatted := item.ExpiryDate.Format("2006-01-02")
		expiry = &formatted
	}
	return ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Category:    string(item.Category),
		Unit:        item.Unit,
		Quantity:    item.Quantity,
		MinLevel:    item.MinLevel,
		CostPerUnit: item.CostPerUnit,
		VATRate:     item.VATRate,
		Supplier:    item.Supplier,
		ExpiryDate:  expiry,
		LowStock:    item.Quantity <= item.MinLevel,
	}
}

func parseCategory(raw string) (models.InventoryCategory, error) {
	category := models.InventoryCategory(strings.TrimSpace(raw))
	switch category {
	case models.InventoryCategoryFeed, models.InventoryCategoryMedicine,
		models.InventoryCategoryEquipment, models.InventoryCategoryOther:
		return category, nil
	}
	return "", fiber.NewError(fiber.StatusBadRequest, "category 'feed', 'medicine', 'equipment' veya 'other' olmalı")
}

// POST /api/inventory
func CreateItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" || strings.TrimSpace(body.Unit) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name ve unit zorunlu")
		}
		if body.Quantity < 0 || body.MinLevel < 0 || body.CostPerUnit < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Negatif değer girilemez")
		}

		category, err := parseCategory(body.Category)
		if err != nil {
			return err
		}

		item := models.InventoryItem{
			Name:        body.Name,
			Category:    category,
			Unit:        strings.TrimSpace(body.Unit),
			Quantity:    body.Quantity,
			MinLevel:    body.MinLevel,
			CostPerUnit: decimal.NewFromFloat(body.CostPerUnit),
			VATRate:     body.VATRate,
			Supplier:    body.Supplier,
		}

		if body.ExpiryDate != nil && *body.ExpiryDate != "" {
			d, err := time.Parse("2006-01-02", *body.ExpiryDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "expiry_date formatı 'YYYY-MM-DD' olmalı")
			}
			item.ExpiryDate = &d
		}

		if err := database.DB.Create(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Envanter kalemi oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(toItemResponse(&item))
	}
}

// GET /api/inventory?category=...
func ListItemsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.InventoryItem{})

		if category := c.Query("category"); category != "" {
			dbq = dbq.Where("category = ?", category)
		}

		var items []models.InventoryItem
		if err := dbq.Order("name asc").Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Envanter listelenemedi")
		}

		resp := make([]ItemResponse, 0, len(items))
		for i := range items {
			resp = append(resp, toItemResponse(&items[i]))
		}
		return c.JSON(resp)
	}
}

// GET /api/inventory/low-stock
// Miktarı min seviyenin altına / eşitine düşmüş kalemler.
func LowStockHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var items []models.InventoryItem
		if err := database.DB.Where("quantity <= min_level").Order("name asc").Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Envanter listelenemedi")
		}

		resp := make([]ItemResponse, 0, len(items))
		for i := range items {
			resp = append(resp, toItemResponse(&items[i]))
		}
		return c.JSON(resp)
	}
}

// GET /api/inventory/:id
func GetItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var item models.InventoryItem
		if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Envanter kalemi bulunamadı")
		}

		return c.JSON(toItemResponse(&item))
	}
}

// PUT /api/inventory/:id
func UpdateItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var item models.InventoryItem
		if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Envanter kalemi bulunamadı")
		}

		var body UpdateItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Name boş olamaz")
			}
			item.Name = name
		}
		if body.Unit != nil {
			item.Unit = strings.TrimSpace(*body.Unit)
		}
		if body.Quantity != nil {
			if *body.Quantity < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "quantity negatif olamaz")
			}
			item.Quantity = *body.Quantity
		}
		if body.MinLevel != nil {
			if *body.MinLevel < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "min_level negatif olamaz")
			}
			item.MinLevel = *body.MinLevel
		}
		if body.CostPerUnit != nil {
			if *body.CostPerUnit < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "cost_per_unit negatif olamaz")
			}
			item.CostPerUnit = decimal.NewFromFloat(*body.CostPerUnit)
		}
		if body.VATRate != nil {
			item.VATRate = *body.VATRate
		}
		if body.Supplier != nil {
			item.Supplier = *body.Supplier
		}
		if body.ExpiryDate != nil {
			if *body.ExpiryDate == "" {
				item.ExpiryDate = nil
			} else {
				d, err := time.Parse("2006-01-02", *body.ExpiryDate)
				if err != nil {
					return fiber.NewError(fiber.StatusBadRequest, "expiry_date formatı 'YYYY-MM-DD' olmalı")
				}
				item.ExpiryDate = &d
			}
		}

		if err := database.DB.Save(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Envanter kalemi güncellenemedi")
		}

		return c.JSON(toItemResponse(&item))
	}
}

// DELETE /api/inventory/:id (admin)
func DeleteItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var item models.InventoryItem
		if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Envanter kalemi bulunamadı")
		}

		var orderItems int64
		database.DB.Model(&models.OrderItem{}).Where("inventory_id = ?", item.ID).Count(&orderItems)
		if orderItems > 0 {
			return fiber.NewError(fiber.StatusConflict, "Satış kaydı olan kalem silinemez")
		}

		if err := database.DB.Select("MaintenanceLogs", "UsageLogs").Delete(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Envanter kalemi silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
