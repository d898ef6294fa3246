package inventory

import (
	"fmt"
	"time"

	"ciftlik-backend/internal/database"
	"ciftlik-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreateMaintenanceLogRequest struct {
	Date        string  `json:"date"` // "2025-12-09"
	Cost        float64 `json:"cost"`
	Description string  `json:"description"`
}

type MaintenanceLogResponse struct {
	ID          uint            `json:"id"`
	ItemID      uint            `json:"item_id"`
	Date        string          `json:"date"`
	Cost        decimal.Decimal `json:"cost"`
	Description string          `json:"description"`
}

type CreateUsageLogRequest struct {
	Date     string  `json:"date"`
	Hours    float64 `json:"hours"`
	Operator string  `json:"operator"`
}

type UsageLogResponse struct {
	ID       uint    `json:"id"`
	ItemID   uint    `json:"item_id"`
	Date     string  `json:"date"`
	Hours    float64 `json:"hours"`
	Operator string  `json:"operator"`
}

// loadEquipment: Kalemi getirir, equipment kategorisinde olduğunu doğrular.
func loadEquipment(id string) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Envanter kalemi bulunamadı")
	}
	if item.Category != models.InventoryCategoryEquipment {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Bakım/kullanım kaydı sadece ekipman kalemlerine girilebilir")
	}
	return &item, nil
}

// POST /api/inventory/:id/maintenance
// Bakım maliyeti işletme gideri olarak deftere de yazılır.
func CreateMaintenanceLogHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		item, err := loadEquipment(c.Params("id"))
		if err != nil {
			return err
		}

		var body CreateMaintenanceLogRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.Cost < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "cost negatif olamaz")
		}

		d, err := time.Parse("2006-01-02", body.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Tarih formatı 'YYYY-MM-DD' olmalı")
		}

		logEntry := models.MaintenanceLog{
			ItemID:      item.ID,
			Date:        d,
			Cost:        decimal.NewFromFloat(body.Cost),
			Description: body.Description,
		}

		txErr := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&logEntry).Error; err != nil {
				return err
			}

			if logEntry.Cost.IsZero() {
				return nil
			}

			const category = "Bakım/Onarım"
			ledger := models.Transaction{
				Type:        models.TransactionTypeExpense,
				Category:    category,
				Class:       models.ResolveAccountClass(models.TransactionTypeExpense, category),
				Date:        d,
				Amount:      logEntry.Cost,
				Description: fmt.Sprintf("Ekipman bakımı: %s", item.Name),
			}
			return tx.Create(&ledger).Error
		})
		if txErr != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bakım kaydı oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(MaintenanceLogResponse{
			ID:          logEntry.ID,
			ItemID:      logEntry.ItemID,
			Date:        logEntry.Date.Format("2006-01-02"),
			Cost:        logEntry.Cost,
			Description: logEntry.Description,
		})
	}
}

// GET /api/inventory/:id/maintenance
func ListMaintenanceLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		item, err := loadEquipment(c.Params("id"))
		if err != nil {
			return err
		}

		var logs []models.MaintenanceLog
		if err := database.DB.Where("item_id = ?", item.ID).Order("date DESC").Find(&logs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kayıtlar listelenemedi")
		}

		resp := make([]MaintenanceLogResponse, 0, len(logs))
		for _, l := range logs {
			resp = append(resp, MaintenanceLogResponse{
				ID:          l.ID,
				ItemID:      l.ItemID,
				Date:        l.Date.Format("2006-01-02"),
				Cost:        l.Cost,
				Description: l.Description,
			})
		}
		return c.JSON(resp)
	}
}

// POST /api/inventory/:id/usage
func CreateUsageLogHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		item, err := loadEquipment(c.Params("id"))
		if err != nil {
			return err
		}

		var body CreateUsageLogRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.Hours <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "hours > 0 olmalı")
		}

		d, err := time.Parse("2006-01-02", body.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Tarih formatı 'YYYY-MM-DD' olmalı")
		}

		logEntry := models.UsageLog{
			ItemID:   item.ID,
			Date:     d,
			Hours:    body.Hours,
			Operator: body.Operator,
		}

		if err := database.DB.Create(&logEntry).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kullanım kaydı oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(UsageLogResponse{
			ID:       logEntry.ID,
			ItemID:   logEntry.ItemID,
			Date:     logEntry.Date.Format("2006-01-02"),
			Hours:    logEntry.Hours,
			Operator: logEntry.Operator,
		})
	}
}

// GET /api/inventory/:id/usage
func ListUsageLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		item, err := loadEquipment(c.Params("id"))
		if err != nil {
			return err
		}

		var logs []models.UsageLog
		if err := database.DB.Where("item_id = ?", item.ID).Order("date DESC").Find(&logs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kayıtlar listelenemedi")
		}

		resp := make([]UsageLogResponse, 0, len(logs))
		for _, l := range logs {
			resp = append(resp, UsageLogResponse{
				ID:       l.ID,
				ItemID:   l.ItemID,
				Date:     l.Date.Format("2006-01-02"),
				Hours:    l.Hours,
				Operator: l.Operator,
			})
		}
		return c.JSON(resp)
	}
}
