package flock

import (
	"time"

	"ciftlik-backend/internal/database"
	"ciftlik-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreateFlockLogRequest struct {
	Date        string  `json:"date"` // "2025-12-09"
	Mortality   int     `json:"mortality"`
	FeedKg      float64 `json:"feed_kg"`
	AvgWeightKg float64 `json:"avg_weight_kg"`
	EggCount    int     `json:"egg_count"`
	Note        string  `json:"note"`
}

type FlockLogResponse struct {
	ID          uint    `json:"id"`
	FlockID     uint    `json:"flock_id"`
	Date        string  `json:"date"`
	Mortality   int     `json:"mortality"`
	FeedKg      float64 `json:"feed_kg"`
	AvgWeightKg float64 `json:"avg_weight_kg"`
	EggCount    int     `json:"egg_count"`
	Note        string  `json:"note"`
}

func toLogResponse(l *models.FlockLog) FlockLogResponse {
	return FlockLogResponse{
		ID:          l.ID,
		FlockID:     l.FlockID,
		Date:        l.Date.Format("2006-01-02"),
		Mortality:   l.Mortality,
		FeedKg:      l.FeedKg,
		AvgWeightKg: l.AvgWeightKg,
		EggCount:    l.EggCount,
		Note:        l.Note,
	}
}

// POST /api/flocks/:id/logs
// Günlük kayıt; ölüm sayısı sürünün güncel sayısından düşülür, 0'da kenetlenir.
func CreateFlockLogHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var flock models.Flock
		if err := database.DB.First(&flock, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Sürü bulunamadı")
		}
		if flock.Status == models.FlockStatusPlanned {
			return fiber.NewError(fiber.StatusConflict, "Planlı sürüye günlük kayıt girilemez")
		}

		var body CreateFlockLogRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.Mortality < 0 || body.FeedKg < 0 || body.AvgWeightKg < 0 || body.EggCount < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Negatif değer girilemez")
		}

		d, err := time.Parse("2006-01-02", body.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Tarih formatı 'YYYY-MM-DD' olmalı")
		}

		logEntry := models.FlockLog{
			FlockID:     flock.ID,
			Date:        d,
			Mortality:   body.Mortality,
			FeedKg:      body.FeedKg,
			AvgWeightKg: body.AvgWeightKg,
			EggCount:    body.EggCount,
			Note:        body.Note,
		}

		txErr := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&logEntry).Error; err != nil {
				return err
			}

			if body.Mortality > 0 {
				remaining := flock.CurrentCount - body.Mortality
				if remaining < 0 {
					remaining = 0
				}
				flock.CurrentCount = remaining
				return tx.Save(&flock).Error
			}
			return nil
		})
		if txErr != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Günlük kayıt oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(toLogResponse(&logEntry))
	}
}

// GET /api/flocks/:id/logs?from=...&to=...
func ListFlockLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var flock models.Flock
		if err := database.DB.First(&flock, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Sürü bulunamadı")
		}

		dbq := database.DB.Model(&models.FlockLog{}).Where("flock_id = ?", flock.ID)

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

		var logs []models.FlockLog
		if err := dbq.Order("date DESC").Find(&logs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kayıtlar listelenemedi")
		}

		resp := make([]FlockLogResponse, 0, len(logs))
		for i := range logs {
			resp = append(resp, toLogResponse(&logs[i]))
		}
		return c.JSON(resp)
	}
}
