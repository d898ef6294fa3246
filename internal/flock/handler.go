package flock

import (
	"fmt"
	"strings"
	"time"

	"ciftlik-backend/internal/database"
	"ciftlik-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreateFlockRequest struct {
	Name            string  `json:"name"`
	Type            string  `json:"type"` // broiler / layer / breeder
	Breed           string  `json:"breed"`
	InitialCount    int     `json:"initial_count"`
	AcquisitionDate string  `json:"acquisition_date"` // "2025-12-09"
	AcquisitionCost float64 `json:"acquisition_cost"` // KDV hariç
	VATAmount       float64 `json:"vat_amount"`
	WHTAmount       float64 `json:"wht_amount"`
	Housing         string  `json:"housing"`
	Note            string  `json:"note"`
	Planned         bool    `json:"planned"` // true ise planlı sürü, stok ve gider kaydı açılmaz
}

type UpdateFlockRequest struct {
	Name         *string `json:"name"`
	Breed        *string `json:"breed"`
	Status       *string `json:"status"` // active / quarantine (hasat için ayrı endpoint)
	CurrentCount *int    `json:"current_count"`
	Housing      *string `json:"housing"`
	Note         *string `json:"note"`
}

type FlockResponse struct {
	ID              uint            `json:"id"`
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	Breed           string          `json:"breed"`
	Status          string          `json:"status"`
	InitialCount    int             `json:"initial_count"`
	CurrentCount    int             `json:"current_count"`
	TotalSold       int             `json:"total_sold"`
	AcquisitionDate string          `json:"acquisition_date"`
	AcquisitionCost decimal.Decimal `json:"acquisition_cost"`
	VATAmount       decimal.Decimal `json:"vat_amount"`
	WHTAmount       decimal.Decimal `json:"wht_amount"`
	Housing         string          `json:"housing"`
	Note            string          `json:"note"`
}

func toResponse(f *models.Flock) FlockResponse {
	return FlockResponse{
		ID:              f.ID,
		Name:            f.Name,
		Type:            string(f.Type),
		Breed:           f.Breed,
		Status:          string(f.Status),
		InitialCount:    f.InitialCount,
		CurrentCount:    f.CurrentCount,
		TotalSold:       f.TotalSold,
		AcquisitionDate: f.AcquisitionDate.Format("2006-01-02"),
		AcquisitionCost: f.AcquisitionCost,
		VATAmount:       f.VATAmount,
		WHTAmount:       f.WHTAmount,
		Housing:         f.Housing,
		Note:            f.Note,
	}
}

// acquisitionLedger: Sürü alımının gider kaydı ("Civciv/Hayvan Alımı", COGS).
func acquisitionLedger(f *models.Flock) models.Transaction {
	const category = "Civciv/Hayvan Alımı"
	return models.Transaction{
		Type:        models.TransactionTypeExpense,
		Category:    category,
		Class:       models.ResolveAccountClass(models.TransactionTypeExpense, category),
		Date:        f.AcquisitionDate,
		Amount:      f.AcquisitionCost,
		VATAmount:   f.VATAmount,
		WHTAmount:   f.WHTAmount,
		Description: fmt.Sprintf("Sürü alımı: %s (%d adet)", f.Name, f.InitialCount),
		FlockID:     &f.ID,
	}
}

// postsAcquisitionOnActivation: Planlı sürünün alım gideri oluşturma anında
// yazılmaz; sürü aktifleşirken (veya karantinaya alınırken) bir kez yazılır.
// Planlıdan çıkış tek yönlü olduğundan mükerrer kayıt oluşmaz.
func postsAcquisitionOnActivation(oldStatus, newStatus models.FlockStatus, cost decimal.Decimal) bool {
	if oldStatus != models.FlockStatusPlanned {
		return false
	}
	if newStatus != models.FlockStatusActive && newStatus != models.FlockStatusQuarantine {
		return false
	}
	return !cost.IsZero()
}

// POST /api/flocks
// Alım maliyeti olan sürü, "Civciv/Hayvan Alımı" kategorisinde (COGS) bir
// gider kaydıyla birlikte tek DB transaction'ında açılır.
func CreateFlockHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateFlockRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Sürü adı zorunlu")
		}

		flockType := models.FlockType(strings.TrimSpace(body.Type))
		switch flockType {
		case models.FlockTypeBroiler, models.FlockTypeLayer, models.FlockTypeBreeder:
		default:
			return fiber.NewError(fiber.StatusBadRequest, "type 'broiler', 'layer' veya 'breeder' olmalı")
		}

		if body.InitialCount <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "initial_count > 0 olmalı")
		}
		if body.AcquisitionCost < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "acquisition_cost negatif olamaz")
		}

		d, err := time.Parse("2006-01-02", body.AcquisitionDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Tarih formatı 'YYYY-MM-DD' olmalı")
		}

		status := models.FlockStatusActive
		if body.Planned {
			status = models.FlockStatusPlanned
		}

		flock := models.Flock{
			Name:            body.Name,
			Type:            flockType,
			Breed:           body.Breed,
			Status:          status,
			InitialCount:    body.InitialCount,
			CurrentCount:    body.InitialCount,
			AcquisitionDate: d,
			AcquisitionCost: decimal.NewFromFloat(body.AcquisitionCost),
			VATAmount:       decimal.NewFromFloat(body.VATAmount),
			WHTAmount:       decimal.NewFromFloat(body.WHTAmount),
			Housing:         body.Housing,
			Note:            body.Note,
		}

		txErr := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&flock).Error; err != nil {
				return err
			}

			// Planlı sürüde henüz alım yok; gider kaydı aktifleşince açılır
			if body.Planned || flock.AcquisitionCost.IsZero() {
				return nil
			}

			ledger := acquisitionLedger(&flock)
			return tx.Create(&ledger).Error
		})
		if txErr != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sürü oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(&flock))
	}
}

// GET /api/flocks?status=...&type=...
func ListFlocksHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Flock{})

		if status := c.Query("status"); status != "" {
			dbq = dbq.Where("status = ?", status)
		}
		if flockType := c.Query("type"); flockType != "" {
			dbq = dbq.Where("type = ?", flockType)
		}

		var flocks []models.Flock
		if err := dbq.Order("acquisition_date DESC").Find(&flocks).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sürüler listelenemedi")
		}

		resp := make([]FlockResponse, 0, len(flocks))
		for i := range flocks {
			resp = append(resp, toResponse(&flocks[i]))
		}
		return c.JSON(resp)
	}
}

// GET /api/flocks/:id
func GetFlockHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var flock models.Flock
		if err := database.DB.First(&flock, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Sürü bulunamadı")
		}

		return c.JSON(toResponse(&flock))
	}
}

// PUT /api/flocks/:id
func UpdateFlockHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var flock models.Flock
		if err := database.DB.First(&flock, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Sürü bulunamadı")
		}

		var body UpdateFlockRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		oldStatus := flock.Status

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Sürü adı boş olamaz")
			}
			flock.Name = name
		}
		if body.Breed != nil {
			flock.Breed = *body.Breed
		}
		if body.Status != nil {
			newStatus := models.FlockStatus(strings.TrimSpace(*body.Status))
			switch newStatus {
			case models.FlockStatusActive, models.FlockStatusQuarantine:
				flock.Status = newStatus
			case models.FlockStatusHarvested:
				return fiber.NewError(fiber.StatusBadRequest, "Hasat için /flocks/:id/harvest kullanılmalı")
			default:
				return fiber.NewError(fiber.StatusBadRequest, "Geçersiz sürü durumu")
			}
		}
		if body.CurrentCount != nil {
			// CurrentCount hiçbir zaman InitialCount'u aşamaz
			if *body.CurrentCount < 0 || *body.CurrentCount > flock.InitialCount {
				return fiber.NewError(fiber.StatusBadRequest,
					fmt.Sprintf("current_count 0 ile %d arasında olmalı", flock.InitialCount))
			}
			flock.CurrentCount = *body.CurrentCount
		}
		if body.Housing != nil {
			flock.Housing = *body.Housing
		}
		if body.Note != nil {
			flock.Note = *body.Note
		}

		txErr := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Save(&flock).Error; err != nil {
				return err
			}

			// Planlı sürü faaliyete geçtiğinde ertelenen alım gideri deftere yazılır
			if postsAcquisitionOnActivation(oldStatus, flock.Status, flock.AcquisitionCost) {
				ledger := acquisitionLedger(&flock)
				return tx.Create(&ledger).Error
			}
			return nil
		})
		if txErr != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sürü güncellenemedi")
		}

		return c.JSON(toResponse(&flock))
	}
}

// POST /api/flocks/:id/harvest
// Sürüyü hasat edilmiş durumuna geçirir; planlı sürü hasat edilemez.
func HarvestFlockHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var flock models.Flock
		if err := database.DB.First(&flock, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Sürü bulunamadı")
		}

		if flock.Status == models.FlockStatusHarvested {
			return fiber.NewError(fiber.StatusConflict, "Sürü zaten hasat edilmiş")
		}
		if flock.Status == models.FlockStatusPlanned {
			return fiber.NewError(fiber.StatusConflict, "Planlı sürü hasat edilemez")
		}

		flock.Status = models.FlockStatusHarvested
		if err := database.DB.Save(&flock).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sürü güncellenemedi")
		}

		return c.JSON(toResponse(&flock))
	}
}

// DELETE /api/flocks/:id
func DeleteFlockHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var flock models.Flock
		if err := database.DB.First(&flock, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Sürü bulunamadı")
		}

		var orderItems int64
		database.DB.Model(&models.OrderItem{}).Where("flock_id = ?", flock.ID).Count(&orderItems)
		if orderItems > 0 {
			return fiber.NewError(fiber.StatusConflict, "Satış kaydı olan sürü silinemez")
		}

		if err := database.DB.Select("Logs").Delete(&flock).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sürü silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
