package settings

import (
	"strings"

	"ciftlik-backend/internal/database"
	"ciftlik-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type FarmProfileResponse struct {
	ID              uint    `json:"id"`
	FarmName        string  `json:"farm_name"`
	CurrencySymbol  string  `json:"currency_symbol"`
	DefaultVATRate  float64 `json:"default_vat_rate"`
	DefaultWHTRate  float64 `json:"default_wht_rate"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	LowStockAlerts  bool    `json:"low_stock_alerts"`
	MortalityAlerts bool    `json:"mortality_alerts"`
}

type UpdateFarmProfileRequest struct {
	FarmName        *string  `json:"farm_name"`
	CurrencySymbol  *string  `json:"currency_symbol"`
	DefaultVATRate  *float64 `json:"default_vat_rate"`
	DefaultWHTRate  *float64 `json:"default_wht_rate"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	LowStockAlerts  *bool    `json:"low_stock_alerts"`
	MortalityAlerts *bool    `json:"mortality_alerts"`
}

// GetOrCreateProfile: Tek satırlık ayar kaydını getirir, yoksa varsayılanlarla açar.
func GetOrCreateProfile(db *gorm.DB) (*models.FarmProfile, error) {
	var profile models.FarmProfile
	err := db.First(&profile).Error
	if err == nil {
		return &profile, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	profile = models.FarmProfile{
		FarmName:        "Çiftliğim",
		CurrencySymbol:  "₺",
		DefaultVATRate:  1, // gıda ürünlerinde indirimli KDV
		LowStockAlerts:  true,
		MortalityAlerts: true,
	}
	if err := db.Create(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func toResponse(p *models.FarmProfile) FarmProfileResponse {
	return FarmProfileResponse{
		ID:              p.ID,
		FarmName:        p.FarmName,
		CurrencySymbol:  p.CurrencySymbol,
		DefaultVATRate:  p.DefaultVATRate,
		DefaultWHTRate:  p.DefaultWHTRate,
		Latitude:        p.Latitude,
		Longitude:       p.Longitude,
		LowStockAlerts:  p.LowStockAlerts,
		MortalityAlerts: p.MortalityAlerts,
	}
}

// GET /api/settings
func GetSettingsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile, err := GetOrCreateProfile(database.DB)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ayarlar okunamadı")
		}
		return c.JSON(toResponse(profile))
	}
}

// PUT /api/settings (admin)
func UpdateSettingsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile, err := GetOrCreateProfile(database.DB)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ayarlar okunamadı")
		}

		var body UpdateFarmProfileRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		if body.FarmName != nil {
			name := strings.TrimSpace(*body.FarmName)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Çiftlik adı boş olamaz")
			}
			profile.FarmName = name
		}
		if body.CurrencySymbol != nil {
			profile.CurrencySymbol = strings.TrimSpace(*body.CurrencySymbol)
		}
		if body.DefaultVATRate != nil {
			if *body.DefaultVATRate < 0 || *body.DefaultVATRate > 100 {
				return fiber.NewError(fiber.StatusBadRequest, "KDV oranı 0-100 arasında olmalı")
			}
			profile.DefaultVATRate = *body.DefaultVATRate
		}
		if body.DefaultWHTRate != nil {
			if *body.DefaultWHTRate < 0 || *body.DefaultWHTRate > 100 {
				return fiber.NewError(fiber.StatusBadRequest, "Stopaj oranı 0-100 arasında olmalı")
			}
			profile.DefaultWHTRate = *body.DefaultWHTRate
		}
		if body.Latitude != nil {
			profile.Latitude = *body.Latitude
		}
		if body.Longitude != nil {
			profile.Longitude = *body.Longitude
		}
		if body.LowStockAlerts != nil {
			profile.LowStockAlerts = *body.LowStockAlerts
		}
		if body.MortalityAlerts != nil {
			profile.MortalityAlerts = *body.MortalityAlerts
		}

		if err := database.DB.Save(profile).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ayarlar güncellenemedi")
		}

		return c.JSON(toResponse(profile))
	}
}
