package inventory

import (
	"fmt"
	"strconv"
	"strings"

	"ciftlik-backend/internal/database"
	"ciftlik-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

type ImportResultResponse struct {
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors"`
}

// parseFloatCell: Excel hücresindeki sayıyı çözer. Hem Türkçe ("1.234,5")
// hem İngilizce ("1,234.5") biçimi kabul edilir; sondaki ayraç ondalık
// sayılır, diğerleri binlik ayracı olarak atılır.
func parseFloatCell(raw string) (float64, error) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return 0, nil
	}

	lastComma := strings.LastIndex(cleaned, ",")
	lastDot := strings.LastIndex(cleaned, ".")
	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot { // "1.234,5"
			cleaned = strings.ReplaceAll(cleaned, ".", "")
			cleaned = strings.Replace(cleaned, ",", ".", 1)
		} else { // "1,234.5"
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		}
	case strings.Count(cleaned, ",") > 1: // "1,234,567"
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	case lastComma >= 0: // "1234,5"
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	case strings.Count(cleaned, ".") > 1: // "1.234.567"
		cleaned = strings.ReplaceAll(cleaned, ".", "")
	}

	return strconv.ParseFloat(cleaned, 64)
}

// POST /api/inventory/import
// XLSX dosyasından toplu envanter girişi. Beklenen kolonlar:
// ad | kategori (feed/medicine/equipment/other) | birim | miktar | min seviye | birim maliyet
// Aynı isimli kalem varsa miktar ve maliyet güncellenir.
func ImportXLSXHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dosya yüklenemedi: "+err.Error())
		}

		if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".xlsx") {
			return fiber.NewError(fiber.StatusBadRequest, "Sadece .xlsx dosyaları yüklenebilir")
		}

		file, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dosya açılamadı: "+err.Error())
		}
		defer file.Close()

		excelFile, err := excelize.OpenReader(file)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Excel dosyası okunamadı: "+err.Error())
		}
		defer excelFile.Close()

		sheetList := excelFile.GetSheetList()
		if len(sheetList) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Excel dosyasında sheet bulunamadı")
		}

		rows, err := excelFile.GetRows(sheetList[0])
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Sheet okunamadı: "+err.Error())
		}
		if len(rows) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Excel dosyası boş")
		}

		// İlk satır başlık mı? ("ad", "name", "ürün" gibi kelimeler varsa atla)
		startRow := 0
		if len(rows[0]) > 0 {
			first := strings.ToLower(strings.TrimSpace(rows[0][0]))
			if first == "ad" || first == "name" || strings.Contains(first, "ürün") || strings.Contains(first, "kalem") {
				startRow = 1
			}
		}

		result := ImportResultResponse{Errors: []string{}}

		for i := startRow; i < len(rows); i++ {
			row := rows[i]
			if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
				result.Skipped++
				continue
			}

			// Eksik kolonları boş kabul et
			cell := func(idx int) string {
				if idx < len(row) {
					return strings.TrimSpace(row[idx])
				}
				return ""
			}

			name := cell(0)
			category, err := parseCategory(cell(1))
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("%d. satır: kategori geçersiz", i+1))
				result.Skipped++
				continue
			}
			unit := cell(2)
			if unit == "" {
				unit = "adet"
			}

			quantity, err := parseFloatCell(cell(3))
			if err != nil || quantity < 0 {
				result.Errors = append(result.Errors, fmt.Sprintf("%d. satır: miktar geçersiz", i+1))
				result.Skipped++
				continue
			}
			minLevel, err := parseFloatCell(cell(4))
			if err != nil || minLevel < 0 {
				result.Errors = append(result.Errors, fmt.Sprintf("%d. satır: min seviye geçersiz", i+1))
				result.Skipped++
				continue
			}
			costPerUnit, err := parseFloatCell(cell(5))
			if err != nil || costPerUnit < 0 {
				result.Errors = append(result.Errors, fmt.Sprintf("%d. satır: birim maliyet geçersiz", i+1))
				result.Skipped++
				continue
			}

			var existing models.InventoryItem
			findErr := database.DB.Where("name = ?", name).First(&existing).Error
			if findErr == nil {
				existing.Category = category
				existing.Unit = unit
				existing.Quantity = quantity
				existing.MinLevel = minLevel
				existing.CostPerUnit = decimal.NewFromFloat(costPerUnit)
				if err := database.DB.Save(&existing).Error; err != nil {
					result.Errors = append(result.Errors, fmt.Sprintf("%d. satır: güncellenemedi", i+1))
					result.Skipped++
					continue
				}
				result.Updated++
				continue
			}

			item := models.InventoryItem{
				Name:        name,
				Category:    category,
				Unit:        unit,
				Quantity:    quantity,
				MinLevel:    minLevel,
				CostPerUnit: decimal.NewFromFloat(costPerUnit),
			}
			if err := database.DB.Create(&item).Error; err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("%d. satır: kaydedilemedi", i+1))
				result.Skipped++
				continue
			}
			result.Created++
		}

		return c.JSON(result)
	}
}
