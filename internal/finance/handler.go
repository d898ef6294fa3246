package finance

import (
	"strings"
	"time"

	"ciftlik-backend/internal/database"
	"ciftlik-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type CreateTransactionRequest struct {
	Type        string  `json:"type"` // "INCOME" / "EXPENSE"
	Category    string  `json:"category"`
	Date        string  `json:"date"` // "2025-12-09"
	Amount      float64 `json:"amount"`
	VATAmount   float64 `json:"vat_amount"`
	WHTAmount   float64 `json:"wht_amount"`
	Description string  `json:"description"`
	FlockID     *uint   `json:"flock_id"`
}

type TransactionResponse struct {
	ID          uint            `json:"id"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Class       string          `json:"class"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	VATAmount   decimal.Decimal `json:"vat_amount"`
	WHTAmount   decimal.Decimal `json:"wht_amount"`
	Description string          `json:"description"`
	FlockID     *uint           `json:"flock_id"`
	OrderID     *uint           `json:"order_id"`
}

func toTransactionResponse(tx *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          tx.ID,
		Type:        string(tx.Type),
		Category:    tx.Category,
		Class:       string(tx.Class),
		Date:        tx.Date.Format("2006-01-02"),
		Amount:      tx.Amount,
		VATAmount:   tx.VATAmount,
		WHTAmount:   tx.WHTAmount,
		Description: tx.Description,
		FlockID:     tx.FlockID,
		OrderID:     tx.OrderID,
	}
}

// POST /api/transactions
// Muhasebe sınıfı (revenue/cogs/opex) burada BİR KEZ çözülür ve kayda yazılır.
func CreateTransactionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateTransactionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		txType := models.TransactionType(strings.ToUpper(strings.TrimSpace(body.Type)))
		if txType != models.TransactionTypeIncome && txType != models.TransactionTypeExpense {
			return fiber.NewError(fiber.StatusBadRequest, "type 'INCOME' veya 'EXPENSE' olmalı")
		}

		body.Category = strings.TrimSpace(body.Category)
		if body.Category == "" || body.Amount <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "category ve amount zorunlu, amount > 0 olmalı")
		}

		d, err := time.Parse("2006-01-02", body.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Tarih formatı 'YYYY-MM-DD' olmalı")
		}

		if body.FlockID != nil {
			var flock models.Flock
			if err := database.DB.First(&flock, "id = ?", *body.FlockID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Sürü bulunamadı")
			}
		}

		tx := models.Transaction{
			Type:        txType,
			Category:    body.Category,
			Class:       models.ResolveAccountClass(txType, body.Category),
			Date:        d,
			Amount:      decimal.NewFromFloat(body.Amount),
			VATAmount:   decimal.NewFromFloat(body.VATAmount),
			WHTAmount:   decimal.NewFromFloat(body.WHTAmount),
			Description: body.Description,
			FlockID:     body.FlockID,
		}

		if err := database.DB.Create(&tx).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kayıt oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(toTransactionResponse(&tx))
	}
}

// GET /api/transactions?from=...&to=...&type=...&class=...&flock_id=...
func ListTransactionsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Transaction{})

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
		if txType := c.Query("type"); txType != "" {
			dbq = dbq.Where("type = ?", strings.ToUpper(txType))
		}
		if class := c.Query("class"); class != "" {
			dbq = dbq.Where("class = ?", class)
		}
		if flockID := c.QueryInt("flock_id"); flockID > 0 {
			dbq = dbq.Where("flock_id = ?", flockID)
		}

		var txs []models.Transaction
		if err := dbq.Order("date DESC, id DESC").Find(&txs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kayıtlar listelenemedi")
		}

		resp := make([]TransactionResponse, 0, len(txs))
		for i := range txs {
			resp = append(resp, toTransactionResponse(&txs[i]))
		}
		return c.JSON(resp)
	}
}

// DELETE /api/transactions/:id
// Sipariş veya bordroya bağlı kayıtlar buradan silinemez; kaynağından silinmeli.
func DeleteTransactionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var tx models.Transaction
		if err := database.DB.First(&tx, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Kayıt bulunamadı")
		}

		if tx.OrderID != nil {
			return fiber.NewError(fiber.StatusConflict, "Siparişe bağlı kayıt; siparişi silince kalkar")
		}
		if tx.PayrollRunID != nil {
			return fiber.NewError(fiber.StatusConflict, "Bordroya bağlı kayıt silinemez")
		}

		if err := database.DB.Delete(&tx).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kayıt silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

type PnLResponse struct {
	From    string            `json:"from"`
	To      string            `json:"to"`
	Summary ProfitLossSummary `json:"summary"`
}

// parseDateRange: from/to query paramlarını çözer; ikisi de zorunlu.
func parseDateRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "from ve to tarihleri zorunlu (YYYY-MM-DD)")
	}

	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "from tarihi geçersiz")
	}
	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "to tarihi geçersiz")
	}
	return from, to, nil
}

// GET /api/finance/pnl?from=2025-01-01&to=2025-01-31
func PnLHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		from, to, err := parseDateRange(c)
		if err != nil {
			return err
		}

		var txs []models.Transaction
		if err := database.DB.Where("date >= ? AND date <= ?", from, to).Find(&txs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kayıtlar okunamadı")
		}

		return c.JSON(PnLResponse{
			From:    from.Format("2006-01-02"),
			To:      to.Format("2006-01-02"),
			Summary: ProfitLoss(txs),
		})
	}
}

// GET /api/finance/tax-position?from=...&to=...
func TaxPositionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		from, to, err := parseDateRange(c)
		if err != nil {
			return err
		}

		var txs []models.Transaction
		if err := database.DB.Where("date >= ? AND date <= ?", from, to).Find(&txs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kayıtlar okunamadı")
		}

		return c.JSON(TaxPosition(txs))
	}
}

// GET /api/finance/balance-sheet
// Tüm zamanların verisi üzerinden basitleştirilmiş bilanço.
func BalanceSheetHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var txs []models.Transaction
		if err := database.DB.Find(&txs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kayıtlar okunamadı")
		}

		var items []models.InventoryItem
		if err := database.DB.Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Envanter okunamadı")
		}

		var flocks []models.Flock
		if err := database.DB.Find(&flocks).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sürüler okunamadı")
		}

		var orders []models.SalesOrder
		if err := database.DB.Find(&orders).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Siparişler okunamadı")
		}

		return c.JSON(BalanceSheet(txs, items, flocks, orders))
	}
}
