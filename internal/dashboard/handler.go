package dashboard

import (
	"fmt"
	"time"

	"ciftlik-backend/internal/database"
	"ciftlik-backend/internal/finance"
	"ciftlik-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type SummaryResponse struct {
	ActiveFlocks  int64 `json:"active_flocks"`
	TotalBirds    int64 `json:"total_birds"`
	LowStockItems int64 `json:"low_stock_items"`
	OpenTasks     int64 `json:"open_tasks"`

	MonthRevenue decimal.Decimal `json:"month_revenue"`
	MonthExpense decimal.Decimal `json:"month_expense"`
	MonthNet     decimal.Decimal `json:"month_net"`

	PendingOrders int64 `json:"pending_orders"`
}

// GET /api/dashboard/summary
// Ana ekran kartları: sürü/stok/görev sayaçları + bu ayın gelir-gider özeti.
func SummaryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var resp SummaryResponse

		activeStatuses := []models.FlockStatus{models.FlockStatusActive, models.FlockStatusQuarantine}
		database.DB.Model(&models.Flock{}).
			Where("status IN ?", activeStatuses).
			Count(&resp.ActiveFlocks)

		type birdRow struct {
			Total int64
		}
		var birds birdRow
		database.DB.Model(&models.Flock{}).
			Select("COALESCE(SUM(current_count), 0) AS total").
			Where("status IN ?", activeStatuses).
			Scan(&birds)
		resp.TotalBirds = birds.Total

		database.DB.Model(&models.InventoryItem{}).
			Where("quantity <= min_level").
			Count(&resp.LowStockItems)

		database.DB.Model(&models.HrTask{}).
			Where("status = ?", models.TaskStatusOpen).
			Count(&resp.OpenTasks)

		database.DB.Model(&models.SalesOrder{}).
			Where("status = ?", models.OrderStatusPending).
			Count(&resp.PendingOrders)

		// bu ayın başından itibaren
		now := time.Now()
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

		var txs []models.Transaction
		if err := database.DB.
			Where("date >= ?", monthStart).
			Find(&txs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Özet hesaplanamadı")
		}

		pnl := finance.ProfitLoss(txs)
		resp.MonthRevenue = pnl.Revenue
		resp.MonthExpense = pnl.COGS.Add(pnl.Opex)
		resp.MonthNet = pnl.NetProfit

		return c.JSON(resp)
	}
}

type ChartPoint struct {
	Label   string          `json:"label"` // ay başlangıcı, "2026-08-01"
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

type ChartResponse struct {
	From   string       `json:"from"`
	To     string       `json:"to"`
	Points []ChartPoint `json:"points"`
}

// GET /api/dashboard/revenue-chart?months=6
// Aylık gelir/gider serisi. Boş aylar sıfır noktası olarak döner ki
// grafikte eksen kaymasın.
func RevenueChartHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		months := 6
		if raw := c.Query("months"); raw != "" {
			if _, err := fmt.Sscan(raw, &months); err != nil || months <= 0 || months > 36 {
				return fiber.NewError(fiber.StatusBadRequest, "months 1-36 arasında olmalı")
			}
		}

		now := time.Now()
		loc := now.Location()
		end := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		start := end.AddDate(0, -(months - 1), 0)

		type row struct {
			Bucket time.Time       `gorm:"column:bucket"`
			Type   string          `gorm:"column:type"`
			Total  decimal.Decimal `gorm:"column:total"`
		}
		var rows []row

		sql := `
			SELECT date_trunc('month', date)::date AS bucket,
				   type,
				   SUM(amount) AS total
			FROM transactions
			WHERE date >= ?
			GROUP BY bucket, type
			ORDER BY bucket ASC;
		`
		if err := database.DB.Raw(sql, start).Scan(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Veri toplanırken hata oluştu")
		}

		type bucketAgg struct {
			Income  decimal.Decimal
			Expense decimal.Decimal
		}
		buckets := make(map[string]*bucketAgg)
		for _, r := range rows {
			key := r.Bucket.Format("2006-01-02")
			agg, ok := buckets[key]
			if !ok {
				agg = &bucketAgg{}
				buckets[key] = agg
			}
			switch models.TransactionType(r.Type) {
			case models.TransactionTypeIncome:
				agg.Income = agg.Income.Add(r.Total)
			case models.TransactionTypeExpense:
				agg.Expense = agg.Expense.Add(r.Total)
			}
		}

		points := make([]ChartPoint, 0, months)
		for m := 0; m < months; m++ {
			bucket := start.AddDate(0, m, 0)
			label := bucket.Format("2006-01-02")

			point := ChartPoint{Label: label}
			if agg, ok := buckets[label]; ok {
				point.Income = agg.Income
				point.Expense = agg.Expense
			}
			point.Net = point.Income.Sub(point.Expense)
			points = append(points, point)
		}

		return c.JSON(ChartResponse{
			From:   start.Format("2006-01-02"),
			To:     end.AddDate(0, 1, 0).AddDate(0, 0, -1).Format("2006-01-02"),
			Points: points,
		})
	}
}
