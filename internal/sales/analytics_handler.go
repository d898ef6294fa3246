package sales

import (
	"sort"
	"time"

	"ciftlik-backend/internal/database"
	"ciftlik-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type MonthlyRevenuePoint struct {
	Month   string          `json:"month"` // "2025-01"
	Orders  int             `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

type TopCustomerItem struct {
	CustomerID uint            `json:"customer_id"`
	Name       string          `json:"name"`
	Orders     int             `json:"orders"`
	Revenue    decimal.Decimal `json:"revenue"`
}

type TopProductItem struct {
	Description string          `json:"description"`
	Quantity    float64         `json:"quantity"`
	Revenue     decimal.Decimal `json:"revenue"`
}

type SalesAnalyticsResponse struct {
	From          string                `json:"from"`
	To            string                `json:"to"`
	TotalOrders   int                   `json:"total_orders"`
	TotalRevenue  decimal.Decimal       `json:"total_revenue"`
	AverageOrder  decimal.Decimal       `json:"average_order"`
	MonthlySeries []MonthlyRevenuePoint `json:"monthly_series"`
	TopCustomers  []TopCustomerItem     `json:"top_customers"`
	TopProducts   []TopProductItem      `json:"top_products"`
}

// GET /api/orders/analytics?from=...&to=...
// Satış ekranı analitiği: aylık seri, en iyi müşteriler, en çok satan kalemler.
// İptal edilmiş siparişler hesaba katılmaz.
func AnalyticsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		fromStr := c.Query("from")
		toStr := c.Query("to")
		if fromStr == "" || toStr == "" {
			return fiber.NewError(fiber.StatusBadRequest, "from ve to tarihleri zorunlu (YYYY-MM-DD)")
		}
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "from tarihi geçersiz")
		}
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "to tarihi geçersiz")
		}

		var orders []models.SalesOrder
		if err := database.DB.Preload("Items").Preload("Customer").
			Where("date >= ? AND date <= ? AND status <> ?", from, to, models.OrderStatusCancelled).
			Find(&orders).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Siparişler okunamadı")
		}

		monthly := make(map[string]*MonthlyRevenuePoint)
		customers := make(map[uint]*TopCustomerItem)
		products := make(map[string]*TopProductItem)

		var totalRevenue decimal.Decimal
		for i := range orders {
			order := &orders[i]
			totalRevenue = totalRevenue.Add(order.TotalAmount)

			monthKey := order.Date.Format("2006-01")
			if _, ok := monthly[monthKey]; !ok {
				monthly[monthKey] = &MonthlyRevenuePoint{Month: monthKey}
			}
			monthly[monthKey].Orders++
			monthly[monthKey].Revenue = monthly[monthKey].Revenue.Add(order.TotalAmount)

			if _, ok := customers[order.CustomerID]; !ok {
				customers[order.CustomerID] = &TopCustomerItem{
					CustomerID: order.CustomerID,
					Name:       order.Customer.Name,
				}
			}
			customers[order.CustomerID].Orders++
			customers[order.CustomerID].Revenue = customers[order.CustomerID].Revenue.Add(order.TotalAmount)

			for _, item := range order.Items {
				key := item.Description
				if key == "" {
					key = string(item.Kind)
				}
				if _, ok := products[key]; !ok {
					products[key] = &TopProductItem{Description: key}
				}
				products[key].Quantity += item.Quantity
				products[key].Revenue = products[key].Revenue.Add(item.LineTotal)
			}
		}

		monthlySeries := make([]MonthlyRevenuePoint, 0, len(monthly))
		for _, p := range monthly {
			monthlySeries = append(monthlySeries, *p)
		}
		sort.Slice(monthlySeries, func(i, j int) bool { return monthlySeries[i].Month < monthlySeries[j].Month })

		topCustomers := make([]TopCustomerItem, 0, len(customers))
		for _, tc := range customers {
			topCustomers = append(topCustomers, *tc)
		}
		sort.Slice(topCustomers, func(i, j int) bool { return topCustomers[i].Revenue.GreaterThan(topCustomers[j].Revenue) })
		if len(topCustomers) > 10 {
			topCustomers = topCustomers[:10]
		}

		topProducts := make([]TopProductItem, 0, len(products))
		for _, tp := range products {
			topProducts = append(topProducts, *tp)
		}
		sort.Slice(topProducts, func(i, j int) bool { return topProducts[i].Revenue.GreaterThan(topProducts[j].Revenue) })
		if len(topProducts) > 10 {
			topProducts = topProducts[:10]
		}

		average := decimal.Zero
		if len(orders) > 0 {
			average = totalRevenue.Div(decimal.NewFromInt(int64(len(orders)))).Round(2)
		}

		return c.JSON(SalesAnalyticsResponse{
			From:          fromStr,
			To:            toStr,
			TotalOrders:   len(orders),
			TotalRevenue:  totalRevenue,
			AverageOrder:  average,
			MonthlySeries: monthlySeries,
			TopCustomers:  topCustomers,
			TopProducts:   topProducts,
		})
	}
}
