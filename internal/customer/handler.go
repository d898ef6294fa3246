package customer

import (
	"strings"

	"ciftlik-backend/internal/database"
	"ciftlik-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Segment string `json:"segment"` // retail / wholesale / restaurant / processor
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Segment *string `json:"segment"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

type CustomerResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Segment     string          `json:"segment"`
	Phone       string          `json:"phone"`
	Address     string          `json:"address"`
	TotalOrders int             `json:"total_orders"`
	TotalSpent  decimal.Decimal `json:"total_spent"`
}

func toResponse(cust *models.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          cust.ID,
		Name:        cust.Name,
		Segment:     string(cust.Segment),
		Phone:       cust.Phone,
		Address:     cust.Address,
		TotalOrders: cust.TotalOrders,
		TotalSpent:  cust.TotalSpent,
	}
}

func parseSegment(raw string) (models.CustomerSegment, error) {
	segment := models.CustomerSegment(strings.TrimSpace(raw))
	switch segment {
	case models.CustomerSegmentRetail, models.CustomerSegmentWholesale,
		models.CustomerSegmentRestaurant, models.CustomerSegmentProcessor:
		return segment, nil
	}
	return "", fiber.NewError(fiber.StatusBadRequest, "segment 'retail', 'wholesale', 'restaurant' veya 'processor' olmalı")
}

// POST /api/customers
func CreateCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateCustomerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Müşteri adı zorunlu")
		}

		segment, err := parseSegment(body.Segment)
		if err != nil {
			return err
		}

		cust := models.Customer{
			Name:    body.Name,
			Segment: segment,
			Phone:   body.Phone,
			Address: body.Address,
		}

		if err := database.DB.Create(&cust).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Müşteri oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(&cust))
	}
}

// GET /api/customers?segment=...
func ListCustomersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Customer{})

		if segment := c.Query("segment"); segment != "" {
			dbq = dbq.Where("segment = ?", segment)
		}

		var customers []models.Customer
		if err := dbq.Order("name asc").Find(&customers).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Müşteriler listelenemedi")
		}

		resp := make([]CustomerResponse, 0, len(customers))
		for i := range customers {
			resp = append(resp, toResponse(&customers[i]))
		}
		return c.JSON(resp)
	}
}

// GET /api/customers/:id
func GetCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var cust models.Customer
		if err := database.DB.First(&cust, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Müşteri bulunamadı")
		}

		return c.JSON(toResponse(&cust))
	}
}

// PUT /api/customers/:id
func UpdateCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var cust models.Customer
		if err := database.DB.First(&cust, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Müşteri bulunamadı")
		}

		var body UpdateCustomerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Müşteri adı boş olamaz")
			}
			cust.Name = name
		}
		if body.Segment != nil {
			segment, err := parseSegment(*body.Segment)
			if err != nil {
				return err
			}
			cust.Segment = segment
		}
		if body.Phone != nil {
			cust.Phone = *body.Phone
		}
		if body.Address != nil {
			cust.Address = *body.Address
		}

		if err := database.DB.Save(&cust).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Müşteri güncellenemedi")
		}

		return c.JSON(toResponse(&cust))
	}
}

// DELETE /api/customers/:id (admin)
func DeleteCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var cust models.Customer
		if err := database.DB.First(&cust, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Müşteri bulunamadı")
		}

		var orders int64
		database.DB.Model(&models.SalesOrder{}).Where("customer_id = ?", cust.ID).Count(&orders)
		if orders > 0 {
			return fiber.NewError(fiber.StatusConflict, "Siparişi olan müşteri silinemez")
		}

		if err := database.DB.Delete(&cust).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Müşteri silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// POST /api/customers/:id/recalculate
// Koşan toplamlar kısmi hatalarda sapabilir; bu endpoint iptal edilmemiş
// siparişlerden kaynak veriyle yeniden hesaplar.
func RecalculateCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var cust models.Customer
		if err := database.DB.First(&cust, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Müşteri bulunamadı")
		}

		var orders []models.SalesOrder
		if err := database.DB.Where("customer_id = ? AND status <> ?", cust.ID, models.OrderStatusCancelled).
			Find(&orders).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Siparişler okunamadı")
		}

		total := decimal.Zero
		for _, order := range orders {
			total = total.Add(order.TotalAmount)
		}

		cust.TotalOrders = len(orders)
		cust.TotalSpent = total

		if err := database.DB.Save(&cust).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Müşteri güncellenemedi")
		}

		return c.JSON(toResponse(&cust))
	}
}
