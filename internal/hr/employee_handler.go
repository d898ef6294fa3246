package hr

import (
	"strings"
	"time"

	"ciftlik-backend/internal/database"
	"ciftlik-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Name        string  `json:"name"`
	Role        string  `json:"role"`
	Phone       string  `json:"phone"`
	HireDate    string  `json:"hire_date"` // "2025-12-09"
	BaseSalary  float64 `json:"base_salary"`
	Allowances  float64 `json:"allowances"`
	Deductions  float64 `json:"deductions"`
	TaxRate     float64 `json:"tax_rate"`
	PensionRate float64 `json:"pension_rate"`
}

type UpdateEmployeeRequest struct {
	Name        *string  `json:"name"`
	Role        *string  `json:"role"`
	Phone       *string  `json:"phone"`
	BaseSalary  *float64 `json:"base_salary"`
	Allowances  *float64 `json:"allowances"`
	Deductions  *float64 `json:"deductions"`
	TaxRate     *float64 `json:"tax_rate"`
	PensionRate *float64 `json:"pension_rate"`
	Active      *bool    `json:"active"`
}

type EmployeeResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Role        string          `json:"role"`
	Phone       string          `json:"phone"`
	HireDate    string          `json:"hire_date"`
	BaseSalary  decimal.Decimal `json:"base_salary"`
	Allowances  decimal.Decimal `json:"allowances"`
	Deductions  decimal.Decimal `json:"deductions"`
	TaxRate     float64         `json:"tax_rate"`
	PensionRate float64         `json:"pension_rate"`
	Active      bool            `json:"active"`
}

func toEmployeeResponse(emp *models.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          emp.ID,
		Name:        emp.Name,
		Role:        emp.Role,
		Phone:       emp.Phone,
		HireDate:    emp.HireDate.Format("2006-01-02"),
		BaseSalary:  emp.BaseSalary,
		Allowances:  emp.Allowances,
		Deductions:  emp.Deductions,
		TaxRate:     emp.TaxRate,
		PensionRate: emp.PensionRate,
		Active:      emp.Active,
	}
}

func validateRates(taxRate, pensionRate float64) error {
	if taxRate < 0 || taxRate > 100 || pensionRate < 0 || pensionRate > 100 {
		return fiber.NewError(fiber.StatusBadRequest, "Vergi ve emeklilik oranları 0-100 arasında olmalı")
	}
	return nil
}

// POST /api/employees (admin)
func CreateEmployeeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateEmployeeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Çalışan adı zorunlu")
		}
		if body.BaseSalary < 0 || body.Allowances < 0 || body.Deductions < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Negatif tutar girilemez")
		}
		if err := validateRates(body.TaxRate, body.PensionRate); err != nil {
			return err
		}

		hireDate := time.Now()
		if body.HireDate != "" {
			d, err := time.Parse("2006-01-02", body.HireDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "hire_date formatı 'YYYY-MM-DD' olmalı")
			}
			hireDate = d
		}

		emp := models.Employee{
			Name:        body.Name,
			Role:        body.Role,
			Phone:       body.Phone,
			HireDate:    hireDate,
			BaseSalary:  decimal.NewFromFloat(body.BaseSalary),
			Allowances:  decimal.NewFromFloat(body.Allowances),
			Deductions:  decimal.NewFromFloat(body.Deductions),
			TaxRate:     body.TaxRate,
			PensionRate: body.PensionRate,
			Active:      true,
		}

		if err := database.DB.Create(&emp).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Çalışan oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(toEmployeeResponse(&emp))
	}
}

// GET /api/employees?active=true
func ListEmployeesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Employee{})

		if active := c.Query("active"); active != "" {
			dbq = dbq.Where("active = ?", active == "true")
		}

		var employees []models.Employee
		if err := dbq.Order("name asc").Find(&employees).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Çalışanlar listelenemedi")
		}

		resp := make([]EmployeeResponse, 0, len(employees))
		for i := range employees {
			resp = append(resp, toEmployeeResponse(&employees[i]))
		}
		return c.JSON(resp)
	}
}

// GET /api/employees/:id
func GetEmployeeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var emp models.Employee
		if err := database.DB.First(&emp, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Çalışan bulunamadı")
		}

		return c.JSON(toEmployeeResponse(&emp))
	}
}

// PUT /api/employees/:id (admin)
func UpdateEmployeeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var emp models.Employee
		if err := database.DB.First(&emp, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Çalışan bulunamadı")
		}

		var body UpdateEmployeeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Çalışan adı boş olamaz")
			}
			emp.Name = name
		}
		if body.Role != nil {
			emp.Role = *body.Role
		}
		if body.Phone != nil {
			emp.Phone = *body.Phone
		}
		if body.BaseSalary != nil {
			if *body.BaseSalary < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "base_salary negatif olamaz")
			}
			emp.BaseSalary = decimal.NewFromFloat(*body.BaseSalary)
		}
		if body.Allowances != nil {
			if *body.Allowances < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "allowances negatif olamaz")
			}
			emp.Allowances = decimal.NewFromFloat(*body.Allowances)
		}
		if body.Deductions != nil {
			if *body.Deductions < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "deductions negatif olamaz")
			}
			emp.Deductions = decimal.NewFromFloat(*body.Deductions)
		}
		if body.TaxRate != nil || body.PensionRate != nil {
			taxRate := emp.TaxRate
			pensionRate := emp.PensionRate
			if body.TaxRate != nil {
				taxRate = *body.TaxRate
			}
			if body.PensionRate != nil {
				pensionRate = *body.PensionRate
			}
			if err := validateRates(taxRate, pensionRate); err != nil {
				return err
			}
			emp.TaxRate = taxRate
			emp.PensionRate = pensionRate
		}
		if body.Active != nil {
			emp.Active = *body.Active
		}

		if err := database.DB.Save(&emp).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Çalışan güncellenemedi")
		}

		return c.JSON(toEmployeeResponse(&emp))
	}
}

// DELETE /api/employees/:id (admin)
// Bordro geçmişi olan çalışan silinmez, pasife alınır.
func DeleteEmployeeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var emp models.Employee
		if err := database.DB.First(&emp, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Çalışan bulunamadı")
		}

		var payrollItems int64
		database.DB.Model(&models.PayrollItem{}).Where("employee_id = ?", emp.ID).Count(&payrollItems)
		if payrollItems > 0 {
			emp.Active = false
			if err := database.DB.Save(&emp).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Çalışan pasife alınamadı")
			}
			return c.JSON(toEmployeeResponse(&emp))
		}

		if err := database.DB.Delete(&emp).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Çalışan silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
