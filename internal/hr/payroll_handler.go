package hr

import (
	"fmt"
	"time"

	"ciftlik-backend/internal/database"
	"ciftlik-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PayrollRequest struct {
	Year        int    `json:"year"`
	Month       int    `json:"month"`        // 1-12
	EmployeeIDs []uint `json:"employee_ids"` // boşsa tüm aktif çalışanlar
	Note        string `json:"note"`
}

type PayrollItemResponse struct {
	EmployeeID   uint            `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Gross        decimal.Decimal `json:"gross"`
	Tax          decimal.Decimal `json:"tax"`
	Pension      decimal.Decimal `json:"pension"`
	Deductions   decimal.Decimal `json:"deductions"`
	Net          decimal.Decimal `json:"net"`
}

type PayrollPreviewResponse struct {
	Year   int                   `json:"year"`
	Month  int                   `json:"month"`
	Items  []PayrollItemResponse `json:"items"`
	Totals PayrollTotals         `json:"totals"`
}

type PayrollRunResponse struct {
	ID      uint                  `json:"id"`
	Year    int                   `json:"year"`
	Month   int                   `json:"month"`
	RunDate string                `json:"run_date"`
	Items   []PayrollItemResponse `json:"items"`
	Totals  PayrollTotals         `json:"totals"`
	Note    string                `json:"note"`
}

func toItemResponses(items []models.PayrollItem) []PayrollItemResponse {
	resp := make([]PayrollItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, PayrollItemResponse{
			EmployeeID:   item.EmployeeID,
			EmployeeName: item.EmployeeName,
			Gross:        item.Gross,
			Tax:          item.Tax,
			Pension:      item.Pension,
			Deductions:   item.Deductions,
			Net:          item.Net,
		})
	}
	return resp
}

// loadPayrollEmployees: Seçilen (veya tüm aktif) çalışanları getirir.
func loadPayrollEmployees(body *PayrollRequest) ([]models.Employee, error) {
	if body.Year < 2000 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "year geçersiz")
	}
	if body.Month < 1 || body.Month > 12 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "month geçersiz (1-12)")
	}

	dbq := database.DB.Where("active = ?", true)
	if len(body.EmployeeIDs) > 0 {
		dbq = dbq.Where("id IN ?", body.EmployeeIDs)
	}

	var employees []models.Employee
	if err := dbq.Order("name asc").Find(&employees).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Çalışanlar okunamadı")
	}
	if len(employees) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Bordroya dahil edilecek aktif çalışan yok")
	}
	return employees, nil
}

// POST /api/payroll/preview
// Sihirbazın SEÇİM adımı: hesaplar, hiçbir şey kaydetmez. İstenirse
// tekrar tekrar çağrılabilir ("geri" tuşu taslağı bozmaz).
func PreviewPayrollHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body PayrollRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		employees, err := loadPayrollEmployees(&body)
		if err != nil {
			return err
		}

		items, totals := ComputePayrollBatch(employees)

		return c.JSON(PayrollPreviewResponse{
			Year:   body.Year,
			Month:  body.Month,
			Items:  toItemResponses(items),
			Totals: totals,
		})
	}
}

// POST /api/payroll/run (admin)
// Sihirbazın ONAY adımı: PayrollRun + kalemler + parti brütü üzerinden TEK
// gider kaydı, tek DB transaction'ında yazılır.
func RunPayrollHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body PayrollRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		employees, err := loadPayrollEmployees(&body)
		if err != nil {
			return err
		}

		// Aynı dönem için ikinci bordro koşulmasın
		var existing int64
		database.DB.Model(&models.PayrollRun{}).
			Where("year = ? AND month = ?", body.Year, body.Month).
			Count(&existing)
		if existing > 0 {
			return fiber.NewError(fiber.StatusConflict,
				fmt.Sprintf("%d/%d dönemi için bordro zaten koşulmuş", body.Month, body.Year))
		}

		items, totals := ComputePayrollBatch(employees)

		run := models.PayrollRun{
			Year:         body.Year,
			Month:        body.Month,
			RunDate:      time.Now(),
			TotalGross:   totals.Gross,
			TotalTax:     totals.Tax,
			TotalPension: totals.Pension,
			TotalNet:     totals.Net,
			Note:         body.Note,
			Items:        items,
		}

		txErr := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&run).Error; err != nil {
				return err
			}

			const category = "Bordro"
			ledger := models.Transaction{
				Type:                 models.TransactionTypeExpense,
				Category:             category,
				Class:                models.ResolveAccountClass(models.TransactionTypeExpense, category),
				Date:                 run.RunDate,
				Amount:               totals.Gross,
				PayrollTaxAmount:     totals.Tax,
				PayrollPensionAmount: totals.Pension,
				Description:          fmt.Sprintf("Bordro %d/%d (%d çalışan)", run.Month, run.Year, len(items)),
				PayrollRunID:         &run.ID,
			}
			return tx.Create(&ledger).Error
		})
		if txErr != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bordro kaydedilemedi")
		}

		return c.Status(fiber.StatusCreated).JSON(PayrollRunResponse{
			ID:      run.ID,
			Year:    run.Year,
			Month:   run.Month,
			RunDate: run.RunDate.Format("2006-01-02"),
			Items:   toItemResponses(run.Items),
			Totals:  totals,
			Note:    run.Note,
		})
	}
}

// GET /api/payroll/runs
func ListPayrollRunsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var runs []models.PayrollRun
		if err := database.DB.Order("year DESC, month DESC").Find(&runs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bordrolar listelenemedi")
		}

		resp := make([]PayrollRunResponse, 0, len(runs))
		for _, run := range runs {
			resp = append(resp, PayrollRunResponse{
				ID:      run.ID,
				Year:    run.Year,
				Month:   run.Month,
				RunDate: run.RunDate.Format("2006-01-02"),
				Totals: PayrollTotals{
					Gross:   run.TotalGross,
					Tax:     run.TotalTax,
					Pension: run.TotalPension,
					Net:     run.TotalNet,
				},
				Note: run.Note,
			})
		}
		return c.JSON(resp)
	}
}

// GET /api/payroll/runs/:id
func GetPayrollRunHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var run models.PayrollRun
		if err := database.DB.Preload("Items").First(&run, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Bordro bulunamadı")
		}

		return c.JSON(PayrollRunResponse{
			ID:      run.ID,
			Year:    run.Year,
			Month:   run.Month,
			RunDate: run.RunDate.Format("2006-01-02"),
			Items:   toItemResponses(run.Items),
			Totals: PayrollTotals{
				Gross:   run.TotalGross,
				Tax:     run.TotalTax,
				Pension: run.TotalPension,
				Net:     run.TotalNet,
			},
			Note: run.Note,
		})
	}
}
