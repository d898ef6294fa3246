package hr

import (
	"ciftlik-backend/internal/models"

	"github.com/shopspring/decimal"
)

// Bordro hesabı: handler'lardan bağımsız saf fonksiyonlar.
// brüt = maaş + yan ödemeler
// vergi = brüt × vergi oranı, emeklilik = brüt × emeklilik oranı
// net = brüt - vergi - emeklilik - kesintiler

type PayrollTotals struct {
	Gross   decimal.Decimal `json:"total_gross"`
	Tax     decimal.Decimal `json:"total_tax"`
	Pension decimal.Decimal `json:"total_pension"`
	Net     decimal.Decimal `json:"total_net"`
}

func ComputePayrollItem(emp *models.Employee) models.PayrollItem {
	hundred := decimal.NewFromInt(100)

	gross := emp.BaseSalary.Add(emp.Allowances)
	tax := gross.Mul(decimal.NewFromFloat(emp.TaxRate)).Div(hundred).Round(2)
	pension := gross.Mul(decimal.NewFromFloat(emp.PensionRate)).Div(hundred).Round(2)
	net := gross.Sub(tax).Sub(pension).Sub(emp.Deductions)

	return models.PayrollItem{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Gross:        gross,
		Tax:          tax,
		Pension:      pension,
		Deductions:   emp.Deductions,
		Net:          net,
	}
}

func ComputePayrollBatch(employees []models.Employee) ([]models.PayrollItem, PayrollTotals) {
	items := make([]models.PayrollItem, 0, len(employees))
	var totals PayrollTotals

	for i := range employees {
		item := ComputePayrollItem(&employees[i])
		items = append(items, item)

		totals.Gross = totals.Gross.Add(item.Gross)
		totals.Tax = totals.Tax.Add(item.Tax)
		totals.Pension = totals.Pension.Add(item.Pension)
		totals.Net = totals.Net.Add(item.Net)
	}

	return items, totals
}
