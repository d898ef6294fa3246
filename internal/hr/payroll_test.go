package hr

import (
	"testing"

	"ciftlik-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func sampleEmployee(name string) models.Employee {
	// brüt 1000, vergi %10, emeklilik %8, kesinti 50 -> net 770
	return models.Employee{
		Name:        name,
		BaseSalary:  decimal.NewFromInt(800),
		Allowances:  decimal.NewFromInt(200),
		Deductions:  decimal.NewFromInt(50),
		TaxRate:     10,
		PensionRate: 8,
		Active:      true,
	}
}

func TestComputePayrollItem(t *testing.T) {
	emp := sampleEmployee("Ali")
	item := ComputePayrollItem(&emp)

	assert.True(t, item.Gross.Equal(decimal.NewFromInt(1000)))
	assert.True(t, item.Tax.Equal(decimal.NewFromInt(100)))
	assert.True(t, item.Pension.Equal(decimal.NewFromInt(80)))
	assert.True(t, item.Net.Equal(decimal.NewFromInt(770)), "net = 1000 - 100 - 80 - 50")
	assert.Equal(t, "Ali", item.EmployeeName)
}

func TestComputePayrollItemZeroRates(t *testing.T) {
	emp := models.Employee{
		Name:       "Ayşe",
		BaseSalary: decimal.NewFromInt(1500),
	}
	item := ComputePayrollItem(&emp)

	assert.True(t, item.Gross.Equal(decimal.NewFromInt(1500)))
	assert.True(t, item.Tax.IsZero())
	assert.True(t, item.Pension.IsZero())
	assert.True(t, item.Net.Equal(decimal.NewFromInt(1500)))
}

func TestComputePayrollBatch(t *testing.T) {
	employees := []models.Employee{sampleEmployee("Ali"), sampleEmployee("Veli")}

	items, totals := ComputePayrollBatch(employees)

	assert.Len(t, items, 2)
	assert.True(t, totals.Gross.Equal(decimal.NewFromInt(2000)))
	assert.True(t, totals.Tax.Equal(decimal.NewFromInt(200)))
	assert.True(t, totals.Pension.Equal(decimal.NewFromInt(160)))
	assert.True(t, totals.Net.Equal(decimal.NewFromInt(1540)))
}

func TestComputePayrollBatchEmpty(t *testing.T) {
	items, totals := ComputePayrollBatch(nil)

	assert.Empty(t, items)
	assert.True(t, totals.Gross.IsZero())
	assert.True(t, totals.Net.IsZero())
}
