package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// AccountClass: Muhasebe sınıfı. Kategori string'i her rapor hesabında
// tekrar tekrar eşleştirilmez; kayıt oluşturulurken BİR KEZ çözülür.
type AccountClass string

const (
	AccountClassRevenue AccountClass = "revenue"
	AccountClassCOGS    AccountClass = "cogs" // doğrudan üretim maliyeti
	AccountClassOpex    AccountClass = "opex" // işletme gideri
)

type Transaction struct {
	ID       uint            `gorm:"primaryKey"`
	Type     TransactionType `gorm:"size:10;index;not null"`
	Category string          `gorm:"size:100;index;not null"` // ör: "Yem", "Elektrik", "Yumurta Satışı"
	Class    AccountClass    `gorm:"size:20;index;not null"`

	Date   time.Time       `gorm:"index;not null"`
	Amount decimal.Decimal `gorm:"type:decimal(20,4);not null"` // KDV hariç ana tutar

	VATAmount decimal.Decimal `gorm:"type:decimal(20,4)"` // KDV tutarı
	WHTAmount decimal.Decimal `gorm:"type:decimal(20,4)"` // stopaj tutarı

	// Bordro kayıtlarında dolu (tek EXPENSE kaydı, brüt tutar üzerinden)
	PayrollTaxAmount     decimal.Decimal `gorm:"type:decimal(20,4)"` // gelir vergisi kesintisi
	PayrollPensionAmount decimal.Decimal `gorm:"type:decimal(20,4)"` // emeklilik kesintisi

	Description string `gorm:"size:255"`

	// Zayıf referanslar: ilgili sürü / sipariş / bordro
	FlockID      *uint `gorm:"index"`
	OrderID      *uint `gorm:"index"`
	PayrollRunID *uint `gorm:"index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
