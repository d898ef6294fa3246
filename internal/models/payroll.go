package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollRun: Onaylanmış bordro partisi. Önizleme (preview) hiçbir şey
// yazmaz; sadece confirm adımı bu kaydı ve tek gider kaydını oluşturur.
type PayrollRun struct {
	ID    uint `gorm:"primaryKey"`
	Year  int  `gorm:"index;not null"`
	Month int  `gorm:"index;not null"` // 1-12

	RunDate time.Time `gorm:"not null"`

	TotalGross   decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	TotalTax     decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	TotalPension decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	TotalNet     decimal.Decimal `gorm:"type:decimal(20,4);not null"`

	Note string `gorm:"size:255"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Items []PayrollItem `gorm:"foreignKey:PayrollRunID;constraint:OnDelete:CASCADE"`
}

// PayrollItem: Çalışan bazında bordro satırı (hesaplama anındaki değerlerin fotoğrafı)
type PayrollItem struct {
	ID           uint `gorm:"primaryKey"`
	PayrollRunID uint `gorm:"index;not null"`
	EmployeeID   uint `gorm:"index;not null"`
	EmployeeName string `gorm:"size:100;not null"` // denormalize; çalışan silinse de bordro okunur

	Gross      decimal.Decimal `gorm:"type:decimal(20,4);not null"` // maaş + yan ödemeler
	Tax        decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Pension    decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Deductions decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Net        decimal.Decimal `gorm:"type:decimal(20,4);not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
