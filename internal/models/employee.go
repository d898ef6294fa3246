package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"size:100;not null"`
	Role     string `gorm:"size:100"` // ör: "Kümes Sorumlusu", "Veteriner Teknikeri"
	Phone    string `gorm:"size:50"`
	HireDate time.Time

	BaseSalary decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Allowances decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0"` // yol, yemek vs.
	Deductions decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0"` // sabit kesintiler (avans vs.)
	TaxRate    float64         `gorm:"not null;default:0"`                    // gelir vergisi oranı (%)
	PensionRate float64        `gorm:"not null;default:0"`                    // emeklilik kesinti oranı (%)

	Active bool `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type TaskStatus string

const (
	TaskStatusOpen       TaskStatus = "open"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

type HrTask struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"size:500"`

	EmployeeID *uint `gorm:"index"` // atanmamış olabilir
	Employee   *Employee

	DueDate  *time.Time
	Status   TaskStatus `gorm:"size:20;index;not null;default:'open'"`
	Priority string     `gorm:"size:20;default:'normal'"` // low / normal / high

	CreatedAt time.Time
	UpdatedAt time.Time
}
