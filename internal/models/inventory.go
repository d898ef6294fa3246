package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type InventoryCategory string

const (
	InventoryCategoryFeed      InventoryCategory = "feed"      // yem
	InventoryCategoryMedicine  InventoryCategory = "medicine"  // ilaç / aşı
	InventoryCategoryEquipment InventoryCategory = "equipment" // ekipman
	InventoryCategoryOther     InventoryCategory = "other"
)

type InventoryItem struct {
	ID       uint              `gorm:"primaryKey"`
	Name     string            `gorm:"size:100;not null"`
	Category InventoryCategory `gorm:"size:20;index;not null"`
	Unit     string            `gorm:"size:20;not null"` // kg, adet, litre, çuval vs.

	Quantity    float64         `gorm:"not null;default:0"` // mevcut miktar
	MinLevel    float64         `gorm:"not null;default:0"` // yeniden sipariş eşiği
	CostPerUnit decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	VATRate     float64         `gorm:"not null;default:0"` // alımdaki KDV oranı (%)

	Supplier   string     `gorm:"size:100"`
	ExpiryDate *time.Time // yem/ilaç için son kullanma tarihi

	CreatedAt time.Time
	UpdatedAt time.Time

	MaintenanceLogs []MaintenanceLog `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
	UsageLogs       []UsageLog       `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
}

// MaintenanceLog: Ekipman bakım kaydı (sadece equipment kategorisi)
type MaintenanceLog struct {
	ID          uint            `gorm:"primaryKey"`
	ItemID      uint            `gorm:"index;not null"`
	Date        time.Time       `gorm:"index;not null"`
	Cost        decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Description string          `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UsageLog: Ekipman kullanım kaydı
type UsageLog struct {
	ID        uint      `gorm:"primaryKey"`
	ItemID    uint      `gorm:"index;not null"`
	Date      time.Time `gorm:"index;not null"`
	Hours     float64   `gorm:"not null"` // kullanım süresi (saat)
	Operator  string    `gorm:"size:100"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
