package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CustomerSegment string

const (
	CustomerSegmentRetail     CustomerSegment = "retail"     // perakende
	CustomerSegmentWholesale  CustomerSegment = "wholesale"  // toptancı
	CustomerSegmentRestaurant CustomerSegment = "restaurant" // lokanta / otel
	CustomerSegmentProcessor  CustomerSegment = "processor"  // kesimhane / işleyici
)

type Customer struct {
	ID      uint            `gorm:"primaryKey"`
	Name    string          `gorm:"size:100;not null"`
	Segment CustomerSegment `gorm:"size:20;index;not null"`
	Phone   string          `gorm:"size:50"`
	Address string          `gorm:"size:255"`

	// Koşan toplamlar; sipariş mutasyonlarıyla aynı DB transaction'ında güncellenir.
	// Sapma durumunda /customers/:id/recalculate kaynak veriden yeniden hesaplar.
	TotalOrders int             `gorm:"not null;default:0"`
	TotalSpent  decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
