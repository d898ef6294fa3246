package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderItemKind: Satır kalemi stoktan mı yoksa sürüden mi düşüyor
type OrderItemKind string

const (
	OrderItemKindInventory OrderItemKind = "inventory" // envanter kalemi (yumurta kolisi, yem satışı vs.)
	OrderItemKindFlock     OrderItemKind = "flock"     // canlı/kesimlik hayvan satışı
)

type SalesOrder struct {
	ID         uint `gorm:"primaryKey"`
	CustomerID uint `gorm:"index;not null"`
	Customer   Customer

	Date   time.Time   `gorm:"index;not null"`
	Status OrderStatus `gorm:"size:20;index;not null;default:'pending'"`

	VATRate float64 `gorm:"not null;default:0"` // sipariş geneli KDV oranı (%)
	WHTRate float64 `gorm:"not null;default:0"` // sipariş geneli stopaj oranı (%)

	SubTotal    decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	VATAmount   decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	WHTAmount   decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(20,4);not null"` // SubTotal + KDV - stopaj

	Note string `gorm:"size:255"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

type OrderItem struct {
	ID      uint `gorm:"primaryKey"`
	OrderID uint `gorm:"index;not null"`

	Kind        OrderItemKind `gorm:"size:20;not null"`
	InventoryID *uint         `gorm:"index"` // Kind=inventory ise dolu
	FlockID     *uint         `gorm:"index"` // Kind=flock ise dolu

	Description string          `gorm:"size:255"` // satır açıklaması (ör: "30'lu yumurta kolisi")
	Quantity    float64         `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	LineTotal   decimal.Decimal `gorm:"type:decimal(20,4);not null"` // Quantity * UnitPrice

	CreatedAt time.Time
	UpdatedAt time.Time
}
