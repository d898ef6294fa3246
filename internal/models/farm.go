package models

import "time"

// FarmProfile: Tek satırlık çiftlik ayarları (tek çiftlik varsayımı)
type FarmProfile struct {
	ID             uint    `gorm:"primaryKey"`
	FarmName       string  `gorm:"size:100;not null"`
	CurrencySymbol string  `gorm:"size:10;not null;default:'₺'"`
	DefaultVATRate float64 `gorm:"not null;default:0"` // varsayılan KDV oranı (%)
	DefaultWHTRate float64 `gorm:"not null;default:0"` // varsayılan stopaj oranı (%)
	Latitude       float64 `gorm:"not null;default:0"` // hava durumu için konum
	Longitude      float64 `gorm:"not null;default:0"`

	// Bildirim ayarları (zamanlayıcı bunlara bakar)
	LowStockAlerts  bool `gorm:"not null;default:true"` // stok min seviyenin altına düşünce görev aç
	MortalityAlerts bool `gorm:"not null;default:true"` // yüksek ölüm oranında görev aç

	CreatedAt time.Time
	UpdatedAt time.Time
}
