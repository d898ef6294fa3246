package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type FlockType string

const (
	FlockTypeBroiler FlockType = "broiler" // etlik
	FlockTypeLayer   FlockType = "layer"   // yumurtacı
	FlockTypeBreeder FlockType = "breeder" // damızlık
)

type FlockStatus string

const (
	FlockStatusPlanned    FlockStatus = "planned"
	FlockStatusActive     FlockStatus = "active"
	FlockStatusQuarantine FlockStatus = "quarantine"
	FlockStatusHarvested  FlockStatus = "harvested"
)

// Flock: Aynı tarihte alınmış, aynı kümeste tutulan hayvan partisi
type Flock struct {
	ID     uint        `gorm:"primaryKey"`
	Name   string      `gorm:"size:100;not null"`
	Type   FlockType   `gorm:"size:20;not null"`
	Breed  string      `gorm:"size:100"` // ırk (ör: Ross 308)
	Status FlockStatus `gorm:"size:20;not null;default:'active'"`

	InitialCount int `gorm:"not null"`           // alım anındaki hayvan sayısı
	CurrentCount int `gorm:"not null"`           // güncel hayvan sayısı (hiç InitialCount'u aşamaz)
	TotalSold    int `gorm:"not null;default:0"` // satışlarla düşülen toplam

	AcquisitionDate time.Time       `gorm:"index;not null"`
	AcquisitionCost decimal.Decimal `gorm:"type:decimal(20,4);not null"` // KDV hariç alım maliyeti
	VATAmount       decimal.Decimal `gorm:"type:decimal(20,4)"`          // alımdaki KDV tutarı
	WHTAmount       decimal.Decimal `gorm:"type:decimal(20,4)"`          // alımdaki stopaj tutarı

	Housing string `gorm:"size:100"` // kümes / barınak
	Note    string `gorm:"size:255"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Logs []FlockLog `gorm:"foreignKey:FlockID;constraint:OnDelete:CASCADE"`
}

// FlockLog: Günlük sürü kaydı
type FlockLog struct {
	ID      uint `gorm:"primaryKey"`
	FlockID uint `gorm:"index;not null"`

	Date        time.Time `gorm:"index;not null"`
	Mortality   int       `gorm:"not null;default:0"` // o günkü ölüm sayısı
	FeedKg      float64   `gorm:"not null;default:0"` // tüketilen yem (kg)
	AvgWeightKg float64   `gorm:"not null;default:0"` // ortalama canlı ağırlık (kg)
	EggCount    int       `gorm:"not null;default:0"` // toplanan yumurta (yumurtacılar için)
	Note        string    `gorm:"size:255"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
