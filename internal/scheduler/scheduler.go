package scheduler

import (
	"fmt"
	"time"

	"ciftlik-backend/internal/models"
	"ciftlik-backend/internal/settings"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// yedi günlük ölüm toplamı güncel sayının bu yüzdesini aşarsa görev açılır
const mortalityThresholdPct = 2.0

// Scheduler günlük kontrolleri çalıştırır: düşük stok ve yüksek ölüm
// taramaları. Bulgular bildirim yerine açık HR görevi olarak düşer,
// ekip sabah görev listesinde görür.
type Scheduler struct {
	cron   *cron.Cron
	db     *gorm.DB
	logger *zap.Logger
}

func New(db *gorm.DB, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:   cron.New(),
		db:     db,
		logger: logger,
	}
}

// Start taramaları her sabah 06:00'da çalışacak şekilde kurar.
func (s *Scheduler) Start() {
	s.logger.Info("zamanlayıcı başlatılıyor")

	if _, err := s.cron.AddFunc("0 6 * * *", s.runDailyScans); err != nil {
		s.logger.Error("günlük tarama zamanlanamadı", zap.Error(err))
	}

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.logger.Info("zamanlayıcı durduruluyor")
	s.cron.Stop()
}

func (s *Scheduler) runDailyScans() {
	profile, err := settings.GetOrCreateProfile(s.db)
	if err != nil {
		s.logger.Error("çiftlik profili okunamadı", zap.Error(err))
		return
	}

	if profile.LowStockAlerts {
		s.scanLowStock()
	}
	if profile.MortalityAlerts {
		s.scanMortality()
	}
}

// scanLowStock min seviyenin altına düşmüş kalemler için görev açar.
// Aynı başlıkta açık görev varsa tekrar açılmaz.
func (s *Scheduler) scanLowStock() {
	var items []models.InventoryItem
	if err := s.db.Find(&items).Error; err != nil {
		s.logger.Error("düşük stok taraması başarısız", zap.Error(err))
		return
	}

	low := 0
	for i := range items {
		item := &items[i]
		if !isLowStock(item) {
			continue
		}
		low++

		title := fmt.Sprintf("Stok takviyesi: %s", item.Name)
		desc := fmt.Sprintf("Kalan %.2f %s, minimum seviye %.2f. Sipariş verilmeli.",
			item.Quantity, item.Unit, item.MinLevel)

		if err := s.openTaskIfMissing(title, desc, "high"); err != nil {
			s.logger.Error("düşük stok görevi açılamadı",
				zap.String("item", item.Name), zap.Error(err))
		}
	}

	if low > 0 {
		s.logger.Info("düşük stok taraması tamamlandı", zap.Int("items", low))
	}
}

// scanMortality son 7 günün ölüm toplamı eşiği aşan aktif sürüler için
// görev açar.
func (s *Scheduler) scanMortality() {
	var flocks []models.Flock
	statuses := []models.FlockStatus{models.FlockStatusActive, models.FlockStatusQuarantine}
	if err := s.db.Where("status IN ? AND current_count > 0", statuses).Find(&flocks).Error; err != nil {
		s.logger.Error("ölüm taraması başarısız", zap.Error(err))
		return
	}

	since := time.Now().AddDate(0, 0, -7)

	for _, flock := range flocks {
		type row struct {
			Total int64
		}
		var deaths row
		if err := s.db.Model(&models.FlockLog{}).
			Select("COALESCE(SUM(mortality), 0) AS total").
			Where("flock_id = ? AND date >= ?", flock.ID, since).
			Scan(&deaths).Error; err != nil {
			s.logger.Error("ölüm toplamı okunamadı",
				zap.Uint("flock_id", flock.ID), zap.Error(err))
			continue
		}

		if !isHighMortality(deaths.Total, flock.CurrentCount) {
			continue
		}
		pct := weeklyMortalityPct(deaths.Total, flock.CurrentCount)

		title := fmt.Sprintf("Yüksek ölüm kontrolü: %s", flock.Name)
		desc := fmt.Sprintf("Son 7 günde %d ölüm (mevcudun %%%.1f'i). Veteriner kontrolü gerekli.",
			deaths.Total, pct)

		if err := s.openTaskIfMissing(title, desc, "high"); err != nil {
			s.logger.Error("ölüm görevi açılamadı",
				zap.Uint("flock_id", flock.ID), zap.Error(err))
		}
	}
}

func (s *Scheduler) openTaskIfMissing(title, description, priority string) error {
	var existing int64
	if err := s.db.Model(&models.HrTask{}).
		Where("title = ? AND status <> ?", title, models.TaskStatusDone).
		Count(&existing).Error; err != nil {
		return err
	}
	if !needsNewTask(existing) {
		return nil
	}

	task := models.HrTask{
		Title:       title,
		Description: description,
		Status:      models.TaskStatusOpen,
		Priority:    priority,
	}
	return s.db.Create(&task).Error
}
