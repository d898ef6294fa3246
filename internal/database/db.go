package database

import (
	"log"

	"ciftlik-backend/internal/config"
	"ciftlik-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Veritabanına bağlanılamadı: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.FarmProfile{},
		&models.Flock{},
		&models.FlockLog{},
		&models.InventoryItem{},
		&models.MaintenanceLog{},
		&models.UsageLog{},
		&models.Customer{},
		&models.SalesOrder{},
		&models.OrderItem{},
		&models.Transaction{},
		&models.Employee{},
		&models.HrTask{},
		&models.PayrollRun{},
		&models.PayrollItem{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate hatası: %v", err)
	}

	// Class kolonu sonradan eklendi; eski kayıtlarda boş kalmış olabilir.
	// Kategoriden bir kez çözüp kalıcı olarak yaz (raporlama Class'a güvenir).
	backfillTransactionClasses()

	log.Println("Veritabanı bağlantısı başarılı. Migration tamamlandı.")
}

func backfillTransactionClasses() {
	var missing []models.Transaction
	if err := DB.Where("class IS NULL OR class = ''").Find(&missing).Error; err != nil {
		log.Printf("Class backfill sorgusu başarısız: %v", err)
		return
	}
	if len(missing) == 0 {
		return
	}

	log.Printf("%d adet transaction kaydında class eksik, kategoriden çözülüyor...", len(missing))
	for _, tx := range missing {
		class := models.ResolveAccountClass(tx.Type, tx.Category)
		if err := DB.Model(&models.Transaction{}).Where("id = ?", tx.ID).
			Update("class", class).Error; err != nil {
			log.Printf("Transaction %d class güncellenemedi: %v", tx.ID, err)
		}
	}
	log.Println("Class backfill tamamlandı")
}
