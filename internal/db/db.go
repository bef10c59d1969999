package db

import (
	"log"
	"time"

	"github.com/tiadeasalon/salon-manager/internal/config"
	"github.com/tiadeasalon/salon-manager/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Client{},
		&models.Appointment{},
		&models.FinancialRecord{},
		&models.ConfigEntry{},
		&models.TesourinhaEntry{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	db.Exec(`
        UPDATE clients
        SET service_type = 'Salão'
        WHERE service_type IS NULL OR service_type = ''
    `)

	db.Exec(`
        UPDATE appointments
        SET status = 'pending'
        WHERE status IS NULL OR status = ''
    `)

	return db
}
