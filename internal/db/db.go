package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/medpoint-app/clinic-scheduler/internal/config"
	"github.com/medpoint-app/clinic-scheduler/internal/models"
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

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Doctor{},
		&models.AvailabilityWindow{},
		&models.Appointment{},
		&models.AuditLog{},
		&models.Payment{},
	); err != nil {
		return err
	}

	// Backstop for the booking race: at most one non-cancelled appointment
	// per (doctor, date, time). Partial index syntax is shared by postgres
	// and sqlite, so the test harness gets the same guarantee.
	return db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uniq_active_slot
        ON appointments (doctor_id, date, time)
        WHERE status <> 'cancelled'
    `).Error
}
