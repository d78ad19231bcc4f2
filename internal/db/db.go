package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/apexcricket/academy-api/internal/config"
	"github.com/apexcricket/academy-api/internal/models"
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

// Migrate is split out so tests can run the same schema on SQLite.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Program{},
		&models.Coach{},
		&models.Location{},
		&models.Testimonial{},
		&models.SiteSettings{},
		&models.WaitlistEntry{},
		&models.AuditLog{},
	); err != nil {
		return err
	}

	// The settings table is single-row; seed it so the public endpoint
	// always has something to return.
	var count int64
	if err := db.Model(&models.SiteSettings{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		seed := models.SiteSettings{
			SiteName:     "Apex Cricket Academy",
			Tagline:      "Where young cricketers become match winners",
			ContactEmail: "hello@apexcricket.com.au",
			ContactPhone: "+61 3 9000 0000",
		}
		if err := db.Create(&seed).Error; err != nil {
			return err
		}
	}

	return nil
}
