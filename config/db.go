package config

import (
	"log"

	"github.com/sorteo-loteria/sorteo-backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupDatabase opens the storage backend selected by the config and runs
// migrations. A postgres DSN in DATABASE_URL picks the networked backend;
// otherwise a local sqlite file is used. The choice is made exactly once.
func SetupDatabase(cfg Config) *gorm.DB {
	var dialector gorm.Dialector
	if cfg.DatabaseURL != "" {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		dialector = sqlite.Open(cfg.SQLitePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("[FATAL] Failed to connect to DB: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("[FATAL] Migration failed: %v", err)
	}

	log.Println("✅ Database connected and migrated")
	return db
}

// Migrate creates or updates the users, sorteos and historical_draws tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Sorteo{},
		&models.HistoricalDraw{},
	)
}
