package configs

import (
	"log"

	"github.com/sho11hei12-1998/Phone-Navi-App/entity"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

// ConnectionDB は DB_DRIVER に応じて sqlite / postgres へ接続する
func ConnectionDB(cfg *Config) {
	var (
		database *gorm.DB
		err      error
	)
	switch cfg.DBDriver {
	case "postgres":
		database, err = gorm.Open(postgres.Open(cfg.DBSource), &gorm.Config{})
	default:
		database, err = gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("failed to connect database (%s): %v", cfg.DBDriver, err)
	}
	db = database
}

func SetupDatabase() {
	// Migrate the schema
	err := db.AutoMigrate(
		&entity.PhoneNumber{},
		&entity.Business{},
		&entity.Review{},
		&entity.Event{},
		&entity.BusinessUpdateRequest{},
		&entity.Admin{},
	)
	if err != nil {
		log.Fatalf("migration failed: %v", err)
	}
}
