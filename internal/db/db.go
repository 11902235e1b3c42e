package db

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB(path string) {
	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	err = DB.AutoMigrate(&Group{}, &Question{}, &Poll{}, &Vote{})
	if err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}

	log.Info("✅ Database initialized")
}
