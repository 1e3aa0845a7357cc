package db

import (
	"fmt"
	"log"

	"github.com/formforge/formforge/internal/config"
	"github.com/formforge/formforge/internal/domain/form"
	"github.com/formforge/formforge/internal/domain/submission"
	"github.com/formforge/formforge/internal/domain/user"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	if err := DB.AutoMigrate(
		&user.User{},
		&form.Form{},
		&submission.Submission{},
	); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}

// InitWithGormDB injects an already-open connection. Used by tests.
func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
