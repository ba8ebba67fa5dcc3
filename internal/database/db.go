package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/amirulafiq/kerjago/internal/models"
)

// Connect opens the Postgres connection and runs migrations for every
// persisted record.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Business{},
		&models.Employer{},
		&models.Job{},
		&models.Applicant{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
