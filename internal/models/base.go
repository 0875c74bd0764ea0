package models

import (
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	DSN string
}

// InitDB opens the MySQL connection and migrates the schema.
func InitDB(config DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(config.DSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate runs the auto migration for all models. Parents are migrated before
// the tables that reference them.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Patient{},
		&Doctor{},
		&Appointment{},
		&Diagnosis{},
		&Treatment{},
		&FollowUp{},
		&Herb{},
		&Remedy{},
	)
}
