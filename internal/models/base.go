package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// BaseModel contains common columns for all tables
type BaseModel struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate will set a UUID rather than numeric ID
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == "" {
		base.ID = uuid.New().String()
	}
	return nil
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	DSN string
}

// InitDB opens the sqlite database, migrates the schema and seeds the
// vaccine catalog and employee list on first run.
func InitDB(config DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(config.DSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	if err := Seed(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate auto migrates the database models
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Cat{},
		&VaccineType{},
		&VaccineRecord{},
		&Note{},
		&Employee{},
		&Appointment{},
		&AppointmentCat{},
		&AppointmentEmployee{},
	)
}

// Default catalog and staff inserted on an empty database, matching the
// shelter's initial paper records.
var (
	seedVaccineTypes = []string{"Typhus", "Coryza", "Leucose"}
	seedEmployees    = []string{"Alice", "Bob"}
)

// Seed inserts the default vaccine types and employees if the tables are empty.
func Seed(db *gorm.DB) error {
	var vaccineCount int64
	if err := db.Model(&VaccineType{}).Count(&vaccineCount).Error; err != nil {
		return err
	}
	if vaccineCount == 0 {
		for _, name := range seedVaccineTypes {
			if err := db.Create(&VaccineType{Name: name}).Error; err != nil {
				return err
			}
		}
	}

	var employeeCount int64
	if err := db.Model(&Employee{}).Count(&employeeCount).Error; err != nil {
		return err
	}
	if employeeCount == 0 {
		for _, name := range seedEmployees {
			if err := db.Create(&Employee{Name: name}).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
