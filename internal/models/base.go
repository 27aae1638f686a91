package models

import (
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	DSN string
}

// InitDB initializes the database connection and migrates the schema.
func InitDB(config DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(config.DSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&User{},
		&BloodGroup{},
		&Specialization{},
		&Institute{},
		&Qualification{},
		&Doctor{},
		&Patient{},
		&DoctorSchedule{},
		&Appointment{},
		&Prescription{},
		&Medicine{},
		&PrescriptionMedicine{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
