package models

import (
	"time"
)

// Prescription is issued against exactly one appointment.
type Prescription struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	AppointmentID uint      `gorm:"uniqueIndex;not null" json:"appointment_id"`
	PatientID     uint      `gorm:"index" json:"patient_id"`
	Notes         string    `gorm:"type:text" json:"notes"`
	DocumentPath  string    `gorm:"size:255" json:"document_path"`
	CreatedAt     time.Time `json:"created_at"`

	// Relations
	Medicines []PrescriptionMedicine `gorm:"foreignKey:PrescriptionID;constraint:OnDelete:CASCADE" json:"medicines"`
}

// Medicine is a catalog entity referenced by prescription line items.
type Medicine struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:150;not null" json:"name"`
	Strength     string `gorm:"size:50" json:"strength"` // e.g. 500mg
	Form         string `gorm:"size:50" json:"form"`     // tablet, syrup
	Manufacturer string `gorm:"size:150" json:"manufacturer"`
}

// PrescriptionMedicine joins a prescription with a catalog medicine and
// carries the dosing details.
type PrescriptionMedicine struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	PrescriptionID uint   `gorm:"not null;index" json:"prescription_id"`
	MedicineID     uint   `gorm:"not null" json:"medicine_id"`
	Dosage         string `gorm:"size:50" json:"dosage"`       // 1+0+1
	Duration       string `gorm:"size:50" json:"duration"`     // 7 days
	Instruction    string `gorm:"size:255" json:"instruction"` // after meal

	// Relations
	Medicine *Medicine `gorm:"foreignKey:MedicineID" json:"medicine,omitempty"`
}
