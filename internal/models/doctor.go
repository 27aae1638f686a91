package models

import "fmt"

// DoctorStatus represents the admin approval state of a doctor profile
type DoctorStatus string

const (
	DoctorPending  DoctorStatus = "pending"
	DoctorApproved DoctorStatus = "approved"
	DoctorRejected DoctorStatus = "rejected"
)

// ParseDoctorStatus converts a raw string into a DoctorStatus.
func ParseDoctorStatus(s string) (DoctorStatus, error) {
	switch DoctorStatus(s) {
	case DoctorPending, DoctorApproved, DoctorRejected:
		return DoctorStatus(s), nil
	}
	return "", fmt.Errorf("unknown doctor status %q", s)
}

// Doctor is a profile keyed by the owning user's id (one-to-one).
type Doctor struct {
	ID              uint         `gorm:"primaryKey" json:"id"`
	FullName        string       `gorm:"size:120" json:"full_name"`
	Specialization  string       `gorm:"size:120" json:"specialization"`
	Phone           string       `gorm:"size:20" json:"phone"`
	Chamber         string       `gorm:"size:256" json:"chamber"`
	Institute       string       `gorm:"size:256" json:"institute"`
	BMDCNumber      string       `gorm:"column:bmdc_number;size:20" json:"bmdc_number"`
	Experience      string       `gorm:"size:20" json:"experience"`
	Qualifications  string       `gorm:"type:text" json:"qualifications"`
	ConsultationFee string       `gorm:"size:20" json:"consultation_fee"`
	Status          DoctorStatus `gorm:"size:20;default:'pending'" json:"status"`

	// Relations
	Schedules    []DoctorSchedule `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"-"`
	Appointments []Appointment    `gorm:"foreignKey:DoctorID" json:"-"`
}
