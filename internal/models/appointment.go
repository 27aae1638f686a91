package models

import (
	"fmt"
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// ParseAppointmentStatus converts a free-form status string into the closed
// status set.
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	switch AppointmentStatus(s) {
	case StatusPending, StatusCompleted, StatusCancelled:
		return AppointmentStatus(s), nil
	}
	return "", fmt.Errorf("unknown appointment status %q", s)
}

// CanTransition reports whether the status may move to next. Completed and
// cancelled are terminal states.
func (s AppointmentStatus) CanTransition(next AppointmentStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusCompleted || next == StatusCancelled
	}
	return false
}

// Appointment links a doctor, a patient and optionally one schedule slot.
// Dates and times are stored as "2006-01-02" / "HH:MM" strings.
type Appointment struct {
	ID              uint              `gorm:"primaryKey" json:"id"`
	DoctorID        uint              `gorm:"not null;index" json:"doctor_id"`
	PatientID       uint              `gorm:"not null;index" json:"patient_id"`
	ScheduleID      *uint             `json:"schedule_id"`
	AppointmentDate string            `gorm:"size:10" json:"appointment_date"`
	AppointmentTime *string           `gorm:"size:5" json:"appointment_time"`
	Status          AppointmentStatus `gorm:"size:20;default:'pending'" json:"status"`
	CreatedAt       time.Time         `json:"created_at"`

	// Relations
	Doctor       *Doctor       `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient      *Patient      `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Prescription *Prescription `gorm:"foreignKey:AppointmentID;constraint:OnDelete:CASCADE" json:"-"`
}
