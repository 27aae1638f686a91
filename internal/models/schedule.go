package models

// DoctorSchedule is a recurring availability window owned by one doctor.
// Times are stored as "HH:MM" strings matching the MySQL TIME columns.
// MaxPatients is declarative capacity data; booking does not enforce it.
type DoctorSchedule struct {
	ID                     uint   `gorm:"primaryKey" json:"id"`
	DoctorID               uint   `gorm:"not null;index" json:"doctor_id"`
	DayOfWeek              string `gorm:"size:50" json:"day_of_week"`
	StartTime              string `gorm:"size:5" json:"start_time"`
	EndTime                string `gorm:"size:5" json:"end_time"`
	MaxPatients            int    `json:"max_patients"`
	DurationPerAppointment int    `gorm:"default:30" json:"duration_per_appointment"`

	// Relations
	Appointments []Appointment `gorm:"foreignKey:ScheduleID" json:"-"`
}
