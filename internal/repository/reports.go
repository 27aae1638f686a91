package repository

import (
	"time"

	"gorm.io/gorm"

	"mediconnect-server/internal/models"
)

// AdminCounts are the top-level totals on the admin dashboard.
type AdminCounts struct {
	TotalDoctors      int64 `json:"total_doctors"`
	TotalPatients     int64 `json:"total_patients"`
	PendingDoctors    int64 `json:"pending_doctors"`
	TotalAppointments int64 `json:"total_appointments"`
}

// MedicineUsage pairs a catalog medicine with its prescription usage count.
type MedicineUsage struct {
	Medicine models.Medicine `json:"medicine"`
	Used     int64           `json:"used"`
}

// DoctorCompleted pairs a doctor with their completed appointment count.
type DoctorCompleted struct {
	Doctor    models.Doctor `json:"doctor"`
	Completed int64         `json:"completed"`
}

// DayCount is one day's appointment count in the overview series.
type DayCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// SpecializationCount pairs a specialization label with its doctor count.
type SpecializationCount struct {
	Specialization string `json:"specialization"`
	Count          int64  `json:"count"`
}

// ReportRepository holds the aggregate queries behind the admin dashboard
// and analytics endpoints.
type ReportRepository interface {
	Counts() (AdminCounts, error)
	TopMedicines(limit int) ([]MedicineUsage, error)
	TopDoctorsByCompleted(limit int) ([]DoctorCompleted, error)
	AppointmentOverview(days int) ([]DayCount, error)
	PopularSpecializations(limit int) ([]SpecializationCount, error)
}

type reportRepo struct {
	db *gorm.DB
}

func (r *reportRepo) Counts() (AdminCounts, error) {
	var counts AdminCounts
	if err := r.db.Model(&models.Doctor{}).Count(&counts.TotalDoctors).Error; err != nil {
		return counts, err
	}
	if err := r.db.Model(&models.Patient{}).Count(&counts.TotalPatients).Error; err != nil {
		return counts, err
	}
	if err := r.db.Model(&models.Doctor{}).Where("status = ?", models.DoctorPending).Count(&counts.PendingDoctors).Error; err != nil {
		return counts, err
	}
	if err := r.db.Model(&models.Appointment{}).Count(&counts.TotalAppointments).Error; err != nil {
		return counts, err
	}
	return counts, nil
}

func (r *reportRepo) TopMedicines(limit int) ([]MedicineUsage, error) {
	type row struct {
		models.Medicine
		Used int64
	}
	var rows []row
	err := r.db.Model(&models.Medicine{}).
		Select("medicines.*, COUNT(prescription_medicines.id) AS used").
		Joins("JOIN prescription_medicines ON prescription_medicines.medicine_id = medicines.id").
		Group("medicines.id").
		Order("used DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	usage := make([]MedicineUsage, 0, len(rows))
	for _, row := range rows {
		usage = append(usage, MedicineUsage{Medicine: row.Medicine, Used: row.Used})
	}
	return usage, nil
}

func (r *reportRepo) TopDoctorsByCompleted(limit int) ([]DoctorCompleted, error) {
	type row struct {
		models.Doctor
		Completed int64
	}
	var rows []row
	err := r.db.Model(&models.Doctor{}).
		Select("doctors.*, COUNT(appointments.id) AS completed").
		Joins("JOIN appointments ON appointments.doctor_id = doctors.id").
		Where("appointments.status = ?", models.StatusCompleted).
		Group("doctors.id").
		Order("completed DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	top := make([]DoctorCompleted, 0, len(rows))
	for _, row := range rows {
		top = append(top, DoctorCompleted{Doctor: row.Doctor, Completed: row.Completed})
	}
	return top, nil
}

// AppointmentOverview returns per-day appointment counts for the trailing
// window, zero-filled for days without bookings.
func (r *reportRepo) AppointmentOverview(days int) ([]DayCount, error) {
	today := time.Now()
	start := today.AddDate(0, 0, -(days - 1)).Format("2006-01-02")

	var rows []DayCount
	err := r.db.Model(&models.Appointment{}).
		Select("appointment_date AS date, COUNT(id) AS count").
		Where("appointment_date >= ?", start).
		Group("appointment_date").
		Order("appointment_date").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]int64, len(rows))
	for _, row := range rows {
		byDate[row.Date] = row.Count
	}

	out := make([]DayCount, 0, days)
	for i := 0; i < days; i++ {
		d := today.AddDate(0, 0, -(days - 1 - i)).Format("2006-01-02")
		out = append(out, DayCount{Date: d, Count: byDate[d]})
	}
	return out, nil
}

func (r *reportRepo) PopularSpecializations(limit int) ([]SpecializationCount, error) {
	var rows []SpecializationCount
	err := r.db.Model(&models.Doctor{}).
		Select("specialization, COUNT(id) AS count").
		Group("specialization").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
