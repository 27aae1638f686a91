package repository

import (
	"gorm.io/gorm"

	"mediconnect-server/internal/models"
)

// AppointmentRepository is the data access surface for appointments.
type AppointmentRepository interface {
	Create(appointment *models.Appointment) error
	ByID(id uint) (*models.Appointment, error)
	ByPatient(patientID uint) ([]models.Appointment, error)
	ByDoctor(doctorID uint) ([]models.Appointment, error)
	All(offset, limit int) ([]models.Appointment, error)
	AllDetailed(offset, limit int) ([]models.Appointment, error)
	CountBySchedule(scheduleID uint, date string) (int64, error)
	Update(id uint, fields map[string]interface{}) (*models.Appointment, error)
	Delete(id uint) (bool, error)
}

type appointmentRepo struct {
	db *gorm.DB
}

func (r *appointmentRepo) Create(appointment *models.Appointment) error {
	return r.db.Create(appointment).Error
}

func (r *appointmentRepo) ByID(id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := r.db.First(&appointment, "id = ?", id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &appointment, nil
}

func (r *appointmentRepo) ByPatient(patientID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := r.db.Where("patient_id = ?", patientID).Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepo) ByDoctor(doctorID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := r.db.Preload("Patient").Where("doctor_id = ?", doctorID).Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepo) All(offset, limit int) ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := r.db.Offset(offset).Limit(limit).Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

// AllDetailed preloads doctor and patient for report rendering.
func (r *appointmentRepo) AllDetailed(offset, limit int) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Preload("Doctor").Preload("Patient").
		Order("appointment_date, appointment_time").
		Offset(offset).Limit(limit).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// CountBySchedule counts booked appointments for a schedule slot on a date.
// The booking flow does not consult this; it exists as the seam for a future
// capacity guard.
func (r *appointmentRepo) CountBySchedule(scheduleID uint, date string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Appointment{}).
		Where("schedule_id = ? AND appointment_date = ?", scheduleID, date).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepo) Update(id uint, fields map[string]interface{}) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := r.db.First(&appointment, "id = ?", id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	if err := r.db.Model(&appointment).Updates(fields).Error; err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepo) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.Appointment{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
