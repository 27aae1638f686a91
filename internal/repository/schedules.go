package repository

import (
	"gorm.io/gorm"

	"mediconnect-server/internal/models"
)

// ScheduleRepository is the data access surface for doctor schedules.
type ScheduleRepository interface {
	Create(schedule *models.DoctorSchedule) error
	ByID(id uint) (*models.DoctorSchedule, error)
	ByDoctor(doctorID uint) ([]models.DoctorSchedule, error)
	All(offset, limit int) ([]models.DoctorSchedule, error)
	Update(id uint, fields map[string]interface{}) (*models.DoctorSchedule, error)
	Delete(id uint) (bool, error)
}

type scheduleRepo struct {
	db *gorm.DB
}

func (r *scheduleRepo) Create(schedule *models.DoctorSchedule) error {
	return r.db.Create(schedule).Error
}

func (r *scheduleRepo) ByID(id uint) (*models.DoctorSchedule, error) {
	var schedule models.DoctorSchedule
	if err := r.db.First(&schedule, "id = ?", id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &schedule, nil
}

func (r *scheduleRepo) ByDoctor(doctorID uint) ([]models.DoctorSchedule, error) {
	var schedules []models.DoctorSchedule
	if err := r.db.Where("doctor_id = ?", doctorID).Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepo) All(offset, limit int) ([]models.DoctorSchedule, error) {
	var schedules []models.DoctorSchedule
	if err := r.db.Offset(offset).Limit(limit).Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepo) Update(id uint, fields map[string]interface{}) (*models.DoctorSchedule, error) {
	var schedule models.DoctorSchedule
	if err := r.db.First(&schedule, "id = ?", id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	if err := r.db.Model(&schedule).Updates(fields).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepo) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.DoctorSchedule{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
