package repository

import (
	"gorm.io/gorm"

	"mediconnect-server/internal/models"
)

// DoctorRepository is the data access surface for doctor profiles.
type DoctorRepository interface {
	Create(doctor *models.Doctor) error
	ByID(id uint) (*models.Doctor, error)
	All(offset, limit int) ([]models.Doctor, error)
	ByStatus(status models.DoctorStatus) ([]models.Doctor, error)
	Update(id uint, fields map[string]interface{}) (*models.Doctor, error)
	Delete(id uint) (bool, error)
}

type doctorRepo struct {
	db *gorm.DB
}

func (r *doctorRepo) Create(doctor *models.Doctor) error {
	return r.db.Create(doctor).Error
}

func (r *doctorRepo) ByID(id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := r.db.First(&doctor, "id = ?", id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &doctor, nil
}

func (r *doctorRepo) All(offset, limit int) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := r.db.Offset(offset).Limit(limit).Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepo) ByStatus(status models.DoctorStatus) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := r.db.Where("status = ?", status).Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepo) Update(id uint, fields map[string]interface{}) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := r.db.First(&doctor, "id = ?", id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	if err := r.db.Model(&doctor).Updates(fields).Error; err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepo) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.Doctor{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
