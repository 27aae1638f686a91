package repository

import (
	"gorm.io/gorm"

	"mediconnect-server/internal/models"
)

// MedicineRepository is the data access surface for the medicine catalog.
type MedicineRepository interface {
	Create(medicine *models.Medicine) error
	ByID(id uint) (*models.Medicine, error)
	ByName(name string) ([]models.Medicine, error)
	All(offset, limit int) ([]models.Medicine, error)
	Update(id uint, fields map[string]interface{}) (*models.Medicine, error)
	Delete(id uint) (bool, error)
}

type medicineRepo struct {
	db *gorm.DB
}

func (r *medicineRepo) Create(medicine *models.Medicine) error {
	return r.db.Create(medicine).Error
}

func (r *medicineRepo) ByID(id uint) (*models.Medicine, error) {
	var medicine models.Medicine
	if err := r.db.First(&medicine, "id = ?", id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &medicine, nil
}

func (r *medicineRepo) ByName(name string) ([]models.Medicine, error) {
	var medicines []models.Medicine
	if err := r.db.Where("name LIKE ?", name+"%").Find(&medicines).Error; err != nil {
		return nil, err
	}
	return medicines, nil
}

func (r *medicineRepo) All(offset, limit int) ([]models.Medicine, error) {
	var medicines []models.Medicine
	if err := r.db.Offset(offset).Limit(limit).Find(&medicines).Error; err != nil {
		return nil, err
	}
	return medicines, nil
}

func (r *medicineRepo) Update(id uint, fields map[string]interface{}) (*models.Medicine, error) {
	var medicine models.Medicine
	if err := r.db.First(&medicine, "id = ?", id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	if err := r.db.Model(&medicine).Updates(fields).Error; err != nil {
		return nil, err
	}
	return &medicine, nil
}

func (r *medicineRepo) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.Medicine{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
