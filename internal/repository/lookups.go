package repository

import (
	"gorm.io/gorm"

	"mediconnect-server/internal/models"
)

// Repositories for the small reference entities. They share the same CRUD
// shape; institutes additionally support prefix search on the name.

type BloodGroupRepository interface {
	Create(group *models.BloodGroup) error
	ByID(id uint) (*models.BloodGroup, error)
	All() ([]models.BloodGroup, error)
	Update(id uint, fields map[string]interface{}) (*models.BloodGroup, error)
	Delete(id uint) (bool, error)
}

type SpecializationRepository interface {
	Create(spec *models.Specialization) error
	ByID(id uint) (*models.Specialization, error)
	All() ([]models.Specialization, error)
	Update(id uint, fields map[string]interface{}) (*models.Specialization, error)
	Delete(id uint) (bool, error)
}

type InstituteRepository interface {
	Create(institute *models.Institute) error
	ByID(id uint) (*models.Institute, error)
	All(search string) ([]models.Institute, error)
	Update(id uint, fields map[string]interface{}) (*models.Institute, error)
	Delete(id uint) (bool, error)
}

type QualificationRepository interface {
	Create(qualification *models.Qualification) error
	ByID(id uint) (*models.Qualification, error)
	All() ([]models.Qualification, error)
	Update(id uint, fields map[string]interface{}) (*models.Qualification, error)
	Delete(id uint) (bool, error)
}

type bloodGroupRepo struct{ db *gorm.DB }

func (r *bloodGroupRepo) Create(group *models.BloodGroup) error {
	return r.db.Create(group).Error
}

func (r *bloodGroupRepo) ByID(id uint) (*models.BloodGroup, error) {
	var group models.BloodGroup
	if err := r.db.First(&group, "id = ?", id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &group, nil
}

func (r *bloodGroupRepo) All() ([]models.BloodGroup, error) {
	var groups []models.BloodGroup
	if err := r.db.Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *bloodGroupRepo) Update(id uint, fields map[string]interface{}) (*models.BloodGroup, error) {
	var group models.BloodGroup
	if err := r.db.First(&group, "id = ?", id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	if err := r.db.Model(&group).Updates(fields).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *bloodGroupRepo) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.BloodGroup{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

type specializationRepo struct{ db *gorm.DB }

func (r *specializationRepo) Create(spec *models.Specialization) error {
	return r.db.Create(spec).Error
}

func (r *specializationRepo) ByID(id uint) (*models.Specialization, error) {
	var spec models.Specialization
	if err := r.db.First(&spec, "id = ?", id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &spec, nil
}

func (r *specializationRepo) All() ([]models.Specialization, error) {
	var specs []models.Specialization
	if err := r.db.Find(&specs).Error; err != nil {
		return nil, err
	}
	return specs, nil
}

func (r *specializationRepo) Update(id uint, fields map[string]interface{}) (*models.Specialization, error) {
	var spec models.Specialization
	if err := r.db.First(&spec, "id = ?", id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	if err := r.db.Model(&spec).Updates(fields).Error; err != nil {
		return nil, err
	}
	return &spec, nil
}

func (r *specializationRepo) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.Specialization{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

type instituteRepo struct{ db *gorm.DB }

func (r *instituteRepo) Create(institute *models.Institute) error {
	return r.db.Create(institute).Error
}

func (r *instituteRepo) ByID(id uint) (*models.Institute, error) {
	var institute models.Institute
	if err := r.db.First(&institute, "id = ?", id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &institute, nil
}

func (r *instituteRepo) All(search string) ([]models.Institute, error) {
	var institutes []models.Institute
	q := r.db
	if search != "" {
		q = q.Where("name LIKE ?", search+"%")
	}
	if err := q.Find(&institutes).Error; err != nil {
		return nil, err
	}
	return institutes, nil
}

func (r *instituteRepo) Update(id uint, fields map[string]interface{}) (*models.Institute, error) {
	var institute models.Institute
	if err := r.db.First(&institute, "id = ?", id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	if err := r.db.Model(&institute).Updates(fields).Error; err != nil {
		return nil, err
	}
	return &institute, nil
}

func (r *instituteRepo) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.Institute{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

type qualificationRepo struct{ db *gorm.DB }

func (r *qualificationRepo) Create(qualification *models.Qualification) error {
	return r.db.Create(qualification).Error
}

func (r *qualificationRepo) ByID(id uint) (*models.Qualification, error) {
	var qualification models.Qualification
	if err := r.db.First(&qualification, "id = ?", id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &qualification, nil
}

func (r *qualificationRepo) All() ([]models.Qualification, error) {
	var qualifications []models.Qualification
	if err := r.db.Find(&qualifications).Error; err != nil {
		return nil, err
	}
	return qualifications, nil
}

func (r *qualificationRepo) Update(id uint, fields map[string]interface{}) (*models.Qualification, error) {
	var qualification models.Qualification
	if err := r.db.First(&qualification, "id = ?", id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	if err := r.db.Model(&qualification).Updates(fields).Error; err != nil {
		return nil, err
	}
	return &qualification, nil
}

func (r *qualificationRepo) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.Qualification{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
