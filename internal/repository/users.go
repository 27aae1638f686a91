package repository

import (
	"gorm.io/gorm"

	"mediconnect-server/internal/models"
)

// UserRepository is the data access surface for identity records.
type UserRepository interface {
	Create(user *models.User) error
	ByID(id uint) (*models.User, error)
	ByEmail(email string) (*models.User, error)
	ByPhone(phone string) (*models.User, error)
	All(offset, limit int) ([]models.User, error)
	Delete(id uint) (bool, error)
}

type userRepo struct {
	db *gorm.DB
}

func (r *userRepo) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepo) ByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &user, nil
}

func (r *userRepo) ByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &user, nil
}

func (r *userRepo) ByPhone(phone string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "phone = ?", phone).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &user, nil
}

func (r *userRepo) All(offset, limit int) ([]models.User, error) {
	var users []models.User
	if err := r.db.Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepo) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.User{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
