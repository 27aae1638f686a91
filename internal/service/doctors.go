package service

import (
	"fmt"

	"mediconnect-server/internal/models"
	"mediconnect-server/internal/repository"
)

// DoctorService covers doctor profile management.
type DoctorService struct {
	store *repository.Store
}

// NewDoctorService creates a new DoctorService.
func NewDoctorService(store *repository.Store) *DoctorService {
	return &DoctorService{store: store}
}

// DoctorInput is the payload for creating a doctor profile.
type DoctorInput struct {
	FullName        string
	Specialization  string
	Phone           string
	Chamber         string
	Institute       string
	BMDCNumber      string
	Experience      string
	Qualifications  string
	ConsultationFee string
}

// Create attaches a doctor profile to the given user. New profiles start in
// pending state until an admin approves them.
func (s *DoctorService) Create(userID uint, in DoctorInput) (*models.Doctor, error) {
	user, err := s.store.Users.ByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", ErrResourceNotFound, userID)
	}
	if user.Role != models.RoleDoctor {
		return nil, fmt.Errorf("%w: user %d is not a doctor", ErrValidation, userID)
	}

	doctor := models.Doctor{
		ID:              userID,
		FullName:        in.FullName,
		Specialization:  in.Specialization,
		Phone:           in.Phone,
		Chamber:         in.Chamber,
		Institute:       in.Institute,
		BMDCNumber:      in.BMDCNumber,
		Experience:      in.Experience,
		Qualifications:  in.Qualifications,
		ConsultationFee: in.ConsultationFee,
		Status:          models.DoctorPending,
	}
	if err := s.store.Doctors.Create(&doctor); err != nil {
		return nil, err
	}
	return &doctor, nil
}

// Get returns a doctor by id.
func (s *DoctorService) Get(id uint) (*models.Doctor, error) {
	doctor, err := s.store.Doctors.ByID(id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, fmt.Errorf("%w: doctor %d", ErrResourceNotFound, id)
	}
	return doctor, nil
}

// List returns doctors, optionally filtered by approval status.
func (s *DoctorService) List(status string, offset, limit int) ([]models.Doctor, error) {
	if status != "" {
		parsed, err := models.ParseDoctorStatus(status)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		return s.store.Doctors.ByStatus(parsed)
	}
	return s.store.Doctors.All(offset, limit)
}

// Update applies a partial field update to a doctor profile. Only the owning
// doctor or an admin may change it; approval status changes are admin only.
func (s *DoctorService) Update(id uint, fields map[string]interface{}, caller Identity) (*models.Doctor, error) {
	if caller.Role != models.RoleAdmin && caller.UserID != id {
		return nil, ErrPermissionDenied
	}
	if _, ok := fields["status"]; ok && caller.Role != models.RoleAdmin {
		return nil, fmt.Errorf("%w: only admins may change approval status", ErrPermissionDenied)
	}
	doctor, err := s.store.Doctors.Update(id, fields)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, fmt.Errorf("%w: doctor %d", ErrResourceNotFound, id)
	}
	return doctor, nil
}

// Delete removes a doctor profile. Admin only.
func (s *DoctorService) Delete(id uint, caller Identity) error {
	if caller.Role != models.RoleAdmin {
		return ErrPermissionDenied
	}
	deleted, err := s.store.Doctors.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: doctor %d", ErrResourceNotFound, id)
	}
	return nil
}
