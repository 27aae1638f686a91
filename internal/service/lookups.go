package service

import (
	"fmt"

	"mediconnect-server/internal/models"
	"mediconnect-server/internal/repository"
)

// LookupService covers the small reference entities (blood groups,
// specializations, institutes, qualifications).
type LookupService struct {
	store *repository.Store
}

// NewLookupService creates a new LookupService.
func NewLookupService(store *repository.Store) *LookupService {
	return &LookupService{store: store}
}

func (s *LookupService) CreateBloodGroup(name string) (*models.BloodGroup, error) {
	group := models.BloodGroup{GroupName: name}
	if err := s.store.BloodGroups.Create(&group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (s *LookupService) BloodGroups() ([]models.BloodGroup, error) {
	return s.store.BloodGroups.All()
}

func (s *LookupService) BloodGroup(id uint) (*models.BloodGroup, error) {
	group, err := s.store.BloodGroups.ByID(id)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, fmt.Errorf("%w: blood group %d", ErrResourceNotFound, id)
	}
	return group, nil
}

func (s *LookupService) UpdateBloodGroup(id uint, fields map[string]interface{}) (*models.BloodGroup, error) {
	group, err := s.store.BloodGroups.Update(id, fields)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, fmt.Errorf("%w: blood group %d", ErrResourceNotFound, id)
	}
	return group, nil
}

func (s *LookupService) DeleteBloodGroup(id uint) error {
	deleted, err := s.store.BloodGroups.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: blood group %d", ErrResourceNotFound, id)
	}
	return nil
}

func (s *LookupService) CreateSpecialization(name string) (*models.Specialization, error) {
	spec := models.Specialization{Name: name}
	if err := s.store.Specializations.Create(&spec); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s *LookupService) Specializations() ([]models.Specialization, error) {
	return s.store.Specializations.All()
}

func (s *LookupService) Specialization(id uint) (*models.Specialization, error) {
	spec, err := s.store.Specializations.ByID(id)
	if err != nil {
		return nil, err
	}
	if spec == nil {
		return nil, fmt.Errorf("%w: specialization %d", ErrResourceNotFound, id)
	}
	return spec, nil
}

func (s *LookupService) UpdateSpecialization(id uint, fields map[string]interface{}) (*models.Specialization, error) {
	spec, err := s.store.Specializations.Update(id, fields)
	if err != nil {
		return nil, err
	}
	if spec == nil {
		return nil, fmt.Errorf("%w: specialization %d", ErrResourceNotFound, id)
	}
	return spec, nil
}

func (s *LookupService) DeleteSpecialization(id uint) error {
	deleted, err := s.store.Specializations.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: specialization %d", ErrResourceNotFound, id)
	}
	return nil
}

func (s *LookupService) CreateInstitute(name, address string) (*models.Institute, error) {
	institute := models.Institute{Name: name, Address: address}
	if err := s.store.Institutes.Create(&institute); err != nil {
		return nil, err
	}
	return &institute, nil
}

func (s *LookupService) Institutes(search string) ([]models.Institute, error) {
	return s.store.Institutes.All(search)
}

func (s *LookupService) Institute(id uint) (*models.Institute, error) {
	institute, err := s.store.Institutes.ByID(id)
	if err != nil {
		return nil, err
	}
	if institute == nil {
		return nil, fmt.Errorf("%w: institute %d", ErrResourceNotFound, id)
	}
	return institute, nil
}

func (s *LookupService) UpdateInstitute(id uint, fields map[string]interface{}) (*models.Institute, error) {
	institute, err := s.store.Institutes.Update(id, fields)
	if err != nil {
		return nil, err
	}
	if institute == nil {
		return nil, fmt.Errorf("%w: institute %d", ErrResourceNotFound, id)
	}
	return institute, nil
}

func (s *LookupService) DeleteInstitute(id uint) error {
	deleted, err := s.store.Institutes.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: institute %d", ErrResourceNotFound, id)
	}
	return nil
}

func (s *LookupService) CreateQualification(name string) (*models.Qualification, error) {
	qualification := models.Qualification{Name: name}
	if err := s.store.Qualifications.Create(&qualification); err != nil {
		return nil, err
	}
	return &qualification, nil
}

func (s *LookupService) Qualifications() ([]models.Qualification, error) {
	return s.store.Qualifications.All()
}

func (s *LookupService) Qualification(id uint) (*models.Qualification, error) {
	qualification, err := s.store.Qualifications.ByID(id)
	if err != nil {
		return nil, err
	}
	if qualification == nil {
		return nil, fmt.Errorf("%w: qualification %d", ErrResourceNotFound, id)
	}
	return qualification, nil
}

func (s *LookupService) UpdateQualification(id uint, fields map[string]interface{}) (*models.Qualification, error) {
	qualification, err := s.store.Qualifications.Update(id, fields)
	if err != nil {
		return nil, err
	}
	if qualification == nil {
		return nil, fmt.Errorf("%w: qualification %d", ErrResourceNotFound, id)
	}
	return qualification, nil
}

func (s *LookupService) DeleteQualification(id uint) error {
	deleted, err := s.store.Qualifications.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: qualification %d", ErrResourceNotFound, id)
	}
	return nil
}
