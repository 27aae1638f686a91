package service

import (
	"fmt"

	"mediconnect-server/internal/models"
	"mediconnect-server/internal/repository"
)

// MedicineService covers the medicine catalog.
type MedicineService struct {
	store *repository.Store
}

// NewMedicineService creates a new MedicineService.
func NewMedicineService(store *repository.Store) *MedicineService {
	return &MedicineService{store: store}
}

// Create adds a catalog medicine.
func (s *MedicineService) Create(in MedicineInput) (*models.Medicine, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: medicine name is required", ErrValidation)
	}
	medicine := models.Medicine{
		Name:         in.Name,
		Strength:     in.Strength,
		Form:         in.Form,
		Manufacturer: in.Manufacturer,
	}
	if err := s.store.Medicines.Create(&medicine); err != nil {
		return nil, err
	}
	return &medicine, nil
}

// Get returns a medicine by id.
func (s *MedicineService) Get(id uint) (*models.Medicine, error) {
	medicine, err := s.store.Medicines.ByID(id)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, fmt.Errorf("%w: medicine %d", ErrResourceNotFound, id)
	}
	return medicine, nil
}

// List returns medicines with pagination.
func (s *MedicineService) List(offset, limit int) ([]models.Medicine, error) {
	return s.store.Medicines.All(offset, limit)
}

// SearchByName returns medicines whose name starts with the given prefix.
func (s *MedicineService) SearchByName(name string) ([]models.Medicine, error) {
	return s.store.Medicines.ByName(name)
}

// Update applies a partial field update to a medicine.
func (s *MedicineService) Update(id uint, fields map[string]interface{}) (*models.Medicine, error) {
	medicine, err := s.store.Medicines.Update(id, fields)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, fmt.Errorf("%w: medicine %d", ErrResourceNotFound, id)
	}
	return medicine, nil
}

// Delete removes a medicine from the catalog.
func (s *MedicineService) Delete(id uint) error {
	deleted, err := s.store.Medicines.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: medicine %d", ErrResourceNotFound, id)
	}
	return nil
}
