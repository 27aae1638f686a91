package service

import (
	"fmt"
	"time"

	"mediconnect-server/internal/models"
	"mediconnect-server/internal/repository"
)

// PatientService covers patient profiles and the patient-facing dashboard.
type PatientService struct {
	store *repository.Store
}

// NewPatientService creates a new PatientService.
func NewPatientService(store *repository.Store) *PatientService {
	return &PatientService{store: store}
}

// PatientInput is the profile data for creating a patient.
type PatientInput struct {
	FullName     string
	Age          int
	Email        string
	Gender       string
	Phone        string
	BloodGroupID *uint
	Address      string
}

// Create attaches a patient profile to the given user, allocating a fresh
// serial number.
func (s *PatientService) Create(userID uint, in PatientInput) (*models.Patient, error) {
	user, err := s.store.Users.ByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", ErrResourceNotFound, userID)
	}

	serial, err := generateSerialNumber(s.store.Patients)
	if err != nil {
		return nil, err
	}

	patient := models.Patient{
		ID:           userID,
		FullName:     in.FullName,
		Age:          in.Age,
		Gender:       in.Gender,
		Phone:        in.Phone,
		BloodGroupID: in.BloodGroupID,
		Address:      in.Address,
		SerialNumber: serial,
	}
	if err := s.store.Patients.Create(&patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

// Get returns a patient by id.
func (s *PatientService) Get(id uint) (*models.Patient, error) {
	patient, err := s.store.Patients.ByID(id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, fmt.Errorf("%w: patient %d", ErrResourceNotFound, id)
	}
	return patient, nil
}

// List returns patients with pagination.
func (s *PatientService) List(offset, limit int) ([]models.Patient, error) {
	return s.store.Patients.All(offset, limit)
}

// SearchByPhone returns patients whose phone starts with the given prefix.
func (s *PatientService) SearchByPhone(phone string) ([]models.Patient, error) {
	return s.store.Patients.SearchByPhone(phone)
}

// Update applies a partial field update to a patient profile.
func (s *PatientService) Update(id uint, fields map[string]interface{}) (*models.Patient, error) {
	delete(fields, "serial_number") // assigned once at creation
	patient, err := s.store.Patients.Update(id, fields)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, fmt.Errorf("%w: patient %d", ErrResourceNotFound, id)
	}
	return patient, nil
}

// Delete removes a patient profile.
func (s *PatientService) Delete(id uint) error {
	deleted, err := s.store.Patients.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: patient %d", ErrResourceNotFound, id)
	}
	return nil
}

// DashboardStats are the summary counts on a patient's dashboard.
type DashboardStats struct {
	UpcomingAppointments int64 `json:"upcoming_appointments"`
	VisitedDoctors       int64 `json:"visited_doctors"`
	ActivePrescriptions  int64 `json:"active_prescriptions"`
}

// Dashboard returns the summary counts for the calling patient.
func (s *PatientService) Dashboard(caller Identity) (*DashboardStats, error) {
	if caller.IsAnonymous() {
		return nil, ErrNotAuthenticated
	}
	if caller.Role != models.RolePatient {
		return nil, ErrPermissionDenied
	}

	today := time.Now().Format("2006-01-02")
	upcoming, err := s.store.Patients.CountUpcomingAppointments(caller.UserID, today)
	if err != nil {
		return nil, err
	}
	visited, err := s.store.Patients.CountVisitedDoctors(caller.UserID)
	if err != nil {
		return nil, err
	}
	prescriptions, err := s.store.Patients.CountPrescriptions(caller.UserID)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		UpcomingAppointments: upcoming,
		VisitedDoctors:       visited,
		ActivePrescriptions:  prescriptions,
	}, nil
}

// UpcomingAppointments lists the calling patient's future appointments.
func (s *PatientService) UpcomingAppointments(caller Identity, limit int) ([]models.Appointment, error) {
	if caller.IsAnonymous() {
		return nil, ErrNotAuthenticated
	}
	if caller.Role != models.RolePatient {
		return nil, ErrPermissionDenied
	}
	today := time.Now().Format("2006-01-02")
	return s.store.Patients.UpcomingAppointments(caller.UserID, today, limit)
}
