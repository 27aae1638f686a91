package service

import (
	"mediconnect-server/internal/models"
	"mediconnect-server/internal/repository"
)

// AdminService covers the admin dashboard and analytics queries.
type AdminService struct {
	store *repository.Store
}

// NewAdminService creates a new AdminService.
func NewAdminService(store *repository.Store) *AdminService {
	return &AdminService{store: store}
}

// DashboardCounts returns the top-level totals for the admin dashboard.
func (s *AdminService) DashboardCounts() (repository.AdminCounts, error) {
	return s.store.Reports.Counts()
}

// PendingDoctors lists doctors awaiting approval.
func (s *AdminService) PendingDoctors() ([]models.Doctor, error) {
	return s.store.Doctors.ByStatus(models.DoctorPending)
}

// TopMedicines ranks catalog medicines by prescription usage.
func (s *AdminService) TopMedicines(limit int) ([]repository.MedicineUsage, error) {
	return s.store.Reports.TopMedicines(limit)
}

// TopDoctors ranks doctors by completed appointments.
func (s *AdminService) TopDoctors(limit int) ([]repository.DoctorCompleted, error) {
	return s.store.Reports.TopDoctorsByCompleted(limit)
}

// AppointmentOverview returns the per-day appointment counts for the
// trailing window.
func (s *AdminService) AppointmentOverview(days int) ([]repository.DayCount, error) {
	return s.store.Reports.AppointmentOverview(days)
}

// PopularSpecializations ranks specializations by doctor count.
func (s *AdminService) PopularSpecializations(limit int) ([]repository.SpecializationCount, error) {
	return s.store.Reports.PopularSpecializations(limit)
}
