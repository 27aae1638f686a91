package service

import (
	"fmt"

	"mediconnect-server/internal/models"
	"mediconnect-server/internal/repository"
)

// ScheduleService covers doctor availability windows.
type ScheduleService struct {
	store *repository.Store
}

// NewScheduleService creates a new ScheduleService.
func NewScheduleService(store *repository.Store) *ScheduleService {
	return &ScheduleService{store: store}
}

// ScheduleInput is the payload for creating a schedule.
type ScheduleInput struct {
	DayOfWeek              string
	StartTime              string
	EndTime                string
	MaxPatients            int
	DurationPerAppointment int
}

// Create adds an availability window for the calling doctor.
func (s *ScheduleService) Create(in ScheduleInput, caller Identity) (*models.DoctorSchedule, error) {
	if caller.IsAnonymous() {
		return nil, ErrNotAuthenticated
	}
	if caller.Role != models.RoleDoctor {
		return nil, fmt.Errorf("%w: only doctors can create schedules", ErrPermissionDenied)
	}

	duration := in.DurationPerAppointment
	if duration == 0 {
		duration = 30
	}
	schedule := models.DoctorSchedule{
		DoctorID:               caller.UserID,
		DayOfWeek:              in.DayOfWeek,
		StartTime:              in.StartTime,
		EndTime:                in.EndTime,
		MaxPatients:            in.MaxPatients,
		DurationPerAppointment: duration,
	}
	if err := s.store.Schedules.Create(&schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

// Get returns a schedule by id.
func (s *ScheduleService) Get(id uint) (*models.DoctorSchedule, error) {
	schedule, err := s.store.Schedules.ByID(id)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, fmt.Errorf("%w: schedule %d", ErrResourceNotFound, id)
	}
	return schedule, nil
}

// ByDoctor lists a doctor's schedules.
func (s *ScheduleService) ByDoctor(doctorID uint) ([]models.DoctorSchedule, error) {
	return s.store.Schedules.ByDoctor(doctorID)
}

// Mine lists the calling doctor's schedules.
func (s *ScheduleService) Mine(caller Identity) ([]models.DoctorSchedule, error) {
	if caller.IsAnonymous() {
		return nil, ErrNotAuthenticated
	}
	if caller.Role != models.RoleDoctor {
		return nil, fmt.Errorf("%w: only doctors can view their schedules", ErrPermissionDenied)
	}
	return s.store.Schedules.ByDoctor(caller.UserID)
}

// List returns schedules with pagination.
func (s *ScheduleService) List(offset, limit int) ([]models.DoctorSchedule, error) {
	return s.store.Schedules.All(offset, limit)
}

// Update applies a partial field update. Only the owning doctor or an admin
// may change a schedule.
func (s *ScheduleService) Update(id uint, fields map[string]interface{}, caller Identity) (*models.DoctorSchedule, error) {
	schedule, err := s.store.Schedules.ByID(id)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, fmt.Errorf("%w: schedule %d", ErrResourceNotFound, id)
	}
	if caller.Role != models.RoleAdmin && caller.UserID != schedule.DoctorID {
		return nil, ErrPermissionDenied
	}
	delete(fields, "doctor_id") // ownership never moves

	updated, err := s.store.Schedules.Update(id, fields)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a schedule. Only the owning doctor or an admin.
func (s *ScheduleService) Delete(id uint, caller Identity) error {
	schedule, err := s.store.Schedules.ByID(id)
	if err != nil {
		return err
	}
	if schedule == nil {
		return fmt.Errorf("%w: schedule %d", ErrResourceNotFound, id)
	}
	if caller.Role != models.RoleAdmin && caller.UserID != schedule.DoctorID {
		return ErrPermissionDenied
	}
	_, err = s.store.Schedules.Delete(id)
	return err
}
