package service

import (
	"fmt"

	"mediconnect-server/internal/models"
	"mediconnect-server/internal/repository"
)

// AppointmentService covers appointment CRUD, the booking workflow, and the
// guarded status transitions.
type AppointmentService struct {
	store *repository.Store
}

// NewAppointmentService creates a new AppointmentService.
func NewAppointmentService(store *repository.Store) *AppointmentService {
	return &AppointmentService{store: store}
}

// AppointmentInput is the payload for booking an existing patient.
type AppointmentInput struct {
	DoctorID        uint
	PatientID       uint
	ScheduleID      *uint
	AppointmentDate string
	AppointmentTime *string
}

// Create books an appointment for an already registered patient.
func (s *AppointmentService) Create(in AppointmentInput) (*models.Appointment, error) {
	if err := s.checkDoctorAndSchedule(s.store, in.DoctorID, in.ScheduleID); err != nil {
		return nil, err
	}
	appointment := models.Appointment{
		DoctorID:        in.DoctorID,
		PatientID:       in.PatientID,
		ScheduleID:      in.ScheduleID,
		AppointmentDate: in.AppointmentDate,
		AppointmentTime: in.AppointmentTime,
		Status:          models.StatusPending,
	}
	if err := s.store.Appointments.Create(&appointment); err != nil {
		return nil, err
	}
	return &appointment, nil
}

// Get returns an appointment by id.
func (s *AppointmentService) Get(id uint) (*models.Appointment, error) {
	appointment, err := s.store.Appointments.ByID(id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, fmt.Errorf("%w: appointment %d", ErrResourceNotFound, id)
	}
	return appointment, nil
}

// ByPatient lists a patient's appointments.
func (s *AppointmentService) ByPatient(patientID uint) ([]models.Appointment, error) {
	return s.store.Appointments.ByPatient(patientID)
}

// ByDoctor lists a doctor's appointments with patient details.
func (s *AppointmentService) ByDoctor(doctorID uint) ([]models.Appointment, error) {
	return s.store.Appointments.ByDoctor(doctorID)
}

// List returns appointments with pagination.
func (s *AppointmentService) List(offset, limit int) ([]models.Appointment, error) {
	return s.store.Appointments.All(offset, limit)
}

// ListDetailed returns appointments with doctor and patient preloaded, for
// report rendering.
func (s *AppointmentService) ListDetailed(offset, limit int) ([]models.Appointment, error) {
	return s.store.Appointments.AllDetailed(offset, limit)
}

// updatableAppointmentFields are the columns the generic partial update may
// touch. Status is excluded; it moves only through UpdateStatus.
var updatableAppointmentFields = map[string]bool{
	"doctor_id":        true,
	"patient_id":       true,
	"schedule_id":      true,
	"appointment_date": true,
	"appointment_time": true,
}

// Update applies a partial field update. A status key in the payload is
// rejected so transitions cannot bypass the state machine.
func (s *AppointmentService) Update(id uint, fields map[string]interface{}) (*models.Appointment, error) {
	if _, ok := fields["status"]; ok {
		return nil, fmt.Errorf("%w: status changes must use the status endpoint", ErrValidation)
	}
	filtered := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if updatableAppointmentFields[k] {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		return nil, fmt.Errorf("%w: no updatable fields in payload", ErrValidation)
	}

	appointment, err := s.store.Appointments.Update(id, filtered)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, fmt.Errorf("%w: appointment %d", ErrResourceNotFound, id)
	}
	return appointment, nil
}

// UpdateStatus moves an appointment through the allowed transitions
// (pending to completed or cancelled). The owning doctor may do either, the
// owning patient may cancel, an admin may do both.
func (s *AppointmentService) UpdateStatus(id uint, next models.AppointmentStatus, caller Identity) (*models.Appointment, error) {
	if caller.IsAnonymous() {
		return nil, ErrNotAuthenticated
	}

	appointment, err := s.store.Appointments.ByID(id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, fmt.Errorf("%w: appointment %d", ErrResourceNotFound, id)
	}

	switch caller.Role {
	case models.RoleAdmin:
	case models.RoleDoctor:
		if appointment.DoctorID != caller.UserID {
			return nil, fmt.Errorf("%w: appointment belongs to another doctor", ErrPermissionDenied)
		}
	case models.RolePatient:
		if appointment.PatientID != caller.UserID {
			return nil, fmt.Errorf("%w: appointment belongs to another patient", ErrPermissionDenied)
		}
		if next != models.StatusCancelled {
			return nil, fmt.Errorf("%w: patients may only cancel", ErrPermissionDenied)
		}
	default:
		return nil, ErrPermissionDenied
	}

	if !appointment.Status.CanTransition(next) {
		return nil, fmt.Errorf("%w: cannot move appointment from %s to %s", ErrValidation, appointment.Status, next)
	}

	updated, err := s.store.Appointments.Update(id, map[string]interface{}{"status": next})
	if err != nil {
		return nil, err
	}
	updated.Status = next
	return updated, nil
}

// Delete removes an appointment together with its prescription and line
// items, in one transaction.
func (s *AppointmentService) Delete(id uint) error {
	return s.store.Transact(func(st *repository.Store) error {
		if err := st.Prescriptions.DeleteByAppointment(id); err != nil {
			return err
		}
		deleted, err := st.Appointments.Delete(id)
		if err != nil {
			return err
		}
		if !deleted {
			return fmt.Errorf("%w: appointment %d", ErrResourceNotFound, id)
		}
		return nil
	})
}

// checkDoctorAndSchedule verifies the doctor exists and, when a schedule is
// cited, that it belongs to that doctor.
func (s *AppointmentService) checkDoctorAndSchedule(st *repository.Store, doctorID uint, scheduleID *uint) error {
	doctor, err := st.Doctors.ByID(doctorID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return fmt.Errorf("%w: doctor %d", ErrResourceNotFound, doctorID)
	}
	if scheduleID != nil {
		schedule, err := st.Schedules.ByID(*scheduleID)
		if err != nil {
			return err
		}
		if schedule == nil {
			return fmt.Errorf("%w: schedule %d", ErrResourceNotFound, *scheduleID)
		}
		if schedule.DoctorID != doctorID {
			return fmt.Errorf("%w: schedule %d does not belong to doctor %d", ErrValidation, *scheduleID, doctorID)
		}
	}
	return nil
}
