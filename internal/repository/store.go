package repository

import (
	"gorm.io/gorm"
)

// Store aggregates every entity repository. Service methods that span
// multiple writes run them through Transact so the whole request commits or
// rolls back as one unit.
type Store struct {
	Users           UserRepository
	Doctors         DoctorRepository
	Patients        PatientRepository
	Schedules       ScheduleRepository
	Appointments    AppointmentRepository
	Prescriptions   PrescriptionRepository
	Medicines       MedicineRepository
	BloodGroups     BloodGroupRepository
	Specializations SpecializationRepository
	Institutes      InstituteRepository
	Qualifications  QualificationRepository
	Reports         ReportRepository

	db *gorm.DB
}

// NewStore builds a Store backed by the given gorm connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{
		Users:           &userRepo{db: db},
		Doctors:         &doctorRepo{db: db},
		Patients:        &patientRepo{db: db},
		Schedules:       &scheduleRepo{db: db},
		Appointments:    &appointmentRepo{db: db},
		Prescriptions:   &prescriptionRepo{db: db},
		Medicines:       &medicineRepo{db: db},
		BloodGroups:     &bloodGroupRepo{db: db},
		Specializations: &specializationRepo{db: db},
		Institutes:      &instituteRepo{db: db},
		Qualifications:  &qualificationRepo{db: db},
		Reports:         &reportRepo{db: db},
		db:              db,
	}
}

// Transact runs fn against a transaction-scoped Store. Without a database
// connection (fakes in tests build Store by hand) fn runs directly.
func (s *Store) Transact(fn func(*Store) error) error {
	if s.db == nil {
		return fn(s)
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

// notFoundToNil converts gorm's record-not-found error into a nil result so
// callers can treat misses as plain absence.
func notFoundToNil(err error) error {
	if err == gorm.ErrRecordNotFound {
		return nil
	}
	return err
}
