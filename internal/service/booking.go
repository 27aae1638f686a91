package service

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math/big"

	"mediconnect-server/internal/models"
	"mediconnect-server/internal/repository"
)

const serialAttempts = 20

// BookingInput is the payload for booking an appointment for a possibly
// unregistered patient.
type BookingInput struct {
	DoctorID        uint
	ScheduleID      *uint
	AppointmentDate string
	AppointmentTime *string
	Patient         PatientInput
}

// BookingResult is what booking returns. TempPassword and Email are transient
// delivery metadata for a newly created patient; they are never persisted in
// plain form.
type BookingResult struct {
	Appointment    *models.Appointment
	Patient        *models.Patient
	PatientCreated bool
	TempPassword   string
	Email          string
}

// BookWithPatient books an appointment, creating the patient account on the
// fly when the supplied phone/email match no existing patient. The whole flow
// runs in a single transaction.
func (s *AppointmentService) BookWithPatient(in BookingInput) (*BookingResult, error) {
	var result BookingResult

	err := s.store.Transact(func(st *repository.Store) error {
		if err := s.checkDoctorAndSchedule(st, in.DoctorID, in.ScheduleID); err != nil {
			return err
		}

		patientID, err := findExistingPatient(st, in.Patient)
		if err != nil {
			return err
		}

		if patientID == 0 {
			patientID, err = createPatientAccount(st, in.Patient, &result)
			if err != nil {
				return err
			}
		}

		appointment := models.Appointment{
			DoctorID:        in.DoctorID,
			PatientID:       patientID,
			ScheduleID:      in.ScheduleID,
			AppointmentDate: in.AppointmentDate,
			AppointmentTime: in.AppointmentTime,
			Status:          models.StatusPending,
		}
		if err := st.Appointments.Create(&appointment); err != nil {
			return err
		}
		result.Appointment = &appointment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// findExistingPatient resolves a patient-role user by phone first, then by
// email. Returns 0 when no match exists. A phone or email already held by a
// non-patient account is rejected rather than colliding on the unique index
// during account creation.
func findExistingPatient(st *repository.Store, in PatientInput) (uint, error) {
	if in.Phone != "" {
		user, err := st.Users.ByPhone(in.Phone)
		if err != nil {
			return 0, err
		}
		if user != nil {
			if user.Role != models.RolePatient {
				return 0, fmt.Errorf("%w: phone number belongs to a non-patient account", ErrValidation)
			}
			return user.ID, nil
		}
	}
	if in.Email != "" {
		user, err := st.Users.ByEmail(in.Email)
		if err != nil {
			return 0, err
		}
		if user != nil {
			if user.Role != models.RolePatient {
				return 0, fmt.Errorf("%w: email belongs to a non-patient account", ErrValidation)
			}
			return user.ID, nil
		}
	}
	return 0, nil
}

// createPatientAccount creates the user and patient rows for a walk-in
// patient and records the temporary credentials on the result.
func createPatientAccount(st *repository.Store, in PatientInput, result *BookingResult) (uint, error) {
	serial, err := generateSerialNumber(st.Patients)
	if err != nil {
		return 0, err
	}

	tempPassword, err := generateTempPassword()
	if err != nil {
		return 0, err
	}

	user := models.User{Role: models.RolePatient}
	if in.Email != "" {
		user.Email = &in.Email
	}
	if in.Phone != "" {
		user.Phone = &in.Phone
	}
	if err := user.SetPassword(tempPassword); err != nil {
		return 0, err
	}
	if err := st.Users.Create(&user); err != nil {
		return 0, err
	}

	patient := models.Patient{
		ID:           user.ID,
		FullName:     in.FullName,
		Age:          in.Age,
		Gender:       in.Gender,
		Phone:        in.Phone,
		BloodGroupID: in.BloodGroupID,
		Address:      in.Address,
		SerialNumber: serial,
	}
	if err := st.Patients.Create(&patient); err != nil {
		return 0, err
	}

	result.Patient = &patient
	result.PatientCreated = true
	result.TempPassword = tempPassword
	result.Email = in.Email
	return user.ID, nil
}

// generateSerialNumber draws random 8-digit serials until one is free. The
// unique index on patients.serial_number backs this against races.
func generateSerialNumber(patients repository.PatientRepository) (int, error) {
	for i := 0; i < serialAttempts; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(90000000))
		if err != nil {
			return 0, err
		}
		serial := int(n.Int64()) + 10000000

		exists, err := patients.SerialExists(serial)
		if err != nil {
			return 0, err
		}
		if !exists {
			return serial, nil
		}
	}
	return 0, fmt.Errorf("could not allocate a unique serial number after %d attempts", serialAttempts)
}

// generateTempPassword returns a short random url-safe credential.
func generateTempPassword() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
