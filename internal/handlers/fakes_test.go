package handlers_test

import (
	"strings"

	"mediconnect-server/internal/models"
	"mediconnect-server/internal/repository"
)

// In-memory repositories backing the router tests. Store.Transact runs the
// callback directly when no gorm connection is attached.

type fakeUsers struct {
	seq   uint
	items map[uint]*models.User
}

func (m *fakeUsers) Create(user *models.User) error {
	m.seq++
	user.ID = m.seq
	copied := *user
	m.items[user.ID] = &copied
	return nil
}

func (m *fakeUsers) ByID(id uint) (*models.User, error) {
	if user, ok := m.items[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, nil
}

func (m *fakeUsers) ByEmail(email string) (*models.User, error) {
	for _, user := range m.items {
		if user.Email != nil && *user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *fakeUsers) ByPhone(phone string) (*models.User, error) {
	for _, user := range m.items {
		if user.Phone != nil && *user.Phone == phone {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *fakeUsers) All(offset, limit int) ([]models.User, error) {
	var users []models.User
	for _, user := range m.items {
		users = append(users, *user)
	}
	return users, nil
}

func (m *fakeUsers) Delete(id uint) (bool, error) {
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

type fakeDoctors struct {
	items map[uint]*models.Doctor
}

func (m *fakeDoctors) Create(doctor *models.Doctor) error {
	copied := *doctor
	m.items[doctor.ID] = &copied
	return nil
}

func (m *fakeDoctors) ByID(id uint) (*models.Doctor, error) {
	if doctor, ok := m.items[id]; ok {
		copied := *doctor
		return &copied, nil
	}
	return nil, nil
}

func (m *fakeDoctors) All(offset, limit int) ([]models.Doctor, error) {
	var doctors []models.Doctor
	for _, doctor := range m.items {
		doctors = append(doctors, *doctor)
	}
	return doctors, nil
}

func (m *fakeDoctors) ByStatus(status models.DoctorStatus) ([]models.Doctor, error) {
	var doctors []models.Doctor
	for _, doctor := range m.items {
		if doctor.Status == status {
			doctors = append(doctors, *doctor)
		}
	}
	return doctors, nil
}

func (m *fakeDoctors) Update(id uint, fields map[string]interface{}) (*models.Doctor, error) {
	doctor, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	if v, ok := fields["status"].(string); ok {
		doctor.Status = models.DoctorStatus(v)
	}
	if v, ok := fields["full_name"].(string); ok {
		doctor.FullName = v
	}
	copied := *doctor
	return &copied, nil
}

func (m *fakeDoctors) Delete(id uint) (bool, error) {
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

type fakePatients struct {
	items map[uint]*models.Patient
}

func (m *fakePatients) Create(patient *models.Patient) error {
	copied := *patient
	m.items[patient.ID] = &copied
	return nil
}

func (m *fakePatients) ByID(id uint) (*models.Patient, error) {
	if patient, ok := m.items[id]; ok {
		copied := *patient
		return &copied, nil
	}
	return nil, nil
}

func (m *fakePatients) All(offset, limit int) ([]models.Patient, error) {
	var patients []models.Patient
	for _, patient := range m.items {
		patients = append(patients, *patient)
	}
	return patients, nil
}

func (m *fakePatients) SearchByPhone(phone string) ([]models.Patient, error) {
	var patients []models.Patient
	for _, patient := range m.items {
		if strings.HasPrefix(patient.Phone, phone) {
			patients = append(patients, *patient)
		}
	}
	return patients, nil
}

func (m *fakePatients) SerialExists(serial int) (bool, error) {
	for _, patient := range m.items {
		if patient.SerialNumber == serial {
			return true, nil
		}
	}
	return false, nil
}

func (m *fakePatients) Update(id uint, fields map[string]interface{}) (*models.Patient, error) {
	patient, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	if v, ok := fields["full_name"].(string); ok {
		patient.FullName = v
	}
	if v, ok := fields["address"].(string); ok {
		patient.Address = v
	}
	copied := *patient
	return &copied, nil
}

func (m *fakePatients) Delete(id uint) (bool, error) {
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

func (m *fakePatients) CountUpcomingAppointments(patientID uint, fromDate string) (int64, error) {
	return 0, nil
}

func (m *fakePatients) CountVisitedDoctors(patientID uint) (int64, error) {
	return 0, nil
}

func (m *fakePatients) CountPrescriptions(patientID uint) (int64, error) {
	return 0, nil
}

func (m *fakePatients) UpcomingAppointments(patientID uint, fromDate string, limit int) ([]models.Appointment, error) {
	return nil, nil
}

type fakeSchedules struct {
	seq   uint
	items map[uint]*models.DoctorSchedule
}

func (m *fakeSchedules) Create(schedule *models.DoctorSchedule) error {
	m.seq++
	schedule.ID = m.seq
	copied := *schedule
	m.items[schedule.ID] = &copied
	return nil
}

func (m *fakeSchedules) ByID(id uint) (*models.DoctorSchedule, error) {
	if schedule, ok := m.items[id]; ok {
		copied := *schedule
		return &copied, nil
	}
	return nil, nil
}

func (m *fakeSchedules) ByDoctor(doctorID uint) ([]models.DoctorSchedule, error) {
	var schedules []models.DoctorSchedule
	for _, schedule := range m.items {
		if schedule.DoctorID == doctorID {
			schedules = append(schedules, *schedule)
		}
	}
	return schedules, nil
}

func (m *fakeSchedules) All(offset, limit int) ([]models.DoctorSchedule, error) {
	var schedules []models.DoctorSchedule
	for _, schedule := range m.items {
		schedules = append(schedules, *schedule)
	}
	return schedules, nil
}

func (m *fakeSchedules) Update(id uint, fields map[string]interface{}) (*models.DoctorSchedule, error) {
	schedule, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	if v, ok := fields["end_time"].(string); ok {
		schedule.EndTime = v
	}
	copied := *schedule
	return &copied, nil
}

func (m *fakeSchedules) Delete(id uint) (bool, error) {
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

type fakeAppointments struct {
	seq   uint
	items map[uint]*models.Appointment
}

func (m *fakeAppointments) Create(appointment *models.Appointment) error {
	m.seq++
	appointment.ID = m.seq
	copied := *appointment
	m.items[appointment.ID] = &copied
	return nil
}

func (m *fakeAppointments) ByID(id uint) (*models.Appointment, error) {
	if appointment, ok := m.items[id]; ok {
		copied := *appointment
		return &copied, nil
	}
	return nil, nil
}

func (m *fakeAppointments) ByPatient(patientID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	for _, appointment := range m.items {
		if appointment.PatientID == patientID {
			appointments = append(appointments, *appointment)
		}
	}
	return appointments, nil
}

func (m *fakeAppointments) ByDoctor(doctorID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	for _, appointment := range m.items {
		if appointment.DoctorID == doctorID {
			appointments = append(appointments, *appointment)
		}
	}
	return appointments, nil
}

func (m *fakeAppointments) All(offset, limit int) ([]models.Appointment, error) {
	var appointments []models.Appointment
	for _, appointment := range m.items {
		appointments = append(appointments, *appointment)
	}
	return appointments, nil
}

func (m *fakeAppointments) AllDetailed(offset, limit int) ([]models.Appointment, error) {
	return m.All(offset, limit)
}

func (m *fakeAppointments) CountBySchedule(scheduleID uint, date string) (int64, error) {
	return 0, nil
}

func (m *fakeAppointments) Update(id uint, fields map[string]interface{}) (*models.Appointment, error) {
	appointment, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	switch v := fields["status"].(type) {
	case string:
		appointment.Status = models.AppointmentStatus(v)
	case models.AppointmentStatus:
		appointment.Status = v
	}
	if v, ok := fields["appointment_date"].(string); ok {
		appointment.AppointmentDate = v
	}
	copied := *appointment
	return &copied, nil
}

func (m *fakeAppointments) Delete(id uint) (bool, error) {
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

type fakePrescriptions struct {
	seq     uint
	lineSeq uint
	items   map[uint]*models.Prescription
	lines   map[uint]*models.PrescriptionMedicine
}

func (m *fakePrescriptions) Create(prescription *models.Prescription) error {
	m.seq++
	prescription.ID = m.seq
	copied := *prescription
	m.items[prescription.ID] = &copied
	return nil
}

func (m *fakePrescriptions) withLines(p *models.Prescription) *models.Prescription {
	copied := *p
	copied.Medicines = nil
	for _, line := range m.lines {
		if line.PrescriptionID == p.ID {
			copied.Medicines = append(copied.Medicines, *line)
		}
	}
	return &copied
}

func (m *fakePrescriptions) ByID(id uint) (*models.Prescription, error) {
	if prescription, ok := m.items[id]; ok {
		return m.withLines(prescription), nil
	}
	return nil, nil
}

func (m *fakePrescriptions) ByAppointment(appointmentID uint) (*models.Prescription, error) {
	for _, prescription := range m.items {
		if prescription.AppointmentID == appointmentID {
			return m.withLines(prescription), nil
		}
	}
	return nil, nil
}

func (m *fakePrescriptions) ByPatient(patientID uint) ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	for _, prescription := range m.items {
		if prescription.PatientID == patientID {
			prescriptions = append(prescriptions, *m.withLines(prescription))
		}
	}
	return prescriptions, nil
}

func (m *fakePrescriptions) All(offset, limit int) ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	for _, prescription := range m.items {
		prescriptions = append(prescriptions, *m.withLines(prescription))
	}
	return prescriptions, nil
}

func (m *fakePrescriptions) Update(id uint, fields map[string]interface{}) (*models.Prescription, error) {
	prescription, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	if v, ok := fields["notes"].(string); ok {
		prescription.Notes = v
	}
	if v, ok := fields["document_path"].(string); ok {
		prescription.DocumentPath = v
	}
	copied := *prescription
	return &copied, nil
}

func (m *fakePrescriptions) Delete(id uint) (bool, error) {
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	for lineID, line := range m.lines {
		if line.PrescriptionID == id {
			delete(m.lines, lineID)
		}
	}
	delete(m.items, id)
	return true, nil
}

func (m *fakePrescriptions) DeleteByAppointment(appointmentID uint) error {
	for id, prescription := range m.items {
		if prescription.AppointmentID == appointmentID {
			_, err := m.Delete(id)
			return err
		}
	}
	return nil
}

func (m *fakePrescriptions) AddMedicine(item *models.PrescriptionMedicine) error {
	m.lineSeq++
	item.ID = m.lineSeq
	copied := *item
	m.lines[item.ID] = &copied
	return nil
}

func (m *fakePrescriptions) UpdateMedicine(id uint, fields map[string]interface{}) error {
	line, ok := m.lines[id]
	if !ok {
		return nil
	}
	if v, ok := fields["dosage"].(string); ok {
		line.Dosage = v
	}
	return nil
}

func (m *fakePrescriptions) DeleteMedicine(id uint) error {
	delete(m.lines, id)
	return nil
}

func (m *fakePrescriptions) MedicinesOf(prescriptionID uint) ([]models.PrescriptionMedicine, error) {
	var items []models.PrescriptionMedicine
	for _, line := range m.lines {
		if line.PrescriptionID == prescriptionID {
			items = append(items, *line)
		}
	}
	return items, nil
}

type fakeMedicines struct {
	seq   uint
	items map[uint]*models.Medicine
}

func (m *fakeMedicines) Create(medicine *models.Medicine) error {
	m.seq++
	medicine.ID = m.seq
	copied := *medicine
	m.items[medicine.ID] = &copied
	return nil
}

func (m *fakeMedicines) ByID(id uint) (*models.Medicine, error) {
	if medicine, ok := m.items[id]; ok {
		copied := *medicine
		return &copied, nil
	}
	return nil, nil
}

func (m *fakeMedicines) ByName(name string) ([]models.Medicine, error) {
	var medicines []models.Medicine
	for _, medicine := range m.items {
		if strings.HasPrefix(medicine.Name, name) {
			medicines = append(medicines, *medicine)
		}
	}
	return medicines, nil
}

func (m *fakeMedicines) All(offset, limit int) ([]models.Medicine, error) {
	var medicines []models.Medicine
	for _, medicine := range m.items {
		medicines = append(medicines, *medicine)
	}
	return medicines, nil
}

func (m *fakeMedicines) Update(id uint, fields map[string]interface{}) (*models.Medicine, error) {
	medicine, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	if v, ok := fields["name"].(string); ok {
		medicine.Name = v
	}
	copied := *medicine
	return &copied, nil
}

func (m *fakeMedicines) Delete(id uint) (bool, error) {
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

func newFakeStore() *repository.Store {
	return &repository.Store{
		Users:         &fakeUsers{items: make(map[uint]*models.User)},
		Doctors:       &fakeDoctors{items: make(map[uint]*models.Doctor)},
		Patients:      &fakePatients{items: make(map[uint]*models.Patient)},
		Schedules:     &fakeSchedules{items: make(map[uint]*models.DoctorSchedule)},
		Appointments:  &fakeAppointments{items: make(map[uint]*models.Appointment)},
		Prescriptions: &fakePrescriptions{items: make(map[uint]*models.Prescription), lines: make(map[uint]*models.PrescriptionMedicine)},
		Medicines:     &fakeMedicines{items: make(map[uint]*models.Medicine)},
	}
}
