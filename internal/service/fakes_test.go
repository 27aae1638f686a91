package service

import (
	"mediconnect-server/internal/models"
	"mediconnect-server/internal/repository"
)

// In-memory repositories for exercising the services without a database.
// Store.Transact runs the callback directly when no connection is attached,
// so the fakes slot straight into a hand-built Store.

type memUsers struct {
	seq   uint
	items map[uint]*models.User
}

func newMemUsers() *memUsers {
	return &memUsers{items: make(map[uint]*models.User)}
}

func (m *memUsers) Create(user *models.User) error {
	m.seq++
	user.ID = m.seq
	copied := *user
	m.items[user.ID] = &copied
	return nil
}

func (m *memUsers) ByID(id uint) (*models.User, error) {
	if user, ok := m.items[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, nil
}

func (m *memUsers) ByEmail(email string) (*models.User, error) {
	for _, user := range m.items {
		if user.Email != nil && *user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memUsers) ByPhone(phone string) (*models.User, error) {
	for _, user := range m.items {
		if user.Phone != nil && *user.Phone == phone {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memUsers) All(offset, limit int) ([]models.User, error) {
	var users []models.User
	for _, user := range m.items {
		users = append(users, *user)
	}
	return users, nil
}

func (m *memUsers) Delete(id uint) (bool, error) {
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

type memDoctors struct {
	items map[uint]*models.Doctor
}

func newMemDoctors() *memDoctors {
	return &memDoctors{items: make(map[uint]*models.Doctor)}
}

func (m *memDoctors) Create(doctor *models.Doctor) error {
	copied := *doctor
	m.items[doctor.ID] = &copied
	return nil
}

func (m *memDoctors) ByID(id uint) (*models.Doctor, error) {
	if doctor, ok := m.items[id]; ok {
		copied := *doctor
		return &copied, nil
	}
	return nil, nil
}

func (m *memDoctors) All(offset, limit int) ([]models.Doctor, error) {
	var doctors []models.Doctor
	for _, doctor := range m.items {
		doctors = append(doctors, *doctor)
	}
	return doctors, nil
}

func (m *memDoctors) ByStatus(status models.DoctorStatus) ([]models.Doctor, error) {
	var doctors []models.Doctor
	for _, doctor := range m.items {
		if doctor.Status == status {
			doctors = append(doctors, *doctor)
		}
	}
	return doctors, nil
}

func (m *memDoctors) Update(id uint, fields map[string]interface{}) (*models.Doctor, error) {
	doctor, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	for key, value := range fields {
		switch key {
		case "full_name":
			doctor.FullName = value.(string)
		case "status":
			switch v := value.(type) {
			case string:
				doctor.Status = models.DoctorStatus(v)
			case models.DoctorStatus:
				doctor.Status = v
			}
		case "chamber":
			doctor.Chamber = value.(string)
		}
	}
	copied := *doctor
	return &copied, nil
}

func (m *memDoctors) Delete(id uint) (bool, error) {
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

type memPatients struct {
	items map[uint]*models.Patient

	upcomingCount     int64
	visitedCount      int64
	prescriptionCount int64
	upcomingAppts     []models.Appointment
	takenSerials      map[int]bool
}

func newMemPatients() *memPatients {
	return &memPatients{items: make(map[uint]*models.Patient), takenSerials: make(map[int]bool)}
}

func (m *memPatients) Create(patient *models.Patient) error {
	copied := *patient
	m.items[patient.ID] = &copied
	return nil
}

func (m *memPatients) ByID(id uint) (*models.Patient, error) {
	if patient, ok := m.items[id]; ok {
		copied := *patient
		return &copied, nil
	}
	return nil, nil
}

func (m *memPatients) All(offset, limit int) ([]models.Patient, error) {
	var patients []models.Patient
	for _, patient := range m.items {
		patients = append(patients, *patient)
	}
	return patients, nil
}

func (m *memPatients) SearchByPhone(phone string) ([]models.Patient, error) {
	var patients []models.Patient
	for _, patient := range m.items {
		if len(patient.Phone) >= len(phone) && patient.Phone[:len(phone)] == phone {
			patients = append(patients, *patient)
		}
	}
	return patients, nil
}

func (m *memPatients) SerialExists(serial int) (bool, error) {
	if m.takenSerials[serial] {
		return true, nil
	}
	for _, patient := range m.items {
		if patient.SerialNumber == serial {
			return true, nil
		}
	}
	return false, nil
}

func (m *memPatients) Update(id uint, fields map[string]interface{}) (*models.Patient, error) {
	patient, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	for key, value := range fields {
		switch key {
		case "full_name":
			patient.FullName = value.(string)
		case "address":
			patient.Address = value.(string)
		case "phone":
			patient.Phone = value.(string)
		}
	}
	copied := *patient
	return &copied, nil
}

func (m *memPatients) Delete(id uint) (bool, error) {
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

func (m *memPatients) CountUpcomingAppointments(patientID uint, fromDate string) (int64, error) {
	return m.upcomingCount, nil
}

func (m *memPatients) CountVisitedDoctors(patientID uint) (int64, error) {
	return m.visitedCount, nil
}

func (m *memPatients) CountPrescriptions(patientID uint) (int64, error) {
	return m.prescriptionCount, nil
}

func (m *memPatients) UpcomingAppointments(patientID uint, fromDate string, limit int) ([]models.Appointment, error) {
	return m.upcomingAppts, nil
}

type memSchedules struct {
	seq   uint
	items map[uint]*models.DoctorSchedule
}

func newMemSchedules() *memSchedules {
	return &memSchedules{items: make(map[uint]*models.DoctorSchedule)}
}

func (m *memSchedules) Create(schedule *models.DoctorSchedule) error {
	m.seq++
	schedule.ID = m.seq
	copied := *schedule
	m.items[schedule.ID] = &copied
	return nil
}

func (m *memSchedules) ByID(id uint) (*models.DoctorSchedule, error) {
	if schedule, ok := m.items[id]; ok {
		copied := *schedule
		return &copied, nil
	}
	return nil, nil
}

func (m *memSchedules) ByDoctor(doctorID uint) ([]models.DoctorSchedule, error) {
	var schedules []models.DoctorSchedule
	for _, schedule := range m.items {
		if schedule.DoctorID == doctorID {
			schedules = append(schedules, *schedule)
		}
	}
	return schedules, nil
}

func (m *memSchedules) All(offset, limit int) ([]models.DoctorSchedule, error) {
	var schedules []models.DoctorSchedule
	for _, schedule := range m.items {
		schedules = append(schedules, *schedule)
	}
	return schedules, nil
}

func (m *memSchedules) Update(id uint, fields map[string]interface{}) (*models.DoctorSchedule, error) {
	schedule, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	for key, value := range fields {
		switch key {
		case "day_of_week":
			schedule.DayOfWeek = value.(string)
		case "start_time":
			schedule.StartTime = value.(string)
		case "end_time":
			schedule.EndTime = value.(string)
		}
	}
	copied := *schedule
	return &copied, nil
}

func (m *memSchedules) Delete(id uint) (bool, error) {
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

type memAppointments struct {
	seq   uint
	items map[uint]*models.Appointment
}

func newMemAppointments() *memAppointments {
	return &memAppointments{items: make(map[uint]*models.Appointment)}
}

func (m *memAppointments) Create(appointment *models.Appointment) error {
	m.seq++
	appointment.ID = m.seq
	copied := *appointment
	m.items[appointment.ID] = &copied
	return nil
}

func (m *memAppointments) ByID(id uint) (*models.Appointment, error) {
	if appointment, ok := m.items[id]; ok {
		copied := *appointment
		return &copied, nil
	}
	return nil, nil
}

func (m *memAppointments) ByPatient(patientID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	for _, appointment := range m.items {
		if appointment.PatientID == patientID {
			appointments = append(appointments, *appointment)
		}
	}
	return appointments, nil
}

func (m *memAppointments) ByDoctor(doctorID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	for _, appointment := range m.items {
		if appointment.DoctorID == doctorID {
			appointments = append(appointments, *appointment)
		}
	}
	return appointments, nil
}

func (m *memAppointments) All(offset, limit int) ([]models.Appointment, error) {
	var appointments []models.Appointment
	for _, appointment := range m.items {
		appointments = append(appointments, *appointment)
	}
	return appointments, nil
}

func (m *memAppointments) AllDetailed(offset, limit int) ([]models.Appointment, error) {
	return m.All(offset, limit)
}

func (m *memAppointments) CountBySchedule(scheduleID uint, date string) (int64, error) {
	var count int64
	for _, appointment := range m.items {
		if appointment.ScheduleID != nil && *appointment.ScheduleID == scheduleID && appointment.AppointmentDate == date {
			count++
		}
	}
	return count, nil
}

func (m *memAppointments) Update(id uint, fields map[string]interface{}) (*models.Appointment, error) {
	appointment, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	for key, value := range fields {
		switch key {
		case "status":
			switch v := value.(type) {
			case string:
				appointment.Status = models.AppointmentStatus(v)
			case models.AppointmentStatus:
				appointment.Status = v
			}
		case "appointment_date":
			appointment.AppointmentDate = value.(string)
		case "appointment_time":
			if v, ok := value.(string); ok {
				appointment.AppointmentTime = &v
			}
		}
	}
	copied := *appointment
	return &copied, nil
}

func (m *memAppointments) Delete(id uint) (bool, error) {
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

type memPrescriptions struct {
	seq     uint
	lineSeq uint
	items   map[uint]*models.Prescription
	lines   map[uint]*models.PrescriptionMedicine
}

func newMemPrescriptions() *memPrescriptions {
	return &memPrescriptions{
		items: make(map[uint]*models.Prescription),
		lines: make(map[uint]*models.PrescriptionMedicine),
	}
}

func (m *memPrescriptions) Create(prescription *models.Prescription) error {
	m.seq++
	prescription.ID = m.seq
	copied := *prescription
	m.items[prescription.ID] = &copied
	return nil
}

func (m *memPrescriptions) withLines(p *models.Prescription) *models.Prescription {
	copied := *p
	copied.Medicines = nil
	for _, line := range m.lines {
		if line.PrescriptionID == p.ID {
			copied.Medicines = append(copied.Medicines, *line)
		}
	}
	return &copied
}

func (m *memPrescriptions) ByID(id uint) (*models.Prescription, error) {
	if prescription, ok := m.items[id]; ok {
		return m.withLines(prescription), nil
	}
	return nil, nil
}

func (m *memPrescriptions) ByAppointment(appointmentID uint) (*models.Prescription, error) {
	for _, prescription := range m.items {
		if prescription.AppointmentID == appointmentID {
			return m.withLines(prescription), nil
		}
	}
	return nil, nil
}

func (m *memPrescriptions) ByPatient(patientID uint) ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	for _, prescription := range m.items {
		if prescription.PatientID == patientID {
			prescriptions = append(prescriptions, *m.withLines(prescription))
		}
	}
	return prescriptions, nil
}

func (m *memPrescriptions) All(offset, limit int) ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	for _, prescription := range m.items {
		prescriptions = append(prescriptions, *m.withLines(prescription))
	}
	return prescriptions, nil
}

func (m *memPrescriptions) Update(id uint, fields map[string]interface{}) (*models.Prescription, error) {
	prescription, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	for key, value := range fields {
		switch key {
		case "notes":
			prescription.Notes = value.(string)
		case "document_path":
			prescription.DocumentPath = value.(string)
		}
	}
	copied := *prescription
	return &copied, nil
}

func (m *memPrescriptions) Delete(id uint) (bool, error) {
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

func (m *memPrescriptions) DeleteByAppointment(appointmentID uint) error {
	for id, prescription := range m.items {
		if prescription.AppointmentID == appointmentID {
			_, err := m.Delete(id)
			return err
		}
	}
	return nil
}

func (m *memPrescriptions) AddMedicine(item *models.PrescriptionMedicine) error {
	m.lineSeq++
	item.ID = m.lineSeq
	copied := *item
	m.lines[item.ID] = &copied
	return nil
}

func (m *memPrescriptions) UpdateMedicine(id uint, fields map[string]interface{}) error {
	line, ok := m.lines[id]
	if !ok {
		return nil
	}
	for key, value := range fields {
		switch key {
		case "dosage":
			line.Dosage = value.(string)
		case "duration":
			line.Duration = value.(string)
		case "instruction":
			line.Instruction = value.(string)
		case "medicine_id":
			line.MedicineID = value.(uint)
		}
	}
	return nil
}

func (m *memPrescriptions) DeleteMedicine(id uint) error {
	delete(m.lines, id)
	return nil
}

func (m *memPrescriptions) MedicinesOf(prescriptionID uint) ([]models.PrescriptionMedicine, error) {
	var items []models.PrescriptionMedicine
	for _, line := range m.lines {
		if line.PrescriptionID == prescriptionID {
			items = append(items, *line)
		}
	}
	return items, nil
}

type memMedicines struct {
	seq   uint
	items map[uint]*models.Medicine
}

func newMemMedicines() *memMedicines {
	return &memMedicines{items: make(map[uint]*models.Medicine)}
}

func (m *memMedicines) Create(medicine *models.Medicine) error {
	m.seq++
	medicine.ID = m.seq
	copied := *medicine
	m.items[medicine.ID] = &copied
	return nil
}

func (m *memMedicines) ByID(id uint) (*models.Medicine, error) {
	if medicine, ok := m.items[id]; ok {
		copied := *medicine
		return &copied, nil
	}
	return nil, nil
}

func (m *memMedicines) ByName(name string) ([]models.Medicine, error) {
	var medicines []models.Medicine
	for _, medicine := range m.items {
		if len(medicine.Name) >= len(name) && medicine.Name[:len(name)] == name {
			medicines = append(medicines, *medicine)
		}
	}
	return medicines, nil
}

func (m *memMedicines) All(offset, limit int) ([]models.Medicine, error) {
	var medicines []models.Medicine
	for _, medicine := range m.items {
		medicines = append(medicines, *medicine)
	}
	return medicines, nil
}

func (m *memMedicines) Update(id uint, fields map[string]interface{}) (*models.Medicine, error) {
	medicine, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	for key, value := range fields {
		switch key {
		case "name":
			medicine.Name = value.(string)
		case "strength":
			medicine.Strength = value.(string)
		}
	}
	copied := *medicine
	return &copied, nil
}

func (m *memMedicines) Delete(id uint) (bool, error) {
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

// newMemStore builds a Store over the in-memory repositories.
func newMemStore() (*repository.Store, *memUsers, *memPatients, *memAppointments) {
	users := newMemUsers()
	patients := newMemPatients()
	appointments := newMemAppointments()
	store := &repository.Store{
		Users:         users,
		Doctors:       newMemDoctors(),
		Patients:      patients,
		Schedules:     newMemSchedules(),
		Appointments:  appointments,
		Prescriptions: newMemPrescriptions(),
		Medicines:     newMemMedicines(),
	}
	return store, users, patients, appointments
}
