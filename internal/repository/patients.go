package repository

import (
	"gorm.io/gorm"

	"mediconnect-server/internal/models"
)

// PatientRepository is the data access surface for patient profiles,
// including the dashboard counts derived from a patient's appointments.
type PatientRepository interface {
	Create(patient *models.Patient) error
	ByID(id uint) (*models.Patient, error)
	All(offset, limit int) ([]models.Patient, error)
	SearchByPhone(phone string) ([]models.Patient, error)
	SerialExists(serial int) (bool, error)
	Update(id uint, fields map[string]interface{}) (*models.Patient, error)
	Delete(id uint) (bool, error)

	CountUpcomingAppointments(patientID uint, fromDate string) (int64, error)
	CountVisitedDoctors(patientID uint) (int64, error)
	CountPrescriptions(patientID uint) (int64, error)
	UpcomingAppointments(patientID uint, fromDate string, limit int) ([]models.Appointment, error)
}

type patientRepo struct {
	db *gorm.DB
}

func (r *patientRepo) Create(patient *models.Patient) error {
	return r.db.Create(patient).Error
}

func (r *patientRepo) ByID(id uint) (*models.Patient, error) {
	var patient models.Patient
	if err := r.db.Preload("BloodGroup").First(&patient, "id = ?", id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &patient, nil
}

func (r *patientRepo) All(offset, limit int) ([]models.Patient, error) {
	var patients []models.Patient
	if err := r.db.Preload("BloodGroup").Offset(offset).Limit(limit).Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepo) SearchByPhone(phone string) ([]models.Patient, error) {
	var patients []models.Patient
	if err := r.db.Where("phone LIKE ?", phone+"%").Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepo) SerialExists(serial int) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Patient{}).Where("serial_number = ?", serial).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *patientRepo) Update(id uint, fields map[string]interface{}) (*models.Patient, error) {
	var patient models.Patient
	if err := r.db.First(&patient, "id = ?", id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	if err := r.db.Model(&patient).Updates(fields).Error; err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepo) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.Patient{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func (r *patientRepo) CountUpcomingAppointments(patientID uint, fromDate string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Appointment{}).
		Where("patient_id = ? AND appointment_date >= ?", patientID, fromDate).
		Count(&count).Error
	return count, err
}

func (r *patientRepo) CountVisitedDoctors(patientID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Appointment{}).
		Distinct("doctor_id").
		Where("patient_id = ?", patientID).
		Count(&count).Error
	return count, err
}

func (r *patientRepo) CountPrescriptions(patientID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Prescription{}).
		Where("patient_id = ?", patientID).
		Count(&count).Error
	return count, err
}

func (r *patientRepo) UpcomingAppointments(patientID uint, fromDate string, limit int) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Preload("Doctor").
		Where("patient_id = ? AND appointment_date >= ?", patientID, fromDate).
		Order("appointment_date, appointment_time").
		Limit(limit).
		Find(&appointments).Error
	return appointments, err
}
