package repository

import (
	"gorm.io/gorm"

	"mediconnect-server/internal/models"
)

// PrescriptionRepository is the data access surface for prescriptions and
// their medicine line items.
type PrescriptionRepository interface {
	Create(prescription *models.Prescription) error
	ByID(id uint) (*models.Prescription, error)
	ByAppointment(appointmentID uint) (*models.Prescription, error)
	ByPatient(patientID uint) ([]models.Prescription, error)
	All(offset, limit int) ([]models.Prescription, error)
	Update(id uint, fields map[string]interface{}) (*models.Prescription, error)
	Delete(id uint) (bool, error)
	DeleteByAppointment(appointmentID uint) error

	AddMedicine(item *models.PrescriptionMedicine) error
	UpdateMedicine(id uint, fields map[string]interface{}) error
	DeleteMedicine(id uint) error
	MedicinesOf(prescriptionID uint) ([]models.PrescriptionMedicine, error)
}

type prescriptionRepo struct {
	db *gorm.DB
}

func (r *prescriptionRepo) Create(prescription *models.Prescription) error {
	return r.db.Create(prescription).Error
}

func (r *prescriptionRepo) ByID(id uint) (*models.Prescription, error) {
	var prescription models.Prescription
	err := r.db.Preload("Medicines.Medicine").First(&prescription, "id = ?", id).Error
	if err != nil {
		return nil, notFoundToNil(err)
	}
	return &prescription, nil
}

func (r *prescriptionRepo) ByAppointment(appointmentID uint) (*models.Prescription, error) {
	var prescription models.Prescription
	err := r.db.Preload("Medicines.Medicine").First(&prescription, "appointment_id = ?", appointmentID).Error
	if err != nil {
		return nil, notFoundToNil(err)
	}
	return &prescription, nil
}

func (r *prescriptionRepo) ByPatient(patientID uint) ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	err := r.db.Preload("Medicines.Medicine").Where("patient_id = ?", patientID).Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (r *prescriptionRepo) All(offset, limit int) ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	err := r.db.Preload("Medicines.Medicine").Offset(offset).Limit(limit).Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (r *prescriptionRepo) Update(id uint, fields map[string]interface{}) (*models.Prescription, error) {
	var prescription models.Prescription
	if err := r.db.First(&prescription, "id = ?", id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	if err := r.db.Model(&prescription).Updates(fields).Error; err != nil {
		return nil, err
	}
	return &prescription, nil
}

func (r *prescriptionRepo) Delete(id uint) (bool, error) {
	if err := r.db.Where("prescription_id = ?", id).Delete(&models.PrescriptionMedicine{}).Error; err != nil {
		return false, err
	}
	res := r.db.Delete(&models.Prescription{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

// DeleteByAppointment removes the appointment's prescription and its line
// items. Used when an appointment is deleted so the cascade does not depend
// on engine-level foreign keys.
func (r *prescriptionRepo) DeleteByAppointment(appointmentID uint) error {
	var prescription models.Prescription
	err := r.db.First(&prescription, "appointment_id = ?", appointmentID).Error
	if err != nil {
		return notFoundToNil(err)
	}
	if err := r.db.Where("prescription_id = ?", prescription.ID).Delete(&models.PrescriptionMedicine{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&prescription).Error
}

func (r *prescriptionRepo) AddMedicine(item *models.PrescriptionMedicine) error {
	return r.db.Create(item).Error
}

func (r *prescriptionRepo) UpdateMedicine(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.PrescriptionMedicine{}).Where("id = ?", id).Updates(fields).Error
}

func (r *prescriptionRepo) DeleteMedicine(id uint) error {
	return r.db.Delete(&models.PrescriptionMedicine{}, "id = ?", id).Error
}

func (r *prescriptionRepo) MedicinesOf(prescriptionID uint) ([]models.PrescriptionMedicine, error) {
	var items []models.PrescriptionMedicine
	err := r.db.Preload("Medicine").Where("prescription_id = ?", prescriptionID).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
