package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"mediconnect-server/internal/models"
	"mediconnect-server/internal/repository"
)

// DocumentRenderer renders a prescription into a downloadable document.
type DocumentRenderer interface {
	RenderPrescription(p *models.Prescription, a *models.Appointment, d *models.Doctor, pt *models.Patient) ([]byte, error)
}

// PrescriptionService covers prescription issuance, the medicine line item
// reconciliation, and document generation.
type PrescriptionService struct {
	store       *repository.Store
	renderer    DocumentRenderer
	documentDir string
}

// NewPrescriptionService creates a new PrescriptionService.
func NewPrescriptionService(store *repository.Store, renderer DocumentRenderer, documentDir string) *PrescriptionService {
	return &PrescriptionService{store: store, renderer: renderer, documentDir: documentDir}
}

// MedicineInput describes a catalog medicine inline, for line items citing a
// medicine that does not exist yet.
type MedicineInput struct {
	Name         string
	Strength     string
	Form         string
	Manufacturer string
}

// MedicineItemInput is one prescription line item. Either MedicineID or the
// inline Medicine must be present. ID refers to an existing line item when
// updating.
type MedicineItemInput struct {
	ID          *uint
	MedicineID  *uint
	Medicine    *MedicineInput
	Dosage      string
	Duration    string
	Instruction string
}

// PrescriptionInput is the payload for issuing a prescription.
type PrescriptionInput struct {
	AppointmentID uint
	Notes         string
	Medicines     []MedicineItemInput
}

// Issue creates a prescription against an appointment. The acting doctor
// must own the appointment; issuance completes it.
func (s *PrescriptionService) Issue(in PrescriptionInput, caller Identity) (*models.Prescription, error) {
	var prescriptionID uint

	err := s.store.Transact(func(st *repository.Store) error {
		appointment, err := st.Appointments.ByID(in.AppointmentID)
		if err != nil {
			return err
		}
		if appointment == nil {
			return fmt.Errorf("%w: appointment %d", ErrResourceNotFound, in.AppointmentID)
		}

		if !caller.IsAnonymous() && appointment.DoctorID != caller.UserID {
			return fmt.Errorf("%w: you are not allowed to create a prescription for this appointment", ErrPermissionDenied)
		}

		existing, err := st.Prescriptions.ByAppointment(in.AppointmentID)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: appointment %d already has a prescription", ErrValidation, in.AppointmentID)
		}

		if !appointment.Status.CanTransition(models.StatusCompleted) {
			return fmt.Errorf("%w: appointment is %s", ErrValidation, appointment.Status)
		}
		if _, err := st.Appointments.Update(appointment.ID, map[string]interface{}{"status": models.StatusCompleted}); err != nil {
			return err
		}

		prescription := models.Prescription{
			AppointmentID: in.AppointmentID,
			PatientID:     appointment.PatientID,
			Notes:         in.Notes,
		}
		if err := st.Prescriptions.Create(&prescription); err != nil {
			return err
		}

		for _, item := range in.Medicines {
			medicineID, err := resolveMedicine(st, item)
			if err != nil {
				return err
			}
			line := models.PrescriptionMedicine{
				PrescriptionID: prescription.ID,
				MedicineID:     medicineID,
				Dosage:         item.Dosage,
				Duration:       item.Duration,
				Instruction:    item.Instruction,
			}
			if err := st.Prescriptions.AddMedicine(&line); err != nil {
				return err
			}
		}

		prescriptionID = prescription.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(prescriptionID)
}

// Get returns a prescription with its medicine lines.
func (s *PrescriptionService) Get(id uint) (*models.Prescription, error) {
	prescription, err := s.store.Prescriptions.ByID(id)
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, fmt.Errorf("%w: prescription %d", ErrResourceNotFound, id)
	}
	return prescription, nil
}

// ByAppointment returns the prescription issued against an appointment.
func (s *PrescriptionService) ByAppointment(appointmentID uint) (*models.Prescription, error) {
	prescription, err := s.store.Prescriptions.ByAppointment(appointmentID)
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, fmt.Errorf("%w: no prescription for appointment %d", ErrResourceNotFound, appointmentID)
	}
	return prescription, nil
}

// ByPatient lists all prescriptions for a patient.
func (s *PrescriptionService) ByPatient(patientID uint) ([]models.Prescription, error) {
	return s.store.Prescriptions.ByPatient(patientID)
}

// List returns prescriptions with pagination.
func (s *PrescriptionService) List(offset, limit int) ([]models.Prescription, error) {
	return s.store.Prescriptions.All(offset, limit)
}

// Update changes the notes and reconciles the medicine list against the
// payload: items carrying an existing line id are updated in place, items
// without one are inserted, lines missing from the payload are deleted.
func (s *PrescriptionService) Update(id uint, notes *string, items []MedicineItemInput, caller Identity) (*models.Prescription, error) {
	err := s.store.Transact(func(st *repository.Store) error {
		prescription, err := st.Prescriptions.ByID(id)
		if err != nil {
			return err
		}
		if prescription == nil {
			return fmt.Errorf("%w: prescription %d", ErrResourceNotFound, id)
		}

		if !caller.IsAnonymous() && caller.Role == models.RoleDoctor {
			appointment, err := st.Appointments.ByID(prescription.AppointmentID)
			if err != nil {
				return err
			}
			if appointment != nil && appointment.DoctorID != caller.UserID {
				return fmt.Errorf("%w: prescription belongs to another doctor", ErrPermissionDenied)
			}
		}

		if notes != nil {
			if _, err := st.Prescriptions.Update(id, map[string]interface{}{"notes": *notes}); err != nil {
				return err
			}
		}

		if items != nil {
			if err := reconcileMedicines(st, prescription.ID, items); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(id)
}

// reconcileMedicines performs the replace-by-diff of line items.
func reconcileMedicines(st *repository.Store, prescriptionID uint, items []MedicineItemInput) error {
	existing, err := st.Prescriptions.MedicinesOf(prescriptionID)
	if err != nil {
		return err
	}
	current := make(map[uint]bool, len(existing))
	for _, line := range existing {
		current[line.ID] = true
	}

	kept := make(map[uint]bool, len(items))
	for _, item := range items {
		if item.ID != nil && current[*item.ID] {
			fields := map[string]interface{}{
				"dosage":      item.Dosage,
				"duration":    item.Duration,
				"instruction": item.Instruction,
			}
			if item.MedicineID != nil {
				fields["medicine_id"] = *item.MedicineID
			}
			if err := st.Prescriptions.UpdateMedicine(*item.ID, fields); err != nil {
				return err
			}
			kept[*item.ID] = true
			continue
		}

		medicineID, err := resolveMedicine(st, item)
		if err != nil {
			return err
		}
		line := models.PrescriptionMedicine{
			PrescriptionID: prescriptionID,
			MedicineID:     medicineID,
			Dosage:         item.Dosage,
			Duration:       item.Duration,
			Instruction:    item.Instruction,
		}
		if err := st.Prescriptions.AddMedicine(&line); err != nil {
			return err
		}
	}

	for _, line := range existing {
		if !kept[line.ID] {
			if err := st.Prescriptions.DeleteMedicine(line.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

// resolveMedicine returns the catalog id for a line item, creating the
// medicine when only inline details were supplied.
func resolveMedicine(st *repository.Store, item MedicineItemInput) (uint, error) {
	if item.MedicineID != nil {
		medicine, err := st.Medicines.ByID(*item.MedicineID)
		if err != nil {
			return 0, err
		}
		if medicine == nil {
			return 0, fmt.Errorf("%w: medicine %d", ErrResourceNotFound, *item.MedicineID)
		}
		return medicine.ID, nil
	}
	if item.Medicine == nil || item.Medicine.Name == "" {
		return 0, fmt.Errorf("%w: line item needs a medicine id or inline medicine details", ErrValidation)
	}
	medicine := models.Medicine{
		Name:         item.Medicine.Name,
		Strength:     item.Medicine.Strength,
		Form:         item.Medicine.Form,
		Manufacturer: item.Medicine.Manufacturer,
	}
	if err := st.Medicines.Create(&medicine); err != nil {
		return 0, err
	}
	return medicine.ID, nil
}

// Delete removes a prescription and its line items.
func (s *PrescriptionService) Delete(id uint) error {
	deleted, err := s.store.Prescriptions.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: prescription %d", ErrResourceNotFound, id)
	}
	return nil
}

// Document renders the prescription PDF, persists it under the document
// directory, records the path, and returns the bytes.
func (s *PrescriptionService) Document(id uint) (*models.Prescription, []byte, error) {
	prescription, err := s.Get(id)
	if err != nil {
		return nil, nil, err
	}

	appointment, err := s.store.Appointments.ByID(prescription.AppointmentID)
	if err != nil {
		return nil, nil, err
	}
	if appointment == nil {
		return nil, nil, fmt.Errorf("%w: appointment %d", ErrResourceNotFound, prescription.AppointmentID)
	}
	doctor, err := s.store.Doctors.ByID(appointment.DoctorID)
	if err != nil {
		return nil, nil, err
	}
	patient, err := s.store.Patients.ByID(prescription.PatientID)
	if err != nil {
		return nil, nil, err
	}

	data, err := s.renderer.RenderPrescription(prescription, appointment, doctor, patient)
	if err != nil {
		return nil, nil, err
	}

	if err := os.MkdirAll(s.documentDir, 0o755); err != nil {
		return nil, nil, err
	}
	name := fmt.Sprintf("prescription-%d-%s.pdf", prescription.ID, uuid.New().String())
	path := filepath.Join(s.documentDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, nil, err
	}
	if _, err := s.store.Prescriptions.Update(prescription.ID, map[string]interface{}{"document_path": path}); err != nil {
		return nil, nil, err
	}
	prescription.DocumentPath = path

	return prescription, data, nil
}
