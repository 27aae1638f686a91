package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"mediconnect-server/internal/middleware"
	"mediconnect-server/internal/service"
	"mediconnect-server/internal/utils"
)

// PrescriptionHandler handles prescription requests.
type PrescriptionHandler struct {
	Prescriptions *service.PrescriptionService
}

// NewPrescriptionHandler creates a new PrescriptionHandler.
func NewPrescriptionHandler(prescriptions *service.PrescriptionService) *PrescriptionHandler {
	return &PrescriptionHandler{Prescriptions: prescriptions}
}

// MedicineRequest describes a medicine created inline on a prescription.
type MedicineRequest struct {
	Name         string `json:"name" binding:"required"`
	Strength     string `json:"strength"`
	Form         string `json:"form"`
	Manufacturer string `json:"manufacturer"`
}

// MedicineItemRequest is one medicine line on a prescription. Either
// medicine_id or an inline medicine must be present.
type MedicineItemRequest struct {
	ID          *uint            `json:"id"`
	MedicineID  *uint            `json:"medicine_id"`
	Medicine    *MedicineRequest `json:"medicine"`
	Dosage      string           `json:"dosage" binding:"required"`
	Duration    string           `json:"duration"`
	Instruction string           `json:"instruction"`
}

// PrescriptionRequest represents the request body for issuing a prescription.
type PrescriptionRequest struct {
	AppointmentID uint                  `json:"appointment_id" binding:"required"`
	Notes         string                `json:"notes"`
	Medicines     []MedicineItemRequest `json:"medicines" binding:"omitempty,dive"`
}

// toMedicineItems keeps nil as nil so an omitted medicines field does not
// reconcile to an empty line set.
func toMedicineItems(items []MedicineItemRequest) []service.MedicineItemInput {
	if items == nil {
		return nil
	}
	out := make([]service.MedicineItemInput, 0, len(items))
	for _, item := range items {
		in := service.MedicineItemInput{
			ID:          item.ID,
			MedicineID:  item.MedicineID,
			Dosage:      item.Dosage,
			Duration:    item.Duration,
			Instruction: item.Instruction,
		}
		if item.Medicine != nil {
			in.Medicine = &service.MedicineInput{
				Name:         item.Medicine.Name,
				Strength:     item.Medicine.Strength,
				Form:         item.Medicine.Form,
				Manufacturer: item.Medicine.Manufacturer,
			}
		}
		out = append(out, in)
	}
	return out
}

// Create issues a prescription for an appointment, completing it.
func (h *PrescriptionHandler) Create(c *gin.Context) {
	var req PrescriptionRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	prescription, err := h.Prescriptions.Issue(service.PrescriptionInput{
		AppointmentID: req.AppointmentID,
		Notes:         req.Notes,
		Medicines:     toMedicineItems(req.Medicines),
	}, middleware.GetIdentity(c))
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Created(c, "Prescription created successfully", prescription)
}

// Get returns a prescription by id.
func (h *PrescriptionHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	prescription, err := h.Prescriptions.Get(id)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Prescription retrieved successfully", prescription)
}

// List returns a page of prescriptions.
func (h *PrescriptionHandler) List(c *gin.Context) {
	offset, limit := pagination(c)
	prescriptions, err := h.Prescriptions.List(offset, limit)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Prescriptions retrieved successfully", prescriptions)
}

// ByAppointment returns the prescription attached to an appointment.
func (h *PrescriptionHandler) ByAppointment(c *gin.Context) {
	appointmentID, ok := parseIDParam(c, "appointment_id")
	if !ok {
		return
	}
	prescription, err := h.Prescriptions.ByAppointment(appointmentID)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Prescription retrieved successfully", prescription)
}

// ByPatient returns all prescriptions of a patient.
func (h *PrescriptionHandler) ByPatient(c *gin.Context) {
	patientID, ok := parseIDParam(c, "patient_id")
	if !ok {
		return
	}
	prescriptions, err := h.Prescriptions.ByPatient(patientID)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Prescriptions retrieved successfully", prescriptions)
}

// UpdatePrescriptionRequest represents the request body for updating a
// prescription. Omitted medicine lines are removed, lines with ids are
// updated, new lines are added.
type UpdatePrescriptionRequest struct {
	Notes     *string               `json:"notes"`
	Medicines []MedicineItemRequest `json:"medicines" binding:"omitempty,dive"`
}

// Update edits a prescription's notes and reconciles its medicine lines.
func (h *PrescriptionHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdatePrescriptionRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	prescription, err := h.Prescriptions.Update(id, req.Notes, toMedicineItems(req.Medicines), middleware.GetIdentity(c))
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Prescription updated successfully", prescription)
}

// Delete removes a prescription and its medicine lines.
func (h *PrescriptionHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.Prescriptions.Delete(id); err != nil {
		renderError(c, err)
		return
	}
	utils.NoContent(c)
}

// Document renders the prescription as a PDF and returns it.
func (h *PrescriptionHandler) Document(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	prescription, pdf, err := h.Prescriptions.Document(id)
	if err != nil {
		renderError(c, err)
		return
	}

	filename := fmt.Sprintf("prescription-%d.pdf", prescription.ID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(200, "application/pdf", pdf)
}
