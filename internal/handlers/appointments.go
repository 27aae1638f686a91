package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"mediconnect-server/internal/middleware"
	"mediconnect-server/internal/models"
	"mediconnect-server/internal/notify"
	"mediconnect-server/internal/service"
	"mediconnect-server/internal/utils"
)

// AppointmentHandler handles appointment requests, including the walk-in
// booking flow that registers a patient account on the fly.
type AppointmentHandler struct {
	Appointments *service.AppointmentService
	Mailer       notify.Mailer
	Logger       zerolog.Logger
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(appointments *service.AppointmentService, mailer notify.Mailer, logger zerolog.Logger) *AppointmentHandler {
	return &AppointmentHandler{Appointments: appointments, Mailer: mailer, Logger: logger}
}

// AppointmentRequest represents the request body for booking an appointment
// for an existing patient.
type AppointmentRequest struct {
	DoctorID        uint    `json:"doctor_id" binding:"required"`
	PatientID       uint    `json:"patient_id" binding:"required"`
	ScheduleID      *uint   `json:"schedule_id"`
	AppointmentDate string  `json:"appointment_date" binding:"required,datetime=2006-01-02"`
	AppointmentTime *string `json:"appointment_time" binding:"omitempty,datetime=15:04"`
}

// Create books an appointment for an existing patient.
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req AppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	appointment, err := h.Appointments.Create(service.AppointmentInput{
		DoctorID:        req.DoctorID,
		PatientID:       req.PatientID,
		ScheduleID:      req.ScheduleID,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
	})
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Created(c, "Appointment created successfully", appointment)
}

// BookingRequest represents the request body for booking an appointment
// together with patient details. The patient is matched by phone, then
// email; when no account exists one is created with a temporary password.
type BookingRequest struct {
	DoctorID        uint                  `json:"doctor_id" binding:"required"`
	ScheduleID      *uint                 `json:"schedule_id"`
	AppointmentDate string                `json:"appointment_date" binding:"required,datetime=2006-01-02"`
	AppointmentTime *string               `json:"appointment_time" binding:"omitempty,datetime=15:04"`
	Patient         PatientProfileRequest `json:"patient" binding:"required"`
}

// BookingResponse is the payload returned by BookWithPatient. The temporary
// password is never returned; it is only sent to the patient by email.
type BookingResponse struct {
	Appointment    *models.Appointment `json:"appointment"`
	Patient        *models.Patient     `json:"patient"`
	PatientCreated bool                `json:"patient_created"`
}

// BookWithPatient books an appointment for a new or existing patient in one
// request. When an account was created and the patient supplied an email, a
// welcome message with the temporary password is sent in the background.
func (h *AppointmentHandler) BookWithPatient(c *gin.Context) {
	var req BookingRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	result, err := h.Appointments.BookWithPatient(service.BookingInput{
		DoctorID:        req.DoctorID,
		ScheduleID:      req.ScheduleID,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Patient: service.PatientInput{
			FullName:     req.Patient.FullName,
			Age:          req.Patient.Age,
			Gender:       req.Patient.Gender,
			Phone:        req.Patient.Phone,
			Email:        req.Patient.Email,
			BloodGroupID: req.Patient.BloodGroupID,
			Address:      req.Patient.Address,
		},
	})
	if err != nil {
		renderError(c, err)
		return
	}

	if result.PatientCreated && result.Email != "" && h.Mailer != nil {
		email, password := result.Email, result.TempPassword
		go func() {
			if err := h.Mailer.SendPatientWelcome(email, password); err != nil {
				h.Logger.Error().Err(err).Str("email", email).Msg("failed to send welcome email")
			}
		}()
	}

	utils.Created(c, "Appointment booked successfully", BookingResponse{
		Appointment:    result.Appointment,
		Patient:        result.Patient,
		PatientCreated: result.PatientCreated,
	})
}

// Get returns an appointment by id.
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	appointment, err := h.Appointments.Get(id)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Appointment retrieved successfully", appointment)
}

// List returns a page of appointments.
func (h *AppointmentHandler) List(c *gin.Context) {
	offset, limit := pagination(c)
	appointments, err := h.Appointments.List(offset, limit)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Appointments retrieved successfully", appointments)
}

// ByPatient returns all appointments of a patient.
func (h *AppointmentHandler) ByPatient(c *gin.Context) {
	patientID, ok := parseIDParam(c, "patient_id")
	if !ok {
		return
	}
	appointments, err := h.Appointments.ByPatient(patientID)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Appointments retrieved successfully", appointments)
}

// ByDoctor returns all appointments of a doctor.
func (h *AppointmentHandler) ByDoctor(c *gin.Context) {
	doctorID, ok := parseIDParam(c, "doctor_id")
	if !ok {
		return
	}
	appointments, err := h.Appointments.ByDoctor(doctorID)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Appointments retrieved successfully", appointments)
}

// Update applies a partial update to an appointment. Status changes are
// rejected here; they go through UpdateStatus.
func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	appointment, err := h.Appointments.Update(id, fields)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Appointment updated successfully", appointment)
}

// StatusRequest represents the request body for an appointment status change.
type StatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending completed cancelled"`
}

// UpdateStatus transitions an appointment's status.
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req StatusRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	status, err := models.ParseAppointmentStatus(req.Status)
	if err != nil {
		utils.UnprocessableEntity(c, err.Error())
		return
	}
	appointment, err := h.Appointments.UpdateStatus(id, status, middleware.GetIdentity(c))
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Appointment status updated successfully", appointment)
}

// Delete removes an appointment along with any prescription attached to it.
func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.Appointments.Delete(id); err != nil {
		renderError(c, err)
		return
	}
	utils.NoContent(c)
}
