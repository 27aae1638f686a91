package handlers

import (
	"github.com/gin-gonic/gin"

	"mediconnect-server/internal/middleware"
	"mediconnect-server/internal/service"
	"mediconnect-server/internal/utils"
)

// PatientHandler handles patient profile requests.
type PatientHandler struct {
	Patients *service.PatientService
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(patients *service.PatientService) *PatientHandler {
	return &PatientHandler{Patients: patients}
}

// Create adds a patient profile for the authenticated user.
func (h *PatientHandler) Create(c *gin.Context) {
	var req PatientProfileRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	identity := middleware.GetIdentity(c)
	patient, err := h.Patients.Create(identity.UserID, service.PatientInput{
		FullName:     req.FullName,
		Age:          req.Age,
		Gender:       req.Gender,
		Phone:        req.Phone,
		Email:        req.Email,
		BloodGroupID: req.BloodGroupID,
		Address:      req.Address,
	})
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Created(c, "Patient profile created successfully", patient)
}

// Get returns a patient profile by id.
func (h *PatientHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	patient, err := h.Patients.Get(id)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Patient retrieved successfully", patient)
}

// List returns a page of patients.
func (h *PatientHandler) List(c *gin.Context) {
	offset, limit := pagination(c)
	patients, err := h.Patients.List(offset, limit)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Patients retrieved successfully", patients)
}

// Search finds patients by phone number prefix.
func (h *PatientHandler) Search(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		utils.BadRequest(c, "Query parameter 'phone' is required")
		return
	}
	patients, err := h.Patients.SearchByPhone(phone)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Patients retrieved successfully", patients)
}

// Update applies a partial update to a patient profile.
func (h *PatientHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	patient, err := h.Patients.Update(id, fields)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Patient updated successfully", patient)
}

// Delete removes a patient profile.
func (h *PatientHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.Patients.Delete(id); err != nil {
		renderError(c, err)
		return
	}
	utils.NoContent(c)
}

// Dashboard returns the authenticated patient's summary counts.
func (h *PatientHandler) Dashboard(c *gin.Context) {
	stats, err := h.Patients.Dashboard(middleware.GetIdentity(c))
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Dashboard retrieved successfully", stats)
}

// UpcomingAppointments returns the authenticated patient's next appointments.
func (h *PatientHandler) UpcomingAppointments(c *gin.Context) {
	limit := intQuery(c, "limit", 5, 50)
	appointments, err := h.Patients.UpcomingAppointments(middleware.GetIdentity(c), limit)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Upcoming appointments retrieved successfully", appointments)
}
