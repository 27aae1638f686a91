package handlers

import (
	"github.com/gin-gonic/gin"

	"mediconnect-server/internal/middleware"
	"mediconnect-server/internal/service"
	"mediconnect-server/internal/utils"
)

// DoctorHandler handles doctor profile requests.
type DoctorHandler struct {
	Doctors *service.DoctorService
}

// NewDoctorHandler creates a new DoctorHandler.
func NewDoctorHandler(doctors *service.DoctorService) *DoctorHandler {
	return &DoctorHandler{Doctors: doctors}
}

// Create adds a doctor profile for the authenticated user.
func (h *DoctorHandler) Create(c *gin.Context) {
	var req DoctorProfileRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	identity := middleware.GetIdentity(c)
	doctor, err := h.Doctors.Create(identity.UserID, service.DoctorInput{
		FullName:        req.FullName,
		Specialization:  req.Specialization,
		Phone:           req.Phone,
		Chamber:         req.Chamber,
		Institute:       req.Institute,
		BMDCNumber:      req.BMDCNumber,
		Experience:      req.Experience,
		Qualifications:  req.Qualifications,
		ConsultationFee: req.ConsultationFee,
	})
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Created(c, "Doctor profile created successfully", doctor)
}

// Get returns a doctor profile by id.
func (h *DoctorHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	doctor, err := h.Doctors.Get(id)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Doctor retrieved successfully", doctor)
}

// List returns doctors, optionally filtered by approval status.
func (h *DoctorHandler) List(c *gin.Context) {
	offset, limit := pagination(c)
	doctors, err := h.Doctors.List(c.Query("status"), offset, limit)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Doctors retrieved successfully", doctors)
}

// Update applies a partial update to a doctor profile.
func (h *DoctorHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	doctor, err := h.Doctors.Update(id, fields, middleware.GetIdentity(c))
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Doctor updated successfully", doctor)
}

// Delete removes a doctor profile.
func (h *DoctorHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.Doctors.Delete(id, middleware.GetIdentity(c)); err != nil {
		renderError(c, err)
		return
	}
	utils.NoContent(c)
}
