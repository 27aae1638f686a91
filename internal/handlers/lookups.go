package handlers

import (
	"github.com/gin-gonic/gin"

	"mediconnect-server/internal/service"
	"mediconnect-server/internal/utils"
)

// LookupHandler handles the reference data catalogs: blood groups,
// specializations, institutes and qualifications.
type LookupHandler struct {
	Lookups *service.LookupService
}

// NewLookupHandler creates a new LookupHandler.
func NewLookupHandler(lookups *service.LookupService) *LookupHandler {
	return &LookupHandler{Lookups: lookups}
}

// NameRequest is a request body carrying a single name field.
type NameRequest struct {
	Name string `json:"name" binding:"required"`
}

// InstituteRequest represents the request body for creating an institute.
type InstituteRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}

func (h *LookupHandler) CreateBloodGroup(c *gin.Context) {
	var req NameRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	group, err := h.Lookups.CreateBloodGroup(req.Name)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Created(c, "Blood group created successfully", group)
}

func (h *LookupHandler) ListBloodGroups(c *gin.Context) {
	groups, err := h.Lookups.BloodGroups()
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Blood groups retrieved successfully", groups)
}

func (h *LookupHandler) GetBloodGroup(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	group, err := h.Lookups.BloodGroup(id)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Blood group retrieved successfully", group)
}

func (h *LookupHandler) UpdateBloodGroup(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	group, err := h.Lookups.UpdateBloodGroup(id, fields)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Blood group updated successfully", group)
}

func (h *LookupHandler) DeleteBloodGroup(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.Lookups.DeleteBloodGroup(id); err != nil {
		renderError(c, err)
		return
	}
	utils.NoContent(c)
}

func (h *LookupHandler) CreateSpecialization(c *gin.Context) {
	var req NameRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	specialization, err := h.Lookups.CreateSpecialization(req.Name)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Created(c, "Specialization created successfully", specialization)
}

func (h *LookupHandler) ListSpecializations(c *gin.Context) {
	specializations, err := h.Lookups.Specializations()
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Specializations retrieved successfully", specializations)
}

func (h *LookupHandler) GetSpecialization(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	specialization, err := h.Lookups.Specialization(id)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Specialization retrieved successfully", specialization)
}

func (h *LookupHandler) UpdateSpecialization(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	specialization, err := h.Lookups.UpdateSpecialization(id, fields)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Specialization updated successfully", specialization)
}

func (h *LookupHandler) DeleteSpecialization(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.Lookups.DeleteSpecialization(id); err != nil {
		renderError(c, err)
		return
	}
	utils.NoContent(c)
}

func (h *LookupHandler) CreateInstitute(c *gin.Context) {
	var req InstituteRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	institute, err := h.Lookups.CreateInstitute(req.Name, req.Address)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Created(c, "Institute created successfully", institute)
}

func (h *LookupHandler) ListInstitutes(c *gin.Context) {
	institutes, err := h.Lookups.Institutes(c.Query("search"))
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Institutes retrieved successfully", institutes)
}

func (h *LookupHandler) GetInstitute(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	institute, err := h.Lookups.Institute(id)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Institute retrieved successfully", institute)
}

func (h *LookupHandler) UpdateInstitute(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	institute, err := h.Lookups.UpdateInstitute(id, fields)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Institute updated successfully", institute)
}

func (h *LookupHandler) DeleteInstitute(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.Lookups.DeleteInstitute(id); err != nil {
		renderError(c, err)
		return
	}
	utils.NoContent(c)
}

func (h *LookupHandler) CreateQualification(c *gin.Context) {
	var req NameRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	qualification, err := h.Lookups.CreateQualification(req.Name)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Created(c, "Qualification created successfully", qualification)
}

func (h *LookupHandler) ListQualifications(c *gin.Context) {
	qualifications, err := h.Lookups.Qualifications()
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Qualifications retrieved successfully", qualifications)
}

func (h *LookupHandler) GetQualification(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	qualification, err := h.Lookups.Qualification(id)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Qualification retrieved successfully", qualification)
}

func (h *LookupHandler) UpdateQualification(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	qualification, err := h.Lookups.UpdateQualification(id, fields)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Qualification updated successfully", qualification)
}

func (h *LookupHandler) DeleteQualification(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.Lookups.DeleteQualification(id); err != nil {
		renderError(c, err)
		return
	}
	utils.NoContent(c)
}
