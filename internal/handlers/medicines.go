package handlers

import (
	"github.com/gin-gonic/gin"

	"mediconnect-server/internal/service"
	"mediconnect-server/internal/utils"
)

// MedicineHandler handles medicine catalog requests.
type MedicineHandler struct {
	Medicines *service.MedicineService
}

// NewMedicineHandler creates a new MedicineHandler.
func NewMedicineHandler(medicines *service.MedicineService) *MedicineHandler {
	return &MedicineHandler{Medicines: medicines}
}

// Create adds a medicine to the catalog.
func (h *MedicineHandler) Create(c *gin.Context) {
	var req MedicineRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	medicine, err := h.Medicines.Create(service.MedicineInput{
		Name:         req.Name,
		Strength:     req.Strength,
		Form:         req.Form,
		Manufacturer: req.Manufacturer,
	})
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Created(c, "Medicine created successfully", medicine)
}

// Get returns a medicine by id.
func (h *MedicineHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	medicine, err := h.Medicines.Get(id)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Medicine retrieved successfully", medicine)
}

// List returns a page of medicines.
func (h *MedicineHandler) List(c *gin.Context) {
	offset, limit := pagination(c)
	medicines, err := h.Medicines.List(offset, limit)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Medicines retrieved successfully", medicines)
}

// Search finds medicines by name prefix.
func (h *MedicineHandler) Search(c *gin.Context) {
	name := c.Param("name")
	medicines, err := h.Medicines.SearchByName(name)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Medicines retrieved successfully", medicines)
}

// Update applies a partial update to a medicine.
func (h *MedicineHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	medicine, err := h.Medicines.Update(id, fields)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Medicine updated successfully", medicine)
}

// Delete removes a medicine.
func (h *MedicineHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.Medicines.Delete(id); err != nil {
		renderError(c, err)
		return
	}
	utils.NoContent(c)
}
