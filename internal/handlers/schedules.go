package handlers

import (
	"github.com/gin-gonic/gin"

	"mediconnect-server/internal/middleware"
	"mediconnect-server/internal/service"
	"mediconnect-server/internal/utils"
)

// ScheduleHandler handles doctor schedule requests.
type ScheduleHandler struct {
	Schedules *service.ScheduleService
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(schedules *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Schedules: schedules}
}

// ScheduleRequest represents the request body for creating a schedule.
type ScheduleRequest struct {
	DayOfWeek              string `json:"day_of_week" binding:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime              string `json:"start_time" binding:"required"`
	EndTime                string `json:"end_time" binding:"required"`
	MaxPatients            int    `json:"max_patients" binding:"required,min=1"`
	DurationPerAppointment int    `json:"duration_per_appointment" binding:"omitempty,min=5"`
}

// Create adds a schedule for the authenticated doctor.
func (h *ScheduleHandler) Create(c *gin.Context) {
	var req ScheduleRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	schedule, err := h.Schedules.Create(service.ScheduleInput{
		DayOfWeek:              req.DayOfWeek,
		StartTime:              req.StartTime,
		EndTime:                req.EndTime,
		MaxPatients:            req.MaxPatients,
		DurationPerAppointment: req.DurationPerAppointment,
	}, middleware.GetIdentity(c))
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Created(c, "Schedule created successfully", schedule)
}

// Get returns a schedule by id.
func (h *ScheduleHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	schedule, err := h.Schedules.Get(id)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Schedule retrieved successfully", schedule)
}

// List returns a page of schedules.
func (h *ScheduleHandler) List(c *gin.Context) {
	offset, limit := pagination(c)
	schedules, err := h.Schedules.List(offset, limit)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Schedules retrieved successfully", schedules)
}

// ByDoctor returns all schedules belonging to a doctor.
func (h *ScheduleHandler) ByDoctor(c *gin.Context) {
	doctorID, ok := parseIDParam(c, "doctor_id")
	if !ok {
		return
	}
	schedules, err := h.Schedules.ByDoctor(doctorID)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Schedules retrieved successfully", schedules)
}

// Mine returns the authenticated doctor's schedules.
func (h *ScheduleHandler) Mine(c *gin.Context) {
	schedules, err := h.Schedules.Mine(middleware.GetIdentity(c))
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Schedules retrieved successfully", schedules)
}

// Update applies a partial update to a schedule.
func (h *ScheduleHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	schedule, err := h.Schedules.Update(id, fields, middleware.GetIdentity(c))
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Schedule updated successfully", schedule)
}

// Delete removes a schedule.
func (h *ScheduleHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.Schedules.Delete(id, middleware.GetIdentity(c)); err != nil {
		renderError(c, err)
		return
	}
	utils.NoContent(c)
}
