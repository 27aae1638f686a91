package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"mediconnect-server/internal/report"
	"mediconnect-server/internal/service"
	"mediconnect-server/internal/utils"
)

// AdminHandler handles the admin dashboard and analytics endpoints.
type AdminHandler struct {
	Admin        *service.AdminService
	Appointments *service.AppointmentService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(admin *service.AdminService, appointments *service.AppointmentService) *AdminHandler {
	return &AdminHandler{Admin: admin, Appointments: appointments}
}

// Dashboard returns platform-wide entity counts.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	counts, err := h.Admin.DashboardCounts()
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Dashboard retrieved successfully", counts)
}

// PendingDoctors returns doctors awaiting approval.
func (h *AdminHandler) PendingDoctors(c *gin.Context) {
	doctors, err := h.Admin.PendingDoctors()
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Pending doctors retrieved successfully", doctors)
}

// TopMedicines returns the most prescribed medicines.
func (h *AdminHandler) TopMedicines(c *gin.Context) {
	limit := intQuery(c, "limit", 10, 100)
	medicines, err := h.Admin.TopMedicines(limit)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Top medicines retrieved successfully", medicines)
}

// TopDoctors returns doctors ranked by completed appointments.
func (h *AdminHandler) TopDoctors(c *gin.Context) {
	limit := intQuery(c, "limit", 10, 100)
	doctors, err := h.Admin.TopDoctors(limit)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Top doctors retrieved successfully", doctors)
}

// AppointmentOverview returns per-day appointment counts for the last N days.
func (h *AdminHandler) AppointmentOverview(c *gin.Context) {
	days := intQuery(c, "days", 7, 90)
	overview, err := h.Admin.AppointmentOverview(days)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Appointment overview retrieved successfully", overview)
}

// PopularSpecializations returns specializations ranked by appointment volume.
func (h *AdminHandler) PopularSpecializations(c *gin.Context) {
	limit := intQuery(c, "limit", 10, 100)
	specializations, err := h.Admin.PopularSpecializations(limit)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.Success(c, "Popular specializations retrieved successfully", specializations)
}

// AppointmentsReport streams an xlsx export of all appointments.
func (h *AdminHandler) AppointmentsReport(c *gin.Context) {
	appointments, err := h.Appointments.ListDetailed(0, 10000)
	if err != nil {
		renderError(c, err)
		return
	}
	workbook, err := report.AppointmentsWorkbook(appointments)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate report")
		return
	}

	filename := fmt.Sprintf("appointments-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", workbook)
}
