package routes

import (
	"github.com/gin-gonic/gin"

	"mediconnect-server/internal/config"
	"mediconnect-server/internal/handlers"
	"mediconnect-server/internal/middleware"
	"mediconnect-server/internal/models"
)

// Handlers bundles the handler set wired into the router.
type Handlers struct {
	Auth          *handlers.AuthHandler
	Users         *handlers.UserHandler
	Doctors       *handlers.DoctorHandler
	Patients      *handlers.PatientHandler
	Schedules     *handlers.ScheduleHandler
	Appointments  *handlers.AppointmentHandler
	Prescriptions *handlers.PrescriptionHandler
	Medicines     *handlers.MedicineHandler
	Lookups       *handlers.LookupHandler
	Admin         *handlers.AdminHandler
}

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, cfg *config.Config, h Handlers) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	api.Use(middleware.TokenMiddleware(cfg))

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", h.Auth.Register)
		authRoutes.POST("/login", h.Auth.Login)
	}

	userRoutes := api.Group("/users")
	{
		userRoutes.GET("/me", middleware.RequireAuth(), h.Users.Me)
		userRoutes.GET("", middleware.RequireRole(models.RoleAdmin), h.Users.List)
		userRoutes.GET("/:id", middleware.RequireAuth(), h.Users.Get)
		userRoutes.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), h.Users.Delete)
	}

	doctorRoutes := api.Group("/doctors")
	{
		doctorRoutes.POST("", middleware.RequireAuth(), h.Doctors.Create)
		doctorRoutes.GET("", h.Doctors.List)
		doctorRoutes.GET("/:id", h.Doctors.Get)
		doctorRoutes.PUT("/:id", middleware.RequireAuth(), h.Doctors.Update)
		doctorRoutes.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), h.Doctors.Delete)
	}

	patientRoutes := api.Group("/patients")
	{
		patientRoutes.POST("", middleware.RequireAuth(), h.Patients.Create)
		patientRoutes.GET("", middleware.RequireRole(models.RoleDoctor, models.RoleAdmin), h.Patients.List)
		patientRoutes.GET("/search", middleware.RequireRole(models.RoleDoctor, models.RoleAdmin), h.Patients.Search)
		patientRoutes.GET("/me/dashboard", middleware.RequireRole(models.RolePatient), h.Patients.Dashboard)
		patientRoutes.GET("/me/appointments/upcoming", middleware.RequireRole(models.RolePatient), h.Patients.UpcomingAppointments)
		patientRoutes.GET("/:id", middleware.RequireAuth(), h.Patients.Get)
		patientRoutes.PUT("/:id", middleware.RequireAuth(), h.Patients.Update)
		patientRoutes.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), h.Patients.Delete)
	}

	scheduleRoutes := api.Group("/schedules")
	{
		scheduleRoutes.POST("", middleware.RequireRole(models.RoleDoctor), h.Schedules.Create)
		scheduleRoutes.GET("", h.Schedules.List)
		scheduleRoutes.GET("/me", middleware.RequireRole(models.RoleDoctor), h.Schedules.Mine)
		scheduleRoutes.GET("/doctor/:doctor_id", h.Schedules.ByDoctor)
		scheduleRoutes.GET("/:id", h.Schedules.Get)
		scheduleRoutes.PUT("/:id", middleware.RequireAuth(), h.Schedules.Update)
		scheduleRoutes.DELETE("/:id", middleware.RequireAuth(), h.Schedules.Delete)
	}

	appointmentRoutes := api.Group("/appointments")
	{
		appointmentRoutes.POST("", middleware.RequireAuth(), h.Appointments.Create)
		appointmentRoutes.POST("/appointmentByPatient", h.Appointments.BookWithPatient)
		appointmentRoutes.GET("", middleware.RequireRole(models.RoleDoctor, models.RoleAdmin), h.Appointments.List)
		appointmentRoutes.GET("/patient/:patient_id", middleware.RequireAuth(), h.Appointments.ByPatient)
		appointmentRoutes.GET("/doctor/:doctor_id", middleware.RequireAuth(), h.Appointments.ByDoctor)
		appointmentRoutes.GET("/:id", middleware.RequireAuth(), h.Appointments.Get)
		appointmentRoutes.PUT("/:id", middleware.RequireAuth(), h.Appointments.Update)
		appointmentRoutes.PATCH("/:id/status", middleware.RequireAuth(), h.Appointments.UpdateStatus)
		appointmentRoutes.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), h.Appointments.Delete)
	}

	prescriptionRoutes := api.Group("/prescriptions")
	{
		prescriptionRoutes.POST("", middleware.RequireRole(models.RoleDoctor), h.Prescriptions.Create)
		prescriptionRoutes.GET("", middleware.RequireRole(models.RoleDoctor, models.RoleAdmin), h.Prescriptions.List)
		prescriptionRoutes.GET("/appointment/:appointment_id", middleware.RequireAuth(), h.Prescriptions.ByAppointment)
		prescriptionRoutes.GET("/patient/:patient_id", middleware.RequireAuth(), h.Prescriptions.ByPatient)
		prescriptionRoutes.GET("/:id", middleware.RequireAuth(), h.Prescriptions.Get)
		prescriptionRoutes.GET("/:id/document", middleware.RequireAuth(), h.Prescriptions.Document)
		prescriptionRoutes.PUT("/:id", middleware.RequireRole(models.RoleDoctor, models.RoleAdmin), h.Prescriptions.Update)
		prescriptionRoutes.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), h.Prescriptions.Delete)
	}

	medicineRoutes := api.Group("/medicines")
	{
		medicineRoutes.POST("", middleware.RequireRole(models.RoleDoctor, models.RoleAdmin), h.Medicines.Create)
		medicineRoutes.GET("", middleware.RequireAuth(), h.Medicines.List)
		medicineRoutes.GET("/search/:name", middleware.RequireAuth(), h.Medicines.Search)
		medicineRoutes.GET("/:id", middleware.RequireAuth(), h.Medicines.Get)
		medicineRoutes.PUT("/:id", middleware.RequireRole(models.RoleDoctor, models.RoleAdmin), h.Medicines.Update)
		medicineRoutes.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), h.Medicines.Delete)
	}

	bloodGroupRoutes := api.Group("/blood-groups")
	{
		bloodGroupRoutes.POST("", middleware.RequireRole(models.RoleAdmin), h.Lookups.CreateBloodGroup)
		bloodGroupRoutes.GET("", h.Lookups.ListBloodGroups)
		bloodGroupRoutes.GET("/:id", h.Lookups.GetBloodGroup)
		bloodGroupRoutes.PUT("/:id", middleware.RequireRole(models.RoleAdmin), h.Lookups.UpdateBloodGroup)
		bloodGroupRoutes.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), h.Lookups.DeleteBloodGroup)
	}

	specializationRoutes := api.Group("/specializations")
	{
		specializationRoutes.POST("", middleware.RequireRole(models.RoleAdmin), h.Lookups.CreateSpecialization)
		specializationRoutes.GET("", h.Lookups.ListSpecializations)
		specializationRoutes.GET("/:id", h.Lookups.GetSpecialization)
		specializationRoutes.PUT("/:id", middleware.RequireRole(models.RoleAdmin), h.Lookups.UpdateSpecialization)
		specializationRoutes.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), h.Lookups.DeleteSpecialization)
	}

	instituteRoutes := api.Group("/institutes")
	{
		instituteRoutes.POST("", middleware.RequireRole(models.RoleAdmin), h.Lookups.CreateInstitute)
		instituteRoutes.GET("", h.Lookups.ListInstitutes)
		instituteRoutes.GET("/:id", h.Lookups.GetInstitute)
		instituteRoutes.PUT("/:id", middleware.RequireRole(models.RoleAdmin), h.Lookups.UpdateInstitute)
		instituteRoutes.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), h.Lookups.DeleteInstitute)
	}

	qualificationRoutes := api.Group("/qualifications")
	{
		qualificationRoutes.POST("", middleware.RequireRole(models.RoleAdmin), h.Lookups.CreateQualification)
		qualificationRoutes.GET("", h.Lookups.ListQualifications)
		qualificationRoutes.GET("/:id", h.Lookups.GetQualification)
		qualificationRoutes.PUT("/:id", middleware.RequireRole(models.RoleAdmin), h.Lookups.UpdateQualification)
		qualificationRoutes.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), h.Lookups.DeleteQualification)
	}

	adminRoutes := api.Group("/admin")
	adminRoutes.Use(middleware.RequireRole(models.RoleAdmin))
	{
		adminRoutes.GET("/dashboard", h.Admin.Dashboard)
		adminRoutes.GET("/pending-doctors", h.Admin.PendingDoctors)
		adminRoutes.GET("/analytics/medicines", h.Admin.TopMedicines)
		adminRoutes.GET("/analytics/top-doctors", h.Admin.TopDoctors)
		adminRoutes.GET("/analytics/appointments-overview", h.Admin.AppointmentOverview)
		adminRoutes.GET("/analytics/specializations", h.Admin.PopularSpecializations)
		adminRoutes.GET("/reports/appointments.xlsx", h.Admin.AppointmentsReport)
	}
}
