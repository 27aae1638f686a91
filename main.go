package main

import (
	"fmt"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"mediconnect-server/internal/config"
	"mediconnect-server/internal/handlers"
	"mediconnect-server/internal/logging"
	"mediconnect-server/internal/models"
	"mediconnect-server/internal/notify"
	"mediconnect-server/internal/report"
	"mediconnect-server/internal/repository"
	"mediconnect-server/internal/routes"
	"mediconnect-server/internal/service"
)

func main() {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Environment)

	db, err := models.InitDB(models.DatabaseConfig{DSN: cfg.Database.DSN})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	store := repository.NewStore(db)

	userService := service.NewUserService(store, cfg)
	doctorService := service.NewDoctorService(store)
	patientService := service.NewPatientService(store)
	scheduleService := service.NewScheduleService(store)
	appointmentService := service.NewAppointmentService(store)
	prescriptionService := service.NewPrescriptionService(store, report.NewPDFRenderer(), cfg.DocumentDir)
	medicineService := service.NewMedicineService(store)
	lookupService := service.NewLookupService(store)
	adminService := service.NewAdminService(store)

	mailer := notify.NewSMTPMailer(cfg.SMTP)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logging.RequestLogger(logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	routes.SetupRoutes(router, cfg, routes.Handlers{
		Auth:          handlers.NewAuthHandler(userService, doctorService, patientService),
		Users:         handlers.NewUserHandler(userService),
		Doctors:       handlers.NewDoctorHandler(doctorService),
		Patients:      handlers.NewPatientHandler(patientService),
		Schedules:     handlers.NewScheduleHandler(scheduleService),
		Appointments:  handlers.NewAppointmentHandler(appointmentService, mailer, logger),
		Prescriptions: handlers.NewPrescriptionHandler(prescriptionService),
		Medicines:     handlers.NewMedicineHandler(medicineService),
		Lookups:       handlers.NewLookupHandler(lookupService),
		Admin:         handlers.NewAdminHandler(adminService, appointmentService),
	})

	logger.Info().Str("port", cfg.Port).Msg("server starting")
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
