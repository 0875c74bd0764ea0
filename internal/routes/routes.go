package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ayuvibe-server/internal/auth"
	"ayuvibe-server/internal/config"
	"ayuvibe-server/internal/handlers"
	"ayuvibe-server/internal/middleware"
	"ayuvibe-server/internal/store"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Stores
	patientStore := store.NewPatientStore(db)
	doctorStore := store.NewDoctorStore(db)
	appointmentStore := store.NewAppointmentStore(db)
	diagnosisStore := store.NewDiagnosisStore(db)
	treatmentStore := store.NewTreatmentStore(db)
	followUpStore := store.NewFollowUpStore(db)
	herbStore := store.NewHerbStore(db)
	remedyStore := store.NewRemedyStore(db)

	// Auth subsystem
	issuer := auth.NewTokenIssuer(cfg)
	authService := auth.NewService(patientStore, doctorStore, issuer, cfg)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	patientHandler := handlers.NewPatientHandler(patientStore)
	doctorHandler := handlers.NewDoctorHandler(doctorStore)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentStore, patientStore, doctorStore)
	diagnosisHandler := handlers.NewDiagnosisHandler(diagnosisStore, appointmentStore)
	treatmentHandler := handlers.NewTreatmentHandler(treatmentStore, diagnosisStore)
	followUpHandler := handlers.NewFollowUpHandler(followUpStore, appointmentStore)
	herbHandler := handlers.NewHerbHandler(herbStore)
	remedyHandler := handlers.NewRemedyHandler(remedyStore)

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "This is AyuVibe home"})
	})

	// Credential endpoints get per-IP rate limiting.
	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	limited := router.Group("/", middleware.RateLimit(limiter))
	{
		limited.POST("/signup/patient", authHandler.SignupPatient)
		limited.POST("/signup/doctor", authHandler.SignupDoctor)
		limited.POST("/auth", authHandler.Token)
		limited.POST("/login", authHandler.Login)
	}

	router.GET("/auth/me", middleware.AuthMiddleware(issuer), authHandler.Me)

	patientRoutes := router.Group("/patients")
	{
		patientRoutes.GET("/", patientHandler.GetPatients)
		patientRoutes.GET("/:id", patientHandler.GetPatientByID)
		patientRoutes.PUT("/:id", patientHandler.UpdatePatient)
		patientRoutes.DELETE("/:id", patientHandler.DeletePatient)
	}

	doctorRoutes := router.Group("/doctors")
	{
		doctorRoutes.GET("/", doctorHandler.GetDoctors)
		doctorRoutes.GET("/:id", doctorHandler.GetDoctorByID)
		doctorRoutes.PUT("/:id", doctorHandler.UpdateDoctor)
		doctorRoutes.DELETE("/:id", doctorHandler.DeleteDoctor)
	}

	appointmentRoutes := router.Group("/appointments")
	{
		appointmentRoutes.POST("/", appointmentHandler.CreateAppointment)
		appointmentRoutes.GET("/", appointmentHandler.GetAppointments)
		appointmentRoutes.GET("/:id", appointmentHandler.GetAppointmentByID)
		appointmentRoutes.PUT("/:id", appointmentHandler.UpdateAppointment)
		appointmentRoutes.DELETE("/:id", appointmentHandler.DeleteAppointment)
		appointmentRoutes.GET("/:id/diagnoses_treatments", appointmentHandler.GetDiagnosesAndTreatments)
	}

	diagnosisRoutes := router.Group("/diagnoses")
	{
		diagnosisRoutes.POST("/", diagnosisHandler.CreateDiagnosis)
		diagnosisRoutes.GET("/", diagnosisHandler.GetDiagnoses)
		diagnosisRoutes.GET("/:id", diagnosisHandler.GetDiagnosisByID)
		diagnosisRoutes.PUT("/:id", diagnosisHandler.UpdateDiagnosis)
		diagnosisRoutes.DELETE("/:id", diagnosisHandler.DeleteDiagnosis)
	}

	treatmentRoutes := router.Group("/treatments")
	{
		treatmentRoutes.POST("/", treatmentHandler.CreateTreatment)
		treatmentRoutes.GET("/", treatmentHandler.GetTreatments)
		treatmentRoutes.GET("/:id", treatmentHandler.GetTreatmentByID)
		treatmentRoutes.PUT("/:id", treatmentHandler.UpdateTreatment)
		treatmentRoutes.DELETE("/:id", treatmentHandler.DeleteTreatment)
	}

	followUpRoutes := router.Group("/follow_ups")
	{
		followUpRoutes.POST("/", followUpHandler.CreateFollowUp)
		followUpRoutes.GET("/", followUpHandler.GetFollowUps)
		followUpRoutes.GET("/:id", followUpHandler.GetFollowUpByID)
		followUpRoutes.PUT("/:id", followUpHandler.UpdateFollowUp)
		followUpRoutes.DELETE("/:id", followUpHandler.DeleteFollowUp)
	}

	herbRoutes := router.Group("/herbs")
	{
		herbRoutes.POST("/", herbHandler.CreateHerb)
		herbRoutes.GET("/", herbHandler.GetHerbs)
		herbRoutes.GET("/:id", herbHandler.GetHerbByID)
		herbRoutes.PUT("/:id", herbHandler.UpdateHerb)
		herbRoutes.DELETE("/:id", herbHandler.DeleteHerb)
	}

	remedyRoutes := router.Group("/remedies")
	{
		remedyRoutes.POST("/", remedyHandler.CreateRemedy)
		remedyRoutes.GET("/", remedyHandler.GetRemedies)
		remedyRoutes.GET("/:id", remedyHandler.GetRemedyByID)
		remedyRoutes.PUT("/:id", remedyHandler.UpdateRemedy)
		remedyRoutes.DELETE("/:id", remedyHandler.DeleteRemedy)
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
