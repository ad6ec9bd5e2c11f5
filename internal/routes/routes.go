package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cat-shelter-server/internal/config"
	"cat-shelter-server/internal/handlers"
	"cat-shelter-server/internal/middleware"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	catHandler := handlers.NewCatHandler(db, cfg)
	noteHandler := handlers.NewNoteHandler(db, cfg)
	vaccineHandler := handlers.NewVaccineHandler(db)
	employeeHandler := handlers.NewEmployeeHandler(db)
	appointmentHandler := handlers.NewAppointmentHandler(db)
	dashboardHandler := handlers.NewDashboardHandler(db, cfg)
	searchHandler := handlers.NewSearchHandler(db)
	pageHandler := handlers.NewPageHandler(db, cfg)

	// Server-rendered pages
	router.GET("/", pageHandler.Index)
	router.GET("/dashboard", pageHandler.Dashboard)
	router.GET("/calendar", pageHandler.Calendar)

	// Uploaded photos and attachments, served by stored filename
	router.Static("/uploads", cfg.UploadDir)

	api := router.Group("/api/v1")
	{
		catRoutes := api.Group("/cats")
		{
			catRoutes.GET("", catHandler.ListCats)
			catRoutes.POST("", catHandler.CreateCat)
			catRoutes.GET("/:id", catHandler.GetCat)
			catRoutes.POST("/:id", catHandler.UpdateCat)
			catRoutes.POST("/:id/delete", catHandler.DeleteCat)

			catRoutes.GET("/:id/notes", noteHandler.ListNotes)
			catRoutes.POST("/:id/notes", noteHandler.CreateNote)

			catRoutes.GET("/:id/vaccinations", vaccineHandler.ListVaccineRecords)
			catRoutes.POST("/:id/vaccinations", vaccineHandler.CreateVaccineRecord)
		}

		api.POST("/notes/:id/delete", noteHandler.DeleteNote)

		vaccineTypeRoutes := api.Group("/vaccine-types")
		{
			vaccineTypeRoutes.GET("", vaccineHandler.ListVaccineTypes)
			vaccineTypeRoutes.POST("", vaccineHandler.CreateVaccineType)
			vaccineTypeRoutes.POST("/:id/delete", vaccineHandler.DeleteVaccineType)
		}

		api.POST("/vaccinations/:id", vaccineHandler.UpdateVaccineRecord)
		api.POST("/vaccinations/:id/delete", vaccineHandler.DeleteVaccineRecord)

		employeeRoutes := api.Group("/employees")
		{
			employeeRoutes.GET("", employeeHandler.ListEmployees)
			employeeRoutes.POST("", employeeHandler.CreateEmployee)
			employeeRoutes.POST("/:id", employeeHandler.UpdateEmployee)
			employeeRoutes.POST("/:id/delete", employeeHandler.DeleteEmployee)
		}

		appointmentRoutes := api.Group("/appointments")
		{
			appointmentRoutes.GET("", appointmentHandler.ListAppointments)
			appointmentRoutes.POST("", appointmentHandler.CreateAppointment)
			appointmentRoutes.GET("/:id", appointmentHandler.GetAppointment)
			appointmentRoutes.POST("/:id", appointmentHandler.UpdateAppointment)
			// Drag-and-drop rescheduling from the calendar
			appointmentRoutes.PATCH("/:id/schedule", appointmentHandler.RescheduleAppointment)
			appointmentRoutes.POST("/:id/delete", appointmentHandler.DeleteAppointment)
		}

		api.GET("/alerts", dashboardHandler.GetAlerts)
		api.GET("/dashboard", dashboardHandler.GetDashboard)
		api.GET("/search", searchHandler.SearchCats)

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/login", authHandler.Login)

			protected := authRoutes.Group("")
			protected.Use(middleware.AuthMiddleware(cfg))
			{
				protected.GET("/profile", authHandler.GetProfile)
			}
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
