package app

import (
	"net/http"

	"safety-api/internal/employee"
	"safety-api/internal/incident"
	"safety-api/internal/inspection"
	"safety-api/internal/location"
	"safety-api/internal/middleware"
	"safety-api/internal/ppe"
	"safety-api/internal/shared/response"
	"safety-api/internal/training"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(router *gin.Engine, db *gorm.DB) error {
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	router.GET("/", func(c *gin.Context) {
		response.JSON(c, http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Safety Management API is running",
			"version": "1.0.0",
		})
	})

	// --- Repositories ---
	locationRepo := location.NewRepository(db)
	employeeRepo := employee.NewRepository(db)
	incidentRepo := incident.NewRepository(db)
	trainingRepo := training.NewRepository(db)
	inspectionRepo := inspection.NewRepository(db)
	ppeRepo := ppe.NewRepository(db)

	// --- Services ---
	locationService := location.NewService(db, locationRepo)
	employeeService := employee.NewService(db, employeeRepo)
	incidentService := incident.NewService(db, incidentRepo)
	trainingService := training.NewService(db, trainingRepo)
	inspectionService := inspection.NewService(db, inspectionRepo)
	ppeService := ppe.NewService(db, ppeRepo)

	// --- Handlers ---
	locationHandler := location.NewHandler(locationService)
	employeeHandler := employee.NewHandler(employeeService)
	incidentHandler := incident.NewHandler(incidentService)
	trainingHandler := training.NewHandler(trainingService)
	inspectionHandler := inspection.NewHandler(inspectionService)
	ppeHandler := ppe.NewHandler(ppeService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		location.RegisterRoutes(api, locationHandler)
		employee.RegisterRoutes(api, employeeHandler)
		incident.RegisterRoutes(api, incidentHandler)
		training.RegisterRoutes(api, trainingHandler)
		inspection.RegisterRoutes(api, inspectionHandler)
		ppe.RegisterRoutes(api, ppeHandler)
	}

	return nil
}
