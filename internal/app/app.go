package app

import (
	"log"
	"os"

	"safety-api/internal/employee"
	"safety-api/internal/incident"
	"safety-api/internal/inspection"
	"safety-api/internal/location"
	"safety-api/internal/ppe"
	"safety-api/internal/shared/connection"
	"safety-api/internal/training"

	"github.com/gin-gonic/gin"
)

func BuildApp(router *gin.Engine) error {
	db, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	log.Println("✅ Database connection established")

	if err := db.AutoMigrate(
		&location.Location{},
		&employee.Employee{},
		&incident.SafetyIncident{},
		&training.SafetyTraining{},
		&training.TrainingParticipant{},
		&inspection.SafetyInspection{},
		&ppe.PPECompliance{},
	); err != nil {
		return err
	}
	log.Println("✅ Schema migration complete")

	return registerModules(router, db)
}
