package main

import (
	"errors"
	"log"
	"os"
	"time"

	"safety-api/internal/employee"
	"safety-api/internal/incident"
	"safety-api/internal/inspection"
	"safety-api/internal/location"
	"safety-api/internal/ppe"
	"safety-api/internal/shared/connection"
	"safety-api/internal/training"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// Seeds the demo dataset. Safe to run repeatedly: rows are matched by
// their natural key before insert.
func main() {
	_ = godotenv.Load()

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
		log.Fatalf("❌ Error connecting to database: %v", err)
	}

	if err := db.AutoMigrate(
		&location.Location{},
		&employee.Employee{},
		&incident.SafetyIncident{},
		&training.SafetyTraining{},
		&training.TrainingParticipant{},
		&inspection.SafetyInspection{},
		&ppe.PPECompliance{},
	); err != nil {
		log.Fatalf("❌ Error migrating schema: %v", err)
	}

	if err := seed(db); err != nil {
		log.Fatalf("❌ Error seeding database: %v", err)
	}

	log.Println("✅ Database seeded successfully!")
	report(db)
}

func seed(db *gorm.DB) error {
	locationNames := []string{
		"Main Factory Floor",
		"Warehouse",
		"Office Building",
		"Loading Dock",
		"Chemical Storage Room",
	}
	for _, name := range locationNames {
		var existing location.Location
		err := db.First(&existing, "location_name = ?", name).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&location.Location{Name: name}).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}

	employees := []employee.Employee{
		{EmployeeName: "John Smith", EmployeeCode: "EMP001"},
		{EmployeeName: "Sarah Johnson", EmployeeCode: "EMP002"},
		{EmployeeName: "Mike Wilson", EmployeeCode: "EMP003"},
		{EmployeeName: "Safety Officer Mike", EmployeeCode: "EMP004"},
		{EmployeeName: "Safety Inspector Jane", EmployeeCode: "EMP005"},
	}
	for _, emp := range employees {
		var existing employee.Employee
		err := db.First(&existing, "employee_code = ?", emp.EmployeeCode).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&emp).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}

	inspections := []inspection.SafetyInspection{
		{
			InspectionType: "Monthly Safety Check",
			InspectionDate: date(2025, 9, 15),
			LocationID:     1,
			InspectorName:  strPtr("Safety Inspector Jane"),
			Notes:          strPtr("Routine monthly safety inspection"),
			Status:         "Scheduled",
		},
		{
			InspectionType: "Fire Safety Inspection",
			InspectionDate: date(2025, 9, 1),
			LocationID:     2,
			InspectorName:  strPtr("Fire Safety Officer Mike"),
			Notes:          strPtr("Annual fire safety compliance check"),
			Status:         "Completed",
			Score:          intPtr(92),
		},
		{
			InspectionType: "Equipment Safety Check",
			InspectionDate: date(2025, 8, 30),
			LocationID:     1,
			InspectorName:  strPtr("Equipment Specialist John"),
			Notes:          strPtr("Equipment safety verification"),
			Status:         "In Progress",
		},
	}
	for _, insp := range inspections {
		var existing inspection.SafetyInspection
		err := db.First(&existing,
			"inspection_type = ? AND inspection_date = ?",
			insp.InspectionType, insp.InspectionDate,
		).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&insp).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}

	ppeRecords := []ppe.PPECompliance{
		{
			EmployeeID:              1,
			AssessmentDate:          datePtr(2025, 9, 1),
			HelmetCompliance:        intPtr(95),
			SafetyGlassesCompliance: intPtr(88),
			GlovesCompliance:        intPtr(90),
			SafetyShoesCompliance:   intPtr(98),
			VestCompliance:          intPtr(100),
			Violations:              1,
			Status:                  "Compliant",
			AssessorName:            strPtr("Safety Officer Jane"),
		},
		{
			EmployeeID:              2,
			AssessmentDate:          datePtr(2025, 9, 2),
			HelmetCompliance:        intPtr(100),
			SafetyGlassesCompliance: intPtr(95),
			GlovesCompliance:        intPtr(85),
			SafetyShoesCompliance:   intPtr(100),
			VestCompliance:          intPtr(100),
			Violations:              0,
			Status:                  "Compliant",
			AssessorName:            strPtr("Safety Officer Jane"),
		},
		{
			EmployeeID:              3,
			AssessmentDate:          datePtr(2025, 8, 30),
			HelmetCompliance:        intPtr(80),
			SafetyGlassesCompliance: intPtr(75),
			GlovesCompliance:        intPtr(70),
			SafetyShoesCompliance:   intPtr(85),
			VestCompliance:          intPtr(90),
			Violations:              3,
			Status:                  "Non-Compliant",
			AssessorName:            strPtr("Safety Officer Mike"),
		},
	}
	for _, rec := range ppeRecords {
		var existing ppe.PPECompliance
		err := db.First(&existing, "employee_id = ?", rec.EmployeeID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&rec).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}

	return nil
}

func report(db *gorm.DB) {
	var locations, employees, inspections, ppeRecords int64
	db.Model(&location.Location{}).Count(&locations)
	db.Model(&employee.Employee{}).Count(&employees)
	db.Model(&inspection.SafetyInspection{}).Count(&inspections)
	db.Model(&ppe.PPECompliance{}).Count(&ppeRecords)

	log.Printf("   Locations: %d", locations)
	log.Printf("   Employees: %d", employees)
	log.Printf("   Inspections: %d", inspections)
	log.Printf("   PPE Records: %d", ppeRecords)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }
