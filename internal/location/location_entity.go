package location

// Location is a physical site tracked by the safety program. Incidents
// and inspections reference it by id. Column names follow the legacy
// schema.
type Location struct {
	ID   int    `gorm:"column:location_id;primaryKey"`
	Name string `gorm:"column:location_name;size:100;not null"`
}

func (Location) TableName() string {
	return "locations"
}
