package models

import "time"

type Vehicle struct {
	VehicleID             uint      `gorm:"column:vehicle_id;primaryKey" json:"vehicle_id"`
	VehicleType           string    `gorm:"size:50;not null" json:"vehicle_type"`
	Color                 string    `gorm:"size:30" json:"color"`
	LicensePlate          string    `gorm:"size:15;not null" json:"license_plate"`
	YearOfManufacture     int       `gorm:"column:year_of_manufacture" json:"year_of_manufacture"`
	Make                  string    `gorm:"size:50" json:"make"`
	Model                 string    `gorm:"size:50" json:"model"`
	VIN                   string    `gorm:"column:vin;size:17;not null;index" json:"vin"`
	RefrigerationUnit     bool      `json:"refrigeration_unit"`
	FuelType              string    `gorm:"size:20" json:"fuel_type"`
	OdometerReading       *int      `json:"odometer_reading"`
	TrailerCompatible     bool      `json:"trailer_compatible"`
	CurrentStatus         string    `gorm:"size:30" json:"current_status"`
	RegistrationExpiry    string    `gorm:"size:10" json:"registration_expiry"`
	InsuranceProvider     string    `gorm:"size:100" json:"insurance_provider"`
	InsurancePolicyNumber string    `gorm:"size:50" json:"insurance_policy_number"`
	InsuranceExpiry       string    `gorm:"size:10" json:"insurance_expiry"`
	Notes                 string    `gorm:"type:text" json:"notes"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func (v Vehicle) PrimaryKey() uint { return v.VehicleID }

var FuelTypes = []string{"gasoline", "diesel", "hybrid", "electric"}

var VehicleStatuses = []string{"in_service", "maintenance", "out_of_service"}
