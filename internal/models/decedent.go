package models

import "time"

// Decedent is the deceased person carried by one transport.
type Decedent struct {
	DecedentID  uint      `gorm:"column:decedent_id;primaryKey" json:"decedent_id"`
	TransportID uint      `gorm:"column:transport_id;index" json:"transport_id"`
	FirstName   string    `gorm:"size:50" json:"first_name"`
	MiddleName  string    `gorm:"size:50" json:"middle_name"`
	LastName    string    `gorm:"size:50" json:"last_name"`
	Ethnicity   string    `gorm:"size:50" json:"ethnicity"`
	Gender      string    `gorm:"size:20" json:"gender"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (d Decedent) PrimaryKey() uint { return d.DecedentID }

var Ethnicities = []string{
	"American Indian or Alaska Native",
	"Asian",
	"Black or African American",
	"Hispanic or Latino",
	"Native Hawaiian or Other Pacific Islander",
	"White",
	"Other",
	"Unknown",
}

var Genders = []string{"Male", "Female", "Unknown"}
