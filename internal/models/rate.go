package models

import "time"

// Rate is a fee schedule. The row with no customer is the canonical default;
// rows with a customer override it for that firm.
type Rate struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	BasicFee      float64   `gorm:"not null" json:"basic_fee"`
	IncludedMiles int       `gorm:"not null" json:"included_miles"`
	ExtraMileRate float64   `gorm:"not null" json:"extra_mile_rate"`
	AssistantFee  float64   `gorm:"not null" json:"assistant_fee"`
	EffectiveDate string    `gorm:"size:10;not null" json:"effective_date"`
	Notes         *string   `gorm:"type:text" json:"notes"`
	CustomerID    *uint     `gorm:"index" json:"customer_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
