package models

import "time"

// TransportCharge is the itemized bill for one transport.
type TransportCharge struct {
	ID                      uint      `gorm:"primaryKey" json:"id"`
	TransportID             uint      `gorm:"not null;index" json:"transport_id"`
	RemovalCharge           float64   `json:"removal_charge"`
	PouchCharge             float64   `json:"pouch_charge"`
	TransportFees           float64   `json:"transport_fees"`
	WaitCharge              float64   `json:"wait_charge"`
	MileageFees             float64   `json:"mileage_fees"`
	OtherCharge1            float64   `gorm:"column:other_charge_1" json:"other_charge_1"`
	OtherCharge1Description string    `gorm:"column:other_charge_1_description;size:255" json:"other_charge_1_description"`
	OtherCharge2            float64   `gorm:"column:other_charge_2" json:"other_charge_2"`
	OtherCharge2Description string    `gorm:"column:other_charge_2_description;size:255" json:"other_charge_2_description"`
	OtherCharge3            float64   `gorm:"column:other_charge_3" json:"other_charge_3"`
	OtherCharge3Description string    `gorm:"column:other_charge_3_description;size:255" json:"other_charge_3_description"`
	OtherCharge4            float64   `gorm:"column:other_charge_4" json:"other_charge_4"`
	OtherCharge4Description string    `gorm:"column:other_charge_4_description;size:255" json:"other_charge_4_description"`
	TotalCharge             float64   `json:"total_charge"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

// Components returns the nine billed amounts keyed by their column names.
func (c TransportCharge) Components() map[string]float64 {
	return map[string]float64{
		"removal_charge": c.RemovalCharge,
		"pouch_charge":   c.PouchCharge,
		"transport_fees": c.TransportFees,
		"wait_charge":    c.WaitCharge,
		"mileage_fees":   c.MileageFees,
		"other_charge_1": c.OtherCharge1,
		"other_charge_2": c.OtherCharge2,
		"other_charge_3": c.OtherCharge3,
		"other_charge_4": c.OtherCharge4,
	}
}
