package models

import "time"

var AccountTypes = []string{"Standard", "Contract", "Private"}

type Transport struct {
	TransportID          uint       `gorm:"column:transport_id;primaryKey" json:"transport_id"`
	CustomerID           uint       `gorm:"not null;index" json:"customer_id"`
	FirmDate             string     `gorm:"size:10;not null" json:"firm_date"`
	AccountType          string     `gorm:"size:50;not null" json:"account_type"`
	OriginLocation       uint       `gorm:"column:origin_location;not null" json:"origin_location"`
	DestinationLocation  uint       `gorm:"column:destination_location;not null" json:"destination_location"`
	CoronerName          string     `gorm:"size:255" json:"coroner_name"`
	PouchType            string     `gorm:"size:100" json:"pouch_type"`
	TransitPermitNumber  string     `gorm:"size:50" json:"transit_permit_number"`
	TagNumber            string     `gorm:"size:50" json:"tag_number"`
	CallTime             *time.Time `json:"call_time"`
	ArrivalTime          *time.Time `json:"arrival_time"`
	DepartureTime        *time.Time `json:"departure_time"`
	DeliveryTime         *time.Time `json:"delivery_time"`
	PrimaryTransporter   *uint      `json:"primary_transporter"`
	AssistantTransporter *uint      `json:"assistant_transporter"`
	Mileage              *float64   `json:"mileage"`
	MileageRate          *float64   `json:"mileage_rate"`
	MileageTotalCharge   *float64   `json:"mileage_total_charge"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

func (t Transport) PrimaryKey() uint { return t.TransportID }
