package models

import "time"

// Customer is the firm placing transport orders.
type Customer struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CompanyName  string    `gorm:"size:255;not null;index" json:"company_name"`
	PhoneNumber  string    `gorm:"size:20" json:"phone_number"`
	Address1     string    `gorm:"column:address_1;size:255" json:"address_1"`
	Address2     string    `gorm:"column:address_2;size:255" json:"address_2"`
	City         string    `gorm:"size:100" json:"city"`
	State        string    `gorm:"size:2" json:"state"`
	Zip          string    `gorm:"size:10" json:"zip"`
	EmailAddress string    `gorm:"size:255" json:"email_address"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (c Customer) PrimaryKey() uint { return c.ID }
