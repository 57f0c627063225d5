package models

import "time"

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleOffice UserRole = "office"
	RoleDriver UserRole = "driver"
	RoleOther  UserRole = "other"
)

// UserRoles lists the roles in the order the user form offers them.
var UserRoles = []UserRole{RoleAdmin, RoleOffice, RoleDriver, RoleOther}

func (r UserRole) Valid() bool {
	for _, v := range UserRoles {
		if v == r {
			return true
		}
	}
	return false
}

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:50;not null;index" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	FullName     string    `gorm:"size:100;not null" json:"full_name"`
	Address      string    `gorm:"size:255" json:"address"`
	City         string    `gorm:"size:100" json:"city"`
	State        string    `gorm:"size:2" json:"state"`
	ZipCode      string    `gorm:"size:10" json:"zip_code"`
	PhoneNumber  string    `gorm:"size:20" json:"phone_number"`
	Role         UserRole  `gorm:"size:20;not null" json:"role"`
	IsActive     bool      `gorm:"not null" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (u User) PrimaryKey() uint { return u.ID }
