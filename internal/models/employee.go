package models

import "time"

type Employee struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	JobTitle       string    `gorm:"size:100" json:"job_title"`
	Salary         *float64  `json:"salary"`
	EmploymentType string    `gorm:"size:50" json:"employment_type"`
	StartDate      string    `gorm:"size:10" json:"start_date"`
	EndDate        string    `gorm:"size:10" json:"end_date"`
	Status         string    `gorm:"size:20" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (e Employee) PrimaryKey() uint { return e.ID }

var EmploymentTypes = []string{"full_time", "part_time", "contract", "per_diem"}

var EmployeeStatuses = []string{"active", "on_leave", "terminated"}
