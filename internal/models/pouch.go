package models

import "time"

type Pouch struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PouchType string    `gorm:"size:100;not null;index" json:"pouch_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p Pouch) PrimaryKey() uint { return p.ID }
