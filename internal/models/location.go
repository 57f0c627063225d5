package models

import "time"

type LocationType string

const (
	LocationOrigin      LocationType = "origin"
	LocationDestination LocationType = "destination"
	LocationBoth        LocationType = "both"
)

var LocationTypes = []LocationType{LocationOrigin, LocationDestination, LocationBoth}

func (t LocationType) Valid() bool {
	for _, v := range LocationTypes {
		if v == t {
			return true
		}
	}
	return false
}

// ServesOrigin reports whether the location may be picked as a pickup point.
func (t LocationType) ServesOrigin() bool {
	return t == LocationOrigin || t == LocationBoth
}

func (t LocationType) ServesDestination() bool {
	return t == LocationDestination || t == LocationBoth
}

type Location struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	Name         string       `gorm:"size:255;not null;index" json:"name"`
	Address      string       `gorm:"size:255" json:"address"`
	City         string       `gorm:"size:100" json:"city"`
	State        string       `gorm:"size:2" json:"state"`
	ZipCode      string       `gorm:"size:10" json:"zip_code"`
	PhoneNumber  string       `gorm:"size:20" json:"phone_number"`
	LocationType LocationType `gorm:"size:20;not null" json:"location_type"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func (l Location) PrimaryKey() uint { return l.ID }
