package store

import (
	"strings"

	"dispatchbase/internal/models"

	"gorm.io/gorm"
)

type CustomerStore struct {
	*Table[models.Customer]
}

func NewCustomerStore(db *gorm.DB) *CustomerStore {
	return &CustomerStore{NewTable[models.Customer](db, TableSpec{
		PrimaryKey:    "id",
		NameColumn:    "company_name",
		SearchColumns: []string{"company_name"},
		UpdateColumns: []string{"company_name", "phone_number", "address_1", "address_2", "city", "state", "zip", "email_address"},
	})}
}

type LocationStore struct {
	*Table[models.Location]
}

func NewLocationStore(db *gorm.DB) *LocationStore {
	return &LocationStore{NewTable[models.Location](db, TableSpec{
		PrimaryKey:    "id",
		NameColumn:    "name",
		SearchColumns: []string{"name", "city"},
		UpdateColumns: []string{"name", "address", "city", "state", "zip_code", "phone_number", "location_type"},
	})}
}

// GetAllByName lists locations alphabetically for select boxes.
func (s *LocationStore) GetAllByName() ([]models.Location, error) {
	var rows []models.Location
	if err := s.db.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

type CoronerStore struct {
	*Table[models.Coroner]
}

func NewCoronerStore(db *gorm.DB) *CoronerStore {
	return &CoronerStore{NewTable[models.Coroner](db, TableSpec{
		PrimaryKey:    "id",
		NameColumn:    "coroner_name",
		SearchColumns: []string{"coroner_name", "county"},
		UpdateColumns: []string{"coroner_name", "phone_number", "email_address", "address_1", "address_2", "city", "state", "zip", "county"},
	})}
}

type PouchStore struct {
	*Table[models.Pouch]
}

func NewPouchStore(db *gorm.DB) *PouchStore {
	return &PouchStore{NewTable[models.Pouch](db, TableSpec{
		PrimaryKey:    "id",
		NameColumn:    "pouch_type",
		SearchColumns: []string{"pouch_type"},
		UpdateColumns: []string{"pouch_type"},
	})}
}

func (s *PouchStore) FindByType(pouchType string) (*models.Pouch, error) {
	id, found, err := s.IDByName(pouchType)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return s.FindByID(id)
}

type VehicleStore struct {
	*Table[models.Vehicle]
}

func NewVehicleStore(db *gorm.DB) *VehicleStore {
	return &VehicleStore{NewTable[models.Vehicle](db, TableSpec{
		PrimaryKey:    "vehicle_id",
		NameColumn:    "vin",
		SearchColumns: []string{"make", "model", "license_plate", "vin"},
		UpdateColumns: []string{
			"vehicle_type", "color", "license_plate", "year_of_manufacture", "make", "model", "vin",
			"refrigeration_unit", "fuel_type", "odometer_reading", "trailer_compatible", "current_status",
			"registration_expiry", "insurance_provider", "insurance_policy_number", "insurance_expiry", "notes",
		},
	})}
}

type UserStore struct {
	*Table[models.User]
}

var (
	activeKeywords   = map[string]bool{"yes": true, "active": true, "1": true}
	inactiveKeywords = map[string]bool{"no": true, "inactive": true, "0": true}
)

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{NewTable[models.User](db, TableSpec{
		PrimaryKey:    "id",
		NameColumn:    "username",
		UpdateColumns: []string{"username", "full_name", "address", "city", "state", "zip_code", "phone_number", "role", "is_active"},
		Search:        searchUsers,
	})}
}

// searchUsers matches the text columns and also treats yes/active/1 and
// no/inactive/0 as filters on is_active.
func searchUsers(tx *gorm.DB, term string) *gorm.DB {
	cols := []string{"username", "full_name", "city", "state", "role"}
	cond := orLike(cols)
	args := likeArgs(term, len(cols))

	kw := strings.ToLower(strings.TrimSpace(term))
	switch {
	case activeKeywords[kw]:
		cond += " OR is_active = ?"
		args = append(args, true)
	case inactiveKeywords[kw]:
		cond += " OR is_active = ?"
		args = append(args, false)
	}
	return tx.Where(cond, args...)
}

func (s *UserStore) FindByUsername(username string) (*models.User, error) {
	id, found, err := s.IDByName(username)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return s.FindByID(id)
}

// GetDrivers lists users with the driver role by username.
func (s *UserStore) GetDrivers() ([]models.User, error) {
	var rows []models.User
	err := s.db.Where("role = ?", models.RoleDriver).Order("username ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *UserStore) UpdatePassword(id uint, hash string) (int64, error) {
	res := s.db.Model(&models.User{}).Where("id = ?", id).Update("password_hash", hash)
	return res.RowsAffected, res.Error
}

func (s *UserStore) CountByRole(role models.UserRole) (int64, error) {
	var n int64
	err := s.db.Model(&models.User{}).Where("role = ?", role).Count(&n).Error
	return n, err
}
