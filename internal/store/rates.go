package store

import (
	"errors"

	"dispatchbase/internal/models"

	"gorm.io/gorm"
)

var rateColumns = []string{"basic_fee", "included_miles", "extra_mile_rate", "assistant_fee", "effective_date", "notes", "customer_id"}

type RatesStore struct {
	db *gorm.DB
}

func NewRatesStore(db *gorm.DB) *RatesStore {
	return &RatesStore{db: db}
}

// Find returns the newest rates row for a customer, or the oldest row without
// a customer when customerID is nil.
func (s *RatesStore) Find(customerID *uint) (*models.Rate, error) {
	var r models.Rate
	q := s.db
	if customerID != nil {
		q = q.Where("customer_id = ?", *customerID).Order("id DESC")
	} else {
		q = q.Where("customer_id IS NULL").Order("id ASC")
	}
	err := q.First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *RatesStore) FindByID(id uint) (*models.Rate, error) {
	var r models.Rate
	err := s.db.Where("id = ?", id).First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *RatesStore) Create(r *models.Rate) (uint, error) {
	if err := s.db.Create(r).Error; err != nil {
		return 0, err
	}
	return r.ID, nil
}

func (s *RatesStore) Update(id uint, r *models.Rate) (int64, error) {
	cols := append(append([]string{}, rateColumns...), "updated_at")
	res := s.db.Model(&models.Rate{}).Where("id = ?", id).Select(cols).Updates(r)
	return res.RowsAffected, res.Error
}

func (s *RatesStore) Delete(id uint) (int64, error) {
	res := s.db.Where("id = ?", id).Delete(&models.Rate{})
	return res.RowsAffected, res.Error
}

// Save updates the row Find would return for r.CustomerID, inserting one when
// none exists. r.ID is set to the saved row's key.
func (s *RatesStore) Save(r *models.Rate) error {
	existing, err := s.Find(r.CustomerID)
	switch {
	case errors.Is(err, ErrNotFound):
		r.ID = 0
		_, err = s.Create(r)
		return err
	case err != nil:
		return err
	}

	r.ID = existing.ID
	_, err = s.Update(existing.ID, r)
	return err
}
