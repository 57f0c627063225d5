package store

import (
	"errors"

	"dispatchbase/internal/models"

	"gorm.io/gorm"
)

var chargeColumns = []string{
	"removal_charge", "pouch_charge", "transport_fees", "wait_charge", "mileage_fees",
	"other_charge_1", "other_charge_1_description",
	"other_charge_2", "other_charge_2_description",
	"other_charge_3", "other_charge_3_description",
	"other_charge_4", "other_charge_4_description",
	"total_charge",
}

type ChargesStore struct {
	db *gorm.DB
}

func NewChargesStore(db *gorm.DB) *ChargesStore {
	return &ChargesStore{db: db}
}

func (s *ChargesStore) FindByID(id uint) (*models.TransportCharge, error) {
	return s.first("id = ?", id)
}

func (s *ChargesStore) FindByTransportID(transportID uint) (*models.TransportCharge, error) {
	return s.first("transport_id = ?", transportID)
}

func (s *ChargesStore) first(cond string, arg uint) (*models.TransportCharge, error) {
	var c models.TransportCharge
	err := s.db.Where(cond, arg).Order("id ASC").First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *ChargesStore) Create(c *models.TransportCharge) (uint, error) {
	if err := s.db.Create(c).Error; err != nil {
		return 0, err
	}
	return c.ID, nil
}

// UpdateByTransportID overwrites every charge column of the row linked to
// transportID.
func (s *ChargesStore) UpdateByTransportID(transportID uint, c *models.TransportCharge) (int64, error) {
	cols := append(append([]string{}, chargeColumns...), "updated_at")
	res := s.db.Model(&models.TransportCharge{}).Where("transport_id = ?", transportID).Select(cols).Updates(c)
	return res.RowsAffected, res.Error
}

func (s *ChargesStore) Delete(id uint) (int64, error) {
	res := s.db.Where("id = ?", id).Delete(&models.TransportCharge{})
	return res.RowsAffected, res.Error
}

func (s *ChargesStore) DeleteByTransportID(transportID uint) (int64, error) {
	res := s.db.Where("transport_id = ?", transportID).Delete(&models.TransportCharge{})
	return res.RowsAffected, res.Error
}
