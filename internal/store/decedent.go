package store

import (
	"errors"

	"dispatchbase/internal/models"

	"gorm.io/gorm"
)

var decedentColumns = []string{"first_name", "middle_name", "last_name", "ethnicity", "gender"}

type DecedentStore struct {
	*Table[models.Decedent]
}

func NewDecedentStore(db *gorm.DB) *DecedentStore {
	return &DecedentStore{NewTable[models.Decedent](db, TableSpec{
		PrimaryKey:    "decedent_id",
		SearchColumns: []string{"first_name", "last_name"},
		UpdateColumns: append([]string{"transport_id"}, decedentColumns...),
	})}
}

func (s *DecedentStore) FindByTransportID(transportID uint) (*models.Decedent, error) {
	var d models.Decedent
	err := s.db.Where("transport_id = ?", transportID).Order("decedent_id ASC").First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *DecedentStore) InsertByTransportID(transportID uint, d *models.Decedent) (uint, error) {
	d.DecedentID = 0
	d.TransportID = transportID
	return s.Create(d)
}

// UpdateByTransportID overwrites the name and demographic fields of the
// decedent linked to transportID.
func (s *DecedentStore) UpdateByTransportID(transportID uint, d *models.Decedent) (int64, error) {
	cols := append(append([]string{}, decedentColumns...), "updated_at")
	res := s.db.Model(&models.Decedent{}).Where("transport_id = ?", transportID).Select(cols).Updates(d)
	return res.RowsAffected, res.Error
}

func (s *DecedentStore) DeleteByTransportID(transportID uint) (int64, error) {
	res := s.db.Where("transport_id = ?", transportID).Delete(&models.Decedent{})
	return res.RowsAffected, res.Error
}
