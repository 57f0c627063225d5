package store

import (
	"errors"
	"fmt"
	"strings"

	"dispatchbase/internal/models"
	"dispatchbase/internal/validation"

	"gorm.io/gorm"
)

var transportColumns = []string{
	"customer_id", "firm_date", "account_type", "origin_location", "destination_location",
	"coroner_name", "pouch_type", "transit_permit_number", "tag_number",
	"call_time", "arrival_time", "departure_time", "delivery_time",
	"primary_transporter", "assistant_transporter",
	"mileage", "mileage_rate", "mileage_total_charge",
}

// TransportAggregate is a transport with its decedent and charges rows. The
// three are always written and deleted together.
type TransportAggregate struct {
	Transport models.Transport       `json:"transport"`
	Decedent  models.Decedent        `json:"decedent"`
	Charges   models.TransportCharge `json:"charges"`
}

// TransportRow is one line of the transport list.
type TransportRow struct {
	models.Transport  `gorm:"embedded"`
	DecedentFirstName string  `json:"decedent_first_name"`
	DecedentLastName  string  `json:"decedent_last_name"`
	CustomerName      string  `json:"customer_name"`
	OriginName        string  `json:"origin_name"`
	DestinationName   string  `json:"destination_name"`
	TotalCharge       float64 `json:"total_charge"`
}

type TransportStore struct {
	db *gorm.DB
}

func NewTransportStore(db *gorm.DB) *TransportStore {
	return &TransportStore{db: db}
}

func (s *TransportStore) joined() *gorm.DB {
	return s.db.Table("transports").
		Joins("LEFT JOIN decedents ON decedents.transport_id = transports.transport_id").
		Joins("LEFT JOIN customers ON customers.id = transports.customer_id").
		Joins("LEFT JOIN locations origin ON origin.id = transports.origin_location").
		Joins("LEFT JOIN locations destination ON destination.id = transports.destination_location").
		Joins("LEFT JOIN transport_charges ON transport_charges.transport_id = transports.transport_id")
}

func (s *TransportStore) listQuery() *gorm.DB {
	return s.joined().
		Select(`transports.*,
			decedents.first_name AS decedent_first_name,
			decedents.last_name AS decedent_last_name,
			customers.company_name AS customer_name,
			origin.name AS origin_name,
			destination.name AS destination_name,
			COALESCE(transport_charges.total_charge, 0) AS total_charge`)
}

// searchTransports is a case-insensitive match on decedent names, location
// names, coroner and tag number.
func searchTransports(tx *gorm.DB, term string) *gorm.DB {
	like := LikePattern(strings.ToLower(term))
	return tx.Where(`LOWER(decedents.first_name) LIKE ? OR LOWER(decedents.last_name) LIKE ?
		OR LOWER(origin.name) LIKE ? OR LOWER(destination.name) LIKE ?
		OR LOWER(transports.coroner_name) LIKE ? OR LOWER(transports.tag_number) LIKE ?`,
		like, like, like, like, like, like)
}

func (s *TransportStore) GetAll() ([]TransportRow, error) {
	var rows []TransportRow
	if err := s.listQuery().Order("transports.transport_id DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *TransportStore) FindByID(id uint) (*models.Transport, error) {
	var t models.Transport
	err := s.db.Where("transport_id = ?", id).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TransportStore) GetCount() (int64, error) {
	var n int64
	err := s.db.Model(&models.Transport{}).Count(&n).Error
	return n, err
}

func (s *TransportStore) GetPaginated(limit, offset int) ([]TransportRow, error) {
	limit, offset = ClampPage(limit, offset)
	var rows []TransportRow
	err := s.listQuery().Order("transports.transport_id DESC").Limit(limit).Offset(offset).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *TransportStore) GetCountBySearch(term string) (int64, error) {
	var n int64
	err := searchTransports(s.joined(), term).Count(&n).Error
	return n, err
}

func (s *TransportStore) SearchPaginated(term string, limit, offset int) ([]TransportRow, error) {
	limit, offset = ClampPage(limit, offset)
	var rows []TransportRow
	err := searchTransports(s.listQuery(), term).
		Order("transports.transport_id DESC").Limit(limit).Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// SearchAll is SearchPaginated without paging, used for exports.
func (s *TransportStore) SearchAll(term string) ([]TransportRow, error) {
	if term == "" {
		return s.GetAll()
	}
	var rows []TransportRow
	err := searchTransports(s.listQuery(), term).Order("transports.transport_id DESC").Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindAggregate loads a transport with its decedent and charges. Missing child
// rows come back zero valued.
func (s *TransportStore) FindAggregate(id uint) (*TransportAggregate, error) {
	t, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}
	agg := &TransportAggregate{Transport: *t}

	d, err := NewDecedentStore(s.db).FindByTransportID(id)
	switch {
	case err == nil:
		agg.Decedent = *d
	case !errors.Is(err, ErrNotFound):
		return nil, err
	}

	c, err := NewChargesStore(s.db).FindByTransportID(id)
	switch {
	case err == nil:
		agg.Charges = *c
	case !errors.Is(err, ErrNotFound):
		return nil, err
	}
	return agg, nil
}

// SaveAggregate inserts the aggregate when Transport.TransportID is zero and
// updates it otherwise. All writes share one transaction. The charge total is
// always recomputed from its components.
func (s *TransportStore) SaveAggregate(agg *TransportAggregate) error {
	c := &agg.Charges
	c.TotalCharge = validation.SumCharges(
		c.RemovalCharge, c.PouchCharge, c.TransportFees, c.WaitCharge, c.MileageFees,
		c.OtherCharge1, c.OtherCharge2, c.OtherCharge3, c.OtherCharge4,
	)

	return s.db.Transaction(func(tx *gorm.DB) error {
		if agg.Transport.TransportID == 0 {
			return createAggregate(tx, agg)
		}
		return updateAggregate(tx, agg)
	})
}

func createAggregate(tx *gorm.DB, agg *TransportAggregate) error {
	if err := tx.Create(&agg.Transport).Error; err != nil {
		return fmt.Errorf("insert transport: %w", err)
	}
	id := agg.Transport.TransportID

	if _, err := NewDecedentStore(tx).InsertByTransportID(id, &agg.Decedent); err != nil {
		return fmt.Errorf("insert decedent: %w", err)
	}

	agg.Charges.ID = 0
	agg.Charges.TransportID = id
	if _, err := NewChargesStore(tx).Create(&agg.Charges); err != nil {
		return fmt.Errorf("insert charges: %w", err)
	}
	return nil
}

func updateAggregate(tx *gorm.DB, agg *TransportAggregate) error {
	id := agg.Transport.TransportID

	if _, err := NewTransportStore(tx).FindByID(id); err != nil {
		return err
	}
	cols := append(append([]string{}, transportColumns...), "updated_at")
	err := tx.Model(&models.Transport{}).Where("transport_id = ?", id).Select(cols).Updates(&agg.Transport).Error
	if err != nil {
		return fmt.Errorf("update transport: %w", err)
	}

	decedents := NewDecedentStore(tx)
	_, err = decedents.FindByTransportID(id)
	switch {
	case err == nil:
		agg.Decedent.TransportID = id
		if _, err := decedents.UpdateByTransportID(id, &agg.Decedent); err != nil {
			return fmt.Errorf("update decedent: %w", err)
		}
	case errors.Is(err, ErrNotFound):
		if _, err := decedents.InsertByTransportID(id, &agg.Decedent); err != nil {
			return fmt.Errorf("insert decedent: %w", err)
		}
	default:
		return err
	}

	charges := NewChargesStore(tx)
	agg.Charges.TransportID = id
	_, err = charges.FindByTransportID(id)
	switch {
	case err == nil:
		if _, err := charges.UpdateByTransportID(id, &agg.Charges); err != nil {
			return fmt.Errorf("update charges: %w", err)
		}
	case errors.Is(err, ErrNotFound):
		agg.Charges.ID = 0
		if _, err := charges.Create(&agg.Charges); err != nil {
			return fmt.Errorf("insert charges: %w", err)
		}
	default:
		return err
	}
	return nil
}

// DeleteAggregate removes the decedent, the charges and then the transport in
// one transaction. It returns the number of transport rows removed.
func (s *TransportStore) DeleteAggregate(id uint) (int64, error) {
	var removed int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := NewDecedentStore(tx).DeleteByTransportID(id); err != nil {
			return fmt.Errorf("delete decedent: %w", err)
		}
		if _, err := NewChargesStore(tx).DeleteByTransportID(id); err != nil {
			return fmt.Errorf("delete charges: %w", err)
		}
		res := tx.Where("transport_id = ?", id).Delete(&models.Transport{})
		if res.Error != nil {
			return fmt.Errorf("delete transport: %w", res.Error)
		}
		removed = res.RowsAffected
		return nil
	})
	return removed, err
}
