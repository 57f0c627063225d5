package service

import (
	"dispatchbase/internal/audit"
	"dispatchbase/internal/models"
	"dispatchbase/internal/store"
	"dispatchbase/internal/validation"
)

type TransportService struct {
	*store.TransportStore
	auditor
}

func NewTransportService(s *store.TransportStore, log *audit.Writer) *TransportService {
	return &TransportService{TransportStore: s, auditor: auditor{log}}
}

// Save writes the transport, its decedent and its charges as one unit. The
// mileage total is derived when mileage and rate are both given.
func (s *TransportService) Save(agg *store.TransportAggregate) error {
	t := &agg.Transport
	if t.Mileage != nil && t.MileageRate != nil {
		total := validation.MileageTotal(*t.Mileage, *t.MileageRate)
		t.MileageTotalCharge = &total
	}

	var before *store.TransportAggregate
	action := models.AuditActionCreate
	if t.TransportID != 0 {
		action = models.AuditActionUpdate
		before, _ = s.FindAggregate(t.TransportID)
	}

	if err := s.SaveAggregate(agg); err != nil {
		return err
	}
	s.record(action, "transport", t.TransportID, before, agg)
	return nil
}

func (s *TransportService) Find(id uint) (*store.TransportAggregate, error) {
	return s.FindAggregate(id)
}

func (s *TransportService) Delete(id uint) (int64, error) {
	before, _ := s.FindAggregate(id)
	n, err := s.DeleteAggregate(id)
	if err != nil {
		return 0, err
	}
	s.record(models.AuditActionDelete, "transport", id, before, nil)
	return n, nil
}
