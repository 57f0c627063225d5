package service

import (
	"dispatchbase/internal/audit"
	"dispatchbase/internal/models"
	"dispatchbase/internal/store"
)

type RatesService struct {
	*store.RatesStore
	auditor
}

func NewRatesService(s *store.RatesStore, log *audit.Writer) *RatesService {
	return &RatesService{RatesStore: s, auditor: auditor{log}}
}

// Save upserts the canonical rates, or the override for r.CustomerID.
func (s *RatesService) Save(r *models.Rate) error {
	before, _ := s.Find(r.CustomerID)
	if err := s.RatesStore.Save(r); err != nil {
		return err
	}
	action := models.AuditActionUpdate
	if before == nil {
		action = models.AuditActionCreate
	}
	s.record(action, "rates", r.ID, before, r)
	return nil
}

func (s *RatesService) Delete(id uint) (int64, error) {
	before, _ := s.FindByID(id)
	n, err := s.RatesStore.Delete(id)
	if err != nil {
		return 0, err
	}
	s.record(models.AuditActionDelete, "rates", id, before, nil)
	return n, nil
}
