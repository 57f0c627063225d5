package service

import (
	"dispatchbase/internal/audit"
	"dispatchbase/internal/models"
	"dispatchbase/internal/store"
)

type CoronerService struct {
	*store.CoronerStore
	auditor
}

func NewCoronerService(s *store.CoronerStore, log *audit.Writer) *CoronerService {
	return &CoronerService{CoronerStore: s, auditor: auditor{log}}
}

// FormatDisplayName falls back to the county when no coroner name is set.
func (s *CoronerService) FormatDisplayName(c models.Coroner) string {
	if c.CoronerName != "" {
		return c.CoronerName
	}
	if c.County != "" {
		return c.County + " County"
	}
	return ""
}

func (s *CoronerService) Create(v *models.Coroner) (uint, error) {
	if err := ensureNameFree(s.CoronerStore, v.CoronerName, 0); err != nil {
		return 0, err
	}
	id, err := s.CoronerStore.Create(v)
	if err != nil {
		return 0, err
	}
	s.record(models.AuditActionCreate, "coroner", id, nil, v)
	return id, nil
}

func (s *CoronerService) Update(id uint, v *models.Coroner) (int64, error) {
	if err := ensureNameFree(s.CoronerStore, v.CoronerName, id); err != nil {
		return 0, err
	}
	before, _ := s.FindByID(id)
	n, err := s.CoronerStore.Update(id, v)
	if err != nil {
		return 0, err
	}
	s.record(models.AuditActionUpdate, "coroner", id, before, v)
	return n, nil
}

func (s *CoronerService) Delete(id uint) (int64, error) {
	before, _ := s.FindByID(id)
	n, err := s.CoronerStore.Delete(id)
	if err != nil {
		return 0, err
	}
	s.record(models.AuditActionDelete, "coroner", id, before, nil)
	return n, nil
}
