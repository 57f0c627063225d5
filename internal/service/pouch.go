package service

import (
	"dispatchbase/internal/audit"
	"dispatchbase/internal/models"
	"dispatchbase/internal/store"
)

type PouchService struct {
	*store.PouchStore
	auditor
}

func NewPouchService(s *store.PouchStore, log *audit.Writer) *PouchService {
	return &PouchService{PouchStore: s, auditor: auditor{log}}
}

func (s *PouchService) Create(v *models.Pouch) (uint, error) {
	if err := ensureNameFree(s.PouchStore, v.PouchType, 0); err != nil {
		return 0, err
	}
	id, err := s.PouchStore.Create(v)
	if err != nil {
		return 0, err
	}
	s.record(models.AuditActionCreate, "pouch", id, nil, v)
	return id, nil
}

func (s *PouchService) Update(id uint, v *models.Pouch) (int64, error) {
	if err := ensureNameFree(s.PouchStore, v.PouchType, id); err != nil {
		return 0, err
	}
	before, _ := s.FindByID(id)
	n, err := s.PouchStore.Update(id, v)
	if err != nil {
		return 0, err
	}
	s.record(models.AuditActionUpdate, "pouch", id, before, v)
	return n, nil
}

func (s *PouchService) Delete(id uint) (int64, error) {
	before, _ := s.FindByID(id)
	n, err := s.PouchStore.Delete(id)
	if err != nil {
		return 0, err
	}
	s.record(models.AuditActionDelete, "pouch", id, before, nil)
	return n, nil
}
