package service

import (
	"dispatchbase/internal/audit"
	"dispatchbase/internal/models"
	"dispatchbase/internal/store"
)

type LocationService struct {
	*store.LocationStore
	auditor
}

func NewLocationService(s *store.LocationStore, log *audit.Writer) *LocationService {
	return &LocationService{LocationStore: s, auditor: auditor{log}}
}

func (s *LocationService) Create(v *models.Location) (uint, error) {
	if err := ensureNameFree(s.LocationStore, v.Name, 0); err != nil {
		return 0, err
	}
	id, err := s.LocationStore.Create(v)
	if err != nil {
		return 0, err
	}
	s.record(models.AuditActionCreate, "location", id, nil, v)
	return id, nil
}

func (s *LocationService) Update(id uint, v *models.Location) (int64, error) {
	if err := ensureNameFree(s.LocationStore, v.Name, id); err != nil {
		return 0, err
	}
	before, _ := s.FindByID(id)
	n, err := s.LocationStore.Update(id, v)
	if err != nil {
		return 0, err
	}
	s.record(models.AuditActionUpdate, "location", id, before, v)
	return n, nil
}

func (s *LocationService) Delete(id uint) (int64, error) {
	before, _ := s.FindByID(id)
	n, err := s.LocationStore.Delete(id)
	if err != nil {
		return 0, err
	}
	s.record(models.AuditActionDelete, "location", id, before, nil)
	return n, nil
}
