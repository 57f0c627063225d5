package service

import (
	"dispatchbase/internal/audit"
	"dispatchbase/internal/models"
	"dispatchbase/internal/store"
)

type VehicleService struct {
	*store.VehicleStore
	auditor
}

func NewVehicleService(s *store.VehicleStore, log *audit.Writer) *VehicleService {
	return &VehicleService{VehicleStore: s, auditor: auditor{log}}
}

func (s *VehicleService) Create(v *models.Vehicle) (uint, error) {
	if err := ensureNameFree(s.VehicleStore, v.VIN, 0); err != nil {
		return 0, err
	}
	id, err := s.VehicleStore.Create(v)
	if err != nil {
		return 0, err
	}
	s.record(models.AuditActionCreate, "vehicle", id, nil, v)
	return id, nil
}

func (s *VehicleService) Update(id uint, v *models.Vehicle) (int64, error) {
	if err := ensureNameFree(s.VehicleStore, v.VIN, id); err != nil {
		return 0, err
	}
	before, _ := s.FindByID(id)
	n, err := s.VehicleStore.Update(id, v)
	if err != nil {
		return 0, err
	}
	s.record(models.AuditActionUpdate, "vehicle", id, before, v)
	return n, nil
}

func (s *VehicleService) Delete(id uint) (int64, error) {
	before, _ := s.FindByID(id)
	n, err := s.VehicleStore.Delete(id)
	if err != nil {
		return 0, err
	}
	s.record(models.AuditActionDelete, "vehicle", id, before, nil)
	return n, nil
}
