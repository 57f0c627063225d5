package service

import (
	"dispatchbase/internal/audit"
	"dispatchbase/internal/models"
	"dispatchbase/internal/store"
	"dispatchbase/internal/validation"
)

type DecedentService struct {
	*store.DecedentStore
	auditor
}

func NewDecedentService(s *store.DecedentStore, log *audit.Writer) *DecedentService {
	return &DecedentService{DecedentStore: s, auditor: auditor{log}}
}

func validDecedentNames(d *models.Decedent) bool {
	if !validation.IsValidName(d.FirstName) || !validation.IsValidName(d.LastName) {
		return false
	}
	return d.MiddleName == "" || validation.IsValidName(d.MiddleName)
}

func (s *DecedentService) Update(id uint, d *models.Decedent) (int64, error) {
	if !validDecedentNames(d) {
		return 0, ErrInvalidName
	}
	before, _ := s.FindByID(id)
	n, err := s.DecedentStore.Update(id, d)
	if err != nil {
		return 0, err
	}
	s.record(models.AuditActionUpdate, "decedent", id, before, d)
	return n, nil
}

// UpdateByTransportID edits only the decedent of a transport. The transport and
// its charges are not touched.
func (s *DecedentService) UpdateByTransportID(transportID uint, d *models.Decedent) (int64, error) {
	if !validDecedentNames(d) {
		return 0, ErrInvalidName
	}
	before, err := s.FindByTransportID(transportID)
	if err != nil {
		return 0, err
	}
	n, err := s.DecedentStore.UpdateByTransportID(transportID, d)
	if err != nil {
		return 0, err
	}
	s.record(models.AuditActionUpdate, "decedent", before.DecedentID, before, d)
	return n, nil
}

func (s *DecedentService) Delete(id uint) (int64, error) {
	before, _ := s.FindByID(id)
	n, err := s.DecedentStore.Delete(id)
	if err != nil {
		return 0, err
	}
	s.record(models.AuditActionDelete, "decedent", id, before, nil)
	return n, nil
}
