package service

import (
	"dispatchbase/internal/audit"
	"dispatchbase/internal/models"
	"dispatchbase/internal/store"
)

type EmployeeService struct {
	*store.EmployeeStore
	auditor
}

func NewEmployeeService(s *store.EmployeeStore, log *audit.Writer) *EmployeeService {
	return &EmployeeService{EmployeeStore: s, auditor: auditor{log}}
}

// Create rejects a second employee record for the same user.
func (s *EmployeeService) Create(e *models.Employee) (uint, error) {
	taken, err := s.UserHasEmployee(e.UserID, 0)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, ErrDuplicateName
	}
	id, err := s.EmployeeStore.Create(e)
	if err != nil {
		return 0, err
	}
	s.record(models.AuditActionCreate, "employee", id, nil, e)
	return id, nil
}

func (s *EmployeeService) Update(id uint, e *models.Employee) (int64, error) {
	taken, err := s.UserHasEmployee(e.UserID, id)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, ErrDuplicateName
	}
	before, _ := s.FindByID(id)
	n, err := s.EmployeeStore.Update(id, e)
	if err != nil {
		return 0, err
	}
	s.record(models.AuditActionUpdate, "employee", id, before, e)
	return n, nil
}

func (s *EmployeeService) Delete(id uint) (int64, error) {
	before, _ := s.FindByID(id)
	n, err := s.EmployeeStore.Delete(id)
	if err != nil {
		return 0, err
	}
	s.record(models.AuditActionDelete, "employee", id, before, nil)
	return n, nil
}
