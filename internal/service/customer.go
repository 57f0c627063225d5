package service

import (
	"dispatchbase/internal/audit"
	"dispatchbase/internal/models"
	"dispatchbase/internal/store"
)

type CustomerService struct {
	*store.CustomerStore
	auditor
}

func NewCustomerService(s *store.CustomerStore, log *audit.Writer) *CustomerService {
	return &CustomerService{CustomerStore: s, auditor: auditor{log}}
}

// FormatDisplayName is the label used in select boxes and lists.
func (s *CustomerService) FormatDisplayName(c models.Customer) string {
	return c.CompanyName
}

func (s *CustomerService) Create(c *models.Customer) (uint, error) {
	if err := ensureNameFree(s.CustomerStore, c.CompanyName, 0); err != nil {
		return 0, err
	}
	id, err := s.CustomerStore.Create(c)
	if err != nil {
		return 0, err
	}
	s.record(models.AuditActionCreate, "customer", id, nil, c)
	return id, nil
}

func (s *CustomerService) Update(id uint, c *models.Customer) (int64, error) {
	if err := ensureNameFree(s.CustomerStore, c.CompanyName, id); err != nil {
		return 0, err
	}
	before, _ := s.FindByID(id)
	n, err := s.CustomerStore.Update(id, c)
	if err != nil {
		return 0, err
	}
	s.record(models.AuditActionUpdate, "customer", id, before, c)
	return n, nil
}

func (s *CustomerService) Delete(id uint) (int64, error) {
	before, _ := s.FindByID(id)
	n, err := s.CustomerStore.Delete(id)
	if err != nil {
		return 0, err
	}
	s.record(models.AuditActionDelete, "customer", id, before, nil)
	return n, nil
}
