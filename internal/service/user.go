package service

import (
	"errors"

	"dispatchbase/internal/audit"
	"dispatchbase/internal/auth"
	"dispatchbase/internal/models"
	"dispatchbase/internal/store"
)

var ErrPasswordRequired = errors.New("password required")

type UserService struct {
	*store.UserStore
	auditor
}

func NewUserService(s *store.UserStore, log *audit.Writer) *UserService {
	return &UserService{UserStore: s, auditor: auditor{log}}
}

// Create hashes password and inserts the user.
func (s *UserService) Create(u *models.User, password string) (uint, error) {
	if password == "" {
		return 0, ErrPasswordRequired
	}
	if err := ensureNameFree(s.UserStore, u.Username, 0); err != nil {
		return 0, err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return 0, err
	}
	u.PasswordHash = hash

	id, err := s.UserStore.Create(u)
	if err != nil {
		return 0, err
	}
	s.record(models.AuditActionCreate, "user", id, nil, u)
	return id, nil
}

// Update saves the profile fields. The password changes only when password is
// not empty.
func (s *UserService) Update(id uint, u *models.User, password string) (int64, error) {
	if err := ensureNameFree(s.UserStore, u.Username, id); err != nil {
		return 0, err
	}
	before, _ := s.FindByID(id)

	n, err := s.UserStore.Update(id, u)
	if err != nil {
		return 0, err
	}
	if password != "" {
		hash, err := auth.HashPassword(password)
		if err != nil {
			return 0, err
		}
		if _, err := s.UpdatePassword(id, hash); err != nil {
			return 0, err
		}
	}
	s.record(models.AuditActionUpdate, "user", id, before, u)
	return n, nil
}

func (s *UserService) Delete(id uint) (int64, error) {
	before, _ := s.FindByID(id)
	n, err := s.UserStore.Delete(id)
	if err != nil {
		return 0, err
	}
	s.record(models.AuditActionDelete, "user", id, before, nil)
	return n, nil
}
