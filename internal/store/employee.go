package store

import (
	"dispatchbase/internal/models"

	"gorm.io/gorm"
)

// EmployeeRow is an employee joined with the linked user's full name.
type EmployeeRow struct {
	models.Employee `gorm:"embedded"`
	UserFullName    string `json:"user_full_name"`
}

type EmployeeStore struct {
	*Table[models.Employee]
}

func NewEmployeeStore(db *gorm.DB) *EmployeeStore {
	return &EmployeeStore{NewTable[models.Employee](db, TableSpec{
		PrimaryKey:    "employees.id",
		UpdateColumns: []string{"user_id", "job_title", "salary", "employment_type", "start_date", "end_date", "status"},
		Search: func(tx *gorm.DB, term string) *gorm.DB {
			return tx.Joins("LEFT JOIN users ON users.id = employees.user_id").
				Where("employees.job_title LIKE ? OR users.full_name LIKE ?", LikePattern(term), LikePattern(term))
		},
	})}
}

func (s *EmployeeStore) withUser() *gorm.DB {
	return s.db.Table("employees").
		Select("employees.*, users.full_name AS user_full_name").
		Joins("LEFT JOIN users ON users.id = employees.user_id")
}

func (s *EmployeeStore) GetPaginatedWithUser(limit, offset int) ([]EmployeeRow, error) {
	limit, offset = ClampPage(limit, offset)
	var rows []EmployeeRow
	err := s.withUser().Order("employees.id DESC").Limit(limit).Offset(offset).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *EmployeeStore) SearchPaginatedWithUser(term string, limit, offset int) ([]EmployeeRow, error) {
	limit, offset = ClampPage(limit, offset)
	var rows []EmployeeRow
	err := s.withUser().
		Where("employees.job_title LIKE ? OR users.full_name LIKE ?", LikePattern(term), LikePattern(term)).
		Order("employees.id DESC").Limit(limit).Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UserHasEmployee reports whether some employee row other than exceptID is
// linked to userID.
func (s *EmployeeStore) UserHasEmployee(userID, exceptID uint) (bool, error) {
	var n int64
	err := s.db.Model(&models.Employee{}).Where("user_id = ? AND id <> ?", userID, exceptID).Count(&n).Error
	return n > 0, err
}
