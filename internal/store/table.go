package store

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

// Record is implemented by models with a single unsigned primary key.
type Record interface {
	PrimaryKey() uint
}

// TableSpec describes how a Table addresses its rows.
type TableSpec struct {
	PrimaryKey string
	// NameColumn backs ExistsByName and IDByName. Empty disables both.
	NameColumn string
	// SearchColumns are matched with LIKE '%term%' joined by OR.
	SearchColumns []string
	// UpdateColumns are written by Update, zero values included.
	UpdateColumns []string
	// Search overrides the SearchColumns filter when set.
	Search func(tx *gorm.DB, term string) *gorm.DB
}

// Table is the common data access shape shared by the simple entities.
type Table[T Record] struct {
	db   *gorm.DB
	spec TableSpec
}

func NewTable[T Record](db *gorm.DB, spec TableSpec) *Table[T] {
	return &Table[T]{db: db, spec: spec}
}

// ClampPage forces limit >= 1 and offset >= 0.
func ClampPage(limit, offset int) (int, int) {
	if limit < 1 {
		limit = 1
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// LikePattern wraps a search term for a substring LIKE match.
func LikePattern(term string) string {
	return "%" + term + "%"
}

func (t *Table[T]) DB() *gorm.DB {
	return t.db
}

func (t *Table[T]) newest() string {
	return t.spec.PrimaryKey + " DESC"
}

func (t *Table[T]) GetAll() ([]T, error) {
	var rows []T
	if err := t.db.Order(t.newest()).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (t *Table[T]) FindByID(id uint) (*T, error) {
	var row T
	err := t.db.Where(t.spec.PrimaryKey+" = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (t *Table[T]) GetCount() (int64, error) {
	var n int64
	err := t.db.Model(new(T)).Count(&n).Error
	return n, err
}

func (t *Table[T]) GetPaginated(limit, offset int) ([]T, error) {
	limit, offset = ClampPage(limit, offset)
	var rows []T
	if err := t.db.Order(t.newest()).Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (t *Table[T]) search(tx *gorm.DB, term string) *gorm.DB {
	if t.spec.Search != nil {
		return t.spec.Search(tx, term)
	}
	return tx.Where(orLike(t.spec.SearchColumns), likeArgs(term, len(t.spec.SearchColumns))...)
}

func (t *Table[T]) GetCountBySearch(term string) (int64, error) {
	var n int64
	err := t.search(t.db.Model(new(T)), term).Count(&n).Error
	return n, err
}

func (t *Table[T]) SearchPaginated(term string, limit, offset int) ([]T, error) {
	limit, offset = ClampPage(limit, offset)
	var rows []T
	err := t.search(t.db.Model(new(T)), term).
		Order(t.newest()).Limit(limit).Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Create inserts row and returns its new primary key.
func (t *Table[T]) Create(row *T) (uint, error) {
	if err := t.db.Create(row).Error; err != nil {
		return 0, err
	}
	return (*row).PrimaryKey(), nil
}

// Update writes the configured columns of row to the record with the given id
// and returns the number of rows touched.
func (t *Table[T]) Update(id uint, row *T) (int64, error) {
	cols := append([]string{}, t.spec.UpdateColumns...)
	cols = append(cols, "updated_at")
	res := t.db.Model(new(T)).Where(t.spec.PrimaryKey+" = ?", id).Select(cols).Updates(row)
	return res.RowsAffected, res.Error
}

func (t *Table[T]) Delete(id uint) (int64, error) {
	res := t.db.Where(t.spec.PrimaryKey+" = ?", id).Delete(new(T))
	return res.RowsAffected, res.Error
}

// ExistsByName is an exact, case-sensitive match on the name column.
func (t *Table[T]) ExistsByName(name string) (bool, error) {
	_, found, err := t.IDByName(name)
	return found, err
}

// IDByName returns the key of a row whose name column equals name.
func (t *Table[T]) IDByName(name string) (uint, bool, error) {
	if t.spec.NameColumn == "" {
		return 0, false, fmt.Errorf("table has no name column")
	}
	var rows []T
	err := t.db.Where(t.spec.NameColumn+" = ?", name).Limit(1).Find(&rows).Error
	if err != nil {
		return 0, false, err
	}
	if len(rows) == 0 {
		return 0, false, nil
	}
	return rows[0].PrimaryKey(), true, nil
}

func orLike(columns []string) string {
	parts := make([]string, len(columns))
	for i, c := range columns {
		parts[i] = c + " LIKE ?"
	}
	return strings.Join(parts, " OR ")
}

func likeArgs(term string, n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = LikePattern(term)
	}
	return args
}
