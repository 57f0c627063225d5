package database

import (
	"fmt"
	"regexp"
	"strings"

	"dispatchbase/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DecedentLinkColumn is the canonical decedents column pointing at transports.
const DecedentLinkColumn = "transport_id"

// Column names older schemas used for the decedent link, most likely first.
var legacyDecedentLinkColumns = []string{"id", "transport", "transport_id", "transportid", "transport_number", "transportId"}

var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Migrate brings the schema to the current model set. configuredLink, when not
// empty, names a legacy decedent link column to try first.
func Migrate(db *gorm.DB, configuredLink string) error {
	if err := migrateDecedentLink(db, configuredLink); err != nil {
		return err
	}

	err := db.AutoMigrate(
		&models.Customer{},
		&models.Location{},
		&models.Coroner{},
		&models.Pouch{},
		&models.User{},
		&models.Employee{},
		&models.Vehicle{},
		&models.Rate{},
		&models.Transport{},
		&models.Decedent{},
		&models.TransportCharge{},
		&models.AuditLog{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// migrateDecedentLink renames a legacy decedent link column to transport_id so
// every query can use the canonical name. Column names match case-insensitively.
func migrateDecedentLink(db *gorm.DB, configuredLink string) error {
	m := db.Migrator()
	if !m.HasTable(&models.Decedent{}) {
		return nil
	}

	columns, err := m.ColumnTypes(&models.Decedent{})
	if err != nil {
		return fmt.Errorf("list decedents columns: %w", err)
	}
	existing := make(map[string]string, len(columns))
	for _, c := range columns {
		existing[strings.ToLower(c.Name())] = c.Name()
	}
	if _, ok := existing[DecedentLinkColumn]; ok {
		return nil
	}

	candidates := legacyDecedentLinkColumns
	if configuredLink != "" {
		candidates = append([]string{configuredLink}, candidates...)
	}

	for _, cand := range candidates {
		if !identifierPattern.MatchString(cand) {
			continue
		}
		col, ok := existing[strings.ToLower(cand)]
		if !ok {
			continue
		}

		logrus.WithFields(logrus.Fields{"from": col, "to": DecedentLinkColumn}).Info("renaming decedent link column")
		err := db.Exec("ALTER TABLE ? RENAME COLUMN ? TO ?",
			clause.Table{Name: "decedents"}, clause.Column{Name: col}, clause.Column{Name: DecedentLinkColumn}).Error
		if err != nil {
			return fmt.Errorf("rename decedents.%s: %w", col, err)
		}
		return nil
	}

	logrus.Warn("decedents table has no recognizable transport link column, adding transport_id")
	return nil
}
