package database

import (
	"fmt"

	"dispatchbase/internal/config"
	"dispatchbase/internal/logging"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Open connects with the dialect named by cfg.DBDriver. It does not migrate.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverMySQL:
		dialector = mysql.Open(cfg.DatabaseDSN)
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DatabaseDSN)
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DatabaseDSN)
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logging.GormLogger()})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.DBDriver, err)
	}
	return db, nil
}

// Init opens and migrates the database and stores the handle in DB. Any failure
// is fatal.
func Init(cfg *config.Config) {
	var err error

	DB, err = Open(cfg)
	if err != nil {
		logrus.WithField("driver", cfg.DBDriver).Fatalf("database connection failed: %v", err)
	}

	if err := Migrate(DB, cfg.DecedentLinkColumn); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}

	logrus.WithField("driver", cfg.DBDriver).Info("database connected, migration complete")
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
