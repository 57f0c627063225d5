package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPPort    string
	DBDriver    string
	DatabaseDSN string

	// Optional legacy column on decedents that links to transports. When set it
	// is tried before the built-in candidate list during migration.
	DecedentLinkColumn string

	JWTSecret   string
	CORSOrigins string
	CSRFEnabled bool

	LogLevel  string
	LogFormat string
	LogFile   string
}

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func Load() *Config {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file loaded")
	}

	cfg := &Config{
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		DBDriver:           getEnv("DB_DRIVER", DriverMySQL),
		DatabaseDSN:        getEnv("DATABASE_DSN", ""),
		DecedentLinkColumn: getEnv("DECEDENT_LINK_COLUMN", ""),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		CORSOrigins:        getEnv("CORS_ALLOWED_ORIGINS", "*"),
		CSRFEnabled:        getEnvBool("CSRF_ENABLED", true),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
		LogFile:            getEnv("LOG_FILE", "dispatchbase.log"),
	}

	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = defaultDSN(cfg.DBDriver)
	}

	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}
	if cfg.JWTSecret == "" {
		logrus.Warn("JWT_SECRET not set, /api routes are disabled")
	}

	return cfg
}

// Validate reports configuration values the server cannot start with.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.JWTSecret != "" && len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters")
	}
	return nil
}

// APIEnabled is true when a signing secret is configured.
func (c *Config) APIEnabled() bool {
	return c.JWTSecret != ""
}

func defaultDSN(driver string) string {
	host := getEnv("DB_HOST", "127.0.0.1")
	user := getEnv("DB_USER", "root")
	pass := getEnv("DB_PASS", "")
	name := getEnv("DB_NAME", "test")

	switch driver {
	case DriverPostgres:
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			host, user, pass, name, getEnv("DB_PORT", "5432"))
	case DriverSQLite:
		return name + ".db"
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=5s",
			user, pass, host, getEnv("DB_PORT", "3306"), name)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		logrus.Warnf("%s=%q is not a boolean, using %t", key, v, def)
		return def
	}
	return b
}
