package config

import (
	"strings"
	"testing"
)

func TestValidateRejectsUnknownDriver(t *testing.T) {
	cfg := &Config{DBDriver: "oracle"}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

func TestValidateRejectsShortSecret(t *testing.T) {
	cfg := &Config{DBDriver: DriverMySQL, JWTSecret: "short"}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for short secret")
	}

	cfg.JWTSecret = strings.Repeat("x", 32)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !cfg.APIEnabled() {
		t.Fatalf("api should be enabled with a secret")
	}
}

func TestDefaultDSN(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_USER", "dispatch")
	t.Setenv("DB_PASS", "secret")
	t.Setenv("DB_NAME", "dispatch")

	mysql := defaultDSN(DriverMySQL)
	if mysql != "dispatch:secret@tcp(db.internal:3306)/dispatch?charset=utf8mb4&parseTime=True&loc=Local&timeout=5s" {
		t.Fatalf("mysql dsn: %s", mysql)
	}
	if pg := defaultDSN(DriverPostgres); !strings.Contains(pg, "host=db.internal") || !strings.Contains(pg, "port=5432") {
		t.Fatalf("postgres dsn: %s", pg)
	}
	if lite := defaultDSN(DriverSQLite); lite != "dispatch.db" {
		t.Fatalf("sqlite dsn: %s", lite)
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("CSRF_ENABLED", "false")
	if getEnvBool("CSRF_ENABLED", true) {
		t.Fatalf("expected false")
	}
	t.Setenv("CSRF_ENABLED", "nope")
	if !getEnvBool("CSRF_ENABLED", true) {
		t.Fatalf("expected default on parse failure")
	}
}
