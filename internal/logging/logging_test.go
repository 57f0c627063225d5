package logging

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"dispatchbase/internal/config"

	"github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"
)

func TestSetupWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	closer, err := Setup(&config.Config{LogLevel: "info", LogFormat: "json", LogFile: path})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer logrus.SetOutput(os.Stderr)

	logrus.WithField("table", "customers").Error("connection refused")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "connection refused") || !strings.Contains(string(data), `"table":"customers"`) {
		t.Fatalf("log file missing entry: %s", data)
	}
}

func TestSetupRejectsBadLevel(t *testing.T) {
	if _, err := Setup(&config.Config{LogLevel: "loud"}); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logrus.SetOutput(&buf)
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrus.DebugLevel)
	t.Cleanup(func() {
		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(logrus.InfoLevel)
	})
	return &buf
}

func TestGormLoggerLevels(t *testing.T) {
	buf := captureLogs(t)
	l := GormLogger()
	query := func() (string, int64) { return "SELECT 1", 0 }

	l.Trace(context.Background(), time.Now(), query, errors.New("SQL logic error"))
	if !strings.Contains(buf.String(), `"level":"error"`) || !strings.Contains(buf.String(), "SQL logic error") {
		t.Fatalf("sql error not logged at error level: %s", buf)
	}

	buf.Reset()
	l.Trace(context.Background(), time.Now().Add(-time.Second), query, nil)
	if !strings.Contains(buf.String(), `"level":"warning"`) {
		t.Fatalf("slow query not logged as warning: %s", buf)
	}

	buf.Reset()
	l.Trace(context.Background(), time.Now(), query, gormlogger.ErrRecordNotFound)
	l.Info(context.Background(), "connected %s", "db")
	if buf.Len() != 0 {
		t.Fatalf("expected nothing at warn level: %s", buf)
	}

	l.LogMode(gormlogger.Silent).Error(context.Background(), "dropped")
	l.Warn(context.Background(), "pool %d", 3)
	if strings.Contains(buf.String(), "dropped") || !strings.Contains(buf.String(), `"level":"warning"`) {
		t.Fatalf("unexpected output: %s", buf)
	}
}

func TestSetupWithoutFileClosesCleanly(t *testing.T) {
	closer, err := Setup(&config.Config{LogLevel: "info"})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
