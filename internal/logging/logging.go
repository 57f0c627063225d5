package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"dispatchbase/internal/config"

	"github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

// Setup configures the standard logrus logger. Entries go to stderr and, when
// cfg.LogFile is set, are appended to that file. The returned closer releases
// the file.
func Setup(cfg *config.Config) (io.Closer, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.LogLevel, err)
	}
	logrus.SetLevel(level)

	if cfg.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if cfg.LogFile == "" {
		logrus.SetOutput(os.Stderr)
		return nopCloser{}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logrus.SetOutput(io.MultiWriter(os.Stderr, f))
	return f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

const slowQueryThreshold = 500 * time.Millisecond

// gormLogrus is a gorm logger writing through logrus at matching levels.
type gormLogrus struct {
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

// GormLogger routes gorm's slow query and error output through logrus.
// Missing records are not logged.
func GormLogger() gormlogger.Interface {
	return &gormLogrus{level: gormlogger.Warn, slowThreshold: slowQueryThreshold}
}

func (l *gormLogrus) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	nl := *l
	nl.level = level
	return &nl
}

func (l *gormLogrus) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Info {
		logrus.WithContext(ctx).Infof(msg, args...)
	}
}

func (l *gormLogrus) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Warn {
		logrus.WithContext(ctx).Warnf(msg, args...)
	}
}

func (l *gormLogrus) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Error {
		logrus.WithContext(ctx).Errorf(msg, args...)
	}
}

func (l *gormLogrus) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	fields := func() *logrus.Entry {
		sql, rows := fc()
		return logrus.WithContext(ctx).WithFields(logrus.Fields{
			"sql":     sql,
			"rows":    rows,
			"elapsed": elapsed.String(),
			"caller":  utils.FileWithLineNum(),
		})
	}

	switch {
	case err != nil && l.level >= gormlogger.Error && !errors.Is(err, gormlogger.ErrRecordNotFound):
		fields().WithError(err).Error("sql failed")
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		fields().Warn("slow sql")
	case l.level >= gormlogger.Info:
		fields().Debug("sql")
	}
}
