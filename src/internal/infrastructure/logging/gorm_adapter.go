package logging

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

// ===========================
// GORM → zap 適配器
// ===========================

// GormLoggerAdapter 實作 gorm logger.Interface
//
// - 失敗的查詢記為 error（可忽略 ErrRecordNotFound）
// - 超過 slowThreshold 的查詢記為 warn
// - 其餘查詢只在 Info 等級記錄
type GormLoggerAdapter struct {
	logLevel                  gormlogger.LogLevel
	logger                    *zap.Logger
	slowThreshold             time.Duration
	ignoreRecordNotFoundError bool
}

// NewGormLoggerAdapter 建立適配器
//
// Repository 把查無資料轉換為領域錯誤，因此預設忽略 ErrRecordNotFound。
func NewGormLoggerAdapter(log *zap.Logger, level gormlogger.LogLevel, slowThreshold time.Duration) *GormLoggerAdapter {
	if log == nil {
		log = zap.NewNop()
	}
	return &GormLoggerAdapter{
		logLevel:                  level,
		logger:                    log.Named("gorm"),
		slowThreshold:             slowThreshold,
		ignoreRecordNotFoundError: true,
	}
}

// ParseGormLevel 解析 database.log_level
func ParseGormLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info", "debug":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}

func (l *GormLoggerAdapter) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.logLevel = level
	return &clone
}

func (l *GormLoggerAdapter) Info(_ context.Context, msg string, args ...interface{}) {
	if l.logLevel >= gormlogger.Info {
		l.logger.Info(fmt.Sprintf(msg, args...))
	}
}

func (l *GormLoggerAdapter) Warn(_ context.Context, msg string, args ...interface{}) {
	if l.logLevel >= gormlogger.Warn {
		l.logger.Warn(fmt.Sprintf(msg, args...))
	}
}

func (l *GormLoggerAdapter) Error(_ context.Context, msg string, args ...interface{}) {
	if l.logLevel >= gormlogger.Error {
		l.logger.Error(fmt.Sprintf(msg, args...))
	}
}

func (l *GormLoggerAdapter) Trace(_ context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.logLevel <= gormlogger.Silent {
		return
	}

	sql, rows := fc()
	elapsed := time.Since(begin)
	fields := []zap.Field{
		zap.String("sql", sql),
		zap.Duration("elapsed", elapsed),
		zap.Int64("rows", rows),
	}

	if err != nil && l.logLevel >= gormlogger.Error {
		if errors.Is(err, gormlogger.ErrRecordNotFound) && l.ignoreRecordNotFoundError {
			return
		}
		l.logger.Error("Database operation failed", append(fields, zap.Error(err))...)
		return
	}

	if l.slowThreshold != 0 && elapsed > l.slowThreshold && l.logLevel >= gormlogger.Warn {
		l.logger.Warn("Slow SQL query", append(fields, zap.String("type", "slow_query"))...)
		return
	}

	if l.logLevel >= gormlogger.Info {
		l.logger.Info("SQL query executed", fields...)
	}
}
