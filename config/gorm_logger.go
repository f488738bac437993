package config

import (
	"context"
	"errors"
	"time"

	"lmsmodules/pkg/logger"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormLogger routes GORM output to the application logger. SQL traces are
// written at DEBUG, slow queries at WARN and failed queries at ERROR.
// Each message starts with the file:line of the code that issued the query;
// the logger's own file prefix only points at this adapter.
type gormLogger struct {
	log   *logger.Logger
	level gormlogger.LogLevel
}

// NewGormLogger adapts l to GORM. A nil logger discards everything.
func NewGormLogger(l *logger.Logger) gormlogger.Interface {
	if l == nil {
		return gormlogger.Discard
	}
	return &gormLogger{log: l, level: gormlogger.Warn}
}

func (g *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *g
	clone.level = level
	return &clone
}

func (g *gormLogger) Info(_ context.Context, msg string, data ...interface{}) {
	if g.level >= gormlogger.Info {
		g.log.Logf(1, logger.INFO, "%s "+msg, append([]interface{}{utils.FileWithLineNum()}, data...)...)
	}
}

func (g *gormLogger) Warn(_ context.Context, msg string, data ...interface{}) {
	if g.level >= gormlogger.Warn {
		g.log.Logf(1, logger.WARN, "%s "+msg, append([]interface{}{utils.FileWithLineNum()}, data...)...)
	}
}

func (g *gormLogger) Error(_ context.Context, msg string, data ...interface{}) {
	if g.level >= gormlogger.Error {
		g.log.Logf(1, logger.ERROR, "%s "+msg, append([]interface{}{utils.FileWithLineNum()}, data...)...)
	}
}

func (g *gormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.level <= gormlogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && g.level >= gormlogger.Error:
		sql, rows := fc()
		g.log.Logf(1, logger.ERROR, "%s %v [%v] rows=%d %s", utils.FileWithLineNum(), err, elapsed, rows, sql)
	case elapsed > slowQueryThreshold && g.level >= gormlogger.Warn:
		sql, rows := fc()
		g.log.Logf(1, logger.WARN, "%s slow query [%v] rows=%d %s", utils.FileWithLineNum(), elapsed, rows, sql)
	case g.log.Enabled(logger.DEBUG):
		sql, rows := fc()
		g.log.Logf(1, logger.DEBUG, "%s [%v] rows=%d %s", utils.FileWithLineNum(), elapsed, rows, sql)
	}
}
