package config

import (
	"context"
	"fmt"

	"lmsmodules/pkg/logger"
	"lmsmodules/pkg/memdb"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DB is the global GORM database instance used throughout the application.
var DB *gorm.DB

var embedded *memdb.Server

// DSN builds the go-sql-driver/mysql data source name for the configured server.
func (c AppConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		c.DBUser,
		c.DBPass,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// ConnectDB opens the GORM connection. With DB_DRIVER=memory an embedded
// server is started first and the connection points at it.
func ConnectDB() error {
	var dsn string
	switch Cfg.DBDriver {
	case DriverMySQL:
		logger.Infof("Connecting to database %s@%s:%d/%s", Cfg.DBUser, Cfg.DBHost, Cfg.DBPort, Cfg.DBName)
		dsn = Cfg.DSN()
	case DriverMemory:
		srv, err := memdb.Start(context.Background(), Cfg.DBName)
		if err != nil {
			return fmt.Errorf("failed to start in-memory database: %w", err)
		}
		embedded = srv
		dsn = srv.DSN()
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", Cfg.DBDriver)
	}

	db, err := Open(dsn)
	if err != nil {
		logger.Errorf("GORM connection failed: %v", err)
		return err
	}
	logger.Infof("GORM connected successfully to database %s", Cfg.DBName)

	DB = db
	return nil
}

// Open opens a GORM MySQL connection with the application's logger attached.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: NewGormLogger(logger.Default()),
	})
}

// CloseDB closes the connection pool and any embedded server.
func CloseDB() error {
	if DB != nil {
		if sqlDB, err := DB.DB(); err == nil {
			sqlDB.Close()
		}
		DB = nil
	}
	if embedded != nil {
		err := embedded.Close()
		embedded = nil
		return err
	}
	return nil
}
