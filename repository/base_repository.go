package repository

import (
	"context"

	"lmsmodules/config"

	"gorm.io/gorm"
)

// BaseRepository provides transaction management capabilities for database operations.
type BaseRepository interface {
	Begin(ctx context.Context) *gorm.DB
	Conn(ctx context.Context) *gorm.DB
}

type baseRepository struct {
	db *gorm.DB
}

// NewBaseRepository creates a new base repository instance with the global database connection.
func NewBaseRepository() BaseRepository {
	return NewBaseRepositoryWithDB(config.DB)
}

// NewBaseRepositoryWithDB creates a base repository over db.
func NewBaseRepositoryWithDB(db *gorm.DB) BaseRepository {
	return &baseRepository{db: db}
}

// Begin starts a transaction bound to ctx.
func (r *baseRepository) Begin(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Begin()
}

// Conn returns a session bound to ctx for reads outside a transaction.
func (r *baseRepository) Conn(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}
