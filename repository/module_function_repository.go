package repository

import (
	"lmsmodules/config"
	"lmsmodules/models"

	"gorm.io/gorm"
)

// ModuleFunctionRepository provides data access operations for module function records.
type ModuleFunctionRepository interface {
	Create(tx *gorm.DB, fn *models.ModuleFunction) error
	GetByModuleID(tx *gorm.DB, moduleID uint) ([]models.ModuleFunction, error)
	DeleteByModuleIDs(tx *gorm.DB, moduleIDs []uint) (int64, error)
}

type moduleFunctionRepository struct {
	db  *gorm.DB
	now Clock
}

// NewModuleFunctionRepository creates a new module function repository instance.
func NewModuleFunctionRepository() ModuleFunctionRepository {
	return NewModuleFunctionRepositoryWithDB(config.DB, nil)
}

// NewModuleFunctionRepositoryWithDB creates a module function repository over db.
func NewModuleFunctionRepositoryWithDB(db *gorm.DB, clock Clock) ModuleFunctionRepository {
	return &moduleFunctionRepository{db: db, now: clockOrDefault(clock)}
}

func (r *moduleFunctionRepository) conn(tx *gorm.DB) *gorm.DB {
	if tx == nil {
		return r.db
	}
	return tx
}

func (r *moduleFunctionRepository) Create(tx *gorm.DB, fn *models.ModuleFunction) error {
	now := normalize(r.now())
	fn.CreatedAt = now
	fn.UpdatedAt = now
	return r.conn(tx).Create(fn).Error
}

func (r *moduleFunctionRepository) GetByModuleID(tx *gorm.DB, moduleID uint) ([]models.ModuleFunction, error) {
	var fns []models.ModuleFunction
	if err := r.conn(tx).Where("module_id = ?", moduleID).Order("id").Find(&fns).Error; err != nil {
		return nil, err
	}
	return fns, nil
}

// DeleteByModuleIDs removes every function owned by the given modules.
func (r *moduleFunctionRepository) DeleteByModuleIDs(tx *gorm.DB, moduleIDs []uint) (int64, error) {
	if len(moduleIDs) == 0 {
		return 0, nil
	}
	result := r.conn(tx).Where("module_id IN ?", moduleIDs).Delete(&models.ModuleFunction{})
	return result.RowsAffected, result.Error
}
