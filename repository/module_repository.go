package repository

import (
	"lmsmodules/config"
	"lmsmodules/models"

	"gorm.io/gorm"
)

// ModuleRepository provides data access operations for module records.
type ModuleRepository interface {
	Create(tx *gorm.DB, module *models.Module) error
	GetByID(tx *gorm.DB, id uint) (*models.Module, error)
	GetByIDWithFunctions(tx *gorm.DB, id uint) (*models.Module, error)
	GetAll(tx *gorm.DB) ([]models.Module, error)
	GetByModuleGroupID(tx *gorm.DB, groupID uint) ([]models.Module, error)
	GetIDsByModuleGroupID(tx *gorm.DB, groupID uint) ([]uint, error)
	Update(tx *gorm.DB, module *models.Module) error
	Delete(tx *gorm.DB, id uint) error
	DeleteByModuleGroupID(tx *gorm.DB, groupID uint) (int64, error)
}

type moduleRepository struct {
	db  *gorm.DB
	now Clock
}

// NewModuleRepository creates a new module repository instance.
func NewModuleRepository() ModuleRepository {
	return NewModuleRepositoryWithDB(config.DB, nil)
}

// NewModuleRepositoryWithDB creates a module repository over db.
func NewModuleRepositoryWithDB(db *gorm.DB, clock Clock) ModuleRepository {
	return &moduleRepository{db: db, now: clockOrDefault(clock)}
}

func (r *moduleRepository) conn(tx *gorm.DB) *gorm.DB {
	if tx == nil {
		return r.db
	}
	return tx
}

func (r *moduleRepository) Create(tx *gorm.DB, module *models.Module) error {
	now := r.now()
	stampCreated(&module.Audit, now)
	stampFunctions(module.ModuleFunctions, now)
	return r.conn(tx).Create(module).Error
}

func (r *moduleRepository) GetByID(tx *gorm.DB, id uint) (*models.Module, error) {
	var module models.Module
	if err := r.conn(tx).Where("id = ?", id).First(&module).Error; err != nil {
		return nil, err
	}
	return &module, nil
}

func (r *moduleRepository) GetByIDWithFunctions(tx *gorm.DB, id uint) (*models.Module, error) {
	var module models.Module
	if err := r.conn(tx).Preload("ModuleFunctions", orderByID).Where("id = ?", id).First(&module).Error; err != nil {
		return nil, err
	}
	return &module, nil
}

func (r *moduleRepository) GetAll(tx *gorm.DB) ([]models.Module, error) {
	var modules []models.Module
	if err := r.conn(tx).Order("id").Find(&modules).Error; err != nil {
		return nil, err
	}
	return modules, nil
}

func (r *moduleRepository) GetByModuleGroupID(tx *gorm.DB, groupID uint) ([]models.Module, error) {
	var modules []models.Module
	if err := r.conn(tx).Where("module_group_id = ?", groupID).Order("id").Find(&modules).Error; err != nil {
		return nil, err
	}
	return modules, nil
}

func (r *moduleRepository) GetIDsByModuleGroupID(tx *gorm.DB, groupID uint) ([]uint, error) {
	var ids []uint
	if err := r.conn(tx).Model(&models.Module{}).Where("module_group_id = ?", groupID).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// Update writes the mutable columns, including the owning group, and
// refreshes updated_at.
func (r *moduleRepository) Update(tx *gorm.DB, module *models.Module) error {
	stampUpdated(&module.Audit, r.now())
	result := r.conn(tx).Model(module).
		Select("name", "url", "icon", "description", "module_group_id", "updated_by_id", "updated_at").
		Updates(module)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *moduleRepository) Delete(tx *gorm.DB, id uint) error {
	result := r.conn(tx).Delete(&models.Module{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *moduleRepository) DeleteByModuleGroupID(tx *gorm.DB, groupID uint) (int64, error) {
	result := r.conn(tx).Where("module_group_id = ?", groupID).Delete(&models.Module{})
	return result.RowsAffected, result.Error
}
