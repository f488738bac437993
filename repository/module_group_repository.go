package repository

import (
	"lmsmodules/config"
	"lmsmodules/models"

	"gorm.io/gorm"
)

// ModuleGroupRepository provides data access operations for module group records.
type ModuleGroupRepository interface {
	Create(tx *gorm.DB, group *models.ModuleGroup) error
	GetByID(tx *gorm.DB, id uint) (*models.ModuleGroup, error)
	GetByIDWithModules(tx *gorm.DB, id uint) (*models.ModuleGroup, error)
	GetByName(tx *gorm.DB, name string) (*models.ModuleGroup, error)
	GetAll(tx *gorm.DB) ([]models.ModuleGroup, error)
	GetAllWithModules(tx *gorm.DB) ([]models.ModuleGroup, error)
	CountModulesByGroup(tx *gorm.DB) (map[uint]int64, error)
	Update(tx *gorm.DB, group *models.ModuleGroup) error
	Delete(tx *gorm.DB, id uint) error
}

type moduleGroupRepository struct {
	db  *gorm.DB
	now Clock
}

// NewModuleGroupRepository creates a new module group repository instance.
func NewModuleGroupRepository() ModuleGroupRepository {
	return NewModuleGroupRepositoryWithDB(config.DB, nil)
}

// NewModuleGroupRepositoryWithDB creates a module group repository over db.
// A nil clock uses the system time.
func NewModuleGroupRepositoryWithDB(db *gorm.DB, clock Clock) ModuleGroupRepository {
	return &moduleGroupRepository{db: db, now: clockOrDefault(clock)}
}

func (r *moduleGroupRepository) conn(tx *gorm.DB) *gorm.DB {
	if tx == nil {
		return r.db
	}
	return tx
}

// Create inserts the group together with any modules (and their functions)
// attached to it. Modules without an explicit creator inherit the group's.
func (r *moduleGroupRepository) Create(tx *gorm.DB, group *models.ModuleGroup) error {
	now := r.now()
	stampCreated(&group.Audit, now)
	for i := range group.Modules {
		m := &group.Modules[i]
		if m.CreatedByID == 0 {
			m.CreatedByID = group.CreatedByID
		}
		stampCreated(&m.Audit, now)
		stampFunctions(m.ModuleFunctions, now)
	}
	return r.conn(tx).Create(group).Error
}

func (r *moduleGroupRepository) GetByID(tx *gorm.DB, id uint) (*models.ModuleGroup, error) {
	var group models.ModuleGroup
	if err := r.conn(tx).Where("id = ?", id).First(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *moduleGroupRepository) GetByIDWithModules(tx *gorm.DB, id uint) (*models.ModuleGroup, error) {
	var group models.ModuleGroup
	if err := r.conn(tx).Preload("Modules", orderByID).Where("id = ?", id).First(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *moduleGroupRepository) GetByName(tx *gorm.DB, name string) (*models.ModuleGroup, error) {
	var group models.ModuleGroup
	if err := r.conn(tx).Where("group_name = ?", name).First(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *moduleGroupRepository) GetAll(tx *gorm.DB) ([]models.ModuleGroup, error) {
	var groups []models.ModuleGroup
	if err := r.conn(tx).Order("id").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *moduleGroupRepository) GetAllWithModules(tx *gorm.DB) ([]models.ModuleGroup, error) {
	var groups []models.ModuleGroup
	if err := r.conn(tx).Preload("Modules", orderByID).Order("id").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// CountModulesByGroup returns module counts keyed by group id. Groups with no
// modules are absent from the map.
func (r *moduleGroupRepository) CountModulesByGroup(tx *gorm.DB) (map[uint]int64, error) {
	var rows []struct {
		ModuleGroupID uint
		Total         int64
	}
	err := r.conn(tx).Model(&models.Module{}).
		Select("module_group_id, COUNT(*) AS total").
		Group("module_group_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.ModuleGroupID] = row.Total
	}
	return counts, nil
}

// Update writes the mutable columns and refreshes updated_at. The creation
// columns and the module collection are never touched.
func (r *moduleGroupRepository) Update(tx *gorm.DB, group *models.ModuleGroup) error {
	stampUpdated(&group.Audit, r.now())
	result := r.conn(tx).Model(group).
		Select("group_name", "description", "icon", "url", "updated_by_id", "updated_at").
		Updates(group)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the group row only; callers remove the children first.
func (r *moduleGroupRepository) Delete(tx *gorm.DB, id uint) error {
	result := r.conn(tx).Delete(&models.ModuleGroup{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}
