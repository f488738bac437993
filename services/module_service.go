package services

import (
	"context"
	"fmt"

	"lmsmodules/models"
	"lmsmodules/pkg/logger"
	"lmsmodules/repository"

	"gorm.io/gorm"
)

// ModuleService provides business logic for individual modules.
type ModuleService interface {
	CreateModule(ctx context.Context, module *models.Module, actorID uint) (*models.Module, error)
	UpdateModule(ctx context.Context, id uint, changes *models.Module, actorID uint) (*models.Module, error)
	DeleteModule(ctx context.Context, id uint) error
	GetModuleByID(ctx context.Context, id uint) (*models.Module, error)
	GetAllModules(ctx context.Context) ([]models.Module, error)
	GetModulesByGroupID(ctx context.Context, groupID uint) ([]models.Module, error)
}

type moduleService struct {
	baseRepo   repository.BaseRepository
	groupRepo  repository.ModuleGroupRepository
	moduleRepo repository.ModuleRepository
	funcRepo   repository.ModuleFunctionRepository
}

// NewModuleService creates a new module service instance.
func NewModuleService() ModuleService {
	return &moduleService{
		baseRepo:   repository.NewBaseRepository(),
		groupRepo:  repository.NewModuleGroupRepository(),
		moduleRepo: repository.NewModuleRepository(),
		funcRepo:   repository.NewModuleFunctionRepository(),
	}
}

// NewModuleServiceWithDeps creates a module service with injected dependencies.
func NewModuleServiceWithDeps(
	baseRepo repository.BaseRepository,
	groupRepo repository.ModuleGroupRepository,
	moduleRepo repository.ModuleRepository,
	funcRepo repository.ModuleFunctionRepository,
) ModuleService {
	return &moduleService{
		baseRepo:   baseRepo,
		groupRepo:  groupRepo,
		moduleRepo: moduleRepo,
		funcRepo:   funcRepo,
	}
}

// CreateModule persists a module under the group named by module.ModuleGroupID.
func (s *moduleService) CreateModule(ctx context.Context, module *models.Module, actorID uint) (*models.Module, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context cannot be nil")
	}
	if module == nil {
		return nil, fmt.Errorf("module cannot be nil")
	}
	if err := requireID("module group id", module.ModuleGroupID); err != nil {
		return nil, err
	}
	if err := requireID("actor id", actorID); err != nil {
		return nil, err
	}

	tx := s.baseRepo.Begin(ctx)
	var txCommitted bool
	defer func() {
		if !txCommitted {
			tx.Rollback()
		}
	}()

	if err := insertModule(tx, s.groupRepo, s.moduleRepo, module, actorID); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	txCommitted = true

	logger.Infof("Module created: id=%d, group_id=%d, name=%s", module.ID, module.ModuleGroupID, module.Name)
	return module, nil
}

// UpdateModule copies the mutable fields of changes onto the stored module.
// A non-zero changes.ModuleGroupID moves the module to that group.
func (s *moduleService) UpdateModule(ctx context.Context, id uint, changes *models.Module, actorID uint) (*models.Module, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context cannot be nil")
	}
	if changes == nil {
		return nil, fmt.Errorf("module cannot be nil")
	}
	if err := requireID("module id", id); err != nil {
		return nil, err
	}
	if err := requireID("actor id", actorID); err != nil {
		return nil, err
	}

	tx := s.baseRepo.Begin(ctx)
	var txCommitted bool
	defer func() {
		if !txCommitted {
			tx.Rollback()
		}
	}()

	existing, err := s.moduleRepo.GetByID(tx, id)
	if err != nil {
		return nil, translateNotFound(err, ErrModuleNotFound, "load module", id)
	}

	if changes.ModuleGroupID != 0 && changes.ModuleGroupID != existing.ModuleGroupID {
		if _, err := s.groupRepo.GetByID(tx, changes.ModuleGroupID); err != nil {
			return nil, translateNotFound(err, ErrModuleGroupNotFound, "load module group", changes.ModuleGroupID)
		}
		existing.ModuleGroupID = changes.ModuleGroupID
	}

	existing.Name = changes.Name
	existing.URL = changes.URL
	existing.Icon = changes.Icon
	existing.Description = changes.Description
	existing.UpdatedByID = models.UintPtr(actorID)

	if err := s.moduleRepo.Update(tx, existing); err != nil {
		logger.Errorf("Failed to update module %d: %v", id, err)
		return nil, translateNotFound(err, ErrModuleNotFound, "update module", id)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	txCommitted = true

	logger.Infof("Module updated: id=%d, group_id=%d, name=%s", existing.ID, existing.ModuleGroupID, existing.Name)
	return existing, nil
}

// DeleteModule removes the module and its functions.
func (s *moduleService) DeleteModule(ctx context.Context, id uint) error {
	if ctx == nil {
		return fmt.Errorf("context cannot be nil")
	}
	if err := requireID("module id", id); err != nil {
		return err
	}

	tx := s.baseRepo.Begin(ctx)
	var txCommitted bool
	defer func() {
		if !txCommitted {
			tx.Rollback()
		}
	}()

	if _, err := s.moduleRepo.GetByID(tx, id); err != nil {
		return translateNotFound(err, ErrModuleNotFound, "load module", id)
	}
	if err := deleteModule(tx, s.moduleRepo, s.funcRepo, id); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	txCommitted = true

	logger.Infof("Module deleted: id=%d", id)
	return nil
}

func (s *moduleService) GetModuleByID(ctx context.Context, id uint) (*models.Module, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context cannot be nil")
	}
	if err := requireID("module id", id); err != nil {
		return nil, err
	}

	module, err := s.moduleRepo.GetByIDWithFunctions(s.baseRepo.Conn(ctx), id)
	if err != nil {
		return nil, translateNotFound(err, ErrModuleNotFound, "get module", id)
	}
	return module, nil
}

func (s *moduleService) GetAllModules(ctx context.Context) ([]models.Module, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context cannot be nil")
	}

	modules, err := s.moduleRepo.GetAll(s.baseRepo.Conn(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to get modules: %w", err)
	}
	return modules, nil
}

// GetModulesByGroupID lists the modules of an existing group, ordered by id.
func (s *moduleService) GetModulesByGroupID(ctx context.Context, groupID uint) ([]models.Module, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context cannot be nil")
	}
	if err := requireID("module group id", groupID); err != nil {
		return nil, err
	}

	conn := s.baseRepo.Conn(ctx)
	if _, err := s.groupRepo.GetByID(conn, groupID); err != nil {
		return nil, translateNotFound(err, ErrModuleGroupNotFound, "load module group", groupID)
	}

	modules, err := s.moduleRepo.GetByModuleGroupID(conn, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get modules of group %d: %w", groupID, err)
	}
	return modules, nil
}

// insertModule checks that the owning group exists and inserts the module
// within tx. Storage assigns the id.
func insertModule(tx *gorm.DB, groupRepo repository.ModuleGroupRepository, moduleRepo repository.ModuleRepository, module *models.Module, actorID uint) error {
	if _, err := groupRepo.GetByID(tx, module.ModuleGroupID); err != nil {
		return translateNotFound(err, ErrModuleGroupNotFound, "load module group", module.ModuleGroupID)
	}

	module.ID = 0
	module.CreatedByID = actorID
	module.UpdatedByID = nil
	if err := moduleRepo.Create(tx, module); err != nil {
		logger.Errorf("Failed to create module %q in group %d: %v", module.Name, module.ModuleGroupID, err)
		return fmt.Errorf("failed to create module: %w", err)
	}
	return nil
}

// deleteModule removes the module's functions, then the module, within tx.
func deleteModule(tx *gorm.DB, moduleRepo repository.ModuleRepository, funcRepo repository.ModuleFunctionRepository, id uint) error {
	if _, err := funcRepo.DeleteByModuleIDs(tx, []uint{id}); err != nil {
		logger.Errorf("Failed to delete functions of module %d: %v", id, err)
		return fmt.Errorf("failed to delete module functions: %w", err)
	}
	if err := moduleRepo.Delete(tx, id); err != nil {
		logger.Errorf("Failed to delete module %d: %v", id, err)
		return translateNotFound(err, ErrModuleNotFound, "delete module", id)
	}
	return nil
}
