package services

import (
	"context"
	"fmt"

	"lmsmodules/models"
	"lmsmodules/pkg/logger"
	"lmsmodules/repository"
	"lmsmodules/utils"
)

// ModuleGroupService provides business logic for module groups and the modules they own.
type ModuleGroupService interface {
	CreateGroup(ctx context.Context, group *models.ModuleGroup, actorID uint) (*models.ModuleGroup, error)
	UpdateGroup(ctx context.Context, id uint, changes *models.ModuleGroup, actorID uint) (*models.ModuleGroup, error)
	DeleteGroup(ctx context.Context, id uint) error
	GetGroupByID(ctx context.Context, id uint) (*models.ModuleGroup, error)
	GetAllGroups(ctx context.Context) ([]models.ModuleGroup, error)
	GetGroupSummaries(ctx context.Context) ([]models.ModuleGroupSummary, error)

	// Owned modules
	AddModule(ctx context.Context, groupID uint, module *models.Module, actorID uint) (*models.Module, error)
	RemoveModule(ctx context.Context, groupID, moduleID uint) error
}

type moduleGroupService struct {
	baseRepo   repository.BaseRepository
	groupRepo  repository.ModuleGroupRepository
	moduleRepo repository.ModuleRepository
	funcRepo   repository.ModuleFunctionRepository
}

// NewModuleGroupService creates a new module group service instance.
func NewModuleGroupService() ModuleGroupService {
	return &moduleGroupService{
		baseRepo:   repository.NewBaseRepository(),
		groupRepo:  repository.NewModuleGroupRepository(),
		moduleRepo: repository.NewModuleRepository(),
		funcRepo:   repository.NewModuleFunctionRepository(),
	}
}

// NewModuleGroupServiceWithDeps creates a module group service with injected dependencies.
func NewModuleGroupServiceWithDeps(
	baseRepo repository.BaseRepository,
	groupRepo repository.ModuleGroupRepository,
	moduleRepo repository.ModuleRepository,
	funcRepo repository.ModuleFunctionRepository,
) ModuleGroupService {
	return &moduleGroupService{
		baseRepo:   baseRepo,
		groupRepo:  groupRepo,
		moduleRepo: moduleRepo,
		funcRepo:   funcRepo,
	}
}

// CreateGroup validates and persists a group. Modules attached to it are
// inserted in the same transaction and get the new group's id.
func (s *moduleGroupService) CreateGroup(ctx context.Context, group *models.ModuleGroup, actorID uint) (*models.ModuleGroup, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context cannot be nil")
	}
	if group == nil {
		return nil, fmt.Errorf("module group cannot be nil")
	}
	if err := utils.ValidateStruct(group); err != nil {
		return nil, err
	}
	if err := requireID("actor id", actorID); err != nil {
		return nil, err
	}

	group.ID = 0
	group.CreatedByID = actorID
	group.UpdatedByID = nil
	if group.Modules == nil {
		group.Modules = []models.Module{}
	}
	for i := range group.Modules {
		m := &group.Modules[i]
		m.ID = 0
		m.ModuleGroupID = 0
		m.CreatedByID = actorID
		m.UpdatedByID = nil
	}

	tx := s.baseRepo.Begin(ctx)
	var txCommitted bool
	defer func() {
		if !txCommitted {
			tx.Rollback()
		}
	}()

	if err := s.groupRepo.Create(tx, group); err != nil {
		logger.Errorf("Failed to create module group %q: %v", group.Name, err)
		return nil, fmt.Errorf("failed to create module group: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	txCommitted = true

	logger.Infof("Module group created: id=%d, name=%s, modules=%d", group.ID, group.Name, len(group.Modules))
	return group, nil
}

// UpdateGroup copies the mutable fields of changes onto the stored group and
// returns it with its modules. The module collection is left as it is; use
// AddModule and RemoveModule for that.
func (s *moduleGroupService) UpdateGroup(ctx context.Context, id uint, changes *models.ModuleGroup, actorID uint) (*models.ModuleGroup, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context cannot be nil")
	}
	if changes == nil {
		return nil, fmt.Errorf("module group cannot be nil")
	}
	if err := requireID("module group id", id); err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(changes); err != nil {
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

	existing, err := s.groupRepo.GetByIDWithModules(tx, id)
	if err != nil {
		return nil, translateNotFound(err, ErrModuleGroupNotFound, "load module group", id)
	}

	existing.Name = changes.Name
	existing.Description = changes.Description
	existing.Icon = changes.Icon
	existing.URL = changes.URL
	existing.UpdatedByID = models.UintPtr(actorID)

	if err := s.groupRepo.Update(tx, existing); err != nil {
		logger.Errorf("Failed to update module group %d: %v", id, err)
		return nil, translateNotFound(err, ErrModuleGroupNotFound, "update module group", id)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	txCommitted = true

	logger.Infof("Module group updated: id=%d, name=%s", existing.ID, existing.Name)
	return existing, nil
}

// DeleteGroup removes the group, its modules and their functions in one transaction.
func (s *moduleGroupService) DeleteGroup(ctx context.Context, id uint) error {
	if ctx == nil {
		return fmt.Errorf("context cannot be nil")
	}
	if err := requireID("module group id", id); err != nil {
		return err
	}

	tx := s.baseRepo.Begin(ctx)
	var txCommitted bool
	defer func() {
		if !txCommitted {
			tx.Rollback()
		}
	}()

	if _, err := s.groupRepo.GetByID(tx, id); err != nil {
		return translateNotFound(err, ErrModuleGroupNotFound, "load module group", id)
	}

	moduleIDs, err := s.moduleRepo.GetIDsByModuleGroupID(tx, id)
	if err != nil {
		return fmt.Errorf("failed to list modules of group %d: %w", id, err)
	}

	functions, err := s.funcRepo.DeleteByModuleIDs(tx, moduleIDs)
	if err != nil {
		logger.Errorf("Failed to delete module functions of group %d: %v", id, err)
		return fmt.Errorf("failed to delete module functions: %w", err)
	}

	modules, err := s.moduleRepo.DeleteByModuleGroupID(tx, id)
	if err != nil {
		logger.Errorf("Failed to delete modules of group %d: %v", id, err)
		return fmt.Errorf("failed to delete modules: %w", err)
	}

	if err := s.groupRepo.Delete(tx, id); err != nil {
		logger.Errorf("Failed to delete module group %d: %v", id, err)
		return translateNotFound(err, ErrModuleGroupNotFound, "delete module group", id)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	txCommitted = true

	logger.Infof("Module group deleted: id=%d, modules=%d, functions=%d", id, modules, functions)
	return nil
}

func (s *moduleGroupService) GetGroupByID(ctx context.Context, id uint) (*models.ModuleGroup, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context cannot be nil")
	}
	if err := requireID("module group id", id); err != nil {
		return nil, err
	}

	group, err := s.groupRepo.GetByIDWithModules(s.baseRepo.Conn(ctx), id)
	if err != nil {
		return nil, translateNotFound(err, ErrModuleGroupNotFound, "get module group", id)
	}
	return group, nil
}

func (s *moduleGroupService) GetAllGroups(ctx context.Context) ([]models.ModuleGroup, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context cannot be nil")
	}

	groups, err := s.groupRepo.GetAllWithModules(s.baseRepo.Conn(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to get module groups: %w", err)
	}
	return groups, nil
}

// GetGroupSummaries lists every group with the number of modules it owns.
func (s *moduleGroupService) GetGroupSummaries(ctx context.Context) ([]models.ModuleGroupSummary, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context cannot be nil")
	}

	conn := s.baseRepo.Conn(ctx)
	groups, err := s.groupRepo.GetAll(conn)
	if err != nil {
		return nil, fmt.Errorf("failed to get module groups: %w", err)
	}
	counts, err := s.groupRepo.CountModulesByGroup(conn)
	if err != nil {
		return nil, fmt.Errorf("failed to count modules: %w", err)
	}

	summaries := make([]models.ModuleGroupSummary, 0, len(groups))
	for _, g := range groups {
		summaries = append(summaries, g.Summary(counts[g.ID]))
	}
	return summaries, nil
}

// AddModule attaches a new module to an existing group.
func (s *moduleGroupService) AddModule(ctx context.Context, groupID uint, module *models.Module, actorID uint) (*models.Module, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context cannot be nil")
	}
	if module == nil {
		return nil, fmt.Errorf("module cannot be nil")
	}
	if err := requireID("module group id", groupID); err != nil {
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

	module.ModuleGroupID = groupID
	if err := insertModule(tx, s.groupRepo, s.moduleRepo, module, actorID); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	txCommitted = true

	logger.Infof("Module added to group: module_id=%d, group_id=%d, name=%s", module.ID, groupID, module.Name)
	return module, nil
}

// RemoveModule detaches a module from its group. A module cannot exist
// without a group, so detaching deletes it together with its functions.
func (s *moduleGroupService) RemoveModule(ctx context.Context, groupID, moduleID uint) error {
	if ctx == nil {
		return fmt.Errorf("context cannot be nil")
	}
	if err := requireID("module group id", groupID); err != nil {
		return err
	}
	if err := requireID("module id", moduleID); err != nil {
		return err
	}

	tx := s.baseRepo.Begin(ctx)
	var txCommitted bool
	defer func() {
		if !txCommitted {
			tx.Rollback()
		}
	}()

	module, err := s.moduleRepo.GetByID(tx, moduleID)
	if err != nil {
		return translateNotFound(err, ErrModuleNotFound, "load module", moduleID)
	}
	if module.ModuleGroupID != groupID {
		return fmt.Errorf("%w: module_id=%d, group_id=%d", ErrModuleNotInGroup, moduleID, groupID)
	}

	if err := deleteModule(tx, s.moduleRepo, s.funcRepo, moduleID); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	txCommitted = true

	logger.Infof("Module removed from group: module_id=%d, group_id=%d", moduleID, groupID)
	return nil
}
